package engagement

import (
	"strings"

	"github.com/Divya-010704/TripTeller/internal/models"
)

// AssetKind selects which embedded media sequence a surface refers to.
type AssetKind string

const (
	AssetPhoto AssetKind = "photo"
	AssetVideo AssetKind = "video"
)

// Surface addresses one engagement target on a post: the post itself, or a
// photo/video at a given index.
type Surface struct {
	Kind  AssetKind // empty for the post-level surface
	Index int
}

// PostSurface addresses the post-level engagement record.
func PostSurface() Surface {
	return Surface{}
}

// PhotoSurface addresses the engagement record of the photo at index.
func PhotoSurface(index int) Surface {
	return Surface{Kind: AssetPhoto, Index: index}
}

// VideoSurface addresses the engagement record of the video at index.
func VideoSurface(index int) Surface {
	return Surface{Kind: AssetVideo, Index: index}
}

// checkBounds validates the surface against the post's current asset
// sequences. Indexes are checked at call time, not at record-creation time,
// so a record orphaned by an out-of-band asset removal is unreachable.
func checkBounds(post *models.Post, s Surface) error {
	switch s.Kind {
	case "":
		return nil
	case AssetPhoto:
		if s.Index < 0 || s.Index >= len(post.Photos) {
			return models.NewNotFoundError("photo", s.Index)
		}
	case AssetVideo:
		if s.Index < 0 || s.Index >= len(post.Videos) {
			return models.NewNotFoundError("video", s.Index)
		}
	default:
		return models.NewNotFoundError("asset kind", string(s.Kind))
	}
	return nil
}

// recordFor returns the engagement record addressed by s, materializing the
// sparse map entry on first touch. A missing entry is an empty record.
func recordFor(post *models.Post, s Surface) (*models.EngagementRecord, error) {
	if err := checkBounds(post, s); err != nil {
		return nil, err
	}
	if s.Kind == "" {
		return &post.Likes, nil
	}

	key := models.AssetKey(s.Index)
	switch s.Kind {
	case AssetPhoto:
		if post.PhotoLikes == nil {
			post.PhotoLikes = make(map[string]*models.EngagementRecord)
		}
		if post.PhotoLikes[key] == nil {
			post.PhotoLikes[key] = &models.EngagementRecord{}
		}
		return post.PhotoLikes[key], nil
	default:
		if post.VideoLikes == nil {
			post.VideoLikes = make(map[string]*models.EngagementRecord)
		}
		if post.VideoLikes[key] == nil {
			post.VideoLikes[key] = &models.EngagementRecord{}
		}
		return post.VideoLikes[key], nil
	}
}

// ToggleLike flips identity's like membership on the addressed surface: a
// first toggle adds the identity and increments the count, a repeat toggle
// removes it and decrements. Count and membership always move together, so
// like_count == len(liked_by) holds after every call. Returns the updated
// record.
func ToggleLike(post *models.Post, s Surface, identity string) (*models.EngagementRecord, error) {
	if strings.TrimSpace(identity) == "" {
		return nil, models.NewValidationError("user is required")
	}
	rec, err := recordFor(post, s)
	if err != nil {
		return nil, err
	}

	for i, liker := range rec.LikedBy {
		if liker == identity {
			rec.LikedBy = append(rec.LikedBy[:i], rec.LikedBy[i+1:]...)
			rec.LikeCount--
			if rec.LikeCount < 0 {
				rec.LikeCount = 0
			}
			return rec, nil
		}
	}

	rec.LikedBy = append(rec.LikedBy, identity)
	rec.LikeCount++
	return rec, nil
}

// AppendComment appends a comment to the addressed surface and returns the
// updated sequence. Comments are append-only: no dedup, no reordering.
func AppendComment(post *models.Post, s Surface, comment models.Comment) ([]models.Comment, error) {
	if strings.TrimSpace(comment.Author) == "" || strings.TrimSpace(comment.Text) == "" {
		return nil, models.NewValidationError("comment with author and text required")
	}
	if err := checkBounds(post, s); err != nil {
		return nil, err
	}

	if s.Kind == "" {
		post.Comments = append(post.Comments, comment)
		return post.Comments, nil
	}

	key := models.AssetKey(s.Index)
	switch s.Kind {
	case AssetPhoto:
		if post.PhotoComments == nil {
			post.PhotoComments = make(map[string][]models.Comment)
		}
		post.PhotoComments[key] = append(post.PhotoComments[key], comment)
		return post.PhotoComments[key], nil
	default:
		if post.VideoComments == nil {
			post.VideoComments = make(map[string][]models.Comment)
		}
		post.VideoComments[key] = append(post.VideoComments[key], comment)
		return post.VideoComments[key], nil
	}
}
