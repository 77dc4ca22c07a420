package engagement

import (
	"context"
	"strings"

	"github.com/Divya-010704/TripTeller/internal/models"
	"github.com/Divya-010704/TripTeller/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mutation is applied to a located post inside a load-mutate-save cycle.
// Implementations mutate the post in place; returning an error aborts the
// cycle without persisting.
type Mutation func(post *models.Post) error

// PostStore owns the ordered post sequence of a profile and mediates every
// engagement mutation through the ledger. Persistence is whole-aggregate:
// the profile document is loaded, mutated in memory and written back as one
// unit, so readers never observe a partially applied mutation.
type PostStore struct {
	profiles repositories.ProfileRepository
}

// NewPostStore creates a new PostStore
func NewPostStore(profiles repositories.ProfileRepository) *PostStore {
	return &PostStore{profiles: profiles}
}

// findPost locates a post by ID within the loaded aggregate.
func findPost(profile *models.Profile, postID string) (*models.Post, error) {
	for i := range profile.Posts {
		if profile.Posts[i].ID.Hex() == postID {
			return &profile.Posts[i], nil
		}
	}
	return nil, models.NewNotFoundError("post", postID)
}

// CreatePost appends a post to the profile and persists the aggregate. The
// first post is the trip experience and must carry a title; every later post
// is media-only and must not. Engagement state always starts empty.
func (s *PostStore) CreatePost(ctx context.Context, profileID string, draft models.PostDraft) (*models.Post, error) {
	title := strings.TrimSpace(draft.Title)

	profile, err := s.profiles.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if len(profile.Posts) == 0 {
		if len(title) < 2 {
			return nil, models.NewValidationError("trip experience is required, please fill out trip details")
		}
	} else if title != "" {
		return nil, models.NewValidationError("only the first post carries trip details")
	}

	post := NewPost(draft)
	profile.Posts = append(profile.Posts, post)
	if err := s.profiles.ReplaceProfile(ctx, profile); err != nil {
		return nil, err
	}
	return &profile.Posts[len(profile.Posts)-1], nil
}

// NewPost builds a post from a draft with all three engagement surfaces
// empty. Embedded posts get their stable ID here; the driver does not assign
// subdocument IDs on insert.
func NewPost(draft models.PostDraft) models.Post {
	photos := draft.Photos
	if photos == nil {
		photos = []string{}
	}
	videos := draft.Videos
	if videos == nil {
		videos = []string{}
	}
	return models.Post{
		ID:          primitive.NewObjectID(),
		Title:       strings.TrimSpace(draft.Title),
		Description: draft.Description,
		Destination: draft.Destination,
		Date:        draft.Date,
		Budget:      draft.Budget,
		Photos:      photos,
		Videos:      videos,
		Likes:       models.EngagementRecord{LikedBy: []string{}},
		Comments:    []models.Comment{},
	}
}

// LoadPost returns one post of a profile.
func (s *PostStore) LoadPost(ctx context.Context, profileID, postID string) (*models.Post, error) {
	profile, err := s.profiles.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return findPost(profile, postID)
}

// MutateEngagement runs mutate against one post under a read-modify-write
// cycle on the owning profile and persists the whole aggregate. The
// versioned save is the only atomicity boundary: there is no lock between
// load and save, so a concurrent writer can win the race. A lost version
// check is retried once by reloading and reapplying the mutation; a second
// conflict is returned to the caller.
func (s *PostStore) MutateEngagement(ctx context.Context, profileID, postID string, mutate Mutation) (*models.Post, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		profile, err := s.profiles.GetProfileByID(ctx, profileID)
		if err != nil {
			return nil, err
		}
		post, err := findPost(profile, postID)
		if err != nil {
			return nil, err
		}
		if err := mutate(post); err != nil {
			return nil, err
		}
		if err := s.profiles.ReplaceProfile(ctx, profile); err != nil {
			if models.IsConflict(err) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return post, nil
	}
	return nil, lastErr
}
