package models

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a single comment on an engagement surface. Author is the
// commenter's account email, never a display name.
type Comment struct {
	Author string `json:"author" bson:"author"`
	Text   string `json:"text" bson:"text"`
}

// EngagementRecord pairs a like counter with the identities behind it.
// LikeCount must equal len(LikedBy) after every ledger mutation; historical
// documents written before likedBy tracking can violate this until repaired.
type EngagementRecord struct {
	LikeCount int      `json:"like_count" bson:"like_count"`
	LikedBy   []string `json:"liked_by" bson:"liked_by"`
}

// Post is a trip post embedded in its Profile document. The first post of a
// profile is the trip experience and carries the trip metadata; later posts
// are media-only. Per-asset engagement is a sparse map keyed by the decimal
// asset index (BSON map keys must be strings, see AssetKey).
type Post struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title,omitempty" bson:"title,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Destination string             `json:"destination,omitempty" bson:"destination,omitempty"`
	Date        string             `json:"date,omitempty" bson:"date,omitempty"`
	Budget      string             `json:"budget,omitempty" bson:"budget,omitempty"`
	Photos      []string           `json:"photos" bson:"photos"`
	Videos      []string           `json:"videos" bson:"videos"`

	Likes    EngagementRecord `json:"likes" bson:"likes"`
	Comments []Comment        `json:"comments" bson:"comments"`

	PhotoLikes    map[string]*EngagementRecord `json:"photo_likes,omitempty" bson:"photo_likes,omitempty"`
	PhotoComments map[string][]Comment         `json:"photo_comments,omitempty" bson:"photo_comments,omitempty"`
	VideoLikes    map[string]*EngagementRecord `json:"video_likes,omitempty" bson:"video_likes,omitempty"`
	VideoComments map[string][]Comment         `json:"video_comments,omitempty" bson:"video_comments,omitempty"`
}

// AssetKey converts an asset index to the map key used by the per-asset
// engagement maps.
func AssetKey(index int) string {
	return strconv.Itoa(index)
}

// Profile is the aggregate root: one per account email, owning its posts.
// Version backs the optimistic check in ReplaceProfile; it never leaves the
// persistence layer.
type Profile struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	Phone         string             `json:"phone" bson:"phone"`
	Bio           string             `json:"bio" bson:"bio"`
	Location      string             `json:"location,omitempty" bson:"location,omitempty"`
	ProfilePicURL string             `json:"profile_pic_url,omitempty" bson:"profile_pic_url,omitempty"`
	Posts         []Post             `json:"posts" bson:"posts"`
	Version       int64              `json:"-" bson:"version"`
}

// PostDraft is the pre-persistence shape of a post: trip metadata plus media
// URLs already resolved through the media store.
type PostDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Destination string   `json:"destination"`
	Date        string   `json:"date"`
	Budget      string   `json:"budget"`
	Photos      []string `json:"photos"`
	Videos      []string `json:"videos"`
}

// CreateProfileRequest defines the onboarding form fields. Posts is the
// JSON-encoded draft array; the media files ride alongside it in the
// multipart body.
type CreateProfileRequest struct {
	FullName string `form:"fullName" json:"fullName" validate:"required,min=2"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Phone    string `form:"phone" json:"phone" validate:"required,min=8"`
	Bio      string `form:"bio" json:"bio" validate:"required,min=5"`
	Address  string `form:"address" json:"address"`
	Posts    string `form:"posts" json:"posts"`
}

// ToggleLikeRequest identifies who is toggling a like. User is the acting
// account email.
type ToggleLikeRequest struct {
	User string `json:"user"`
}

// AddCommentRequest wraps the comment payload the way clients send it.
type AddCommentRequest struct {
	Comment Comment `json:"comment"`
}

// EngagementResponse is returned by every like toggle: the current count and
// the likers resolved to display names.
type EngagementResponse struct {
	Likes   int      `json:"likes"`
	LikedBy []string `json:"liked_by"`
}

// CommentsResponse returns the full updated comment sequence for a surface.
type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}
