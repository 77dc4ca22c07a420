package engagement

import (
	"testing"

	"github.com/Divya-010704/TripTeller/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost(photos, videos int) *models.Post {
	post := &models.Post{
		Likes:    models.EngagementRecord{LikedBy: []string{}},
		Comments: []models.Comment{},
	}
	for i := 0; i < photos; i++ {
		post.Photos = append(post.Photos, "https://cdn.example.com/p.jpg")
	}
	for i := 0; i < videos; i++ {
		post.Videos = append(post.Videos, "https://cdn.example.com/v.mp4")
	}
	return post
}

func TestToggleLikePhotoSequence(t *testing.T) {
	post := newTestPost(3, 0)

	rec, err := ToggleLike(post, PhotoSurface(2), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.LikeCount)
	assert.Equal(t, []string{"a@x.com"}, rec.LikedBy)

	rec, err = ToggleLike(post, PhotoSurface(2), "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.LikeCount)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, rec.LikedBy)

	rec, err = ToggleLike(post, PhotoSurface(2), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.LikeCount)
	assert.Equal(t, []string{"b@x.com"}, rec.LikedBy)
}

func TestToggleLikeDoubleToggleRestoresState(t *testing.T) {
	post := newTestPost(1, 1)
	surfaces := []Surface{PostSurface(), PhotoSurface(0), VideoSurface(0)}

	for _, surface := range surfaces {
		before, err := ToggleLike(post, surface, "seed@x.com")
		require.NoError(t, err)
		beforeCount := before.LikeCount
		beforeLikedBy := append([]string(nil), before.LikedBy...)

		_, err = ToggleLike(post, surface, "flip@x.com")
		require.NoError(t, err)
		after, err := ToggleLike(post, surface, "flip@x.com")
		require.NoError(t, err)

		assert.Equal(t, beforeCount, after.LikeCount)
		assert.Equal(t, beforeLikedBy, after.LikedBy)
	}
}

func TestToggleLikeKeepsCountConsistent(t *testing.T) {
	post := newTestPost(2, 0)
	toggles := []string{"a@x.com", "b@x.com", "a@x.com", "c@x.com", "b@x.com", "b@x.com"}

	for _, who := range toggles {
		rec, err := ToggleLike(post, PhotoSurface(1), who)
		require.NoError(t, err)
		assert.Equal(t, len(rec.LikedBy), rec.LikeCount)
	}
}

func TestToggleLikeClampsUnderflow(t *testing.T) {
	post := newTestPost(1, 0)
	// Corrupt record shape written out-of-band: member present, count zero.
	post.PhotoLikes = map[string]*models.EngagementRecord{
		"0": {LikeCount: 0, LikedBy: []string{"a@x.com"}},
	}

	rec, err := ToggleLike(post, PhotoSurface(0), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 0, rec.LikeCount)
	assert.Empty(t, rec.LikedBy)
}

func TestToggleLikeOutOfBounds(t *testing.T) {
	post := newTestPost(3, 1)

	_, err := ToggleLike(post, PhotoSurface(9), "a@x.com")
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))

	_, err = ToggleLike(post, PhotoSurface(-1), "a@x.com")
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))

	_, err = ToggleLike(post, VideoSurface(1), "a@x.com")
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))

	// Nothing was materialized for the failed targets.
	assert.Empty(t, post.PhotoLikes)
	assert.Empty(t, post.VideoLikes)
}

func TestToggleLikeRequiresIdentity(t *testing.T) {
	post := newTestPost(1, 0)

	_, err := ToggleLike(post, PostSurface(), "  ")
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}

func TestAppendCommentValidation(t *testing.T) {
	post := newTestPost(1, 0)

	_, err := AppendComment(post, PostSurface(), models.Comment{Author: "", Text: "hi"})
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Empty(t, post.Comments)

	_, err = AppendComment(post, PhotoSurface(0), models.Comment{Author: "a@x.com", Text: ""})
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
	assert.Empty(t, post.PhotoComments)
}

func TestAppendCommentKeepsOrder(t *testing.T) {
	post := newTestPost(0, 1)

	first := models.Comment{Author: "a@x.com", Text: "first"}
	second := models.Comment{Author: "b@x.com", Text: "second"}

	comments, err := AppendComment(post, VideoSurface(0), first)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	comments, err = AppendComment(post, VideoSurface(0), second)
	require.NoError(t, err)
	assert.Equal(t, []models.Comment{first, second}, comments)
}

func TestSurfacesAreIndependent(t *testing.T) {
	post := newTestPost(2, 1)

	_, err := ToggleLike(post, PostSurface(), "a@x.com")
	require.NoError(t, err)
	_, err = ToggleLike(post, PhotoSurface(0), "a@x.com")
	require.NoError(t, err)
	_, err = ToggleLike(post, PhotoSurface(1), "b@x.com")
	require.NoError(t, err)

	assert.Equal(t, 1, post.Likes.LikeCount)
	assert.Equal(t, 1, post.PhotoLikes["0"].LikeCount)
	assert.Equal(t, []string{"b@x.com"}, post.PhotoLikes["1"].LikedBy)
	assert.Empty(t, post.VideoLikes)

	_, err = AppendComment(post, PhotoSurface(0), models.Comment{Author: "a@x.com", Text: "nice"})
	require.NoError(t, err)
	assert.Empty(t, post.Comments)
	assert.Len(t, post.PhotoComments["0"], 1)
}
