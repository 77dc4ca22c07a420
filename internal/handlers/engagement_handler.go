package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Divya-010704/TripTeller/internal/engagement"
	"github.com/Divya-010704/TripTeller/internal/identity"
	"github.com/Divya-010704/TripTeller/internal/models"
	"github.com/labstack/echo/v4"
)

// EngagementHandler handles like toggles and comment appends on every
// engagement surface of a post, plus the fix-likes repair trigger.
type EngagementHandler struct {
	store    *engagement.PostStore
	repairer *engagement.Repairer
	resolver identity.Resolver
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(store *engagement.PostStore, repairer *engagement.Repairer, resolver identity.Resolver) *EngagementHandler {
	return &EngagementHandler{
		store:    store,
		repairer: repairer,
		resolver: resolver,
	}
}

// RegisterEngagementRoutes registers engagement-related routes
func (h *EngagementHandler) RegisterEngagementRoutes(g *echo.Group) {
	g.POST("/profiles/migrate/fix-likes", h.FixLikes)
	g.POST("/profiles/:id/posts/:post_id/like", h.TogglePostLike)
	g.POST("/profiles/:id/posts/:post_id/comment", h.CommentOnPost)
	g.POST("/profiles/:id/posts/:post_id/photos/:index/like", h.TogglePhotoLike)
	g.POST("/profiles/:id/posts/:post_id/photos/:index/comment", h.CommentOnPhoto)
	g.POST("/profiles/:id/posts/:post_id/videos/:index/like", h.ToggleVideoLike)
	g.POST("/profiles/:id/posts/:post_id/videos/:index/comment", h.CommentOnVideo)
}

// actingIdentity prefers the authenticated identity placed in the context by
// the JWT middleware, falling back to the one named in the request body.
func actingIdentity(c echo.Context, bodyUser string) string {
	if id, ok := c.Get("identity").(string); ok && id != "" {
		return id
	}
	return bodyUser
}

// assetIndex parses the asset index path parameter. A non-numeric index can
// never address an asset, so it reports the same NotFound as an
// out-of-bounds one.
func assetIndex(c echo.Context, kind engagement.AssetKind) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, models.NewNotFoundError(string(kind), c.Param("index"))
	}
	return index, nil
}

// toggleLike runs one like toggle against the addressed surface and responds
// with the current count and resolved liker names.
func (h *EngagementHandler) toggleLike(c echo.Context, surface engagement.Surface) error {
	var req models.ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	actor := actingIdentity(c, req.User)

	var record models.EngagementRecord
	_, err := h.store.MutateEngagement(c.Request().Context(), c.Param("id"), c.Param("post_id"), func(post *models.Post) error {
		updated, err := engagement.ToggleLike(post, surface, actor)
		if err != nil {
			return err
		}
		record = *updated
		return nil
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(http.StatusOK, models.EngagementResponse{
		Likes:   record.LikeCount,
		LikedBy: identity.Names(c.Request().Context(), h.resolver, record.LikedBy),
	})
}

// appendComment appends one comment to the addressed surface and responds
// with the full updated sequence.
func (h *EngagementHandler) appendComment(c echo.Context, surface engagement.Surface) error {
	var req models.AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req.Comment.Author = actingIdentity(c, req.Comment.Author)

	var comments []models.Comment
	_, err := h.store.MutateEngagement(c.Request().Context(), c.Param("id"), c.Param("post_id"), func(post *models.Post) error {
		updated, err := engagement.AppendComment(post, surface, req.Comment)
		if err != nil {
			return err
		}
		comments = updated
		return nil
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(http.StatusOK, models.CommentsResponse{Comments: comments})
}

// TogglePostLike toggles the acting identity's like on the post itself
func (h *EngagementHandler) TogglePostLike(c echo.Context) error {
	return h.toggleLike(c, engagement.PostSurface())
}

// CommentOnPost appends a comment to the post itself
func (h *EngagementHandler) CommentOnPost(c echo.Context) error {
	return h.appendComment(c, engagement.PostSurface())
}

// TogglePhotoLike toggles the acting identity's like on one photo
func (h *EngagementHandler) TogglePhotoLike(c echo.Context) error {
	index, err := assetIndex(c, engagement.AssetPhoto)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return h.toggleLike(c, engagement.PhotoSurface(index))
}

// CommentOnPhoto appends a comment to one photo
func (h *EngagementHandler) CommentOnPhoto(c echo.Context) error {
	index, err := assetIndex(c, engagement.AssetPhoto)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return h.appendComment(c, engagement.PhotoSurface(index))
}

// ToggleVideoLike toggles the acting identity's like on one video
func (h *EngagementHandler) ToggleVideoLike(c echo.Context) error {
	index, err := assetIndex(c, engagement.AssetVideo)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return h.toggleLike(c, engagement.VideoSurface(index))
}

// CommentOnVideo appends a comment to one video
func (h *EngagementHandler) CommentOnVideo(c echo.Context) error {
	index, err := assetIndex(c, engagement.AssetVideo)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return h.appendComment(c, engagement.VideoSurface(index))
}

// FixLikes runs the fix-likes repair batch over all profiles
func (h *EngagementHandler) FixLikes(c echo.Context) error {
	report, err := h.repairer.Run(c.Request().Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Migration complete. Updated %d profiles.", report.ProfilesRepaired),
		"report":  report,
	})
}
