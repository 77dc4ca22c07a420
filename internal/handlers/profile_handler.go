package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/Divya-010704/TripTeller/internal/engagement"
	"github.com/Divya-010704/TripTeller/internal/identity"
	"github.com/Divya-010704/TripTeller/internal/mediastore"
	"github.com/Divya-010704/TripTeller/internal/models"
	"github.com/Divya-010704/TripTeller/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles profile onboarding, profile reads and post
// creation.
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
	store             *engagement.PostStore
	media             mediastore.Store
	resolver          identity.Resolver
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository, store *engagement.PostStore, media mediastore.Store, resolver identity.Resolver) *ProfileHandler {
	return &ProfileHandler{
		profileRepository: profileRepo,
		store:             store,
		media:             media,
		resolver:          resolver,
	}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.POST("/profiles", h.CreateProfile)
	g.GET("/profiles", h.GetProfiles)
	g.GET("/profiles/:id", h.GetProfile)
	g.POST("/profiles/:id/posts", h.CreatePost)
}

// uploadAll pushes every file through the media store, insisting that each
// one declares the wanted media kind. Nothing is uploaded once a single file
// fails the gate.
func (h *ProfileHandler) uploadAll(ctx context.Context, files []*multipart.FileHeader, want mediastore.Kind) ([]string, error) {
	for _, fh := range files {
		kind, ok := mediastore.KindForContentType(fh.Header.Get("Content-Type"))
		if !ok || kind != want {
			return nil, models.NewValidationError(fmt.Sprintf("all uploaded files must be %ss", want))
		}
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		file, err := fh.Open()
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		url, err := h.media.Upload(ctx, file, want)
		file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// CreateProfile creates a profile together with its first post, the trip
// experience. Media is uploaded before anything is persisted, so a rejected
// file leaves no partial profile behind.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	// One profile per normalized email.
	if _, err := h.profileRepository.GetProfileByEmail(ctx, req.Email); err == nil {
		return models.RespondWithError(c, models.NewValidationError("a profile already exists for this email"))
	} else if !models.IsNotFound(err) {
		return models.RespondWithError(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil && err != http.ErrNotMultipart {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart form")
	}

	profilePicURL := ""
	if form != nil {
		if picFiles := form.File["profilePic"]; len(picFiles) > 0 {
			urls, err := h.uploadAll(ctx, picFiles[:1], mediastore.KindImage)
			if err != nil {
				return models.RespondWithError(c, err)
			}
			profilePicURL = urls[0]
		}
	}

	var drafts []models.PostDraft
	if req.Posts != "" {
		if err := json.Unmarshal([]byte(req.Posts), &drafts); err != nil {
			return models.RespondWithError(c, models.NewValidationError("invalid posts data"))
		}
	}
	if len(drafts) == 0 {
		return models.RespondWithError(c, models.NewValidationError("trip experience is required, please fill out trip details"))
	}

	posts := make([]models.Post, 0, len(drafts))
	for idx, draft := range drafts {
		if form != nil {
			photoFiles := form.File[fmt.Sprintf("posts[%d][photos]", idx)]
			if len(photoFiles) > 0 {
				urls, err := h.uploadAll(ctx, photoFiles, mediastore.KindImage)
				if err != nil {
					return models.RespondWithError(c, err)
				}
				draft.Photos = urls
			}
			videoFiles := form.File[fmt.Sprintf("posts[%d][videos]", idx)]
			if len(videoFiles) > 0 {
				urls, err := h.uploadAll(ctx, videoFiles, mediastore.KindVideo)
				if err != nil {
					return models.RespondWithError(c, err)
				}
				draft.Videos = urls
			}
		}
		if idx == 0 {
			if len(draft.Title) < 2 {
				return models.RespondWithError(c, models.NewValidationError("trip experience is required, please fill out trip details"))
			}
		} else {
			// Later posts are media-only.
			draft = models.PostDraft{Photos: draft.Photos, Videos: draft.Videos}
		}
		posts = append(posts, engagement.NewPost(draft))
	}

	profile := &models.Profile{
		Name:          req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Bio:           req.Bio,
		Location:      req.Address,
		ProfilePicURL: profilePicURL,
		Posts:         posts,
	}
	if err := h.profileRepository.CreateProfile(ctx, profile); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(http.StatusCreated, profile)
}

// GetProfiles retrieves all profiles with raw engagement state
func (h *ProfileHandler) GetProfiles(c echo.Context) error {
	profiles, err := h.profileRepository.GetProfiles(c.Request().Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetProfile retrieves a single profile with liked_by sets rendered as
// display names. The stored aggregate keeps raw identities; only the
// response copy is rewritten.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.profileRepository.GetProfileByID(ctx, c.Param("id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	names := h.resolver.ResolveMany(ctx, collectIdentities(profile))
	return c.JSON(http.StatusOK, renderProfile(*profile, names))
}

// CreatePost appends a post to a profile. Accepts a JSON draft or a
// multipart form whose photos/videos files go through the media store first.
func (h *ProfileHandler) CreatePost(c echo.Context) error {
	ctx := c.Request().Context()

	var draft models.PostDraft
	form, err := c.MultipartForm()
	switch {
	case err == nil:
		draft = models.PostDraft{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Destination: c.FormValue("destination"),
			Date:        c.FormValue("date"),
			Budget:      c.FormValue("budget"),
		}
		if photoFiles := form.File["photos"]; len(photoFiles) > 0 {
			urls, err := h.uploadAll(ctx, photoFiles, mediastore.KindImage)
			if err != nil {
				return models.RespondWithError(c, err)
			}
			draft.Photos = urls
		}
		if videoFiles := form.File["videos"]; len(videoFiles) > 0 {
			urls, err := h.uploadAll(ctx, videoFiles, mediastore.KindVideo)
			if err != nil {
				return models.RespondWithError(c, err)
			}
			draft.Videos = urls
		}
	case err == http.ErrNotMultipart:
		if err := c.Bind(&draft); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
		}
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart form")
	}

	post, err := h.store.CreatePost(ctx, c.Param("id"), draft)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(http.StatusCreated, post)
}

// collectIdentities gathers every distinct liker identity in the aggregate
// so one directory query covers the whole response.
func collectIdentities(profile *models.Profile) []string {
	seen := make(map[string]bool)
	var identities []string
	add := func(likedBy []string) {
		for _, id := range likedBy {
			if !seen[id] {
				seen[id] = true
				identities = append(identities, id)
			}
		}
	}
	for i := range profile.Posts {
		post := &profile.Posts[i]
		add(post.Likes.LikedBy)
		for _, rec := range post.PhotoLikes {
			if rec != nil {
				add(rec.LikedBy)
			}
		}
		for _, rec := range post.VideoLikes {
			if rec != nil {
				add(rec.LikedBy)
			}
		}
	}
	return identities
}

// renderRecord projects one engagement record for display. A legacy record
// with members but a zero counter is shown with the membership size.
func renderRecord(rec models.EngagementRecord, names map[string]string) models.EngagementRecord {
	likedBy := make([]string, 0, len(rec.LikedBy))
	for _, id := range rec.LikedBy {
		likedBy = append(likedBy, names[id])
	}
	count := rec.LikeCount
	if count == 0 && len(rec.LikedBy) > 0 {
		count = len(rec.LikedBy)
	}
	return models.EngagementRecord{LikeCount: count, LikedBy: likedBy}
}

func renderRecordMap(records map[string]*models.EngagementRecord, names map[string]string) map[string]*models.EngagementRecord {
	if records == nil {
		return nil
	}
	rendered := make(map[string]*models.EngagementRecord, len(records))
	for key, rec := range records {
		if rec == nil {
			continue
		}
		out := renderRecord(*rec, names)
		rendered[key] = &out
	}
	return rendered
}

// renderProfile returns a display copy of the aggregate with identities
// replaced by names on every surface.
func renderProfile(profile models.Profile, names map[string]string) models.Profile {
	posts := make([]models.Post, len(profile.Posts))
	for i, post := range profile.Posts {
		post.Likes = renderRecord(post.Likes, names)
		post.PhotoLikes = renderRecordMap(post.PhotoLikes, names)
		post.VideoLikes = renderRecordMap(post.VideoLikes, names)
		posts[i] = post
	}
	profile.Posts = posts
	return profile
}
