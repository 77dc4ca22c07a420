package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Divya-010704/TripTeller/internal/engagement"
	"github.com/Divya-010704/TripTeller/internal/mediastore"
	"github.com/Divya-010704/TripTeller/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMedia struct {
	uploads int
}

func (f *fakeMedia) Upload(ctx context.Context, content io.Reader, kind mediastore.Kind) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://media.example.com/%s/%d", kind, f.uploads), nil
}

func newProfileTestServer(repo *fakeProfiles) *echo.Echo {
	store := engagement.NewPostStore(repo)
	handler := NewProfileHandler(repo, store, &fakeMedia{}, fakeResolver{})

	e := echo.New()
	handler.RegisterProfileRoutes(e.Group("/api"))
	return e
}

func doForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func onboardingForm(email string) url.Values {
	return url.Values{
		"fullName": {"Asha Nair"},
		"email":    {email},
		"phone":    {"9876543210"},
		"bio":      {"Backpacker and beach person"},
		"posts":    {`[{"title":"Goa getaway","destination":"Goa","photos":["p0.jpg"]}]`},
	}
}

func TestCreateProfileOnboarding(t *testing.T) {
	repo := &fakeProfiles{}
	e := newProfileTestServer(repo)

	rec := doForm(e, "/api/profiles", onboardingForm("asha@x.com"))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, repo.profile)
	require.Len(t, repo.profile.Posts, 1)
	post := repo.profile.Posts[0]
	assert.Equal(t, "Goa getaway", post.Title)
	assert.False(t, post.ID.IsZero())
	assert.Equal(t, 0, post.Likes.LikeCount)
	assert.Empty(t, post.Comments)
	assert.Empty(t, post.PhotoLikes)
}

func TestCreateProfileRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeProfiles{profile: &models.Profile{Email: "asha@x.com"}}
	e := newProfileTestServer(repo)

	rec := doForm(e, "/api/profiles", onboardingForm("asha@x.com"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProfileRequiresTripExperience(t *testing.T) {
	repo := &fakeProfiles{}
	e := newProfileTestServer(repo)

	form := onboardingForm("asha@x.com")
	form.Set("posts", `[{"title":"","photos":["p0.jpg"]}]`)
	rec := doForm(e, "/api/profiles", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	form.Del("posts")
	rec = doForm(e, "/api/profiles", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, repo.profile)
}

func TestCreateProfileValidatesFields(t *testing.T) {
	repo := &fakeProfiles{}
	e := newProfileTestServer(repo)

	form := onboardingForm("not-an-email")
	rec := doForm(e, "/api/profiles", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	form = onboardingForm("asha@x.com")
	form.Set("phone", "123")
	rec = doForm(e, "/api/profiles", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfileResolvesLikerNames(t *testing.T) {
	repo := &fakeProfiles{}
	e := newProfileTestServer(repo)

	post := engagement.NewPost(models.PostDraft{Title: "Goa getaway", Photos: []string{"p0.jpg"}})
	post.Likes = models.EngagementRecord{LikeCount: 1, LikedBy: []string{"b@x.com"}}
	post.PhotoLikes = map[string]*models.EngagementRecord{
		"0": {LikeCount: 2, LikedBy: []string{"a@x.com", "b@x.com"}},
	}
	require.NoError(t, repo.CreateProfile(context.Background(), &models.Profile{
		Name:  "Asha",
		Email: "asha@x.com",
		Posts: []models.Post{post},
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/"+repo.profile.ID.Hex(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Name of b@x.com"}, resp.Posts[0].Likes.LikedBy)
	assert.Equal(t, []string{"Name of a@x.com", "Name of b@x.com"}, resp.Posts[0].PhotoLikes["0"].LikedBy)

	// The stored aggregate keeps raw identities.
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, repo.profile.Posts[0].PhotoLikes["0"].LikedBy)
}

func TestGetProfileNotFound(t *testing.T) {
	repo := &fakeProfiles{}
	e := newProfileTestServer(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/ffffffffffffffffffffffff", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePostAppendsMediaOnlyPost(t *testing.T) {
	repo := &fakeProfiles{}
	e := newProfileTestServer(repo)

	first := engagement.NewPost(models.PostDraft{Title: "Goa getaway"})
	require.NoError(t, repo.CreateProfile(context.Background(), &models.Profile{
		Name:  "Asha",
		Email: "asha@x.com",
		Posts: []models.Post{first},
	}))

	body := `{"photos":["https://cdn.example.com/new.jpg"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/profiles/"+repo.profile.ID.Hex()+"/posts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.profile.Posts, 2)
	assert.Empty(t, repo.profile.Posts[1].Title)

	// A later post with trip metadata is rejected.
	body = `{"title":"Second trip"}`
	req = httptest.NewRequest(http.MethodPost, "/api/profiles/"+repo.profile.ID.Hex()+"/posts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
