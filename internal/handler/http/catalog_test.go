package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/service"
	"github.com/akarpov/go-music-library/internal/store"
	"github.com/akarpov/go-music-library/internal/utils"
	"github.com/akarpov/go-music-library/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock CatalogService
// ─────────────────────────────────────────────

// mockCatalogService implements service.CatalogService for unit tests.
type mockCatalogService struct {
	listSongsFn  func(ctx context.Context) ([]models.SongSummary, error)
	searchFn     func(ctx context.Context, query string) ([]models.SongSummary, error)
	getSongFn    func(ctx context.Context, trackID int64) (models.Song, error)
	likeFn       func(ctx context.Context, accountID, trackID int64) error
	likedSongsFn func(ctx context.Context, accountID int64) ([]models.LikedSong, error)
	topGenreFn   func(ctx context.Context, band string) (string, error)
	createSongFn func(ctx context.Context, song models.Song) (models.Song, error)
	updateSongFn func(ctx context.Context, trackID int64, update models.SongUpdate) error
	deleteSongFn func(ctx context.Context, trackID int64) error
}

func (m *mockCatalogService) ListSongs(ctx context.Context) ([]models.SongSummary, error) {
	return m.listSongsFn(ctx)
}

func (m *mockCatalogService) Search(ctx context.Context, query string) ([]models.SongSummary, error) {
	return m.searchFn(ctx, query)
}

func (m *mockCatalogService) GetSong(ctx context.Context, trackID int64) (models.Song, error) {
	return m.getSongFn(ctx, trackID)
}

func (m *mockCatalogService) Like(ctx context.Context, accountID, trackID int64) error {
	return m.likeFn(ctx, accountID, trackID)
}

func (m *mockCatalogService) LikedSongs(ctx context.Context, accountID int64) ([]models.LikedSong, error) {
	return m.likedSongsFn(ctx, accountID)
}

func (m *mockCatalogService) TopGenre(ctx context.Context, band string) (string, error) {
	return m.topGenreFn(ctx, band)
}

func (m *mockCatalogService) CreateSong(ctx context.Context, song models.Song) (models.Song, error) {
	return m.createSongFn(ctx, song)
}

func (m *mockCatalogService) UpdateSong(ctx context.Context, trackID int64, update models.SongUpdate) error {
	return m.updateSongFn(ctx, trackID, update)
}

func (m *mockCatalogService) DeleteSong(ctx context.Context, trackID int64) error {
	return m.deleteSongFn(ctx, trackID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithCatalog(t *testing.T, catalog service.CatalogService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{CatalogService: catalog}, "test-version", logger.Nop())
}

// withSongIDParam attaches a chi route context carrying the {songID}
// URL parameter, standing in for the router when handlers are invoked
// directly.
func withSongIDParam(r *http.Request, songID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("songID", songID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withBandParam(r *http.Request, band string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("band", band)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withAccountID(r *http.Request, accountID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.AccountIDCtxKey, accountID))
}

var summaryFixture = models.SongSummary{
	TrackID:    7,
	TrackName:  "Bohemian Rhapsody",
	ArtistName: "Queen",
	AlbumName:  "A Night at the Opera",
	Genres:     "rock",
}

// ─────────────────────────────────────────────
// listSongs / searchSongs
// ─────────────────────────────────────────────

func TestListSongs_Success(t *testing.T) {
	catalog := &mockCatalogService{
		listSongsFn: func(_ context.Context) ([]models.SongSummary, error) {
			return []models.SongSummary{summaryFixture}, nil
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/songs", nil))
	rec := httptest.NewRecorder()

	h.listSongs(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bohemian Rhapsody")
}

func TestSearchSongs_PassesQueryParam(t *testing.T) {
	var gotQuery string
	catalog := &mockCatalogService{
		searchFn: func(_ context.Context, query string) ([]models.SongSummary, error) {
			gotQuery = query
			return []models.SongSummary{summaryFixture}, nil
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/songs/search?q=queen", nil))
	rec := httptest.NewRecorder()

	h.searchSongs(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "queen", gotQuery)
}

func TestSearchSongs_EmptyResultIsJSONArray(t *testing.T) {
	catalog := &mockCatalogService{
		searchFn: func(_ context.Context, _ string) ([]models.SongSummary, error) {
			return []models.SongSummary{}, nil
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/songs/search?q=", nil))
	rec := httptest.NewRecorder()

	h.searchSongs(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestSearchSongs_TooShortQuery(t *testing.T) {
	catalog := &mockCatalogService{
		searchFn: func(_ context.Context, _ string) ([]models.SongSummary, error) {
			return nil, service.ErrQueryTooShort
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/songs/search?q=q", nil))
	rec := httptest.NewRecorder()

	h.searchSongs(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// getSong
// ─────────────────────────────────────────────

func TestGetSong_Success(t *testing.T) {
	catalog := &mockCatalogService{
		getSongFn: func(_ context.Context, trackID int64) (models.Song, error) {
			return models.Song{TrackID: trackID, TrackName: "Bohemian Rhapsody"}, nil
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/songs/7", nil))
	req = withSongIDParam(req, "7")
	rec := httptest.NewRecorder()

	h.getSong(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"track_id":7`)
}

func TestGetSong_InvalidID(t *testing.T) {
	h := newHandlerWithCatalog(t, &mockCatalogService{})
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/songs/not-a-number", nil))
	req = withSongIDParam(req, "not-a-number")
	rec := httptest.NewRecorder()

	h.getSong(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSong_NotFound(t *testing.T) {
	catalog := &mockCatalogService{
		getSongFn: func(_ context.Context, _ int64) (models.Song, error) {
			return models.Song{}, store.ErrNoSongFound
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/songs/404", nil))
	req = withSongIDParam(req, "404")
	rec := httptest.NewRecorder()

	h.getSong(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// likeSong / likedSongs
// ─────────────────────────────────────────────

func TestLikeSong_Success(t *testing.T) {
	var gotAccountID, gotTrackID int64
	catalog := &mockCatalogService{
		likeFn: func(_ context.Context, accountID, trackID int64) error {
			gotAccountID, gotTrackID = accountID, trackID
			return nil
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	body := jsonBody(t, models.LikeRequest{TrackID: 7})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/songs/like", strings.NewReader(body)))
	req = withAccountID(req, 42)
	rec := httptest.NewRecorder()

	h.likeSong(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(42), gotAccountID)
	assert.Equal(t, int64(7), gotTrackID)
}

func TestLikeSong_NoAccountInContext(t *testing.T) {
	h := newHandlerWithCatalog(t, &mockCatalogService{})
	body := jsonBody(t, models.LikeRequest{TrackID: 7})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/songs/like", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.likeSong(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLikeSong_Duplicate(t *testing.T) {
	catalog := &mockCatalogService{
		likeFn: func(_ context.Context, _, _ int64) error {
			return store.ErrAlreadyLiked
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	body := jsonBody(t, models.LikeRequest{TrackID: 7})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/songs/like", strings.NewReader(body)))
	req = withAccountID(req, 42)
	rec := httptest.NewRecorder()

	h.likeSong(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLikeSong_UnknownFieldRejected(t *testing.T) {
	h := newHandlerWithCatalog(t, &mockCatalogService{})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/songs/like",
		strings.NewReader(`{"track_id":7,"bogus":true}`)))
	req = withAccountID(req, 42)
	rec := httptest.NewRecorder()

	h.likeSong(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLikedSongs_Success(t *testing.T) {
	catalog := &mockCatalogService{
		likedSongsFn: func(_ context.Context, accountID int64) ([]models.LikedSong, error) {
			require.Equal(t, int64(42), accountID)
			return []models.LikedSong{{SongSummary: summaryFixture, Rating: 5}}, nil
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/songs/liked", nil))
	req = withAccountID(req, 42)
	rec := httptest.NewRecorder()

	h.likedSongs(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rating":5`)
}

// ─────────────────────────────────────────────
// topGenre
// ─────────────────────────────────────────────

func TestTopGenre_Success(t *testing.T) {
	catalog := &mockCatalogService{
		topGenreFn: func(_ context.Context, band string) (string, error) {
			require.Equal(t, "high", band)
			return "rock", nil
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/genres/top/high", nil))
	req = withBandParam(req, "high")
	rec := httptest.NewRecorder()

	h.topGenre(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"genre":"rock"`)
}

func TestTopGenre_UnknownBand(t *testing.T) {
	catalog := &mockCatalogService{
		topGenreFn: func(_ context.Context, _ string) (string, error) {
			return "", service.ErrUnknownBand
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/genres/top/bogus", nil))
	req = withBandParam(req, "bogus")
	rec := httptest.NewRecorder()

	h.topGenre(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// addSong / updateSong / deleteSong
// ─────────────────────────────────────────────

func TestAddSong_Success(t *testing.T) {
	catalog := &mockCatalogService{
		createSongFn: func(_ context.Context, song models.Song) (models.Song, error) {
			song.TrackID = 101
			return song, nil
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	body := jsonBody(t, models.Song{TrackName: "New Track", ArtistName: "New Artist"})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/songs/add", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.addSong(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"track_id":101`)
}

func TestAddSong_InvalidData(t *testing.T) {
	catalog := &mockCatalogService{
		createSongFn: func(_ context.Context, _ models.Song) (models.Song, error) {
			return models.Song{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/songs/add", strings.NewReader(`{}`)))
	rec := httptest.NewRecorder()

	h.addSong(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSong_Success(t *testing.T) {
	var gotTrackID int64
	var gotUpdate models.SongUpdate
	catalog := &mockCatalogService{
		updateSongFn: func(_ context.Context, trackID int64, update models.SongUpdate) error {
			gotTrackID, gotUpdate = trackID, update
			return nil
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodPut, "/api/songs/update/7",
		strings.NewReader(`{"title":"Renamed"}`)))
	req = withSongIDParam(req, "7")
	rec := httptest.NewRecorder()

	h.updateSong(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotTrackID)
	require.NotNil(t, gotUpdate.TrackName)
	assert.Equal(t, "Renamed", *gotUpdate.TrackName)
}

func TestUpdateSong_NotFound(t *testing.T) {
	catalog := &mockCatalogService{
		updateSongFn: func(_ context.Context, _ int64, _ models.SongUpdate) error {
			return store.ErrNoSongFound
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodPut, "/api/songs/update/404",
		strings.NewReader(`{"title":"x"}`)))
	req = withSongIDParam(req, "404")
	rec := httptest.NewRecorder()

	h.updateSong(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSong_Success(t *testing.T) {
	var gotTrackID int64
	catalog := &mockCatalogService{
		deleteSongFn: func(_ context.Context, trackID int64) error {
			gotTrackID = trackID
			return nil
		},
	}

	h := newHandlerWithCatalog(t, catalog)
	req := injectNopLogger(httptest.NewRequest(http.MethodDelete, "/api/songs/delete/7", nil))
	req = withSongIDParam(req, "7")
	rec := httptest.NewRecorder()

	h.deleteSong(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotTrackID)
}

func TestDeleteSong_InvalidID(t *testing.T) {
	h := newHandlerWithCatalog(t, &mockCatalogService{})
	req := injectNopLogger(httptest.NewRequest(http.MethodDelete, "/api/songs/delete/oops", nil))
	req = withSongIDParam(req, "oops")
	rec := httptest.NewRecorder()

	h.deleteSong(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
