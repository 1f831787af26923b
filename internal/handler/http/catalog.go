package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/utils"
	"github.com/akarpov/go-music-library/models"
	"github.com/go-chi/chi/v5"
)

// songIDFromRequest parses the {songID} URL parameter.
func songIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "songID"), 10, 64)
}

func (h *Handler) listSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	songs, err := h.services.CatalogService.ListSongs(ctx)
	if err != nil {
		log.Err(err).Msg("catalog listing failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, songs, http.StatusOK)
}

func (h *Handler) searchSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")

	songs, err := h.services.CatalogService.Search(ctx, query)
	if err != nil {
		log.Err(err).Str("query", query).Msg("catalog search failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, songs, http.StatusOK)
}

func (h *Handler) getSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	trackID, err := songIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid song id")
		http.Error(w, "invalid song id", http.StatusBadRequest)
		return
	}

	song, err := h.services.CatalogService.GetSong(ctx, trackID)
	if err != nil {
		log.Err(err).Int64("track_id", trackID).Msg("song lookup failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, song, http.StatusOK)
}

func (h *Handler) likeSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.LikeRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.Like(ctx, accountID, req.TrackID); err != nil {
		log.Err(err).Int64("track_id", req.TrackID).Msg("liking song failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "song liked"}, http.StatusCreated)
}

func (h *Handler) likedSongs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	songs, err := h.services.CatalogService.LikedSongs(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("account_id", accountID).Msg("liked songs listing failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, songs, http.StatusOK)
}

func (h *Handler) topGenre(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	band := chi.URLParam(r, "band")

	genre, err := h.services.CatalogService.TopGenre(ctx, band)
	if err != nil {
		log.Err(err).Str("band", band).Msg("genre aggregation failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"band": band, "genre": genre}, http.StatusOK)
}

func (h *Handler) addSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var song models.Song
	if err := json.NewDecoder(r.Body).Decode(&song); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CatalogService.CreateSong(ctx, song)
	if err != nil {
		log.Err(err).Str("track_name", song.TrackName).Msg("song creation failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	trackID, err := songIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid song id")
		http.Error(w, "invalid song id", http.StatusBadRequest)
		return
	}

	var update models.SongUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.UpdateSong(ctx, trackID, update); err != nil {
		log.Err(err).Int64("track_id", trackID).Msg("song update failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "song updated"}, http.StatusOK)
}

func (h *Handler) deleteSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	trackID, err := songIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid song id")
		http.Error(w, "invalid song id", http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.DeleteSong(ctx, trackID); err != nil {
		log.Err(err).Int64("track_id", trackID).Msg("song deletion failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "song deleted"}, http.StatusOK)
}
