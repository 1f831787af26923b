package http

import (
	"net/http"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/utils"
	"github.com/akarpov/go-music-library/models"
)

func (h *Handler) songDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	trackID, err := songIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid song id")
		http.Error(w, "invalid song id", http.StatusBadRequest)
		return
	}

	details, err := h.services.ReviewService.SongDetails(ctx, trackID)
	if err != nil {
		log.Err(err).Int64("track_id", trackID).Msg("song details lookup failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ReviewRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ReviewService.SubmitReview(ctx, req); err != nil {
		log.Err(err).Int64("track_id", req.TrackID).Msg("review submission failed")
		httpError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "review submitted"}, http.StatusCreated)
}
