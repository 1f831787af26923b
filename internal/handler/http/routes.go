package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)

		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/verify-email", h.verifyEmail)
		r.Post("/api/verify-email/resend", h.resendVerification)

		r.Post("/api/admin/login", h.adminLogin)

		r.Get("/api/songs", h.listSongs)
		r.Get("/api/songs/search", h.searchSongs)
		r.Get("/api/songs/{songID}", h.getSong)
		r.Get("/api/songs/{songID}/details", h.songDetails)
		r.Get("/api/genres/top/{band}", h.topGenre)
	})

	// routes for authenticated listeners
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/songs/like", h.likeSong)
		r.Get("/api/songs/liked", h.likedSongs)
		r.Post("/api/reviews", h.submitReview)
	})

	// routes behind the admin gate
	router.Group(func(r chi.Router) {
		r.Use(h.adminAuth)

		r.Get("/api/admin/verify", h.adminVerify)
		r.Post("/api/songs/add", h.addSong)
		r.Put("/api/songs/update/{songID}", h.updateSong)
		r.Delete("/api/songs/delete/{songID}", h.deleteSong)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
