package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewSlogLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Route("/events", func(r chi.Router) {
		r.Post("/message", h.handleMessage)
		r.Post("/mention", h.handleMention)
		r.Post("/member-joined", h.handleMemberJoined)
	})

	r.Post("/commands/team", h.handleTeamCommand)

	r.Get("/leaderboard", h.handleLeaderboard)
	r.Get("/game", h.handleGame)

	r.Get("/health", h.handleHealthCheck)

	return r
}

func (h *Handler) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
