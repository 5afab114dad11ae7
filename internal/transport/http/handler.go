package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
	"github.com/V205Arduino/slack-ups-and-downs/internal/service"

	"github.com/go-chi/chi/v5/middleware"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

type Handler struct {
	turnService        *service.TurnService
	teamService        *service.TeamService
	leaderboardService *service.LeaderboardService
	channelID          string
	logger             *slog.Logger
}

func NewHandler(ts *service.TurnService, tms *service.TeamService, ls *service.LeaderboardService, channelID string, logger *slog.Logger) *Handler {
	return &Handler{
		turnService:        ts,
		teamService:        tms,
		leaderboardService: ls,
		channelID:          channelID,
		logger:             logger,
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write json response", "error", err)
	}
}

func (h *Handler) respondBadRequest(w http.ResponseWriter, r *http.Request, code, message string) {
	h.respondJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: APIError{Code: code, Message: message}})
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	apiErr := APIError{
		Code:    "INTERNAL_ERROR",
		Message: "unknown error",
	}

	switch {
	case errors.Is(err, domain.ErrMalformedMove):
		status = http.StatusBadRequest
		apiErr = APIError{Code: "MALFORMED_MOVE", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidMention):
		status = http.StatusBadRequest
		apiErr = APIError{Code: "INVALID_USER", Message: "Invalid user"}
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		apiErr = APIError{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrUserExists):
		status = http.StatusConflict
		apiErr = APIError{Code: "USER_EXISTS", Message: err.Error()}
	}

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "http server error", "error", err)
	}

	h.respondJSON(w, r, status, ErrorResponse{Error: apiErr})
}

func NewSlogLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			t1 := time.Now()

			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(t1).Milliseconds(),
				"bytes_written", ww.BytesWritten(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}

		return http.HandlerFunc(fn)
	}
}
