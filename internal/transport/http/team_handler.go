package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

type teamCommandRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type teamCommandResponse struct {
	UserID    string `json:"user_id"`
	Team      string `json:"team"`
	Text      string `json:"text"`
	Ephemeral bool   `json:"ephemeral"`
}

type memberJoinedRequest struct {
	UserID string `json:"user_id"`
}

type memberJoinedResponse struct {
	UserID string `json:"user_id"`
	Team   string `json:"team"`
}

func (h *Handler) handleTeamCommand(w http.ResponseWriter, r *http.Request) {
	var req teamCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondBadRequest(w, r, "BAD_REQUEST", "invalid json body")
		return
	}

	if req.UserID == "" {
		h.respondBadRequest(w, r, "BAD_REQUEST", "missing required 'user_id' field")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		team, err := h.teamService.Assign(r.Context(), domain.UserID(req.UserID), false)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		h.respondJSON(w, r, http.StatusOK, teamCommandResponse{
			UserID:    req.UserID,
			Team:      string(team),
			Text:      "You're on team " + string(team) + "!",
			Ephemeral: true,
		})
		return
	}

	mentioned, err := domain.ParseMention(req.Text)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	team, err := h.teamService.Assign(r.Context(), mentioned, true)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, teamCommandResponse{
		UserID:    string(mentioned),
		Team:      string(team),
		Text:      "That person is on team " + string(team) + "!",
		Ephemeral: true,
	})
}

func (h *Handler) handleMemberJoined(w http.ResponseWriter, r *http.Request) {
	var req memberJoinedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondBadRequest(w, r, "BAD_REQUEST", "invalid json body")
		return
	}

	if req.UserID == "" {
		h.respondBadRequest(w, r, "BAD_REQUEST", "missing required 'user_id' field")
		return
	}

	team, err := h.teamService.Assign(r.Context(), domain.UserID(req.UserID), false)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, memberJoinedResponse{
		UserID: req.UserID,
		Team:   string(team),
	})
}
