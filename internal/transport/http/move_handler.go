package http

import (
	"encoding/json"
	"net/http"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
	"github.com/V205Arduino/slack-ups-and-downs/internal/notify"
)

const (
	reactionRejected = "bangbang"
	reactionMention  = "robot_face"
)

type messageEvent struct {
	SenderID  string `json:"sender_id"`
	Text      string `json:"text"`
	ChannelID string `json:"channel_id"`
	ThreadTS  string `json:"thread_ts"`
}

type winDTO struct {
	Winner   string `json:"winner"`
	UpWins   int    `json:"up_wins"`
	DownWins int    `json:"down_wins"`
	Text     string `json:"text"`
}

type moveResponse struct {
	Handled  bool    `json:"handled"`
	Accepted bool    `json:"accepted"`
	Team     string  `json:"team,omitempty"`
	Counter  int     `json:"counter"`
	Expected int     `json:"expected"`
	Reason   string  `json:"reason,omitempty"`
	Reaction string  `json:"reaction,omitempty"`
	Text     string  `json:"text,omitempty"`
	Win      *winDTO `json:"win,omitempty"`
}

func newMoveResponse(outcome domain.MoveOutcome) moveResponse {
	resp := moveResponse{
		Handled:  true,
		Accepted: outcome.Accepted,
		Team:     string(outcome.Team),
		Counter:  outcome.Counter,
		Expected: outcome.Expected,
		Reason:   string(outcome.Reason),
	}

	switch {
	case outcome.Warning != nil:
		resp.Reaction = reactionRejected
		resp.Text = notify.WarningText(outcome)
	case outcome.Penalty != nil:
		resp.Reaction = reactionRejected
		resp.Text = notify.PenaltyText(outcome)
	}

	if outcome.Win != nil {
		resp.Win = &winDTO{
			Winner:   string(outcome.Win.Winner),
			UpWins:   outcome.Win.UpWins,
			DownWins: outcome.Win.DownWins,
			Text:     notify.WinText(*outcome.Win),
		}
	}

	return resp
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req messageEvent
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondBadRequest(w, r, "BAD_REQUEST", "invalid json body")
		return
	}

	if req.ChannelID != h.channelID || req.ThreadTS != "" {
		h.respondJSON(w, r, http.StatusAccepted, moveResponse{Handled: false})
		return
	}

	if req.SenderID == "" {
		h.respondBadRequest(w, r, "BAD_REQUEST", "missing required 'sender_id' field")
		return
	}

	claimed, err := domain.ParseMove(req.Text)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	outcome, err := h.turnService.SubmitMove(r.Context(), domain.UserID(req.SenderID), claimed)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newMoveResponse(outcome))
}

func (h *Handler) handleMention(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, http.StatusOK, map[string]string{"reaction": reactionMention})
}
