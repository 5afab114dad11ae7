package http

import (
	"net/http"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

type leaderboardRowDTO struct {
	Rank   int    `json:"rank"`
	UserID string `json:"user_id"`
	Count  int    `json:"count"`
	Team   string `json:"team"`
}

type leaderboardResponse struct {
	Header    string              `json:"header"`
	Rows      []leaderboardRowDTO `json:"rows"`
	Separator bool                `json:"separator"`
	Requester *leaderboardRowDTO  `json:"requester,omitempty"`
}

type gameResponse struct {
	Counter     int     `json:"counter"`
	LastMover   *string `json:"last_mover"`
	UpWins      int     `json:"up_wins"`
	DownWins    int     `json:"down_wins"`
	UpMembers   int     `json:"up_members"`
	DownMembers int     `json:"down_members"`
}

func newLeaderboardRowDTO(row domain.LeaderboardRow) leaderboardRowDTO {
	return leaderboardRowDTO{
		Rank:   row.Rank,
		UserID: string(row.UserID),
		Count:  row.Count,
		Team:   string(row.Team),
	}
}

func newLeaderboardResponse(board domain.Leaderboard) leaderboardResponse {
	rows := make([]leaderboardRowDTO, len(board.Rows))
	for i, row := range board.Rows {
		rows[i] = newLeaderboardRowDTO(row)
	}

	resp := leaderboardResponse{
		Header: "Top counters this month",
		Rows:   rows,
	}

	if board.Requester != nil {
		requester := newLeaderboardRowDTO(*board.Requester)
		resp.Separator = true
		resp.Requester = &requester
	}

	return resp
}

func newGameResponse(game domain.Game) gameResponse {
	var lastMover *string
	if game.LastMover != nil {
		id := string(*game.LastMover)
		lastMover = &id
	}

	return gameResponse{
		Counter:     game.Counter,
		LastMover:   lastMover,
		UpWins:      game.UpWins,
		DownWins:    game.DownWins,
		UpMembers:   game.UpMembers,
		DownMembers: game.DownMembers,
	}
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		h.respondBadRequest(w, r, "BAD_REQUEST", "missing required 'user_id' query parameter")
		return
	}

	board, err := h.leaderboardService.Query(r.Context(), domain.UserID(userID))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newLeaderboardResponse(board))
}

func (h *Handler) handleGame(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, http.StatusOK, newGameResponse(h.turnService.Game()))
}
