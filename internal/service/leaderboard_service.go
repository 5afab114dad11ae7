package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

type LeaderboardService struct {
	state    *GameState
	notifier Notifier
	logger   *slog.Logger
}

func NewLeaderboardService(state *GameState, notifier Notifier, logger *slog.Logger) *LeaderboardService {
	if logger == nil {
		logger = slog.Default()
	}

	return &LeaderboardService{
		state:    state,
		notifier: notifier,
		logger:   logger,
	}
}

// Query returns the top counters of the month. A known requester outside the
// top rows gets their own ranked row appended.
func (s *LeaderboardService) Query(ctx context.Context, requester domain.UserID) (domain.Leaderboard, error) {
	var users []domain.User

	err := s.state.Do(ctx, func(tx *GameTx) error {
		var err error
		users, err = tx.UsersByMonthlyCount(ctx)
		return err
	})
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("rank users: %w", err)
	}

	return buildLeaderboard(users, requester), nil
}

func buildLeaderboard(ranked []domain.User, requester domain.UserID) domain.Leaderboard {
	board := domain.Leaderboard{
		Rows: make([]domain.LeaderboardRow, 0, min(len(ranked), domain.LeaderboardSize)),
	}

	for i, user := range ranked {
		row := domain.LeaderboardRow{
			Rank:   i + 1,
			UserID: user.ID,
			Count:  user.CountsThisMonth,
			Team:   user.Team,
		}

		if i < domain.LeaderboardSize {
			board.Rows = append(board.Rows, row)
			continue
		}

		if user.ID == requester {
			board.Requester = &row
			break
		}
	}

	return board
}

// ResetPeriod zeroes every monthly count and announces the period starting at
// now. Grace is left alone.
func (s *LeaderboardService) ResetPeriod(ctx context.Context, now time.Time) (domain.PeriodReset, error) {
	err := s.state.Do(ctx, func(tx *GameTx) error {
		return tx.ResetMonthlyCounts(ctx)
	})
	if err != nil {
		return domain.PeriodReset{}, fmt.Errorf("reset monthly counts: %w", err)
	}

	reset := domain.PeriodReset{
		Period: domain.PeriodName(now),
		At:     now,
	}

	s.logger.InfoContext(ctx, "leaderboard period reset", "period", reset.Period)

	if err := s.notifier.PeriodReset(ctx, reset); err != nil {
		s.logger.WarnContext(ctx, "failed to announce period reset", "error", err)
	}

	return reset, nil
}
