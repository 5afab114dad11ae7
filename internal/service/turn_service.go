package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

type TurnService struct {
	state       *GameState
	teams       *TeamService
	infractions *InfractionPolicy
	notifier    Notifier
	logger      *slog.Logger
}

func NewTurnService(state *GameState, teams *TeamService, infractions *InfractionPolicy, notifier Notifier, logger *slog.Logger) *TurnService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TurnService{
		state:       state,
		teams:       teams,
		infractions: infractions,
		notifier:    notifier,
		logger:      logger,
	}
}

// SubmitMove validates claimed as the sender's next number. The sender is put
// on a team first if they have never played.
func (s *TurnService) SubmitMove(ctx context.Context, userID domain.UserID, claimed int) (domain.MoveOutcome, error) {
	var (
		outcome domain.MoveOutcome
		user    domain.User
		created bool
	)

	err := s.state.Do(ctx, func(tx *GameTx) error {
		var err error
		user, created, err = s.teams.assign(ctx, tx, userID)
		if err != nil {
			return err
		}

		outcome, err = s.submit(ctx, tx, user, claimed)
		return err
	})
	if err != nil {
		return domain.MoveOutcome{}, err
	}

	if created {
		s.teams.notifyAssigned(ctx, user)
	}

	if outcome.Win != nil {
		s.logger.InfoContext(ctx, "round won",
			"winner", outcome.Win.Winner,
			"up_wins", outcome.Win.UpWins,
			"down_wins", outcome.Win.DownWins,
		)
		if err := s.notifier.Win(ctx, *outcome.Win); err != nil {
			s.logger.WarnContext(ctx, "failed to announce win", "error", err)
		}
	}

	return outcome, nil
}

func (s *TurnService) submit(ctx context.Context, tx *GameTx, user domain.User, claimed int) (domain.MoveOutcome, error) {
	game := tx.Game()
	expected := game.Target(user.Team)

	outcome := domain.MoveOutcome{
		UserID:   user.ID,
		Team:     user.Team,
		Expected: expected,
	}

	switch {
	case game.IsLastMover(user.ID):
		outcome.Reason = domain.ReasonConsecutiveTurn
	case claimed != expected:
		outcome.Reason = domain.ReasonWrongNumber
	default:
		mover := user.ID
		game.Counter = expected
		game.LastMover = &mover

		if winner, won := game.ResolveWin(); won {
			outcome.Win = &domain.Win{Winner: winner, UpWins: game.UpWins, DownWins: game.DownWins}
		}

		if err := tx.RecordMove(ctx, game, user.ID); err != nil {
			return domain.MoveOutcome{}, fmt.Errorf("record move of %s: %w", user.ID, err)
		}

		outcome.Accepted = true
		outcome.Counter = game.Counter

		return outcome, nil
	}

	infraction, err := s.infractions.OnRejection(ctx, tx, user, outcome.Reason)
	if err != nil {
		return domain.MoveOutcome{}, err
	}

	outcome.Warning = infraction.Warning
	outcome.Penalty = infraction.Penalty
	outcome.Win = infraction.Win
	outcome.Counter = tx.Game().Counter

	return outcome, nil
}

// Game returns the current counter and tallies.
func (s *TurnService) Game() domain.Game {
	return s.state.Snapshot()
}
