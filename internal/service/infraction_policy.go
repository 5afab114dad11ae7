package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

type Infraction struct {
	Warning *domain.Warning
	Penalty *domain.Penalty
	Win     *domain.Win
}

type InfractionPolicy struct {
	logger *slog.Logger
}

func NewInfractionPolicy(logger *slog.Logger) *InfractionPolicy {
	if logger == nil {
		logger = slog.Default()
	}

	return &InfractionPolicy{
		logger: logger,
	}
}

// OnRejection warns a first-time offender and punishes everyone else. Grace is
// granted once per user, ever.
//
// A punishment that pushes the counter to or past a winning score ends the
// round in favour of the team it was pushed towards.
func (p *InfractionPolicy) OnRejection(ctx context.Context, tx *GameTx, user domain.User, reason domain.RejectReason) (Infraction, error) {
	current, err := tx.User(ctx, user.ID)
	if err != nil {
		return Infraction{}, fmt.Errorf("lookup offender %s: %w", user.ID, err)
	}

	if !current.UsedGrace {
		if _, err := tx.MarkGraceUsed(ctx, user.ID); err != nil {
			return Infraction{}, fmt.Errorf("use grace of %s: %w", user.ID, err)
		}

		p.logger.InfoContext(ctx, "offender warned", "user_id", user.ID, "reason", reason)

		return Infraction{Warning: &domain.Warning{Reason: reason}}, nil
	}

	game := tx.Game()
	game.Counter -= domain.PenaltyShift * current.Team.Direction()

	var win *domain.Win
	if winner, won := game.ResolveWin(); won {
		win = &domain.Win{Winner: winner, UpWins: game.UpWins, DownWins: game.DownWins}
	}

	if err := tx.UpdateGame(ctx, game); err != nil {
		return Infraction{}, fmt.Errorf("apply penalty: %w", err)
	}

	p.logger.InfoContext(ctx, "offender punished",
		"user_id", user.ID,
		"team", current.Team,
		"reason", reason,
		"counter", game.Counter,
	)

	return Infraction{
		Penalty: &domain.Penalty{
			Reason:     reason,
			NewCounter: game.Counter,
			NextLower:  game.Counter - 1,
			NextUpper:  game.Counter + 1,
		},
		Win: win,
	}, nil
}
