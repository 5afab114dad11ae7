package notify

import (
	"context"
	"log/slog"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

// LogNotifier only logs announcements. It is used when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) TeamAssigned(ctx context.Context, user domain.User) error {
	n.logger.InfoContext(ctx, "announcement", "kind", "team_assigned", "user_id", user.ID, "text", TeamText(user.Team))
	return nil
}

func (n *LogNotifier) Win(ctx context.Context, win domain.Win) error {
	n.logger.InfoContext(ctx, "announcement", "kind", "win", "text", WinText(win))
	return nil
}

func (n *LogNotifier) PeriodReset(ctx context.Context, reset domain.PeriodReset) error {
	n.logger.InfoContext(ctx, "announcement", "kind", "period_reset", "text", PeriodResetText(reset))
	return nil
}
