package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"

	"github.com/robfig/cron/v3"
)

type PeriodResetter interface {
	ResetPeriod(ctx context.Context, now time.Time) (domain.PeriodReset, error)
}

// MonthlyReset fires the leaderboard period reset on a cron schedule.
type MonthlyReset struct {
	cron     *cron.Cron
	resetter PeriodResetter
	timeout  time.Duration
	logger   *slog.Logger
}

func NewMonthlyReset(schedule string, loc *time.Location, resetter PeriodResetter, logger *slog.Logger) (*MonthlyReset, error) {
	m := &MonthlyReset{
		cron:     cron.New(cron.WithLocation(loc)),
		resetter: resetter,
		timeout:  30 * time.Second,
		logger:   logger,
	}

	if _, err := m.cron.AddFunc(schedule, m.run); err != nil {
		return nil, fmt.Errorf("parse reset schedule %q: %w", schedule, err)
	}

	return m, nil
}

func (m *MonthlyReset) Start() {
	m.cron.Start()
}

// Stop prevents new runs and waits for a running reset to finish or ctx to end.
func (m *MonthlyReset) Stop(ctx context.Context) {
	select {
	case <-m.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (m *MonthlyReset) Next() time.Time {
	entries := m.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Schedule.Next(time.Now().In(m.cron.Location()))
}

func (m *MonthlyReset) run() {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	now := time.Now().In(m.cron.Location())
	reset, err := m.resetter.ResetPeriod(ctx, now)
	if err != nil {
		m.logger.ErrorContext(ctx, "leaderboard reset failed", "error", err)
		return
	}

	m.logger.InfoContext(ctx, "leaderboard reset", "period", reset.Period)
}
