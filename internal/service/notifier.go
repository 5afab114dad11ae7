package service

import (
	"context"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

// Notifier delivers announcements to the chat side. Calls happen after the
// state change they describe is persisted, so a failed delivery is logged and
// never undoes the change.
type Notifier interface {
	TeamAssigned(ctx context.Context, user domain.User) error
	Win(ctx context.Context, win domain.Win) error
	PeriodReset(ctx context.Context, reset domain.PeriodReset) error
}

type Randomizer interface {
	Intn(n int) int
}
