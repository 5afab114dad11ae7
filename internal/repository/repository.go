package repository

import (
	"context"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

// GameRepository persists the single game row. Every method that takes a
// domain.Game writes all of its mutable fields together with the user change
// it describes, in one transaction.
type GameRepository interface {
	Game(ctx context.Context) (domain.Game, error)
	RegisterMember(ctx context.Context, game domain.Game, user domain.User) error
	RecordMove(ctx context.Context, game domain.Game, moverID domain.UserID) error
	UpdateGame(ctx context.Context, game domain.Game) error
}

type UserRepository interface {
	UserByID(ctx context.Context, userID domain.UserID) (domain.User, error)
	MarkGraceUsed(ctx context.Context, userID domain.UserID) (domain.User, error)
	// UsersByMonthlyCount lists every user, most counts first, ties by id.
	UsersByMonthlyCount(ctx context.Context) ([]domain.User, error)
	ResetMonthlyCounts(ctx context.Context) error
}
