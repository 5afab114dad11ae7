package inmemory

import (
	"context"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

type GameRepo struct {
	db *InMemoryStorage
}

func NewGameRepo(db *InMemoryStorage) *GameRepo {
	return &GameRepo{
		db: db,
	}
}

func (gr *GameRepo) Game(_ context.Context) (domain.Game, error) {
	gr.db.mu.Lock()
	defer gr.db.mu.Unlock()

	if gr.db.Game == nil {
		return domain.Game{}, domain.ErrNotFound
	}

	return cloneGame(*gr.db.Game), nil
}

func (gr *GameRepo) RegisterMember(_ context.Context, game domain.Game, user domain.User) error {
	gr.db.mu.Lock()
	defer gr.db.mu.Unlock()

	if gr.db.Game == nil {
		return domain.ErrNotFound
	}

	if _, exists := gr.db.Users[user.ID]; exists {
		return domain.ErrUserExists
	}

	gr.db.Users[user.ID] = user
	gr.saveGame(game)

	return nil
}

func (gr *GameRepo) RecordMove(_ context.Context, game domain.Game, moverID domain.UserID) error {
	gr.db.mu.Lock()
	defer gr.db.mu.Unlock()

	if gr.db.Game == nil {
		return domain.ErrNotFound
	}

	mover, exists := gr.db.Users[moverID]
	if !exists {
		return domain.ErrNotFound
	}

	mover.CountsThisMonth++
	gr.db.Users[moverID] = mover
	gr.saveGame(game)

	return nil
}

func (gr *GameRepo) UpdateGame(_ context.Context, game domain.Game) error {
	gr.db.mu.Lock()
	defer gr.db.mu.Unlock()

	if gr.db.Game == nil {
		return domain.ErrNotFound
	}

	gr.saveGame(game)

	return nil
}

func (gr *GameRepo) saveGame(game domain.Game) {
	game = cloneGame(game)
	game.ID = gr.db.Game.ID
	gr.db.Game = &game
}
