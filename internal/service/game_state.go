package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
	"github.com/V205Arduino/slack-ups-and-downs/internal/repository"
)

// GameState owns the single game aggregate. Every operation that reads or
// changes the game or a user row runs inside Do, one at a time, and the cached
// game is only replaced after the matching durable write succeeded.
type GameState struct {
	mu       sync.Mutex
	game     domain.Game
	gameRepo repository.GameRepository
	userRepo repository.UserRepository
}

func NewGameState(ctx context.Context, gr repository.GameRepository, ur repository.UserRepository) (*GameState, error) {
	game, err := gr.Game(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrGameNotSeeded
		}
		return nil, fmt.Errorf("load game: %w", err)
	}

	return &GameState{
		game:     game,
		gameRepo: gr,
		userRepo: ur,
	}, nil
}

// Snapshot returns the game as of the last committed operation.
func (s *GameState) Snapshot() domain.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game
}

func (s *GameState) Do(ctx context.Context, fn func(tx *GameTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(&GameTx{state: s})
}

// GameTx is the exclusive handle passed to Do callbacks. It must not be kept
// after the callback returns.
type GameTx struct {
	state *GameState
}

func (tx *GameTx) Game() domain.Game {
	return tx.state.game
}

func (tx *GameTx) User(ctx context.Context, userID domain.UserID) (domain.User, error) {
	return tx.state.userRepo.UserByID(ctx, userID)
}

func (tx *GameTx) UsersByMonthlyCount(ctx context.Context) ([]domain.User, error) {
	return tx.state.userRepo.UsersByMonthlyCount(ctx)
}

func (tx *GameTx) RegisterMember(ctx context.Context, game domain.Game, user domain.User) error {
	if err := tx.state.gameRepo.RegisterMember(ctx, game, user); err != nil {
		return err
	}

	tx.state.game = game
	return nil
}

func (tx *GameTx) RecordMove(ctx context.Context, game domain.Game, moverID domain.UserID) error {
	if err := tx.state.gameRepo.RecordMove(ctx, game, moverID); err != nil {
		return err
	}

	tx.state.game = game
	return nil
}

func (tx *GameTx) UpdateGame(ctx context.Context, game domain.Game) error {
	if err := tx.state.gameRepo.UpdateGame(ctx, game); err != nil {
		return err
	}

	tx.state.game = game
	return nil
}

func (tx *GameTx) MarkGraceUsed(ctx context.Context, userID domain.UserID) (domain.User, error) {
	return tx.state.userRepo.MarkGraceUsed(ctx, userID)
}

func (tx *GameTx) ResetMonthlyCounts(ctx context.Context) error {
	return tx.state.userRepo.ResetMonthlyCounts(ctx)
}
