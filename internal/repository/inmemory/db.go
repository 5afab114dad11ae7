package inmemory

import (
	"sync"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

type InMemoryStorage struct {
	mu    sync.Mutex
	Game  *domain.Game
	Users map[domain.UserID]domain.User
}

// NewStorage returns an empty storage. Pass a game to seed the game row.
func NewStorage(seed *domain.Game) (*InMemoryStorage, error) {
	storage := &InMemoryStorage{
		Users: map[domain.UserID]domain.User{},
	}

	if seed != nil {
		game := cloneGame(*seed)
		storage.Game = &game
	}

	return storage, nil
}

func cloneGame(game domain.Game) domain.Game {
	if game.LastMover != nil {
		lastMover := *game.LastMover
		game.LastMover = &lastMover
	}
	return game
}
