package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
	"github.com/V205Arduino/slack-ups-and-downs/internal/repository/inmemory"
	"github.com/V205Arduino/slack-ups-and-downs/internal/service"

	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store unreachable")

type testEnviroment struct {
	ctx      context.Context
	storage  *inmemory.InMemoryStorage
	gameRepo *failingGameRepo
	notifier *recordingNotifier

	state              *service.GameState
	teamService        *service.TeamService
	turnService        *service.TurnService
	leaderboardService *service.LeaderboardService
}

// setup seeds the storage with game and users, keeping member tallies in line
// with the seeded users.
func setup(t *testing.T, game domain.Game, users ...domain.User) testEnviroment {
	t.Helper()
	return setupWithRandomizer(t, fixedRandomizer(0), game, users...)
}

func setupWithRandomizer(t *testing.T, randomizer service.Randomizer, game domain.Game, users ...domain.User) testEnviroment {
	t.Helper()

	for _, user := range users {
		game.AddMember(user.Team)
	}

	storage, err := inmemory.NewStorage(&game)
	require.NoError(t, err)
	for _, user := range users {
		storage.Users[user.ID] = user
	}

	gameRepo := &failingGameRepo{GameRepo: inmemory.NewGameRepo(storage)}
	userRepo := inmemory.NewUserRepo(storage)
	notifier := &recordingNotifier{}

	ctx := context.Background()
	state, err := service.NewGameState(ctx, gameRepo, userRepo)
	require.NoError(t, err)

	teamService := service.NewTeamService(state, notifier, randomizer, nil)
	infractions := service.NewInfractionPolicy(nil)

	return testEnviroment{
		ctx:                ctx,
		storage:            storage,
		gameRepo:           gameRepo,
		notifier:           notifier,
		state:              state,
		teamService:        teamService,
		turnService:        service.NewTurnService(state, teamService, infractions, notifier, nil),
		leaderboardService: service.NewLeaderboardService(state, notifier, nil),
	}
}

func userPtr(id domain.UserID) *domain.UserID {
	return &id
}

type fixedRandomizer int

func (r fixedRandomizer) Intn(n int) int {
	return int(r) % n
}

type failingGameRepo struct {
	*inmemory.GameRepo
	failWrites bool
}

func (r *failingGameRepo) RegisterMember(ctx context.Context, game domain.Game, user domain.User) error {
	if r.failWrites {
		return errStoreDown
	}
	return r.GameRepo.RegisterMember(ctx, game, user)
}

func (r *failingGameRepo) RecordMove(ctx context.Context, game domain.Game, moverID domain.UserID) error {
	if r.failWrites {
		return errStoreDown
	}
	return r.GameRepo.RecordMove(ctx, game, moverID)
}

func (r *failingGameRepo) UpdateGame(ctx context.Context, game domain.Game) error {
	if r.failWrites {
		return errStoreDown
	}
	return r.GameRepo.UpdateGame(ctx, game)
}

type recordingNotifier struct {
	mu       sync.Mutex
	assigned []domain.User
	wins     []domain.Win
	resets   []domain.PeriodReset
	err      error
}

func (n *recordingNotifier) TeamAssigned(_ context.Context, user domain.User) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.assigned = append(n.assigned, user)
	return n.err
}

func (n *recordingNotifier) Win(_ context.Context, win domain.Win) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.wins = append(n.wins, win)
	return n.err
}

func (n *recordingNotifier) PeriodReset(_ context.Context, reset domain.PeriodReset) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resets = append(n.resets, reset)
	return n.err
}
