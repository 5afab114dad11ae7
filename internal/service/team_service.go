package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

type TeamService struct {
	state      *GameState
	notifier   Notifier
	randomizer Randomizer
	logger     *slog.Logger
}

// NewTeamService uses a time-seeded generator when randomizer is nil.
func NewTeamService(state *GameState, notifier Notifier, randomizer Randomizer, logger *slog.Logger) *TeamService {
	if randomizer == nil {
		randomizer = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TeamService{
		state:      state,
		notifier:   notifier,
		randomizer: randomizer,
		logger:     logger,
	}
}

// Assign returns the user's team, putting a new user on the smaller team
// first. notify controls whether a newly assigned user is told about it.
func (s *TeamService) Assign(ctx context.Context, userID domain.UserID, notify bool) (domain.Team, error) {
	var (
		user    domain.User
		created bool
	)

	err := s.state.Do(ctx, func(tx *GameTx) error {
		var err error
		user, created, err = s.assign(ctx, tx, userID)
		return err
	})
	if err != nil {
		return "", err
	}

	if created && notify {
		s.notifyAssigned(ctx, user)
	}

	return user.Team, nil
}

func (s *TeamService) assign(ctx context.Context, tx *GameTx, userID domain.UserID) (domain.User, bool, error) {
	user, err := tx.User(ctx, userID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, false, fmt.Errorf("lookup user %s: %w", userID, err)
	}

	game := tx.Game()
	team := s.chooseTeam(game)
	game.AddMember(team)

	user = domain.User{
		ID:   userID,
		Team: team,
	}

	if err := tx.RegisterMember(ctx, game, user); err != nil {
		return domain.User{}, false, fmt.Errorf("register user %s: %w", userID, err)
	}

	s.logger.InfoContext(ctx, "user assigned to team",
		"user_id", userID,
		"team", team,
		"up_members", game.UpMembers,
		"down_members", game.DownMembers,
	)

	return user, true, nil
}

func (s *TeamService) chooseTeam(game domain.Game) domain.Team {
	switch {
	case game.UpMembers > game.DownMembers:
		return domain.TeamDown
	case game.UpMembers < game.DownMembers:
		return domain.TeamUp
	}

	if s.randomizer.Intn(2) == 0 {
		return domain.TeamUp
	}
	return domain.TeamDown
}

func (s *TeamService) notifyAssigned(ctx context.Context, user domain.User) {
	if err := s.notifier.TeamAssigned(ctx, user); err != nil {
		s.logger.WarnContext(ctx, "failed to announce team assignment", "user_id", user.ID, "error", err)
	}
}
