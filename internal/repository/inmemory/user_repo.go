package inmemory

import (
	"cmp"
	"context"
	"slices"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"
)

type UserRepo struct {
	db *InMemoryStorage
}

func NewUserRepo(db *InMemoryStorage) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

func (ur *UserRepo) UserByID(_ context.Context, userID domain.UserID) (domain.User, error) {
	ur.db.mu.Lock()
	defer ur.db.mu.Unlock()

	user, exists := ur.db.Users[userID]
	if !exists {
		return domain.User{}, domain.ErrNotFound
	}

	return user, nil
}

func (ur *UserRepo) MarkGraceUsed(_ context.Context, userID domain.UserID) (domain.User, error) {
	ur.db.mu.Lock()
	defer ur.db.mu.Unlock()

	user, exists := ur.db.Users[userID]
	if !exists {
		return domain.User{}, domain.ErrNotFound
	}

	user.UsedGrace = true
	ur.db.Users[userID] = user

	return user, nil
}

func (ur *UserRepo) UsersByMonthlyCount(_ context.Context) ([]domain.User, error) {
	ur.db.mu.Lock()
	defer ur.db.mu.Unlock()

	users := make([]domain.User, 0, len(ur.db.Users))
	for _, user := range ur.db.Users {
		users = append(users, user)
	}

	slices.SortFunc(users, func(a, b domain.User) int {
		if c := cmp.Compare(b.CountsThisMonth, a.CountsThisMonth); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return users, nil
}

func (ur *UserRepo) ResetMonthlyCounts(_ context.Context) error {
	ur.db.mu.Lock()
	defer ur.db.mu.Unlock()

	for id, user := range ur.db.Users {
		user.CountsThisMonth = 0
		ur.db.Users[id] = user
	}

	return nil
}
