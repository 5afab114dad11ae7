package postgres

import (
	"context"
	"errors"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

func (ur *UserRepo) UserByID(ctx context.Context, userID domain.UserID) (domain.User, error) {
	userByIDQuery := `
		SELECT user_id, team, used_grace, counts_this_month
		FROM users
		WHERE user_id = $1
	`

	return scanUser(ur.db.QueryRow(ctx, userByIDQuery, string(userID)))
}

func (ur *UserRepo) MarkGraceUsed(ctx context.Context, userID domain.UserID) (domain.User, error) {
	markGraceQuery := `
		UPDATE users
		SET used_grace = TRUE
		WHERE user_id = $1
		RETURNING user_id, team, used_grace, counts_this_month
	`

	return scanUser(ur.db.QueryRow(ctx, markGraceQuery, string(userID)))
}

func (ur *UserRepo) UsersByMonthlyCount(ctx context.Context) ([]domain.User, error) {
	rankingQuery := `
		SELECT user_id, team, used_grace, counts_this_month
		FROM users
		ORDER BY counts_this_month DESC, user_id ASC
	`

	rows, err := ur.db.Query(ctx, rankingQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (ur *UserRepo) ResetMonthlyCounts(ctx context.Context) error {
	_, err := ur.db.Exec(ctx, `UPDATE users SET counts_this_month = 0 WHERE counts_this_month <> 0`)
	return err
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		user   domain.User
		userID string
		team   string
	)

	err := row.Scan(&userID, &team, &user.UsedGrace, &user.CountsThisMonth)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	user.ID = domain.UserID(userID)
	user.Team, err = domain.ParseTeam(team)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}
