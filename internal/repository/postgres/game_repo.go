package postgres

import (
	"context"
	"errors"

	"github.com/V205Arduino/slack-ups-and-downs/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GameRepo struct {
	db *pgxpool.Pool
}

func NewGameRepo(db *pgxpool.Pool) *GameRepo {
	return &GameRepo{
		db: db,
	}
}

const updateGameQuery = `
	UPDATE games
	SET
		counter = $2,
		last_mover = $3,
		up_wins = $4,
		down_wins = $5,
		up_members = $6,
		down_members = $7
	WHERE id = $1
`

func (gr *GameRepo) Game(ctx context.Context) (domain.Game, error) {
	gameQuery := `
		SELECT id, counter, last_mover, up_wins, down_wins, up_members, down_members
		FROM games
		ORDER BY id
		LIMIT 1
	`

	var (
		game      domain.Game
		lastMover *string
	)
	err := gr.db.QueryRow(ctx, gameQuery).Scan(
		&game.ID,
		&game.Counter,
		&lastMover,
		&game.UpWins,
		&game.DownWins,
		&game.UpMembers,
		&game.DownMembers,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Game{}, domain.ErrNotFound
		}
		return domain.Game{}, err
	}

	if lastMover != nil {
		id := domain.UserID(*lastMover)
		game.LastMover = &id
	}

	return game, nil
}

func (gr *GameRepo) RegisterMember(ctx context.Context, game domain.Game, user domain.User) error {
	tx, err := gr.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	createUserQuery := `
		INSERT INTO users (user_id, team, used_grace, counts_this_month)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.Exec(ctx, createUserQuery, string(user.ID), string(user.Team), user.UsedGrace, user.CountsThisMonth)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrUserExists
		}
		return err
	}

	if err := updateGame(ctx, tx, game); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (gr *GameRepo) RecordMove(ctx context.Context, game domain.Game, moverID domain.UserID) error {
	tx, err := gr.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	countQuery := `
		UPDATE users
		SET counts_this_month = counts_this_month + 1
		WHERE user_id = $1
	`
	tag, err := tx.Exec(ctx, countQuery, string(moverID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := updateGame(ctx, tx, game); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (gr *GameRepo) UpdateGame(ctx context.Context, game domain.Game) error {
	return updateGame(ctx, gr.db, game)
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func updateGame(ctx context.Context, ex execer, game domain.Game) error {
	var lastMover *string
	if game.LastMover != nil {
		id := string(*game.LastMover)
		lastMover = &id
	}

	tag, err := ex.Exec(ctx, updateGameQuery,
		game.ID,
		game.Counter,
		lastMover,
		game.UpWins,
		game.DownWins,
		game.UpMembers,
		game.DownMembers,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
