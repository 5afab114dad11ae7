package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PsqlConnectionStrategy func(Config) (*pgxpool.Pool, error)

type PostgresRetrier struct {
	countRetries   int
	wait           time.Duration
	connectionFunc PsqlConnectionStrategy
}

func NewPostgresRetrier(countRetries int, wait time.Duration, connectionFunc PsqlConnectionStrategy) *PostgresRetrier {
	return &PostgresRetrier{
		countRetries:   countRetries,
		wait:           wait,
		connectionFunc: connectionFunc,
	}
}

func (r *PostgresRetrier) newConnection(cfg Config, connectionFunc PsqlConnectionStrategy) (*pgxpool.Pool, error) {
	db, err := connectionFunc(cfg)

	for retries := r.countRetries; err != nil && retries > 0; retries-- {
		time.Sleep(r.wait)
		db, err = connectionFunc(cfg)
	}

	return db, err
}

func NewPsqlConnectionWithRetrier(cfg Config, retrier *PostgresRetrier) (*pgxpool.Pool, error) {
	return retrier.newConnection(cfg, retrier.connectionFunc)
}
