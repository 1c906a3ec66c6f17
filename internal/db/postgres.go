package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type PoolConfig struct {
	DSN      string
	MaxConns int32
	MinConns int32
}

// ConnectPostgres opens the pool, pings it and makes sure the schema exists.
func ConnectPostgres(ctx context.Context, pc PoolConfig, log *zap.Logger) (*pgxpool.Pool, error) {
	if pc.DSN == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(pc.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "parse DATABASE_URL")
	}

	config.MaxConns = pc.MaxConns
	config.MinConns = pc.MinConns
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, errors.Wrap(err, "create pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "postgres connection failed")
	}

	log.Info("connected to postgres",
		zap.Int32("max_conns", pc.MaxConns),
		zap.Int32("min_conns", pc.MinConns),
	)

	if err := InitSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "initialize schema")
	}

	log.Info("schema initialized")
	return pool, nil
}

// menus holds one row per menu; the three JSON columns are owned by
// the menu repository and always hold valid JSON.
const menusTableSQL = `
	CREATE TABLE IF NOT EXISTS menus (
		id BIGINT PRIMARY KEY,
		menus_info TEXT NOT NULL,
		categories TEXT NOT NULL DEFAULT '[{"name":"其他"}]',
		dishes TEXT NOT NULL DEFAULT '[]'
	)
`

// InitSchema creates the menus table if it is missing.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, menusTableSQL)
	return err
}
