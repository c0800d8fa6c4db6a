package db

import (
	"context"
	"log/slog"
	"time"

	"bibliolights/internal/pkg/config"
	"bibliolights/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "parsing database config")
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrapf(err, "opening database %s", cfg.DBName)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrapf(err, "pinging database %s at %s:%s", cfg.DBName, cfg.Host, cfg.Port)
	}

	cleanup := func() {
		slog.Info("closing database pool", "database", cfg.DBName)
		pool.Close()
	}

	return pool, cleanup, nil
}
