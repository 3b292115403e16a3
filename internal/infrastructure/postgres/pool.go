package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/estoque-analytics/pkg/config"
)

const (
	applicationName = "estoque-analytics"
	// statementTimeout corta agregaciones de kardex que se van de las manos.
	statementTimeout = "30s"
	minPoolConns     = 4
)

// NewPool abre el pool de solo lectura sobre la base del ERP y verifica la conexión.
func NewPool(ctx context.Context, cfg config.DBConfig, maxConns int) (*pgxpool.Pool, error) {
	poolConfig, err := PoolConfig(cfg, maxConns)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// PoolConfig arma la configuración del pool sin conectar.
// Las evaluaciones por lote leen en paralelo: MaxConns acompaña ENGINE_WORKERS.
func PoolConfig(cfg config.DBConfig, maxConns int) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = int32(max(maxConns, minPoolConns))
	poolConfig.MaxConnIdleTime = 10 * time.Minute

	params := poolConfig.ConnConfig.RuntimeParams
	params["application_name"] = applicationName
	params["default_transaction_read_only"] = "on"
	params["statement_timeout"] = statementTimeout

	// NUMERIC -> shopspring/decimal en cada conexión nueva.
	poolConfig.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return poolConfig, nil
}
