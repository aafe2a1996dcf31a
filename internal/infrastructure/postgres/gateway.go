// Package postgres implementa el gateway clave/valor sobre PostgreSQL, para
// instalaciones que ya tienen una base central (DATABASE_URL definido).
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/todo-barras/internal/infrastructure/storage"
)

// Asegura que Gateway implementa el puerto de storage.
var _ storage.Gateway = (*Gateway)(nil)

// Gateway gateway clave/valor sobre un pool pgx.
type Gateway struct {
	pool *pgxpool.Pool
}

const pgSchema = `
CREATE TABLE IF NOT EXISTS almacen (
    clave TEXT PRIMARY KEY,
    valor BYTEA NOT NULL
);`

// NewGateway crea el pool, verifica la conexión y garantiza el esquema.
func NewGateway(ctx context.Context, databaseURL string) (*Gateway, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MaxConnLifetime = time.Hour
	cfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	return &Gateway{pool: pool}, nil
}

// Get devuelve el valor de la clave, u ok=false si no existe.
func (g *Gateway) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := g.pool.QueryRow(ctx, `SELECT valor FROM almacen WHERE clave = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leer clave %q: %w", key, err)
	}
	return value, true, nil
}

// Put guarda o reemplaza el valor de la clave.
func (g *Gateway) Put(ctx context.Context, key string, value []byte) error {
	_, err := g.pool.Exec(ctx,
		`INSERT INTO almacen (clave, valor) VALUES ($1, $2)
		 ON CONFLICT (clave) DO UPDATE SET valor = EXCLUDED.valor`,
		key, value)
	if err != nil {
		return fmt.Errorf("guardar clave %q: %w", key, err)
	}
	return nil
}

// Close cierra el pool.
func (g *Gateway) Close() error {
	g.pool.Close()
	return nil
}
