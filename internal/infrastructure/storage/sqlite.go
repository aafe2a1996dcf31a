package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // driver embebido, sin CGO
)

// Asegura que SQLiteGateway implementa Gateway.
var _ Gateway = (*SQLiteGateway)(nil)

// SQLiteGateway gateway clave/valor sobre un archivo SQLite local: el
// análogo del localStorage del navegador para una instalación de un solo
// boliche. Una sola tabla, un registro por clave.
type SQLiteGateway struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS almacen (
    clave TEXT PRIMARY KEY,
    valor BLOB NOT NULL
);`

// NewSQLiteGateway abre (o crea) el archivo y garantiza el esquema.
func NewSQLiteGateway(path string) (*SQLiteGateway, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// el archivo es de un solo proceso; una conexión evita SQLITE_BUSY
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	return &SQLiteGateway{db: db}, nil
}

// Get devuelve el valor de la clave, u ok=false si no existe.
func (g *SQLiteGateway) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := g.db.QueryRowContext(ctx, `SELECT valor FROM almacen WHERE clave = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leer clave %q: %w", key, err)
	}
	return value, true, nil
}

// Put guarda o reemplaza el valor de la clave.
func (g *SQLiteGateway) Put(ctx context.Context, key string, value []byte) error {
	_, err := g.db.ExecContext(ctx,
		`INSERT INTO almacen (clave, valor) VALUES (?, ?)
		 ON CONFLICT (clave) DO UPDATE SET valor = excluded.valor`,
		key, value)
	if err != nil {
		return fmt.Errorf("guardar clave %q: %w", key, err)
	}
	return nil
}

// Close cierra el archivo.
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}
