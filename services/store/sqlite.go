package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"sjsage522/formatworker/internal/enrich"
	"sjsage522/formatworker/logger"
	"sjsage522/formatworker/pkg/errors"

	_ "modernc.org/sqlite"
)

const createProductsTable = `CREATE TABLE IF NOT EXISTS productos (
	supermercado TEXT NOT NULL,
	codigo_producto TEXT NOT NULL,
	marca TEXT,
	nombre TEXT,
	categoria TEXT,
	precio_actual TEXT,
	precio_anterior TEXT,
	precio_por_unidad TEXT,
	promocion TEXT,
	patrocinado INTEGER,
	imagen_url TEXT,
	producto_url TEXT,
	fecha_extraccion TEXT,
	formato TEXT,
	categoria_formato TEXT,
	cantidad_total REAL,
	unidad_estandar TEXT,
	tipo_unidad TEXT,
	marca_detectada TEXT,
	PRIMARY KEY (supermercado, codigo_producto)
)`

var productIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_productos_marca ON productos(marca_detectada)`,
	`CREATE INDEX IF NOT EXISTS idx_productos_categoria ON productos(categoria)`,
	`CREATE INDEX IF NOT EXISTS idx_productos_categoria_formato ON productos(categoria_formato)`,
}

const upsertProduct = `INSERT INTO productos (
	supermercado, codigo_producto, marca, nombre, categoria, precio_actual, precio_anterior,
	precio_por_unidad, promocion, patrocinado, imagen_url, producto_url, fecha_extraccion,
	formato, categoria_formato, cantidad_total, unidad_estandar, tipo_unidad, marca_detectada
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (supermercado, codigo_producto) DO UPDATE SET
	marca = excluded.marca,
	nombre = excluded.nombre,
	categoria = excluded.categoria,
	precio_actual = excluded.precio_actual,
	precio_anterior = excluded.precio_anterior,
	precio_por_unidad = excluded.precio_por_unidad,
	promocion = excluded.promocion,
	patrocinado = excluded.patrocinado,
	imagen_url = excluded.imagen_url,
	producto_url = excluded.producto_url,
	fecha_extraccion = excluded.fecha_extraccion,
	formato = excluded.formato,
	categoria_formato = excluded.categoria_formato,
	cantidad_total = excluded.cantidad_total,
	unidad_estandar = excluded.unidad_estandar,
	tipo_unidad = excluded.tipo_unidad,
	marca_detectada = excluded.marca_detectada`

// SQLiteSink upserts records into the productos table, keyed by
// supermarket and product code
type SQLiteSink struct {
	db   *sql.DB
	path string
}

// NewSQLiteSink opens (or creates) the database at path and prepares the schema
func NewSQLiteSink(ctx context.Context, path string) (*SQLiteSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.NewStore("sqlite", "create directory", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewStore("sqlite", "open "+path, err)
	}
	// A single connection serialises writers
	db.SetMaxOpenConns(1)

	for _, stmt := range append([]string{createProductsTable}, productIndexes...) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, errors.NewStore("sqlite", "create schema", err)
		}
	}
	return &SQLiteSink{db: db, path: path}, nil
}

// DB exposes the underlying database for queries
func (s *SQLiteSink) DB() *sql.DB {
	return s.db
}

// Write upserts the batch in one transaction. Records without a code are skipped.
func (s *SQLiteSink) Write(ctx context.Context, records []enrich.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStore("sqlite", "begin", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertProduct)
	if err != nil {
		return errors.NewStore("sqlite", "prepare", err)
	}
	defer stmt.Close()

	written := 0
	for _, r := range records {
		if r.Code == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, sqliteArgs(r)...); err != nil {
			return errors.NewStore("sqlite", "upsert "+r.Code, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStore("sqlite", "commit", err)
	}

	logger.ForStore().Info().
		Str("path", s.path).
		Int("rows", written).
		Msg("SQLite upserted")
	return nil
}

// Close closes the database
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

func sqliteArgs(r enrich.Record) []any {
	values := row(r)
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}

	// patrocinado and cantidad_total are typed columns
	sponsored := 0
	if r.Sponsored {
		sponsored = 1
	}
	args[9] = sponsored
	if r.Quantity == nil {
		args[15] = nil
	} else {
		args[15] = *r.Quantity
	}
	return args
}
