package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen. Se ejecuta al arrancar la aplicación.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS products (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		unit       TEXT NOT NULL,
		supplier   TEXT NOT NULL,
		stock      BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS purchases (
		id         UUID PRIMARY KEY,
		product_id UUID NOT NULL REFERENCES products(id),
		quantity   BIGINT NOT NULL CHECK (quantity > 0),
		price      NUMERIC(14,2) NOT NULL CHECK (price >= 0),
		timestamp  TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_purchases_product_id ON purchases(product_id);
	CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);`

	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SeedSampleProduct inserta un producto de ejemplo si el catálogo está vacío
// (mismo dato de arranque que usaba la versión anterior del sistema).
func SeedSampleProduct(ctx context.Context, pool *pgxpool.Pool) error {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := pool.Exec(ctx,
		`INSERT INTO products (id, name, unit, supplier, stock) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New().String(), "コーヒー豆", "kg", "業務スーパー", int64(5),
	)
	if err != nil {
		return fmt.Errorf("seed sample product: %w", err)
	}
	return nil
}
