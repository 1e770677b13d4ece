package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	title TEXT NOT NULL,
	email TEXT NOT NULL,
	role TEXT NOT NULL,
	hashed_password TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// EnsureSchema creates the users table when it does not exist yet. Not a
// migration system; the table shape is stable.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, usersSchema)

	return err
}
