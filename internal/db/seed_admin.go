package db

import (
	"context"
	"errors"
	"time"

	"github.com/geocoder89/userhub/internal/config"
	"github.com/geocoder89/userhub/internal/domain/user"
	"github.com/geocoder89/userhub/internal/security"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureAdminUser seeds one Admin record on boot when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured and no user with that email exists yet.
func EnsureAdminUser(ctx context.Context, pool *pgxpool.Pool, hasher *security.Hasher, cfg config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	// check if the user exists

	var dummy int64

	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, cfg.AdminEmail).Scan(&dummy)

	if err == nil {
		return nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := hasher.Hash(ctx, cfg.AdminPassword)

	if err != nil {
		return err
	}

	now := time.Now().UTC()

	u := user.User{
		FirstName:      cfg.AdminFirst,
		LastName:       cfg.AdminLast,
		Title:          cfg.AdminTitle,
		Email:          cfg.AdminEmail,
		Role:           user.RoleAdmin,
		HashedPassword: hash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (first_name, last_name, title, email, role, hashed_password, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		u.FirstName, u.LastName, u.Title, u.Email, u.Role, u.HashedPassword, u.CreatedAt, u.UpdatedAt,
	)

	return err
}
