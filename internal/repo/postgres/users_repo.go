package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/geocoder89/userhub/internal/domain/user"
	"github.com/geocoder89/userhub/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UsersRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewUsersRepo(pool *pgxpool.Pool, prom *observability.Prom) *UsersRepo {
	return &UsersRepo{
		pool: pool,
		prom: prom,
	}
}

func (r *UsersRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

const userColumns = `id, first_name, last_name, title, email, role, hashed_password, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User

	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Title,
		&u.Email,
		&u.Role,
		&u.HashedPassword,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	return u, err
}

func (r *UsersRepo) FindAll(ctx context.Context) ([]user.User, error) {
	var out []user.User

	err := r.observe("users.find_all", func() error {
		rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)

		if err != nil {
			return err
		}

		defer rows.Close()

		out = make([]user.User, 0)

		for rows.Next() {
			u, err := scanUser(rows)

			if err != nil {
				return err
			}

			out = append(out, u)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *UsersRepo) FindByID(ctx context.Context, id int64) (user.User, error) {
	var u user.User

	err := r.observe("users.find_by_id", func() error {
		var err error
		u, err = scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

// Create persists u and returns the stored record with the id the store
// assigned.
func (r *UsersRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	err := r.observe("users.create", func() error {
		return r.pool.QueryRow(ctx,
			`INSERT INTO users (first_name, last_name, title, email, role, hashed_password, created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			 RETURNING id`,
			u.FirstName, u.LastName, u.Title, u.Email, u.Role, u.HashedPassword, u.CreatedAt, u.UpdatedAt,
		).Scan(&u.ID)
	})

	if err != nil {
		return user.User{}, err
	}

	return u, nil
}

// Update applies only the provided fields and refreshes updated_at. The
// UPDATE itself is the existence check: zero matched rows means not found,
// without a read-then-write race.
func (r *UsersRepo) Update(ctx context.Context, id int64, fields user.UpdateFields) (user.User, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	argsPosition := 2

	add := func(column, value string) {
		if value == "" {
			return
		}

		sets = append(sets, fmt.Sprintf("%s = $%d", column, argsPosition))
		args = append(args, value)
		argsPosition++
	}

	add("title", fields.Title)
	add("first_name", fields.FirstName)
	add("last_name", fields.LastName)
	add("email", fields.Email)
	add("role", fields.Role)
	add("hashed_password", fields.HashedPassword)

	query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + userColumns

	var u user.User

	err := r.observe("users.update", func() error {
		var err error
		u, err = scanUser(r.pool.QueryRow(ctx, query, args...))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	var affected int64

	err := r.observe("users.delete", func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)

		if err != nil {
			return err
		}

		affected = tag.RowsAffected()

		return nil
	})

	if err != nil {
		return err
	}

	// if no rows were deleted the id never existed
	if affected == 0 {
		return user.ErrNotFound
	}

	return nil
}
