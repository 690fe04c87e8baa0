// Package userrepo manages repository layer of users.
package userrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/M-107/debts/internal/domain"
	"github.com/M-107/debts/pkg/dbpkg"
	"github.com/M-107/debts/pkg/errorspkg"
)

// RepoPGS facilitates user repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns user RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// CreateQuery inserts into users table.
const CreateQuery = `
INSERT INTO users (
    name
) VALUES (
    $1
) RETURNING id, name, created_at
`

// Create creates the user and then returns it.
//
// A duplicate name is detected on commit via the unique constraint rather
// than checked up front, so two racing inserts cannot both succeed.
func (r *RepoPGS) Create(ctx context.Context, name string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, CreateQuery, name)

	var u domain.User

	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code.Name() == "unique_violation" {
				return u, domain.ErrUserAlreadyExists
			}
		}

		return u, errorspkg.ErrInternal
	}

	return u, nil
}

const getQuery = `
SELECT
	id,
	name,
	created_at
FROM users
WHERE name = $1
`

// Get returns the user with the given name.
func (r *RepoPGS) Get(ctx context.Context, name string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, name)

	var u domain.User

	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return u, domain.ErrUserNotFound
		}

		l.Error().Err(err).Send()

		return u, errorspkg.ErrInternal
	}

	return u, nil
}

const listQuery = `
SELECT
	id,
	name,
	created_at
FROM users
ORDER BY id
`

// List returns all users in insertion order.
func (r *RepoPGS) List(ctx context.Context) ([]domain.User, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	users := []domain.User{}

	for rows.Next() {
		var u domain.User

		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return users, nil
}
