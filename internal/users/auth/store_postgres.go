// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linkhive/api/internal/platform/apperr"
	"github.com/linkhive/api/internal/platform/dberr"
)

// PostgresUserRepository implements UserRepository backed by the
// users.account table. Soft-deleted rows are invisible to every query.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a user repository on top of a pgx pool.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
FindByID returns the account with the given ID.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *User: Hydrated entity
  - error: apperr.NotFound or database retrieval failures
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	query := `
		SELECT id, email, passwordhash, firstname, lastname, createdat, updatedat
		FROM users.account
		WHERE id = $1 AND deletedat IS NULL`

	user := &User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if dberr.IsNoRows(err) {
			return nil, apperr.NotFound("User")
		}
		return nil, dberr.Wrap(err, "find user by id")
	}

	return user, nil
}

/*
FindByEmail returns the account with the given email. Callers are expected
to normalize the email first; the query matches exactly.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated entity
  - error: apperr.NotFound or database retrieval failures
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, passwordhash, firstname, lastname, createdat, updatedat
		FROM users.account
		WHERE email = $1 AND deletedat IS NULL`

	user := &User{}
	err := repository.pool.QueryRow(context, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if dberr.IsNoRows(err) {
			return nil, apperr.NotFound("User")
		}
		return nil, dberr.Wrap(err, "find user by email")
	}

	return user, nil
}

/*
Create inserts a new account and fills the entity's ID and timestamps from
the database. The unique index on email arbitrates concurrent signups; a
losing insert comes back as apperr.Conflict.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: apperr.Conflict or persistence failures
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := `
		INSERT INTO users.account (email, passwordhash, firstname, lastname)
		VALUES ($1, $2, $3, $4)
		RETURNING id, createdat, updatedat`

	err := repository.pool.QueryRow(context, query,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create user")
	}

	return nil
}

/*
Update persists the mutable profile fields of an existing account.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: apperr.Conflict (email taken) or persistence failures
*/
func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	query := `
		UPDATE users.account
		SET email = $2, firstname = $3, lastname = $4, updatedat = NOW()
		WHERE id = $1 AND deletedat IS NULL
		RETURNING updatedat`

	err := repository.pool.QueryRow(context, query,
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if dberr.IsNoRows(err) {
			return apperr.NotFound("User")
		}
		return dberr.Wrap(err, "update user")
	}

	return nil
}

/*
UpdatePassword replaces the stored password hash for a user.

Parameters:
  - context: context.Context
  - userID: int64
  - newHash: string

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID int64, newHash string) error {
	query := `
		UPDATE users.account
		SET passwordhash = $2, updatedat = NOW()
		WHERE id = $1 AND deletedat IS NULL`

	tag, err := repository.pool.Exec(context, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update password")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

/*
SoftDelete marks an account as deleted. The row stays for auditability but
no query sees it afterwards.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresUserRepository) SoftDelete(context context.Context, id int64) error {
	query := `
		UPDATE users.account
		SET deletedat = NOW(), updatedat = NOW()
		WHERE id = $1 AND deletedat IS NULL`

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete user")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}
