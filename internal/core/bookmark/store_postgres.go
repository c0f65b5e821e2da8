// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package bookmark

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linkhive/api/internal/platform/apperr"
	"github.com/linkhive/api/internal/platform/dberr"
	"github.com/linkhive/api/pkg/pagination"
	"github.com/linkhive/api/pkg/textnorm"
)

// PostgresRepository implements Repository backed by the core.bookmark table.
//
// The searchtext column is recomputed on every write from the folded title,
// link, and description, so reads never pay the normalization cost.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a bookmark repository on top of a pgx pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// searchText builds the folded search column value for a bookmark.
func searchText(bookmark *Bookmark) string {
	parts := []string{bookmark.Title, bookmark.Link}
	if bookmark.Description != nil {
		parts = append(parts, *bookmark.Description)
	}
	return textnorm.Fold(strings.Join(parts, " "))
}

// escapeLike neutralizes LIKE wildcards in user-supplied search input.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

/*
ListByOwner returns one page of a user's bookmarks, newest first, with the
total row count for pagination metadata.

Parameters:
  - context: context.Context
  - userID: int64
  - search: string (already folded by the service; empty means no filter)
  - params: pagination.Params

Returns:
  - []*Bookmark: The page of results
  - int: Total matching rows
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListByOwner(context context.Context, userID int64, search string, params pagination.Params) ([]*Bookmark, int, error) {
	where := `WHERE userid = $1`
	args := []interface{}{userID}
	if search != "" {
		where += ` AND searchtext LIKE '%' || $2 || '%'`
		args = append(args, escapeLike(search))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM core.bookmark ` + where
	if err := repository.pool.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count bookmarks")
	}

	query := `
		SELECT id, userid, title, link, description, createdat, updatedat
		FROM core.bookmark ` + where + `
		ORDER BY createdat DESC, id DESC
		LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list bookmarks")
	}
	defer rows.Close()

	bookmarks := []*Bookmark{}
	for rows.Next() {
		bookmark := &Bookmark{}
		if err := rows.Scan(
			&bookmark.ID,
			&bookmark.UserID,
			&bookmark.Title,
			&bookmark.Link,
			&bookmark.Description,
			&bookmark.CreatedAt,
			&bookmark.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan bookmark")
		}
		bookmarks = append(bookmarks, bookmark)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate bookmarks")
	}

	return bookmarks, total, nil
}

/*
FindByID returns a bookmark by ID regardless of owner. The service layer
decides how an ownership mismatch is presented.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Bookmark: Hydrated entity
  - error: apperr.NotFound or database retrieval failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Bookmark, error) {
	query := `
		SELECT id, userid, title, link, description, createdat, updatedat
		FROM core.bookmark
		WHERE id = $1`

	bookmark := &Bookmark{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&bookmark.ID,
		&bookmark.UserID,
		&bookmark.Title,
		&bookmark.Link,
		&bookmark.Description,
		&bookmark.CreatedAt,
		&bookmark.UpdatedAt,
	)
	if err != nil {
		if dberr.IsNoRows(err) {
			return nil, apperr.NotFound("Bookmark")
		}
		return nil, dberr.Wrap(err, "find bookmark by id")
	}

	return bookmark, nil
}

/*
Create inserts a new bookmark and fills the entity's ID and timestamps.

Parameters:
  - context: context.Context
  - bookmark: *Bookmark

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, bookmark *Bookmark) error {
	query := `
		INSERT INTO core.bookmark (userid, title, link, description, searchtext)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, createdat, updatedat`

	err := repository.pool.QueryRow(context, query,
		bookmark.UserID,
		bookmark.Title,
		bookmark.Link,
		bookmark.Description,
		searchText(bookmark),
	).Scan(&bookmark.ID, &bookmark.CreatedAt, &bookmark.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create bookmark")
	}

	return nil
}

/*
Update persists a bookmark's content fields and refreshes its search column.

Parameters:
  - context: context.Context
  - bookmark: *Bookmark

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresRepository) Update(context context.Context, bookmark *Bookmark) error {
	query := `
		UPDATE core.bookmark
		SET title = $2, link = $3, description = $4, searchtext = $5, updatedat = NOW()
		WHERE id = $1
		RETURNING updatedat`

	err := repository.pool.QueryRow(context, query,
		bookmark.ID,
		bookmark.Title,
		bookmark.Link,
		bookmark.Description,
		searchText(bookmark),
	).Scan(&bookmark.UpdatedAt)
	if err != nil {
		if dberr.IsNoRows(err) {
			return apperr.NotFound("Bookmark")
		}
		return dberr.Wrap(err, "update bookmark")
	}

	return nil
}

/*
Delete removes a bookmark permanently.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	tag, err := repository.pool.Exec(context, `DELETE FROM core.bookmark WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete bookmark")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Bookmark")
	}

	return nil
}

// placeholder renders the n-th positional SQL parameter.
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
