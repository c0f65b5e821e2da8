// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

package bookmark

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhive/api/internal/platform/apperr"
	"github.com/linkhive/api/pkg/pagination"
	"github.com/linkhive/api/pkg/textnorm"
)

// fakeRepository is an in-memory Repository that mirrors the Postgres
// store's semantics, including folded-substring search.
type fakeRepository struct {
	byID   map[int64]*Bookmark
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[int64]*Bookmark{}, nextID: 1}
}

func (repository *fakeRepository) searchable(bookmark *Bookmark) string {
	parts := []string{bookmark.Title, bookmark.Link}
	if bookmark.Description != nil {
		parts = append(parts, *bookmark.Description)
	}
	return textnorm.Fold(strings.Join(parts, " "))
}

func (repository *fakeRepository) ListByOwner(_ context.Context, userID int64, search string, params pagination.Params) ([]*Bookmark, int, error) {
	matches := []*Bookmark{}
	for _, bookmark := range repository.byID {
		if bookmark.UserID != userID {
			continue
		}
		if search != "" && !strings.Contains(repository.searchable(bookmark), search) {
			continue
		}
		matches = append(matches, bookmark)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID > matches[j].ID })

	total := len(matches)
	offset := params.Offset()
	if offset > total {
		offset = total
	}
	end := offset + params.Limit
	if end > total {
		end = total
	}
	return matches[offset:end], total, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64) (*Bookmark, error) {
	if bookmark, ok := repository.byID[id]; ok {
		return bookmark, nil
	}
	return nil, apperr.NotFound("Bookmark")
}

func (repository *fakeRepository) Create(_ context.Context, bookmark *Bookmark) error {
	bookmark.ID = repository.nextID
	repository.nextID++
	bookmark.CreatedAt = time.Now()
	bookmark.UpdatedAt = bookmark.CreatedAt
	repository.byID[bookmark.ID] = bookmark
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, bookmark *Bookmark) error {
	if _, ok := repository.byID[bookmark.ID]; !ok {
		return apperr.NotFound("Bookmark")
	}
	bookmark.UpdatedAt = time.Now()
	repository.byID[bookmark.ID] = bookmark
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id int64) error {
	if _, ok := repository.byID[id]; !ok {
		return apperr.NotFound("Bookmark")
	}
	delete(repository.byID, id)
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repository := newFakeRepository()
	return NewService(repository), repository
}

func defaultParams() pagination.Params {
	return pagination.Params{Page: 1, Limit: pagination.DefaultLimit}
}

const (
	ownerID    = int64(1)
	strangerID = int64(2)
)

func TestCreateAndGet(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), ownerID, CreateInput{
		Title: "Go blog",
		Link:  "https://go.dev/blog",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := service.Get(context.Background(), ownerID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go blog", fetched.Title)
	assert.Equal(t, ownerID, fetched.UserID)
}

func TestGetHidesForeignBookmarks(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), ownerID, CreateInput{
		Title: "Private",
		Link:  "https://example.com",
	})
	require.NoError(t, err)

	_, err = service.Get(context.Background(), strangerID, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err),
		"a foreign bookmark must be indistinguishable from a missing one on reads")
}

func TestUpdateOwnership(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), ownerID, CreateInput{
		Title: "Old title",
		Link:  "https://example.com",
	})
	require.NoError(t, err)

	newTitle := "New title"
	_, err = service.Update(context.Background(), strangerID, created.ID, UpdateInput{Title: &newTitle})
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.CodeForbidden, appError.Code)

	updated, err := service.Update(context.Background(), ownerID, created.ID, UpdateInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "https://example.com", updated.Link, "absent fields stay untouched")
}

func TestDeleteOwnership(t *testing.T) {
	service, repository := newTestService()

	created, err := service.Create(context.Background(), ownerID, CreateInput{
		Title: "Doomed",
		Link:  "https://example.com",
	})
	require.NoError(t, err)

	err = service.Delete(context.Background(), strangerID, created.ID)
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.CodeForbidden, appError.Code)
	assert.Len(t, repository.byID, 1, "a denied delete must not remove the row")

	require.NoError(t, service.Delete(context.Background(), ownerID, created.ID))
	assert.Empty(t, repository.byID)

	err = service.Delete(context.Background(), ownerID, created.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListScopedToOwner(t *testing.T) {
	service, _ := newTestService()

	for _, input := range []struct {
		owner int64
		title string
	}{
		{ownerID, "Mine one"},
		{ownerID, "Mine two"},
		{strangerID, "Theirs"},
	} {
		_, err := service.Create(context.Background(), input.owner, CreateInput{
			Title: input.title,
			Link:  "https://example.com",
		})
		require.NoError(t, err)
	}

	bookmarks, meta, err := service.List(context.Background(), ownerID, "", defaultParams())
	require.NoError(t, err)
	assert.Len(t, bookmarks, 2)
	assert.Equal(t, 2, meta.Total)
	for _, bookmark := range bookmarks {
		assert.Equal(t, ownerID, bookmark.UserID)
	}
}

func TestListSearchFoldsQuery(t *testing.T) {
	service, _ := newTestService()

	description := "Croissants and more"
	_, err := service.Create(context.Background(), ownerID, CreateInput{
		Title:       "Café Liste",
		Link:        "https://cafes.example.com",
		Description: &description,
	})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), ownerID, CreateInput{
		Title: "Go articles",
		Link:  "https://go.dev",
	})
	require.NoError(t, err)

	tests := []struct {
		query   string
		matches int
	}{
		{"cafe", 1},
		{"CAFÉ", 1},
		{"croissant", 1},
		{"go", 1},
		{"nothing", 0},
		{"", 2},
	}
	for _, test := range tests {
		bookmarks, meta, err := service.List(context.Background(), ownerID, test.query, defaultParams())
		require.NoError(t, err, test.query)
		assert.Len(t, bookmarks, test.matches, "query %q", test.query)
		assert.Equal(t, test.matches, meta.Total, "query %q", test.query)
	}
}

func TestListPagination(t *testing.T) {
	service, _ := newTestService()

	for i := 0; i < 25; i++ {
		_, err := service.Create(context.Background(), ownerID, CreateInput{
			Title: "Entry",
			Link:  "https://example.com",
		})
		require.NoError(t, err)
	}

	pageOne, meta, err := service.List(context.Background(), ownerID, "", pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, pageOne, 10)
	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	pageThree, _, err := service.List(context.Background(), ownerID, "", pagination.Params{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, pageThree, 5)
}
