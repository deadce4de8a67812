// AngelaMos | 2026
// repository_test.go

package project

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/testutil"
)

func newProject() *Project {
	return &Project{
		Title:        "Portfolio",
		Summary:      "Personal site",
		Description:  "A single page portfolio",
		Achievements: core.StringList{"a", "b"},
		Tags:         core.StringList{"x"},
		Color:        "primary",
	}
}

func TestRepository_CreateThenList(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	p := newProject()
	require.NoError(t, repo.Create(ctx, p))
	assert.Positive(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	got := projects[0]
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Portfolio", got.Title)
	assert.Equal(t, core.StringList{"a", "b"}, got.Achievements)
	assert.Equal(t, core.StringList{"x"}, got.Tags)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))
}

func TestRepository_ListEmptyIsNotNil(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))

	projects, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestRepository_NilListsStoredAsEmpty(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	p := newProject()
	p.Achievements = nil
	p.Tags = nil
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StringList{}, got.Achievements)
	assert.Equal(t, core.StringList{}, got.Tags)
}

func TestRepository_GetByIDMissing(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepository_UpdateTitleOnly(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	p := newProject()
	require.NoError(t, repo.Create(ctx, p))

	time.Sleep(2 * time.Millisecond)

	title := "Renamed"
	updated, err := repo.Update(ctx, p.ID, Patch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, p.Summary, updated.Summary)
	assert.Equal(t, p.Description, updated.Description)
	assert.Equal(t, p.Achievements, updated.Achievements)
	assert.Equal(t, p.Tags, updated.Tags)
	assert.Equal(t, p.Color, updated.Color)
	assert.True(t, updated.CreatedAt.Equal(p.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(p.UpdatedAt))
	assert.True(t, updated.UpdatedAt.After(p.UpdatedAt))
}

func TestRepository_UpdateWithNoFieldsStillStamps(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	p := newProject()
	require.NoError(t, repo.Create(ctx, p))

	updated, err := repo.Update(ctx, p.ID, Patch{})
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(p.UpdatedAt))
}

func TestRepository_UpdateReplacesLists(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	p := newProject()
	require.NoError(t, repo.Create(ctx, p))

	tags := core.StringList{"go", "sql"}
	updated, err := repo.Update(ctx, p.ID, Patch{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, core.StringList{"go", "sql"}, updated.Tags)
	assert.Equal(t, core.StringList{"a", "b"}, updated.Achievements)
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))

	title := "x"
	_, err := repo.Update(context.Background(), 42, Patch{Title: &title})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepository_DeleteTwice(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	p := newProject()
	require.NoError(t, repo.Create(ctx, p))

	deleted, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
