// AngelaMos | 2026
// repository_test.go

package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/testutil"
)

func TestRepository_Lifecycle(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	tl := &Tool{Name: "Docker", Icon: "docker", Tags: core.StringList{"devops", "containers"}}
	require.NoError(t, repo.Create(ctx, tl))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, core.StringList{"devops", "containers"}, list[0].Tags)

	icon := "docker-alt"
	updated, err := repo.Update(ctx, tl.ID, Patch{Icon: &icon})
	require.NoError(t, err)
	assert.Equal(t, "docker-alt", updated.Icon)
	assert.Equal(t, "Docker", updated.Name)
	assert.Equal(t, core.StringList{"devops", "containers"}, updated.Tags)

	deleted, err := repo.Delete(ctx, tl.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, tl.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetByID(ctx, tl.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = repo.Update(ctx, tl.ID, Patch{Icon: &icon})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepository_NilTagsBecomeEmpty(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	tl := &Tool{Name: "Git", Icon: "git"}
	require.NoError(t, repo.Create(ctx, tl))

	got, err := repo.GetByID(ctx, tl.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StringList{}, got.Tags)
}
