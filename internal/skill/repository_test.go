// AngelaMos | 2026
// repository_test.go

package skill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/testutil"
)

func seedSkills(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	for _, s := range []Skill{
		{Name: "Go", Percentage: 90, Type: TypeTechnical},
		{Name: "Negotiation", Percentage: 70, Type: TypeBusiness},
		{Name: "SQL", Percentage: 85, Type: TypeTechnical},
	} {
		require.NoError(t, repo.Create(ctx, &s))
	}
}

func TestRepository_ListFiltersByType(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	seedSkills(t, repo)
	ctx := context.Background()

	technical, err := repo.List(ctx, TypeTechnical)
	require.NoError(t, err)
	require.Len(t, technical, 2)
	for _, s := range technical {
		assert.Equal(t, TypeTechnical, s.Type)
	}

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := repo.List(ctx, "Technical")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRepository_CreateGetUpdateDelete(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	s := &Skill{Name: "Rust", Percentage: 0, Type: TypeTechnical}
	require.NoError(t, repo.Create(ctx, s))
	assert.Positive(t, s.ID)

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rust", got.Name)
	assert.Equal(t, 0, got.Percentage)

	pct := 150
	updated, err := repo.Update(ctx, s.ID, Patch{Percentage: &pct})
	require.NoError(t, err)
	assert.Equal(t, 150, updated.Percentage)
	assert.Equal(t, "Rust", updated.Name)

	unchanged, err := repo.Update(ctx, s.ID, Patch{})
	require.NoError(t, err)
	assert.Equal(t, 150, unchanged.Percentage)

	deleted, err := repo.Delete(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = repo.Update(ctx, s.ID, Patch{})
	assert.ErrorIs(t, err, core.ErrNotFound)
}
