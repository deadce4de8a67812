// AngelaMos | 2026
// repository_test.go

package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/testutil"
)

func TestRepository_CreateStartsUnread(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	subject := "Hello"
	s := &Submission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: &subject,
		Message: "I would like to chat.",
		Read:    true,
	}
	require.NoError(t, repo.Create(ctx, s))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Read)
	require.NotNil(t, list[0].Subject)
	assert.Equal(t, "Hello", *list[0].Subject)
}

func TestRepository_MarkReadIsIdempotent(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	s := &Submission{Name: "Ada", Email: "ada@example.com", Message: "0123456789"}
	require.NoError(t, repo.Create(ctx, s))

	first, err := repo.MarkRead(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, first.Read)

	second, err := repo.MarkRead(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, second.Read)
	assert.Equal(t, first.Message, second.Message)

	_, err = repo.MarkRead(ctx, 999)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepository_DeleteTwice(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	s := &Submission{Name: "Ada", Email: "ada@example.com", Message: "0123456789"}
	require.NoError(t, repo.Create(ctx, s))

	deleted, err := repo.Delete(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
