// AngelaMos | 2026
// repository_test.go

package certification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
	"github.com/carterperez-dev/portfolio-backend/internal/testutil"
)

func newCert() *Certification {
	return &Certification{
		Name:        "CompTIA Security+",
		Description: "Security fundamentals",
		Details:     "SY0-601",
		Icon:        "shield",
		Color:       "secondary",
	}
}

func TestRepository_CreateWithoutPath(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	c := newCert()
	require.NoError(t, repo.Create(ctx, c))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].CertificatePath)
	assert.Equal(t, "CompTIA Security+", list[0].Name)
}

func TestRepository_UpdateCertificatePath(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	c := newCert()
	require.NoError(t, repo.Create(ctx, c))

	path := "/certs/secplus.pdf"
	updated, err := repo.Update(ctx, c.ID, Patch{
		CertificatePath: core.NullableOf(&path),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CertificatePath)
	assert.Equal(t, path, *updated.CertificatePath)

	details := "SY0-701"
	updated, err = repo.Update(ctx, c.ID, Patch{Details: &details})
	require.NoError(t, err)
	assert.Equal(t, "SY0-701", updated.Details)
	require.NotNil(t, updated.CertificatePath, "unset field must not clear the path")

	updated, err = repo.Update(ctx, c.ID, Patch{
		CertificatePath: core.NullableOf[string](nil),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.CertificatePath)
}

func TestRepository_DeleteAndMissing(t *testing.T) {
	repo := NewRepository(testutil.OpenDB(t))
	ctx := context.Background()

	c := newCert()
	require.NoError(t, repo.Create(ctx, c))

	deleted, err := repo.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdateRequest_NullClearsPath(t *testing.T) {
	var req UpdateCertificationRequest
	require.NoError(t, core.UnmarshalPartial(
		[]byte(`{"certificate_path":null}`), &req, NullableFields...,
	))
	patch := req.ToPatch()
	assert.True(t, patch.CertificatePath.Set)
	assert.Nil(t, patch.CertificatePath.Ptr())

	err := core.UnmarshalPartial([]byte(`{"name":null}`), &req, NullableFields...)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
