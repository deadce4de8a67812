// AngelaMos | 2026
// repository.go

package certification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Certification, error)
	GetByID(ctx context.Context, id int64) (*Certification, error)
	Create(ctx context.Context, c *Certification) error
	Update(ctx context.Context, id int64, patch Patch) (*Certification, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectColumns = `
	SELECT id, name, description, details, icon, color, certificate_path,
	       created_at
	FROM certifications`

func (r *repository) List(ctx context.Context) ([]Certification, error) {
	certs := []Certification{}
	if err := r.db.SelectContext(ctx, &certs, selectColumns+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}
	return certs, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id int64,
) (*Certification, error) {
	c, err := getByID(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("get certification: %w", err)
	}
	return c, nil
}

func (r *repository) Create(ctx context.Context, c *Certification) error {
	c.CreatedAt = core.Now()

	query := r.db.Rebind(`
		INSERT INTO certifications (name, description, details, icon, color,
		                            certificate_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	if err := r.db.QueryRowxContext(ctx, query,
		c.Name,
		c.Description,
		c.Details,
		c.Icon,
		c.Color,
		c.CertificatePath,
		c.CreatedAt,
	).Scan(&c.ID); err != nil {
		return fmt.Errorf("create certification: %w", err)
	}

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	patch Patch,
) (*Certification, error) {
	var a core.Assignments
	core.SetIf(&a, "name", patch.Name)
	core.SetIf(&a, "description", patch.Description)
	core.SetIf(&a, "details", patch.Details)
	core.SetIf(&a, "icon", patch.Icon)
	core.SetIf(&a, "color", patch.Color)
	if patch.CertificatePath.Set {
		a.Set("certificate_path", patch.CertificatePath.Ptr())
	}

	var updated *Certification
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if !a.Empty() {
			query, args := a.UpdateByID("certifications", id)
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return err
			}
		}

		var err error
		updated, err = getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update certification: %w", err)
	}

	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(`DELETE FROM certifications WHERE id = ?`),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("delete certification: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete certification: %w", err)
	}

	return rows > 0, nil
}

func getByID(
	ctx context.Context,
	q core.DBTX,
	id int64,
) (*Certification, error) {
	var c Certification
	err := q.GetContext(ctx, &c, q.Rebind(selectColumns+` WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
