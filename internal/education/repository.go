// AngelaMos | 2026
// repository.go

package education

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Education, error)
	GetByID(ctx context.Context, id int64) (*Education, error)
	Create(ctx context.Context, e *Education) error
	Update(ctx context.Context, id int64, patch Patch) (*Education, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectColumns = `
	SELECT id, institution, degree, period, description, color, created_at
	FROM educations`

func (r *repository) List(ctx context.Context) ([]Education, error) {
	eds := []Education{}
	if err := r.db.SelectContext(ctx, &eds, selectColumns+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list educations: %w", err)
	}
	return eds, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Education, error) {
	e, err := getByID(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("get education: %w", err)
	}
	return e, nil
}

func (r *repository) Create(ctx context.Context, e *Education) error {
	e.CreatedAt = core.Now()

	query := r.db.Rebind(`
		INSERT INTO educations (institution, degree, period, description,
		                        color, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)

	if err := r.db.QueryRowxContext(ctx, query,
		e.Institution,
		e.Degree,
		e.Period,
		e.Description,
		e.Color,
		e.CreatedAt,
	).Scan(&e.ID); err != nil {
		return fmt.Errorf("create education: %w", err)
	}

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	patch Patch,
) (*Education, error) {
	var a core.Assignments
	core.SetIf(&a, "institution", patch.Institution)
	core.SetIf(&a, "degree", patch.Degree)
	core.SetIf(&a, "period", patch.Period)
	core.SetIf(&a, "description", patch.Description)
	core.SetIf(&a, "color", patch.Color)

	var updated *Education
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if !a.Empty() {
			query, args := a.UpdateByID("educations", id)
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return err
			}
		}

		var err error
		updated, err = getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update education: %w", err)
	}

	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(`DELETE FROM educations WHERE id = ?`),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("delete education: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete education: %w", err)
	}

	return rows > 0, nil
}

func getByID(ctx context.Context, q core.DBTX, id int64) (*Education, error) {
	var e Education
	err := q.GetContext(ctx, &e, q.Rebind(selectColumns+` WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
