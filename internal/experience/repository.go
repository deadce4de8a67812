// AngelaMos | 2026
// repository.go

package experience

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Experience, error)
	GetByID(ctx context.Context, id int64) (*Experience, error)
	Create(ctx context.Context, e *Experience) error
	Update(ctx context.Context, id int64, patch Patch) (*Experience, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectColumns = `
	SELECT id, company, position, location, period, responsibilities, icon,
	       color, created_at
	FROM experiences`

func (r *repository) List(ctx context.Context) ([]Experience, error) {
	exps := []Experience{}
	if err := r.db.SelectContext(ctx, &exps, selectColumns+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return exps, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Experience, error) {
	e, err := getByID(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	return e, nil
}

func (r *repository) Create(ctx context.Context, e *Experience) error {
	e.Responsibilities = e.Responsibilities.Normalize()
	e.CreatedAt = core.Now()

	query := r.db.Rebind(`
		INSERT INTO experiences (company, position, location, period,
		                         responsibilities, icon, color, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	if err := r.db.QueryRowxContext(ctx, query,
		e.Company,
		e.Position,
		e.Location,
		e.Period,
		e.Responsibilities,
		e.Icon,
		e.Color,
		e.CreatedAt,
	).Scan(&e.ID); err != nil {
		return fmt.Errorf("create experience: %w", err)
	}

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	patch Patch,
) (*Experience, error) {
	var a core.Assignments
	core.SetIf(&a, "company", patch.Company)
	core.SetIf(&a, "position", patch.Position)
	core.SetIf(&a, "location", patch.Location)
	core.SetIf(&a, "period", patch.Period)
	core.SetIf(&a, "responsibilities", patch.Responsibilities)
	core.SetIf(&a, "icon", patch.Icon)
	core.SetIf(&a, "color", patch.Color)

	var updated *Experience
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if !a.Empty() {
			query, args := a.UpdateByID("experiences", id)
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return err
			}
		}

		var err error
		updated, err = getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}

	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(`DELETE FROM experiences WHERE id = ?`),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("delete experience: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete experience: %w", err)
	}

	return rows > 0, nil
}

func getByID(ctx context.Context, q core.DBTX, id int64) (*Experience, error) {
	var e Experience
	err := q.GetContext(ctx, &e, q.Rebind(selectColumns+` WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
