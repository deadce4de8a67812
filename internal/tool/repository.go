// AngelaMos | 2026
// repository.go

package tool

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Tool, error)
	GetByID(ctx context.Context, id int64) (*Tool, error)
	Create(ctx context.Context, t *Tool) error
	Update(ctx context.Context, id int64, patch Patch) (*Tool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectColumns = `SELECT id, name, icon, tags, created_at FROM tools`

func (r *repository) List(ctx context.Context) ([]Tool, error) {
	tools := []Tool{}
	if err := r.db.SelectContext(ctx, &tools, selectColumns+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return tools, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Tool, error) {
	t, err := getByID(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("get tool: %w", err)
	}
	return t, nil
}

func (r *repository) Create(ctx context.Context, t *Tool) error {
	t.Tags = t.Tags.Normalize()
	t.CreatedAt = core.Now()

	query := r.db.Rebind(`
		INSERT INTO tools (name, icon, tags, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`)

	if err := r.db.QueryRowxContext(ctx, query,
		t.Name,
		t.Icon,
		t.Tags,
		t.CreatedAt,
	).Scan(&t.ID); err != nil {
		return fmt.Errorf("create tool: %w", err)
	}

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	patch Patch,
) (*Tool, error) {
	var a core.Assignments
	core.SetIf(&a, "name", patch.Name)
	core.SetIf(&a, "icon", patch.Icon)
	core.SetIf(&a, "tags", patch.Tags)

	var updated *Tool
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if !a.Empty() {
			query, args := a.UpdateByID("tools", id)
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return err
			}
		}

		var err error
		updated, err = getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update tool: %w", err)
	}

	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(`DELETE FROM tools WHERE id = ?`),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("delete tool: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete tool: %w", err)
	}

	return rows > 0, nil
}

func getByID(ctx context.Context, q core.DBTX, id int64) (*Tool, error) {
	var t Tool
	err := q.GetContext(ctx, &t, q.Rebind(selectColumns+` WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
