// AngelaMos | 2026
// repository.go

package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, id int64, patch Patch) (*Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectColumns = `
	SELECT id, title, summary, description, achievements, tags, color,
	       created_at, updated_at
	FROM projects`

func (r *repository) List(ctx context.Context) ([]Project, error) {
	projects := []Project{}
	if err := r.db.SelectContext(ctx, &projects, selectColumns+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Project, error) {
	p, err := getByID(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, p *Project) error {
	now := core.Now()
	p.Achievements = p.Achievements.Normalize()
	p.Tags = p.Tags.Normalize()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := r.db.Rebind(`
		INSERT INTO projects (title, summary, description, achievements, tags,
		                      color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.db.QueryRowxContext(ctx, query,
		p.Title,
		p.Summary,
		p.Description,
		p.Achievements,
		p.Tags,
		p.Color,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

// Update applies patch and always stamps a fresh updated_at.
func (r *repository) Update(
	ctx context.Context,
	id int64,
	patch Patch,
) (*Project, error) {
	var a core.Assignments
	core.SetIf(&a, "title", patch.Title)
	core.SetIf(&a, "summary", patch.Summary)
	core.SetIf(&a, "description", patch.Description)
	core.SetIf(&a, "achievements", patch.Achievements)
	core.SetIf(&a, "tags", patch.Tags)
	core.SetIf(&a, "color", patch.Color)
	a.Set("updated_at", core.Now())

	query, args := a.UpdateByID("projects", id)

	var updated *Project
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return core.ErrNotFound
		}

		updated, err = getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(`DELETE FROM projects WHERE id = ?`),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}

	return rows > 0, nil
}

func getByID(ctx context.Context, q core.DBTX, id int64) (*Project, error) {
	var p Project
	err := q.GetContext(ctx, &p, q.Rebind(selectColumns+` WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
