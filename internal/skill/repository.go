// AngelaMos | 2026
// repository.go

package skill

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Repository interface {
	// List returns every skill, or only those whose type equals skillType
	// when it is non-empty.
	List(ctx context.Context, skillType string) ([]Skill, error)
	GetByID(ctx context.Context, id int64) (*Skill, error)
	Create(ctx context.Context, s *Skill) error
	Update(ctx context.Context, id int64, patch Patch) (*Skill, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectColumns = `SELECT id, name, percentage, type, created_at FROM skills`

func (r *repository) List(
	ctx context.Context,
	skillType string,
) ([]Skill, error) {
	query := selectColumns
	var args []any
	if skillType != "" {
		query += ` WHERE type = ?`
		args = append(args, skillType)
	}
	query += ` ORDER BY id`

	skills := []Skill{}
	if err := r.db.SelectContext(ctx, &skills, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Skill, error) {
	s, err := getByID(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("get skill: %w", err)
	}
	return s, nil
}

func (r *repository) Create(ctx context.Context, s *Skill) error {
	s.CreatedAt = core.Now()

	query := r.db.Rebind(`
		INSERT INTO skills (name, percentage, type, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`)

	if err := r.db.QueryRowxContext(ctx, query,
		s.Name,
		s.Percentage,
		s.Type,
		s.CreatedAt,
	).Scan(&s.ID); err != nil {
		return fmt.Errorf("create skill: %w", err)
	}

	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id int64,
	patch Patch,
) (*Skill, error) {
	var a core.Assignments
	core.SetIf(&a, "name", patch.Name)
	core.SetIf(&a, "percentage", patch.Percentage)
	core.SetIf(&a, "type", patch.Type)

	var updated *Skill
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if !a.Empty() {
			query, args := a.UpdateByID("skills", id)
			result, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
			if err != nil {
				return err
			}
			if rows, err := result.RowsAffected(); err != nil {
				return err
			} else if rows == 0 {
				return core.ErrNotFound
			}
		}

		var err error
		updated, err = getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}

	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(`DELETE FROM skills WHERE id = ?`),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("delete skill: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete skill: %w", err)
	}

	return rows > 0, nil
}

func getByID(ctx context.Context, q core.DBTX, id int64) (*Skill, error) {
	var s Skill
	err := q.GetContext(ctx, &s, q.Rebind(selectColumns+` WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
