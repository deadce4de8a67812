// AngelaMos | 2026
// repository.go

package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/portfolio-backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Submission, error)
	GetByID(ctx context.Context, id int64) (*Submission, error)
	Create(ctx context.Context, s *Submission) error
	MarkRead(ctx context.Context, id int64) (*Submission, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectColumns = `
	SELECT id, name, email, subject, message, created_at, read
	FROM contact_submissions`

func (r *repository) List(ctx context.Context) ([]Submission, error) {
	subs := []Submission{}
	if err := r.db.SelectContext(ctx, &subs, selectColumns+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	return subs, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Submission, error) {
	s, err := getByID(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("get contact submission: %w", err)
	}
	return s, nil
}

// Create stores s as unread regardless of s.Read.
func (r *repository) Create(ctx context.Context, s *Submission) error {
	s.CreatedAt = core.Now()
	s.Read = false

	query := r.db.Rebind(`
		INSERT INTO contact_submissions (name, email, subject, message,
		                                 created_at, read)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)

	if err := r.db.QueryRowxContext(ctx, query,
		s.Name,
		s.Email,
		s.Subject,
		s.Message,
		s.CreatedAt,
		s.Read,
	).Scan(&s.ID); err != nil {
		return fmt.Errorf("create contact submission: %w", err)
	}

	return nil
}

// MarkRead is idempotent: marking an already read submission succeeds and
// returns it unchanged.
func (r *repository) MarkRead(ctx context.Context, id int64) (*Submission, error) {
	var updated *Submission
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(
			ctx,
			tx.Rebind(`UPDATE contact_submissions SET read = ? WHERE id = ?`),
			true,
			id,
		)
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
		return nil, fmt.Errorf("mark contact submission read: %w", err)
	}

	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(`DELETE FROM contact_submissions WHERE id = ?`),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("delete contact submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete contact submission: %w", err)
	}

	return rows > 0, nil
}

func getByID(ctx context.Context, q core.DBTX, id int64) (*Submission, error) {
	var s Submission
	err := q.GetContext(ctx, &s, q.Rebind(selectColumns+` WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
