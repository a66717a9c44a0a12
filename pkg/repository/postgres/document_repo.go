package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobpilot/ats/pkg/document"
)

// DocumentRepository stores generated resumes and cover letters.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) (*DocumentRepository, error) {
	r := &DocumentRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *DocumentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS documents (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	job_id UUID NOT NULL,
	kind TEXT NOT NULL CHECK (kind IN ('resume', 'cover_letter')),
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	model TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documents_owner ON documents(owner_id);
`)
	return err
}

func (r *DocumentRepository) Create(ctx context.Context, d document.Document) (document.Document, error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO documents (id, owner_id, job_id, kind, title, content, model, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, d.ID, d.OwnerID, d.JobID, string(d.Kind), d.Title, d.Content, d.Model, d.CreatedAt)
	if err != nil {
		return document.Document{}, err
	}
	return d, nil
}

func (r *DocumentRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (document.Document, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, job_id, kind, title, content, model, created_at
FROM documents WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	var d document.Document
	var created time.Time
	if err := row.Scan(&d.ID, &d.OwnerID, &d.JobID, &d.Kind, &d.Title, &d.Content, &d.Model, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrNotFound
		}
		return document.Document{}, err
	}
	d.CreatedAt = created.UTC()
	return d, nil
}

func (r *DocumentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, kind document.Kind, limit, offset int) ([]document.Document, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
SELECT id, owner_id, job_id, kind, title, content, model, created_at
FROM documents WHERE owner_id = $1`
	args := []any{ownerID}
	if kind != "" {
		args = append(args, string(kind))
		query += ` AND kind = $2`
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []document.Document
	for rows.Next() {
		var d document.Document
		var created time.Time
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.JobID, &d.Kind, &d.Title, &d.Content, &d.Model, &created); err != nil {
			return nil, err
		}
		d.CreatedAt = created.UTC()
		res = append(res, d)
	}
	return res, rows.Err()
}

func (r *DocumentRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return document.ErrNotFound
	}
	return nil
}
