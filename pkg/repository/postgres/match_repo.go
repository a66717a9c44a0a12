package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobpilot/ats/pkg/skillgap"
)

// MatchHistoryRepository stores skill-gap runs.
type MatchHistoryRepository struct {
	pool *pgxpool.Pool
}

func NewMatchHistoryRepository(pool *pgxpool.Pool) (*MatchHistoryRepository, error) {
	r := &MatchHistoryRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MatchHistoryRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS match_history (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	job_id UUID NOT NULL,
	match_percent INTEGER NOT NULL,
	matched_count INTEGER NOT NULL,
	weak_count INTEGER NOT NULL,
	missing_count INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_match_history_user ON match_history(user_id);
`)
	return err
}

func (r *MatchHistoryRepository) Record(ctx context.Context, rec skillgap.MatchRecord) (skillgap.MatchRecord, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO match_history (id, user_id, job_id, match_percent, matched_count, weak_count, missing_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, rec.ID, rec.UserID, rec.JobID, rec.MatchPercent, rec.MatchedCount, rec.WeakCount, rec.MissingCount, rec.CreatedAt)
	if err != nil {
		return skillgap.MatchRecord{}, err
	}
	return rec, nil
}

func (r *MatchHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]skillgap.MatchRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, job_id, match_percent, matched_count, weak_count, missing_count, created_at
FROM match_history WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []skillgap.MatchRecord
	for rows.Next() {
		var rec skillgap.MatchRecord
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.JobID, &rec.MatchPercent,
			&rec.MatchedCount, &rec.WeakCount, &rec.MissingCount, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt = created.UTC()
		res = append(res, rec)
	}
	return res, rows.Err()
}
