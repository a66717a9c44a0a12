package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobpilot/ats/pkg/job"
)

// JobRepository stores tracked applications and their pipeline state.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	r := &JobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	salary_min INTEGER,
	salary_max INTEGER,
	url TEXT NOT NULL DEFAULT '',
	deadline TIMESTAMPTZ,
	description TEXT NOT NULL DEFAULT '',
	industry TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	contact_name TEXT NOT NULL DEFAULT '',
	contact_email TEXT NOT NULL DEFAULT '',
	contact_phone TEXT NOT NULL DEFAULT '',
	salary_notes TEXT NOT NULL DEFAULT '',
	interview_feedback TEXT NOT NULL DEFAULT '',
	required_skills TEXT[] NOT NULL DEFAULT '{}',
	status TEXT NOT NULL,
	status_updated_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_jobs_owner ON jobs(owner_id);
CREATE INDEX IF NOT EXISTS idx_jobs_deadline ON jobs(deadline) WHERE deadline IS NOT NULL;
`)
	return err
}

const jobColumns = `id, owner_id, title, company, location, salary_min, salary_max, url,
	deadline, description, industry, type, notes, contact_name, contact_email,
	contact_phone, salary_notes, interview_feedback, required_skills, status,
	status_updated_at, created_at`

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	var statusUpdated, created time.Time
	if err := row.Scan(
		&j.ID, &j.OwnerID, &j.Title, &j.Company, &j.Location, &j.SalaryMin, &j.SalaryMax, &j.URL,
		&j.Deadline, &j.Description, &j.Industry, &j.Type, &j.Notes, &j.ContactName, &j.ContactEmail,
		&j.ContactPhone, &j.SalaryNotes, &j.InterviewFeedback, &j.RequiredSkills, &j.Status,
		&statusUpdated, &created,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	j.StatusUpdatedAt = statusUpdated.UTC()
	j.CreatedAt = created.UTC()
	return j, nil
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	now := time.Now().UTC()
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}
	j.StatusUpdatedAt = j.CreatedAt
	if j.RequiredSkills == nil {
		j.RequiredSkills = []string{}
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO jobs (id, owner_id, title, company, location, salary_min, salary_max, url,
	deadline, description, industry, type, notes, contact_name, contact_email,
	contact_phone, salary_notes, interview_feedback, required_skills, status,
	status_updated_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	$17, $18, $19, $20, $21, $22)
RETURNING `+jobColumns,
		j.ID, j.OwnerID, j.Title, j.Company, j.Location, j.SalaryMin, j.SalaryMax, j.URL,
		j.Deadline, j.Description, j.Industry, j.Type, j.Notes, j.ContactName, j.ContactEmail,
		j.ContactPhone, j.SalaryNotes, j.InterviewFeedback, j.RequiredSkills, j.Status,
		j.StatusUpdatedAt, j.CreatedAt)
	return scanJob(row)
}

func (r *JobRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID, f job.ListFilter) ([]job.Job, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + jobColumns + ` FROM jobs WHERE owner_id = $1`)
	args := []any{ownerID}

	add := func(clause string, v any) {
		args = append(args, v)
		fmt.Fprintf(&sb, " AND "+clause, len(args))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		fmt.Fprintf(&sb, " AND (title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d)", n, n, n)
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.Industry != "" {
		add("industry ILIKE $%d", f.Industry)
	}
	if f.Location != "" {
		args = append(args, "%"+f.Location+"%")
		fmt.Fprintf(&sb, " AND location ILIKE $%d", len(args))
	}
	if f.SalaryMin != nil {
		add("salary_max >= $%d", *f.SalaryMin)
	}
	if f.SalaryMax != nil {
		add("salary_min <= $%d", *f.SalaryMax)
	}
	if f.DateFrom != nil {
		add("created_at >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		add("created_at <= $%d", *f.DateTo)
	}

	switch f.SortBy {
	case job.SortDeadline:
		sb.WriteString(" ORDER BY deadline ASC NULLS LAST")
	case job.SortSalary:
		sb.WriteString(" ORDER BY salary_max DESC NULLS LAST")
	case job.SortCompany:
		sb.WriteString(" ORDER BY company ASC")
	default: // date_added
		sb.WriteString(" ORDER BY created_at DESC")
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func (r *JobRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (job.Job, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanJob(row)
}

// UpdateForOwner applies an allow-listed patch in a single UPDATE. The
// status timestamp refreshes only when the patch actually changes the
// stored status; all SET expressions see the pre-update row, so the
// comparison is safe regardless of clause order.
func (r *JobRepository) UpdateForOwner(ctx context.Context, ownerID, id uuid.UUID, patch map[string]any) (job.Job, error) {
	var sb strings.Builder
	sb.WriteString("UPDATE jobs SET ")
	var args []any
	first := true
	for col, v := range patch {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		if st, ok := v.(job.Status); ok && col == "status" {
			v = string(st)
		}
		args = append(args, v)
		fmt.Fprintf(&sb, "%s = $%d", col, len(args))
		if col == "status" {
			fmt.Fprintf(&sb, ", status_updated_at = CASE WHEN $%d::text IS DISTINCT FROM status THEN now() ELSE status_updated_at END", len(args))
		}
	}
	args = append(args, id)
	fmt.Fprintf(&sb, " WHERE id = $%d", len(args))
	args = append(args, ownerID)
	fmt.Fprintf(&sb, " AND owner_id = $%d RETURNING %s", len(args), jobColumns)

	row := r.pool.QueryRow(ctx, sb.String(), args...)
	return scanJob(row)
}

func (r *JobRepository) UpdateStatusForOwner(ctx context.Context, ownerID, id uuid.UUID, status job.Status) (job.Job, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE jobs
SET status = $1,
	status_updated_at = CASE WHEN $1::text IS DISTINCT FROM status THEN now() ELSE status_updated_at END
WHERE id = $2 AND owner_id = $3
RETURNING `+jobColumns, string(status), id, ownerID)
	return scanJob(row)
}

// ExtendDeadlinesForOwner shifts deadlines by a day delta for the owned
// subset of ids; ids the caller does not own simply do not match. A NULL
// deadline plus an interval stays NULL, so such rows are touched but keep
// no deadline. The status timestamp refresh on deadline-only changes is a
// compatibility quirk of the original bulk route, preserved deliberately.
func (r *JobRepository) ExtendDeadlinesForOwner(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, days int) ([]job.DeadlineShift, error) {
	rows, err := r.pool.Query(ctx, `
UPDATE jobs
SET deadline = deadline + make_interval(days => $1),
	status_updated_at = now()
WHERE owner_id = $2 AND id = ANY($3)
RETURNING id, title, deadline
`, days, ownerID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []job.DeadlineShift
	for rows.Next() {
		var sh job.DeadlineShift
		if err := rows.Scan(&sh.ID, &sh.Title, &sh.NewDeadline); err != nil {
			return nil, err
		}
		res = append(res, sh)
	}
	return res, rows.Err()
}

func (r *JobRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) ListDueWithin(ctx context.Context, days int) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+jobColumns+` FROM jobs
WHERE deadline IS NOT NULL AND deadline <= now() + make_interval(days => $1)
ORDER BY deadline ASC
`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}
