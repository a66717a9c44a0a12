package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobpilot/ats/pkg/profile"
)

// ProfileRepository stores the seeker profile and its skills, employment and
// education rows.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	r := &ProfileRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS profiles (
	user_id UUID PRIMARY KEY,
	full_name TEXT NOT NULL,
	headline TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	linkedin TEXT NOT NULL DEFAULT '',
	github TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS skills (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	name TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	proficiency INTEGER NOT NULL CHECK (proficiency BETWEEN 1 AND 5),
	created_at TIMESTAMPTZ NOT NULL,
	UNIQUE (user_id, name)
);
CREATE TABLE IF NOT EXISTS employment (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	company TEXT NOT NULL,
	title TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	start_date TIMESTAMPTZ NOT NULL,
	end_date TIMESTAMPTZ,
	description TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS education (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	institution TEXT NOT NULL,
	degree TEXT NOT NULL DEFAULT '',
	field_of_study TEXT NOT NULL DEFAULT '',
	start_date TIMESTAMPTZ,
	end_date TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_skills_user ON skills(user_id);
CREATE INDEX IF NOT EXISTS idx_employment_user ON employment(user_id);
CREATE INDEX IF NOT EXISTS idx_education_user ON education(user_id);
`)
	return err
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT user_id, full_name, headline, summary, location, email, phone, linkedin, github, updated_at
FROM profiles WHERE user_id = $1
`, userID)
	var p profile.Profile
	var updated time.Time
	if err := row.Scan(&p.UserID, &p.FullName, &p.Headline, &p.Summary, &p.Location,
		&p.Email, &p.Phone, &p.LinkedIn, &p.GitHub, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	p.UpdatedAt = updated.UTC()
	return p, nil
}

func (r *ProfileRepository) UpsertProfile(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	p.UpdatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx, `
INSERT INTO profiles (user_id, full_name, headline, summary, location, email, phone, linkedin, github, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (user_id) DO UPDATE SET
	full_name = EXCLUDED.full_name,
	headline = EXCLUDED.headline,
	summary = EXCLUDED.summary,
	location = EXCLUDED.location,
	email = EXCLUDED.email,
	phone = EXCLUDED.phone,
	linkedin = EXCLUDED.linkedin,
	github = EXCLUDED.github,
	updated_at = EXCLUDED.updated_at
`, p.UserID, p.FullName, p.Headline, p.Summary, p.Location, p.Email, p.Phone, p.LinkedIn, p.GitHub, p.UpdatedAt)
	if err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *ProfileRepository) ListSkills(ctx context.Context, userID uuid.UUID) ([]profile.Skill, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, name, category, proficiency, created_at
FROM skills WHERE user_id = $1 ORDER BY name
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []profile.Skill
	for rows.Next() {
		var s profile.Skill
		var created time.Time
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.Proficiency, &created); err != nil {
			return nil, err
		}
		s.CreatedAt = created.UTC()
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *ProfileRepository) CreateSkill(ctx context.Context, s profile.Skill) (profile.Skill, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO skills (id, user_id, name, category, proficiency, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, name) DO UPDATE SET
	category = EXCLUDED.category,
	proficiency = EXCLUDED.proficiency
`, s.ID, s.UserID, s.Name, s.Category, s.Proficiency, s.CreatedAt)
	if err != nil {
		return profile.Skill{}, err
	}
	return s, nil
}

func (r *ProfileRepository) UpdateSkillForOwner(ctx context.Context, userID, id uuid.UUID, s profile.Skill) (profile.Skill, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE skills SET name = $1, category = $2, proficiency = $3
WHERE id = $4 AND user_id = $5
RETURNING id, user_id, name, category, proficiency, created_at
`, s.Name, s.Category, s.Proficiency, id, userID)
	var out profile.Skill
	var created time.Time
	if err := row.Scan(&out.ID, &out.UserID, &out.Name, &out.Category, &out.Proficiency, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Skill{}, profile.ErrNotFound
		}
		return profile.Skill{}, err
	}
	out.CreatedAt = created.UTC()
	return out, nil
}

func (r *ProfileRepository) DeleteSkillForOwner(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

// UpsertSkillByName inserts the skill unless a row with the same normalized
// name already exists for the user. Reports whether a row was created.
func (r *ProfileRepository) UpsertSkillByName(ctx context.Context, s profile.Skill) (profile.Skill, bool, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	cmd, err := r.pool.Exec(ctx, `
INSERT INTO skills (id, user_id, name, category, proficiency, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, name) DO NOTHING
`, s.ID, s.UserID, s.Name, s.Category, s.Proficiency, s.CreatedAt)
	if err != nil {
		return profile.Skill{}, false, err
	}
	return s, cmd.RowsAffected() > 0, nil
}

func (r *ProfileRepository) ListEmployment(ctx context.Context, userID uuid.UUID) ([]profile.Employment, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, company, title, location, start_date, end_date, description
FROM employment WHERE user_id = $1 ORDER BY start_date DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []profile.Employment
	for rows.Next() {
		var e profile.Employment
		if err := rows.Scan(&e.ID, &e.UserID, &e.Company, &e.Title, &e.Location,
			&e.StartDate, &e.EndDate, &e.Description); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (r *ProfileRepository) CreateEmployment(ctx context.Context, e profile.Employment) (profile.Employment, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO employment (id, user_id, company, title, location, start_date, end_date, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, e.ID, e.UserID, e.Company, e.Title, e.Location, e.StartDate, e.EndDate, e.Description)
	if err != nil {
		return profile.Employment{}, err
	}
	return e, nil
}

func (r *ProfileRepository) DeleteEmploymentForOwner(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM employment WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) ListEducation(ctx context.Context, userID uuid.UUID) ([]profile.Education, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, institution, degree, field_of_study, start_date, end_date
FROM education WHERE user_id = $1 ORDER BY start_date DESC NULLS LAST
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []profile.Education
	for rows.Next() {
		var e profile.Education
		if err := rows.Scan(&e.ID, &e.UserID, &e.Institution, &e.Degree,
			&e.FieldOfStudy, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (r *ProfileRepository) CreateEducation(ctx context.Context, e profile.Education) (profile.Education, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO education (id, user_id, institution, degree, field_of_study, start_date, end_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, e.ID, e.UserID, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate)
	if err != nil {
		return profile.Education{}, err
	}
	return e, nil
}

func (r *ProfileRepository) DeleteEducationForOwner(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM education WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}
