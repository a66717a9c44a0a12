package profile

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthroughRepo echoes writes back so tests can see what validation left.
type passthroughRepo struct {
	Repository
}

func (passthroughRepo) UpsertProfile(_ context.Context, p Profile) (Profile, error) { return p, nil }

func (passthroughRepo) CreateSkill(_ context.Context, s Skill) (Skill, error) { return s, nil }

func (passthroughRepo) CreateEmployment(_ context.Context, e Employment) (Employment, error) {
	return e, nil
}

func (passthroughRepo) CreateEducation(_ context.Context, e Education) (Education, error) {
	return e, nil
}

func TestSaveProfileRequiresName(t *testing.T) {
	svc := NewService(passthroughRepo{})

	_, err := svc.Save(context.Background(), Profile{FullName: "   "})
	assert.ErrorAs(t, err, new(ErrValidation))

	p, err := svc.Save(context.Background(), Profile{FullName: "  Dana Reeves "})
	require.NoError(t, err)
	assert.Equal(t, "Dana Reeves", p.FullName)
}

func TestAddSkillValidation(t *testing.T) {
	svc := NewService(passthroughRepo{})

	_, err := svc.AddSkill(context.Background(), Skill{Name: " ", Proficiency: 3})
	assert.ErrorAs(t, err, new(ErrValidation))

	_, err = svc.AddSkill(context.Background(), Skill{Name: "go", Proficiency: 0})
	assert.ErrorAs(t, err, new(ErrValidation))

	_, err = svc.AddSkill(context.Background(), Skill{Name: "go", Proficiency: 6})
	assert.ErrorAs(t, err, new(ErrValidation))

	s, err := svc.AddSkill(context.Background(), Skill{Name: "  PostgreSQL ", Proficiency: 4})
	require.NoError(t, err)
	assert.Equal(t, "postgresql", s.Name)
}

func TestAddEmploymentValidation(t *testing.T) {
	svc := NewService(passthroughRepo{})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, -6, 0)

	_, err := svc.AddEmployment(context.Background(), Employment{Title: "Engineer"})
	assert.ErrorAs(t, err, new(ErrValidation))

	_, err = svc.AddEmployment(context.Background(), Employment{
		Company: "Acme", Title: "Engineer", StartDate: start, EndDate: &before,
	})
	assert.ErrorAs(t, err, new(ErrValidation))

	// open-ended position is fine
	_, err = svc.AddEmployment(context.Background(), Employment{
		Company: "Acme", Title: "Engineer", StartDate: start,
	})
	assert.NoError(t, err)
}

func TestAddEducationValidation(t *testing.T) {
	svc := NewService(passthroughRepo{})

	_, err := svc.AddEducation(context.Background(), Education{Degree: "BSc"})
	assert.ErrorAs(t, err, new(ErrValidation))

	e, err := svc.AddEducation(context.Background(), Education{
		ID: uuid.New(), Institution: " State University ",
	})
	require.NoError(t, err)
	assert.Equal(t, "State University", e.Institution)
}
