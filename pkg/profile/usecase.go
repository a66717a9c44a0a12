package profile

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jobpilot/ats/pkg/nlp"
)

// UseCase covers profile, skills, employment and education scenarios.
type UseCase interface {
	Get(ctx context.Context, userID uuid.UUID) (Profile, error)
	Save(ctx context.Context, p Profile) (Profile, error)

	ListSkills(ctx context.Context, userID uuid.UUID) ([]Skill, error)
	AddSkill(ctx context.Context, s Skill) (Skill, error)
	UpdateSkill(ctx context.Context, userID, id uuid.UUID, s Skill) (Skill, error)
	RemoveSkill(ctx context.Context, userID, id uuid.UUID) error

	ListEmployment(ctx context.Context, userID uuid.UUID) ([]Employment, error)
	AddEmployment(ctx context.Context, e Employment) (Employment, error)
	RemoveEmployment(ctx context.Context, userID, id uuid.UUID) error

	ListEducation(ctx context.Context, userID uuid.UUID) ([]Education, error)
	AddEducation(ctx context.Context, e Education) (Education, error)
	RemoveEducation(ctx context.Context, userID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Get(ctx context.Context, userID uuid.UUID) (Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

func (s *service) Save(ctx context.Context, p Profile) (Profile, error) {
	p.FullName = strings.TrimSpace(p.FullName)
	if p.FullName == "" {
		return Profile{}, ErrValidation("fullName is required")
	}
	return s.repo.UpsertProfile(ctx, p)
}

func (s *service) ListSkills(ctx context.Context, userID uuid.UUID) ([]Skill, error) {
	return s.repo.ListSkills(ctx, userID)
}

func (s *service) AddSkill(ctx context.Context, sk Skill) (Skill, error) {
	if err := validateSkill(&sk); err != nil {
		return Skill{}, err
	}
	return s.repo.CreateSkill(ctx, sk)
}

func (s *service) UpdateSkill(ctx context.Context, userID, id uuid.UUID, sk Skill) (Skill, error) {
	if err := validateSkill(&sk); err != nil {
		return Skill{}, err
	}
	return s.repo.UpdateSkillForOwner(ctx, userID, id, sk)
}

func (s *service) RemoveSkill(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteSkillForOwner(ctx, userID, id)
}

func (s *service) ListEmployment(ctx context.Context, userID uuid.UUID) ([]Employment, error) {
	return s.repo.ListEmployment(ctx, userID)
}

func (s *service) AddEmployment(ctx context.Context, e Employment) (Employment, error) {
	e.Company = strings.TrimSpace(e.Company)
	e.Title = strings.TrimSpace(e.Title)
	if e.Company == "" || e.Title == "" {
		return Employment{}, ErrValidation("company and title are required")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return Employment{}, ErrValidation("endDate must not precede startDate")
	}
	return s.repo.CreateEmployment(ctx, e)
}

func (s *service) RemoveEmployment(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteEmploymentForOwner(ctx, userID, id)
}

func (s *service) ListEducation(ctx context.Context, userID uuid.UUID) ([]Education, error) {
	return s.repo.ListEducation(ctx, userID)
}

func (s *service) AddEducation(ctx context.Context, e Education) (Education, error) {
	e.Institution = strings.TrimSpace(e.Institution)
	if e.Institution == "" {
		return Education{}, ErrValidation("institution is required")
	}
	return s.repo.CreateEducation(ctx, e)
}

func (s *service) RemoveEducation(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteEducationForOwner(ctx, userID, id)
}

func validateSkill(sk *Skill) error {
	sk.Name = nlp.NormalizeSkill(sk.Name)
	if sk.Name == "" {
		return ErrValidation("name is required")
	}
	if sk.Proficiency < 1 || sk.Proficiency > 5 {
		return ErrValidation("proficiency must be between 1 and 5")
	}
	return nil
}
