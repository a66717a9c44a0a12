package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Profile is the seeker's public card used for document generation.
type Profile struct {
	UserID    uuid.UUID `json:"userId"`
	FullName  string    `json:"fullName"`
	Headline  string    `json:"headline,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Location  string    `json:"location,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	GitHub    string    `json:"github,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Skill is one user-held skill with an integer proficiency, higher = stronger.
type Skill struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Proficiency int       `json:"proficiency"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Employment is one work-history entry.
type Employment struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Company     string     `json:"company"`
	Title       string     `json:"title"`
	Location    string     `json:"location,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"` // nil = current position
	Description string     `json:"description,omitempty"`
}

// Education is one education-history entry.
type Education struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree,omitempty"`
	FieldOfStudy string     `json:"fieldOfStudy,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
}

var ErrNotFound = errors.New("not found")

// ErrValidation signals rejected input.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository is the persistence port for profile data. All reads and writes
// are scoped to the owning user.
type Repository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpsertProfile(ctx context.Context, p Profile) (Profile, error)

	ListSkills(ctx context.Context, userID uuid.UUID) ([]Skill, error)
	CreateSkill(ctx context.Context, s Skill) (Skill, error)
	UpdateSkillForOwner(ctx context.Context, userID, id uuid.UUID, s Skill) (Skill, error)
	DeleteSkillForOwner(ctx context.Context, userID, id uuid.UUID) error
	// UpsertSkillByName inserts the skill or leaves an existing row with the
	// same normalized name untouched. Used by resume import.
	UpsertSkillByName(ctx context.Context, s Skill) (Skill, bool, error)

	ListEmployment(ctx context.Context, userID uuid.UUID) ([]Employment, error)
	CreateEmployment(ctx context.Context, e Employment) (Employment, error)
	DeleteEmploymentForOwner(ctx context.Context, userID, id uuid.UUID) error

	ListEducation(ctx context.Context, userID uuid.UUID) ([]Education, error)
	CreateEducation(ctx context.Context, e Education) (Education, error)
	DeleteEducationForOwner(ctx context.Context, userID, id uuid.UUID) error
}
