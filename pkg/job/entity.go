package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is one of the six pipeline stages of a tracked application.
type Status string

const (
	StatusInterested  Status = "Interested"
	StatusApplied     Status = "Applied"
	StatusPhoneScreen Status = "Phone Screen"
	StatusInterview   Status = "Interview"
	StatusOffer       Status = "Offer"
	StatusRejected    Status = "Rejected"
)

// Statuses lists the pipeline stages in board order.
var Statuses = []Status{
	StatusInterested,
	StatusApplied,
	StatusPhoneScreen,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

// ValidStatus reports whether s is one of the six pipeline stages.
func ValidStatus(s Status) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Job is one tracked application, exclusively owned by the user who created it.
type Job struct {
	ID                uuid.UUID  `json:"id"`
	OwnerID           uuid.UUID  `json:"ownerId"`
	Title             string     `json:"title"`
	Company           string     `json:"company"`
	Location          string     `json:"location,omitempty"`
	SalaryMin         *int       `json:"salaryMin,omitempty"`
	SalaryMax         *int       `json:"salaryMax,omitempty"`
	URL               string     `json:"url,omitempty"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	Description       string     `json:"description,omitempty"`
	Industry          string     `json:"industry,omitempty"`
	Type              string     `json:"type,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	ContactName       string     `json:"contactName,omitempty"`
	ContactEmail      string     `json:"contactEmail,omitempty"`
	ContactPhone      string     `json:"contactPhone,omitempty"`
	SalaryNotes       string     `json:"salaryNotes,omitempty"`
	InterviewFeedback string     `json:"interviewFeedback,omitempty"`
	RequiredSkills    []string   `json:"requiredSkills,omitempty"`
	Status            Status     `json:"status"`
	StatusUpdatedAt   time.Time  `json:"statusUpdatedAt"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// updatableFields is the allow-list for partial updates. Fields outside the
// list are silently ignored, not rejected.
var updatableFields = map[string]struct{}{
	"title":              {},
	"company":            {},
	"location":           {},
	"status":             {},
	"salary_min":         {},
	"salary_max":         {},
	"deadline":           {},
	"description":        {},
	"industry":           {},
	"type":               {},
	"notes":              {},
	"contact_name":       {},
	"contact_email":      {},
	"contact_phone":      {},
	"salary_notes":       {},
	"interview_feedback": {},
}

// FilterPatch drops every key that is not in the update allow-list.
func FilterPatch(patch map[string]any) map[string]any {
	out := make(map[string]any, len(patch))
	for k, v := range patch {
		if _, ok := updatableFields[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Sort keys accepted by the list endpoint.
const (
	SortDateAdded = "date_added"
	SortDeadline  = "deadline"
	SortSalary    = "salary"
	SortCompany   = "company"
)

// ListFilter narrows and orders the owner's job list.
type ListFilter struct {
	Search    string
	Status    Status
	Industry  string
	Location  string
	SalaryMin *int
	SalaryMax *int
	DateFrom  *time.Time
	DateTo    *time.Time
	SortBy    string
}

// DeadlineShift is one row touched by a bulk deadline extension.
type DeadlineShift struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	NewDeadline *time.Time `json:"newDeadline"`
}

var (
	ErrNotFound      = errors.New("job not found")
	ErrInvalidStatus = errors.New("invalid status")
)

// ErrValidation signals rejected input.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository is the persistence port for jobs. Every owner-scoped method
// treats a foreign row exactly like an absent one and returns ErrNotFound.
type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, f ListFilter) ([]Job, error)
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Job, error)
	// UpdateForOwner applies an already allow-listed patch. It refreshes
	// status_updated_at iff the patch changes the stored status.
	UpdateForOwner(ctx context.Context, ownerID, id uuid.UUID, patch map[string]any) (Job, error)
	UpdateStatusForOwner(ctx context.Context, ownerID, id uuid.UUID, status Status) (Job, error)
	// ExtendDeadlinesForOwner shifts deadlines by a day delta for the owned
	// subset of ids. Rows with a NULL deadline stay NULL.
	ExtendDeadlinesForOwner(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, days int) ([]DeadlineShift, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
	// ListDueWithin returns jobs of any owner whose deadline falls inside
	// the next d days. Used by the reminder sweep.
	ListDueWithin(ctx context.Context, days int) ([]Job, error)
}
