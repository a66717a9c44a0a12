package document

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes generated document types.
type Kind string

const (
	KindResume      Kind = "resume"
	KindCoverLetter Kind = "cover_letter"
)

// Document is one AI-generated resume or cover letter, tied to a job.
type Document struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	JobID     uuid.UUID `json:"jobId"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

var ErrNotFound = errors.New("document not found")

// Repository is the persistence port for generated documents.
type Repository interface {
	Create(ctx context.Context, d Document) (Document, error)
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Document, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, kind Kind, limit, offset int) ([]Document, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
