package job

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jobpilot/ats/pkg/nlp"
)

// UseCase covers the application pipeline scenarios.
type UseCase interface {
	Create(ctx context.Context, j Job) (Job, error)
	List(ctx context.Context, ownerID uuid.UUID, f ListFilter) ([]Job, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Job, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch map[string]any) (Job, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status Status) (Job, error)
	ExtendDeadlines(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, days int) ([]DeadlineShift, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, j Job) (Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	if j.Title == "" {
		return Job{}, ErrValidation("title is required")
	}
	if j.Company == "" {
		return Job{}, ErrValidation("company is required")
	}
	// Every application enters the pipeline at the first stage.
	j.Status = StatusInterested
	j.RequiredSkills = normalizeSkills(j.RequiredSkills)
	return s.repo.Create(ctx, j)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, f ListFilter) ([]Job, error) {
	if f.Status != "" && !ValidStatus(f.Status) {
		return nil, ErrInvalidStatus
	}
	switch f.SortBy {
	case "", SortDateAdded, SortDeadline, SortSalary, SortCompany:
	default:
		return nil, ErrValidation("unknown sortBy value")
	}
	return s.repo.ListForOwner(ctx, ownerID, f)
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Job, error) {
	return s.repo.GetForOwner(ctx, ownerID, id)
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, patch map[string]any) (Job, error) {
	patch = FilterPatch(patch)
	if len(patch) == 0 {
		return Job{}, ErrValidation("no updatable fields provided")
	}
	if raw, ok := patch["status"]; ok {
		var st Status
		switch v := raw.(type) {
		case Status:
			st = v
		case string:
			st = Status(v)
		default:
			return Job{}, ErrInvalidStatus
		}
		if !ValidStatus(st) {
			return Job{}, ErrInvalidStatus
		}
		patch["status"] = st
	}
	return s.repo.UpdateForOwner(ctx, ownerID, id, patch)
}

func (s *service) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status Status) (Job, error) {
	if strings.TrimSpace(string(status)) == "" {
		return Job{}, ErrValidation("status is required")
	}
	if !ValidStatus(status) {
		return Job{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatusForOwner(ctx, ownerID, id, status)
}

func (s *service) ExtendDeadlines(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, days int) ([]DeadlineShift, error) {
	if len(ids) == 0 {
		return nil, ErrValidation("jobIds must not be empty")
	}
	if days == 0 {
		return nil, ErrValidation("daysToAdd must be non-zero")
	}
	shifts, err := s.repo.ExtendDeadlinesForOwner(ctx, ownerID, ids, days)
	if err != nil {
		return nil, err
	}
	if shifts == nil {
		shifts = []DeadlineShift{}
	}
	return shifts, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}

func normalizeSkills(in []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, s := range in {
		n := nlp.NormalizeSkill(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
