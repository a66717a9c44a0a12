package skillgap

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jobpilot/ats/pkg/job"
	"github.com/jobpilot/ats/pkg/profile"
)

// MatchRecord is one persisted skill-gap run.
type MatchRecord struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	JobID        uuid.UUID `json:"jobId"`
	MatchPercent int       `json:"matchPercent"`
	MatchedCount int       `json:"matchedCount"`
	WeakCount    int       `json:"weakCount"`
	MissingCount int       `json:"missingCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HistoryRepository persists skill-gap runs.
type HistoryRepository interface {
	Record(ctx context.Context, rec MatchRecord) (MatchRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]MatchRecord, error)
}

// UseCase runs skill-gap analysis for an owned job and keeps match history.
type UseCase interface {
	Analyze(ctx context.Context, userID, jobID uuid.UUID) (Report, error)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]MatchRecord, error)
}

type service struct {
	jobs     job.Repository
	profiles profile.Repository
	history  HistoryRepository
}

func NewService(jobs job.Repository, profiles profile.Repository, history HistoryRepository) UseCase {
	return &service{jobs: jobs, profiles: profiles, history: history}
}

func (s *service) Analyze(ctx context.Context, userID, jobID uuid.UUID) (Report, error) {
	// Ownership check rides on the owner-scoped fetch: a foreign job surfaces
	// as not found.
	j, err := s.jobs.GetForOwner(ctx, userID, jobID)
	if err != nil {
		return Report{}, err
	}
	skills, err := s.profiles.ListSkills(ctx, userID)
	if err != nil {
		return Report{}, err
	}
	userSkills := make([]UserSkill, 0, len(skills))
	for _, sk := range skills {
		userSkills = append(userSkills, UserSkill{Name: sk.Name, Proficiency: sk.Proficiency})
	}

	rep := ComputeGap(userSkills, j.RequiredSkills)

	if _, err := s.history.Record(ctx, MatchRecord{
		ID:           uuid.New(),
		UserID:       userID,
		JobID:        jobID,
		MatchPercent: rep.MatchPercent,
		MatchedCount: len(rep.Matched),
		WeakCount:    len(rep.Weak),
		MissingCount: len(rep.Missing),
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return Report{}, err
	}
	return rep, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]MatchRecord, error) {
	return s.history.ListByUser(ctx, userID, limit, offset)
}
