package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo records the last call so tests can inspect what the service
// passed through after validation.
type fakeRepo struct {
	created    Job
	lastPatch  map[string]any
	lastStatus Status
	lastIDs    []uuid.UUID
	lastDays   int
	shifts     []DeadlineShift
}

func (f *fakeRepo) Create(_ context.Context, j Job) (Job, error) {
	j.ID = uuid.New()
	f.created = j
	return j, nil
}

func (f *fakeRepo) ListForOwner(_ context.Context, _ uuid.UUID, _ ListFilter) ([]Job, error) {
	return nil, nil
}

func (f *fakeRepo) GetForOwner(_ context.Context, _, _ uuid.UUID) (Job, error) {
	return Job{}, ErrNotFound
}

func (f *fakeRepo) UpdateForOwner(_ context.Context, _, _ uuid.UUID, patch map[string]any) (Job, error) {
	f.lastPatch = patch
	return Job{}, nil
}

func (f *fakeRepo) UpdateStatusForOwner(_ context.Context, _, _ uuid.UUID, status Status) (Job, error) {
	f.lastStatus = status
	return Job{Status: status}, nil
}

func (f *fakeRepo) ExtendDeadlinesForOwner(_ context.Context, _ uuid.UUID, ids []uuid.UUID, days int) ([]DeadlineShift, error) {
	f.lastIDs = ids
	f.lastDays = days
	return f.shifts, nil
}

func (f *fakeRepo) DeleteForOwner(_ context.Context, _, _ uuid.UUID) error { return nil }

func (f *fakeRepo) ListDueWithin(_ context.Context, _ int) ([]Job, error) { return nil, nil }

func TestCreateStartsAtInterested(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Job{
		Title:   "  Backend Engineer ",
		Company: "Acme",
		Status:  StatusOffer, // caller-supplied status must be ignored
		RequiredSkills: []string{
			"Go", "go", "PostgreSQL", "  ", "React",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusInterested, created.Status)
	assert.Equal(t, "Backend Engineer", created.Title)
	// lowercased, blanks and duplicates dropped
	assert.Equal(t, []string{"go", "postgresql", "react"}, created.RequiredSkills)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), Job{Company: "Acme"})
	assert.ErrorAs(t, err, new(ErrValidation))

	_, err = svc.Create(context.Background(), Job{Title: "Engineer"})
	assert.ErrorAs(t, err, new(ErrValidation))
}

func TestListRejectsBadFilter(t *testing.T) {
	svc := NewService(&fakeRepo{})
	owner := uuid.New()

	_, err := svc.List(context.Background(), owner, ListFilter{Status: "Ghosted"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.List(context.Background(), owner, ListFilter{SortBy: "urgency"})
	assert.ErrorAs(t, err, new(ErrValidation))

	_, err = svc.List(context.Background(), owner, ListFilter{Status: StatusApplied, SortBy: SortDeadline})
	assert.NoError(t, err)
}

func TestUpdateFiltersPatch(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), map[string]any{
		"title":    "Staff Engineer",
		"owner_id": uuid.New(), // not updatable
		"id":       uuid.New(), // not updatable
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Staff Engineer"}, repo.lastPatch)
}

func TestUpdateRejectsEmptyPatch(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), map[string]any{})
	assert.ErrorAs(t, err, new(ErrValidation))

	// a patch with only ignored keys is empty after filtering
	_, err = svc.Update(context.Background(), uuid.New(), uuid.New(), map[string]any{"owner_id": "x"})
	assert.ErrorAs(t, err, new(ErrValidation))
}

func TestUpdateValidatesStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), map[string]any{
		"status": Status("Daydreaming"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// a plain string carries the same weight as the typed form
	_, err = svc.Update(context.Background(), uuid.New(), uuid.New(), map[string]any{
		"status": "Daydreaming",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Update(context.Background(), uuid.New(), uuid.New(), map[string]any{
		"status": "Applied",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, repo.lastPatch["status"])

	// anything but a string-like status is rejected outright
	_, err = svc.Update(context.Background(), uuid.New(), uuid.New(), map[string]any{
		"status": 7,
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), "")
	assert.ErrorAs(t, err, new(ErrValidation))

	_, err = svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), Status("Hired"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), StatusPhoneScreen)
	require.NoError(t, err)
	assert.Equal(t, StatusPhoneScreen, repo.lastStatus)
}

func TestExtendDeadlines(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	owner := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	_, err := svc.ExtendDeadlines(context.Background(), owner, nil, 7)
	assert.ErrorAs(t, err, new(ErrValidation))

	_, err = svc.ExtendDeadlines(context.Background(), owner, ids, 0)
	assert.ErrorAs(t, err, new(ErrValidation))

	// negative shifts are allowed; a nil repo result becomes an empty slice
	shifts, err := svc.ExtendDeadlines(context.Background(), owner, ids, -3)
	require.NoError(t, err)
	assert.NotNil(t, shifts)
	assert.Empty(t, shifts)
	assert.Equal(t, -3, repo.lastDays)
	assert.Equal(t, ids, repo.lastIDs)
}
