package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpilot/ats/pkg/job"
)

// newTestJobRepo connects to the database named by TEST_DATABASE_URL and
// skips the test when it is not set.
func newTestJobRepo(t *testing.T) *JobRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	repo, err := NewJobRepository(pool)
	require.NoError(t, err)
	return repo
}

func createTestJob(t *testing.T, repo *JobRepository, owner uuid.UUID, deadline *time.Time) job.Job {
	t.Helper()
	j, err := repo.Create(context.Background(), job.Job{
		OwnerID:  owner,
		Title:    "Backend Engineer",
		Company:  "Acme",
		Status:   job.StatusInterested,
		Deadline: deadline,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.DeleteForOwner(context.Background(), owner, j.ID) })
	return j
}

func TestUpdateStatusTimestampRefreshesOnlyOnChange(t *testing.T) {
	repo := newTestJobRepo(t)
	ctx := context.Background()
	owner := uuid.New()
	created := createTestJob(t, repo, owner, nil)

	// same status: timestamp must survive untouched
	same, err := repo.UpdateStatusForOwner(ctx, owner, created.ID, job.StatusInterested)
	require.NoError(t, err)
	assert.True(t, same.StatusUpdatedAt.Equal(created.StatusUpdatedAt),
		"status repeated, timestamp moved from %v to %v", created.StatusUpdatedAt, same.StatusUpdatedAt)

	// new status: timestamp must move
	moved, err := repo.UpdateStatusForOwner(ctx, owner, created.ID, job.StatusApplied)
	require.NoError(t, err)
	assert.Equal(t, job.StatusApplied, moved.Status)
	assert.False(t, moved.StatusUpdatedAt.Equal(created.StatusUpdatedAt),
		"status changed but timestamp stayed at %v", created.StatusUpdatedAt)
}

func TestUpdateForOwnerStatusTimestamp(t *testing.T) {
	repo := newTestJobRepo(t)
	ctx := context.Background()
	owner := uuid.New()
	created := createTestJob(t, repo, owner, nil)

	// a patch repeating the stored status alongside other fields keeps
	// the timestamp
	same, err := repo.UpdateForOwner(ctx, owner, created.ID, map[string]any{
		"status": job.StatusInterested,
		"notes":  "ping recruiter",
	})
	require.NoError(t, err)
	assert.Equal(t, "ping recruiter", same.Notes)
	assert.True(t, same.StatusUpdatedAt.Equal(created.StatusUpdatedAt))

	// a patch without status never touches the timestamp
	noStatus, err := repo.UpdateForOwner(ctx, owner, created.ID, map[string]any{
		"title": "Staff Engineer",
	})
	require.NoError(t, err)
	assert.True(t, noStatus.StatusUpdatedAt.Equal(created.StatusUpdatedAt))

	moved, err := repo.UpdateForOwner(ctx, owner, created.ID, map[string]any{
		"status": job.StatusOffer,
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusOffer, moved.Status)
	assert.False(t, moved.StatusUpdatedAt.Equal(created.StatusUpdatedAt))
}

func TestExtendDeadlinesNullStaysNull(t *testing.T) {
	repo := newTestJobRepo(t)
	ctx := context.Background()
	owner := uuid.New()

	deadline := time.Now().UTC().Add(48 * time.Hour)
	dated := createTestJob(t, repo, owner, &deadline)
	undated := createTestJob(t, repo, owner, nil)
	foreign := createTestJob(t, repo, uuid.New(), &deadline)

	shifts, err := repo.ExtendDeadlinesForOwner(ctx, owner,
		[]uuid.UUID{dated.ID, undated.ID, foreign.ID}, 5)
	require.NoError(t, err)

	// the foreign row does not match the owner scope
	require.Len(t, shifts, 2)
	byID := map[uuid.UUID]job.DeadlineShift{}
	for _, sh := range shifts {
		byID[sh.ID] = sh
	}

	shifted, ok := byID[dated.ID]
	require.True(t, ok)
	require.NotNil(t, shifted.NewDeadline)
	assert.WithinDuration(t, dated.Deadline.AddDate(0, 0, 5), *shifted.NewDeadline, 2*time.Hour)

	// NULL deadline plus an interval stays NULL
	untouched, ok := byID[undated.ID]
	require.True(t, ok)
	assert.Nil(t, untouched.NewDeadline)

	// the foreign row kept its original deadline
	kept, err := repo.GetForOwner(ctx, foreign.OwnerID, foreign.ID)
	require.NoError(t, err)
	require.NotNil(t, kept.Deadline)
	assert.WithinDuration(t, deadline, *kept.Deadline, time.Second)
}
