package research

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpilot/ats/pkg/job"
)

func TestEstimateSalary(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		location string
		years    int
		wantMin  int
		wantMax  int
	}{
		{"unknown role default band", "Barista", "", 0, 60000, 100000},
		{"engineer base band", "Backend Engineer", "", 0, 95000, 145000},
		{"first matching band wins", "Staff Engineer", "", 0, 160000, 210000},
		{"location factor", "Backend Engineer", "San Francisco, CA", 0, 128250, 195750},
		{"experience bump", "Backend Engineer", "", 10, 123500, 188500},
		{"experience capped at fifteen years", "Backend Engineer", "", 40, 137750, 210250},
		{"negative years treated as zero", "Backend Engineer", "", -3, 95000, 145000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := EstimateSalary(tt.title, tt.location, tt.years)
			// the band is scaled in float and truncated to int, so allow
			// a one-dollar wobble
			assert.InDelta(t, tt.wantMin, min, 1)
			assert.InDelta(t, tt.wantMax, max, 1)
		})
	}
}

// salaryJobRepo serves a fixed list; only ListForOwner matters here.
type salaryJobRepo struct {
	job.Repository
	jobs []job.Job
}

func (r *salaryJobRepo) ListForOwner(_ context.Context, _ uuid.UUID, _ job.ListFilter) ([]job.Job, error) {
	return r.jobs, nil
}

func TestSalaryEstimateComparesTrackedJobs(t *testing.T) {
	low, high, mid := 80000, 150000, 120000
	repo := &salaryJobRepo{jobs: []job.Job{
		{SalaryMin: &low, SalaryMax: &mid},
		{SalaryMin: &mid, SalaryMax: &high},
		{}, // no salary data, excluded from the sample
	}}
	svc := NewSalaryService(repo)

	est, err := svc.Estimate(context.Background(), uuid.New(), "Backend Engineer", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, est.TrackedSampleCount)
	require.NotNil(t, est.TrackedSalaryMin)
	require.NotNil(t, est.TrackedSalaryMax)
	assert.Equal(t, low, *est.TrackedSalaryMin)
	assert.Equal(t, high, *est.TrackedSalaryMax)
}

func TestSalaryEstimateRequiresTitle(t *testing.T) {
	svc := NewSalaryService(&salaryJobRepo{})
	_, err := svc.Estimate(context.Background(), uuid.New(), "   ", "", 0)
	assert.ErrorAs(t, err, new(ErrValidation))
}
