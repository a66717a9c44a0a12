package research

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jobpilot/ats/pkg/job"
	"github.com/jobpilot/ats/pkg/nlp"
)

// SalaryEstimate is a deterministic, heuristic salary band in USD/year.
type SalaryEstimate struct {
	Title              string `json:"title"`
	Location           string `json:"location,omitempty"`
	YearsOfExperience  int    `json:"yearsOfExperience"`
	EstimateMin        int    `json:"estimateMin"`
	EstimateMax        int    `json:"estimateMax"`
	TrackedSalaryMin   *int   `json:"trackedSalaryMin,omitempty"`
	TrackedSalaryMax   *int   `json:"trackedSalaryMax,omitempty"`
	TrackedSampleCount int    `json:"trackedSampleCount"`
}

// roleBands map role keywords (normalized) to a base band. First match wins,
// checked in declaration order.
var roleBands = []struct {
	keyword  string
	min, max int
}{
	{"principal", 170000, 230000},
	{"staff", 160000, 210000},
	{"architect", 150000, 200000},
	{"manager", 130000, 180000},
	{"devops", 110000, 160000},
	{"data scientist", 115000, 165000},
	{"machine learning", 125000, 180000},
	{"security", 105000, 155000},
	{"engineer", 95000, 145000},
	{"developer", 90000, 140000},
	{"designer", 75000, 115000},
	{"analyst", 70000, 110000},
}

// locationFactors scale the base band. Matched by substring on the
// normalized location; default factor is 1.0.
var locationFactors = []struct {
	keyword string
	factor  float64
}{
	{"san francisco", 1.35},
	{"bay area", 1.35},
	{"new york", 1.25},
	{"seattle", 1.2},
	{"boston", 1.15},
	{"london", 1.1},
	{"austin", 1.05},
	{"remote", 1.0},
}

const defaultBandMin, defaultBandMax = 60000, 100000

// EstimateSalary produces a deterministic band from role keyword, location
// multiplier and an experience bump of 3% per year (capped at 15 years).
func EstimateSalary(title, location string, years int) (int, int) {
	normTitle := nlp.Normalize(title)
	min, max := defaultBandMin, defaultBandMax
	for _, band := range roleBands {
		if strings.Contains(normTitle, band.keyword) {
			min, max = band.min, band.max
			break
		}
	}

	factor := 1.0
	normLoc := nlp.Normalize(location)
	for _, lf := range locationFactors {
		if strings.Contains(normLoc, lf.keyword) {
			factor = lf.factor
			break
		}
	}

	if years < 0 {
		years = 0
	}
	if years > 15 {
		years = 15
	}
	experience := 1.0 + 0.03*float64(years)

	scale := factor * experience
	return int(float64(min) * scale), int(float64(max) * scale)
}

// SalaryUseCase estimates pay for a role and compares it with the salary
// ranges of the caller's tracked jobs with a matching title.
type SalaryUseCase interface {
	Estimate(ctx context.Context, userID uuid.UUID, title, location string, years int) (SalaryEstimate, error)
}

type salaryService struct {
	jobs job.Repository
}

func NewSalaryService(jobs job.Repository) SalaryUseCase {
	return &salaryService{jobs: jobs}
}

func (s *salaryService) Estimate(ctx context.Context, userID uuid.UUID, title, location string, years int) (SalaryEstimate, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return SalaryEstimate{}, ErrValidation("title is required")
	}

	min, max := EstimateSalary(title, location, years)
	est := SalaryEstimate{
		Title:             title,
		Location:          location,
		YearsOfExperience: years,
		EstimateMin:       min,
		EstimateMax:       max,
	}

	tracked, err := s.jobs.ListForOwner(ctx, userID, job.ListFilter{Search: title})
	if err != nil {
		return SalaryEstimate{}, err
	}
	for _, j := range tracked {
		if j.SalaryMin == nil && j.SalaryMax == nil {
			continue
		}
		est.TrackedSampleCount++
		if j.SalaryMin != nil && (est.TrackedSalaryMin == nil || *j.SalaryMin < *est.TrackedSalaryMin) {
			v := *j.SalaryMin
			est.TrackedSalaryMin = &v
		}
		if j.SalaryMax != nil && (est.TrackedSalaryMax == nil || *j.SalaryMax > *est.TrackedSalaryMax) {
			v := *j.SalaryMax
			est.TrackedSalaryMax = &v
		}
	}
	return est, nil
}
