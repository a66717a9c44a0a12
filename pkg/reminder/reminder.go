package reminder

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jobpilot/ats/pkg/job"
)

// warningWindowDays mirrors the upper bound of the deadline warning bucket.
const warningWindowDays = 7

// Sweeper periodically scans for jobs whose deadline is inside the warning
// window and logs a reminder line per job. It is a best-effort notifier; a
// failed sweep only logs and waits for the next tick.
type Sweeper struct {
	jobs job.Repository
	cron *cron.Cron
}

func NewSweeper(jobs job.Repository) *Sweeper {
	return &Sweeper{jobs: jobs, cron: cron.New()}
}

// Start registers the sweep at the given cron spec and starts the scheduler.
func (s *Sweeper) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	jobs, err := s.jobs.ListDueWithin(ctx, warningWindowDays)
	if err != nil {
		log.Printf("reminder sweep failed: %v", err)
		return
	}
	now := time.Now().UTC()
	for _, j := range jobs {
		days := job.DaysUntil(j.Deadline, now)
		if days == nil {
			continue
		}
		switch urgency := job.ClassifyUrgency(days); urgency {
		case job.UrgencyOverdue, job.UrgencyUrgent, job.UrgencyWarning:
			log.Printf("reminder: %q at %s is %s (%d day(s) to deadline), status %s",
				j.Title, j.Company, urgency, *days, j.Status)
		}
	}
}
