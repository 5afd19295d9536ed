package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"jobify/api/internal/repository"
)

// Scheduler runs the nightly purge of the shared demo account's jobs so the
// public playground resets to a clean slate.
type Scheduler struct {
	cron       *cron.Cron
	jobs       *repository.JobRepository
	demoUserID string
	log        zerolog.Logger
}

func NewScheduler(jobs *repository.JobRepository, demoUserID string, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithSeconds()),
		jobs:       jobs,
		demoUserID: demoUserID,
		log:        log,
	}
}

func (s *Scheduler) Start() error {
	if s.demoUserID == "" {
		return nil
	}

	if _, err := s.cron.AddFunc("0 0 0 * * *", s.purgeDemoJobs); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits briefly for a running purge to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) purgeDemoJobs() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.jobs.DeleteByOwner(ctx, s.demoUserID)
	if err != nil {
		s.log.Error().Err(err).Msg("demo purge failed")
		return
	}
	s.log.Info().Int("removed", removed).Msg("demo account jobs purged")
}
