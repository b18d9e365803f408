package service

import (
	"context"
	"time"

	"kayan/internal/config"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// RetentionService purges visit rows past the retention horizon on a cron
// schedule. Contact messages and testimonials are kept indefinitely.
type RetentionService struct {
	visitRepo VisitRepositoryInterface
	cfg       *config.RetentionConfig
	cron      *cron.Cron
}

// NewRetentionService creates a new Retention Service
func NewRetentionService(visitRepo VisitRepositoryInterface, cfg *config.RetentionConfig) *RetentionService {
	return &RetentionService{
		visitRepo: visitRepo,
		cfg:       cfg,
		cron:      cron.New(),
	}
}

// Start registers the purge job and starts the scheduler. A disabled config
// is a no-op.
func (s *RetentionService) Start() error {
	if !s.cfg.Enabled {
		log.Info().Msg("Visit retention purge disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.Purge); err != nil {
		return err
	}
	s.cron.Start()

	log.Info().
		Str("schedule", s.cfg.Schedule).
		Int("days", s.cfg.Days).
		Msg("Visit retention purge scheduled")
	return nil
}

// Stop halts the scheduler, waiting for a running purge to finish
func (s *RetentionService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Purge deletes visits older than the configured horizon
func (s *RetentionService) Purge() {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.cfg.Days)

	deleted, err := s.visitRepo.DeleteVisitsBefore(context.Background(), cutoff)
	if err != nil {
		log.Error().Err(err).Time("cutoff", cutoff).Msg("Visit retention purge failed")
		return
	}

	log.Info().
		Int64("deleted", deleted).
		Time("cutoff", cutoff).
		Msg("Visit retention purge completed")
}
