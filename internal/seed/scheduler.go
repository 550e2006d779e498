package seed

import (
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler periodically re-reads the seed file so a re-seeded dataset is
// picked up without a restart.
type Scheduler struct {
	provider *Provider
	onReload func()
	c        *cron.Cron
}

// NewScheduler builds a scheduler around the provider. onReload runs after
// every successful reload (the API uses it to invalidate the graph cache);
// it may be nil.
func NewScheduler(provider *Provider, onReload func()) *Scheduler {
	return &Scheduler{provider: provider, onReload: onReload}
}

// Start registers the reload job on the given cron spec and starts the
// scheduler.
func (s *Scheduler) Start(spec string) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := s.provider.Reload(); err != nil {
			log.Printf("[seed] scheduled reload failed: %v", err)
			return
		}
		if s.onReload != nil {
			s.onReload()
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	s.c = c
	log.Printf("[seed] reload scheduler started (%s)", spec)
	return nil
}

// Stop stops the scheduler. Safe to call when Start was never called.
func (s *Scheduler) Stop() {
	if s.c != nil {
		s.c.Stop()
	}
}
