package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the background news refresh: one run at startup, then
// one per interval, forever. A failed cycle is logged and the next one
// still happens.
type Scheduler struct {
	cron *cron.Cron
	job  func()
}

func New(interval time.Duration, job func()) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, job: job}

	spec := fmt.Sprintf("@every %s", interval)
	if _, err := c.AddFunc(spec, s.RunOnce); err != nil {
		return nil, fmt.Errorf("schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start kicks off the first cycle immediately so the idle page has
// headlines as soon as possible, then hands off to cron.
func (s *Scheduler) Start() {
	go s.RunOnce()
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce executes a single refresh cycle, containing any panic.
func (s *Scheduler) RunOnce() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("refresh cycle panic: %v", r)
		}
	}()
	s.job()
}
