package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"dog-health-tracker/internal/platform/logger"
)

const DefaultSchedule = "0 7 * * *"

// Runner es lo que el scheduler dispara. *Job lo implementa.
type Runner interface {
	Run(ctx context.Context) (Report, error)
}

// Scheduler dispara el job según una expresión cron de 5 campos.
type Scheduler struct {
	cron    *cron.Cron
	runner  Runner
	log     logger.Logger
	timeout time.Duration
}

func NewScheduler(runner Runner, spec string, loc *time.Location, log logger.Logger) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSchedule
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		runner:  runner,
		log:     log.With(map[string]any{"component": "scheduler"}),
		timeout: 5 * time.Minute,
	}
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	report, err := s.runner.Run(ctx)
	if err != nil {
		s.log.Error("scheduled reminder pass failed", map[string]any{"err": err})
		return
	}
	s.log.Info("scheduled reminder pass done", map[string]any{"digests": len(report.Digests)})
}

// Next es la próxima ejecución (cero si no hay entradas).
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("reminder scheduler started", nil)
}

// Stop espera a que termine una pasada en curso o a que ctx venza.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
