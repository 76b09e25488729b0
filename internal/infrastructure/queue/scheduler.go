package queue

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"craftmarket-backend/internal/config"
)

// Scheduler registers the periodic jobs on asynq's cron scheduler.
type Scheduler struct {
	scheduler *asynq.Scheduler
	cfg       config.WorkerConfig
}

func NewScheduler(redisOpt asynq.RedisClientOpt, cfg config.WorkerConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		cfg:       cfg,
	}
}

// RegisterJobs wires up all cron entries.
func (s *Scheduler) RegisterJobs() error {
	if err := s.registerReconcileRatingsJob(); err != nil {
		return err
	}
	return nil
}

// registerReconcileRatingsJob schedules the rating aggregate sweep.
// Hourly by default; the cadence only bounds how long crash-induced
// drift can persist, since every review mutation recomputes inline.
func (s *Scheduler) registerReconcileRatingsJob() error {
	task, err := NewReconcileRatingsTask()
	if err != nil {
		return fmt.Errorf("failed to build reconcile task: %w", err)
	}

	_, err = s.scheduler.Register(
		s.cfg.ReconcileSchedule,
		task,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("failed to register reconcile job: %w", err)
	}

	log.Info().
		Str("schedule", s.cfg.ReconcileSchedule).
		Msg("Registered rating reconciliation job")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
