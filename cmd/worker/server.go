package main

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	"craftmarket-backend/internal/infrastructure/queue"
	"craftmarket-backend/pkg/container"
)

// asynqServer wraps asynq.Server for shutdown handling.
type asynqServer struct {
	*asynq.Server
}

// setupAsynqServer registers task handlers and starts the worker.
func setupAsynqServer(c *container.Container) *asynqServer {
	mux := asynq.NewServeMux()

	reconcileHandler := queue.NewReconcileHandler(c.ProductRepo, c.Aggregator)
	mux.Handle(queue.TypeReconcileRatings, reconcileHandler)

	srv := asynq.NewServer(
		redisOpt(c),
		asynq.Config{
			Concurrency: c.Config.Worker.Concurrency,
			Queues: map[string]int{
				queue.QueueDefault: 10,
				queue.QueueLow:     5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
				log.Printf("[Asynq] Task failed - Type: %s, Error: %v", task.Type(), err)
			}),
		},
	)

	go func() {
		log.Println("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed: %v", err)
		}
	}()

	return &asynqServer{Server: srv}
}

func (s *asynqServer) Shutdown() {
	log.Println("[Worker] Shutting down...")
	s.Server.Shutdown()
	log.Println("[Worker] Stopped")
}

func redisOpt(c *container.Container) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	}
}
