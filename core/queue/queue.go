package queue

import (
	"context"
	"fmt"

	"event-hub/core/config"
	"event-hub/core/logger"

	"github.com/hibiken/asynq"
)

// Enqueuer is the producer side used by services.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Queue struct {
	Client *asynq.Client
	Server *asynq.Server
	Mux    *asynq.ServeMux
}

func NewQueue(redisCfg config.RedisConfig, queueCfg config.QueueConfig) *Queue {
	opt := asynq.RedisClientOpt{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: queueCfg.Concurrency,
		Logger:      asynqLogger{},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("Queue:Task:Failed", "type", task.Type(), "error", err)
		}),
	})

	return &Queue{
		Client: asynq.NewClient(opt),
		Server: server,
		Mux:    asynq.NewServeMux(),
	}
}

func (q *Queue) Handle(pattern string, handler asynq.Handler) {
	q.Mux.Handle(pattern, handler)
}

// Start runs the worker without blocking.
func (q *Queue) Start() error {
	if err := q.Server.Start(q.Mux); err != nil {
		return fmt.Errorf("start queue worker: %w", err)
	}
	logger.Info("Queue:Start:WorkerRunning")
	return nil
}

func (q *Queue) Shutdown() {
	q.Server.Shutdown()
	if err := q.Client.Close(); err != nil {
		logger.Warn("Queue:Shutdown:ClientClose", "error", err)
	}
}

type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug(fmt.Sprint(args...)) }
func (asynqLogger) Info(args ...any)  { logger.Info(fmt.Sprint(args...)) }
func (asynqLogger) Warn(args ...any)  { logger.Warn(fmt.Sprint(args...)) }
func (asynqLogger) Error(args ...any) { logger.Error(fmt.Sprint(args...)) }
func (asynqLogger) Fatal(args ...any) { logger.Error(fmt.Sprint(args...)) }
