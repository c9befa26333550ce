package client

import (
	"context"
	"fmt"
	"time"

	"event-hub/core/config"
	"event-hub/core/constants"
	coredto "event-hub/core/dto"
	"event-hub/core/logger"
	"event-hub/core/queue"
	"event-hub/modules/stats/dto"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// HitRecorder records hits without blocking the caller. Failures are
// logged and never returned.
type HitRecorder interface {
	Record(ctx context.Context, uri, ip string)
}

// NewHit stamps a hit for app with the current UTC time.
func NewHit(app, uri, ip string) dto.EndpointHit {
	return dto.EndpointHit{
		App:       app,
		URI:       uri,
		IP:        ip,
		Timestamp: coredto.NewDateTime(time.Now()),
	}
}

// QueuedHitRecorder hands hits to the background worker.
type QueuedHitRecorder struct {
	enqueuer queue.Enqueuer
	app      string
	maxRetry int
}

func NewQueuedHitRecorder(enqueuer queue.Enqueuer, statsCfg config.StatsConfig, queueCfg config.QueueConfig) *QueuedHitRecorder {
	return &QueuedHitRecorder{
		enqueuer: enqueuer,
		app:      statsCfg.AppName,
		maxRetry: queueCfg.MaxRetry,
	}
}

func (r *QueuedHitRecorder) Record(ctx context.Context, uri, ip string) {
	task, err := NewHitTask(NewHit(r.app, uri, ip))
	if err != nil {
		logger.Error("QueuedHitRecorder:Record:NewTask", "uri", uri, "error", err)
		return
	}

	info, err := r.enqueuer.EnqueueContext(ctx, task,
		asynq.TaskID(uuid.NewString()),
		asynq.MaxRetry(r.maxRetry),
		asynq.Timeout(constants.DefaultTimeout),
	)
	if err != nil {
		logger.Error("QueuedHitRecorder:Record:Enqueue", "uri", uri, "error", err)
		return
	}
	logger.Debug("QueuedHitRecorder:Record:Enqueued", "uri", uri, "task_id", info.ID)
}

// DirectHitRecorder posts hits from a goroutine with its own deadline.
type DirectHitRecorder struct {
	client  StatsClient
	app     string
	timeout time.Duration
}

func NewDirectHitRecorder(client StatsClient, statsCfg config.StatsConfig) *DirectHitRecorder {
	timeout := statsCfg.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultStatsTimeout
	}
	return &DirectHitRecorder{client: client, app: statsCfg.AppName, timeout: timeout}
}

func (r *DirectHitRecorder) Record(ctx context.Context, uri, ip string) {
	hit := NewHit(r.app, uri, ip)
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		defer cancel()
		if err := r.client.RecordHit(ctx, hit); err != nil {
			logger.Warn("DirectHitRecorder:Record", "uri", hit.URI, "error", err)
		}
	}()
}

// NewHitTask builds the asynq task carrying hit.
func NewHitTask(hit dto.EndpointHit) (*asynq.Task, error) {
	payload, err := json.Marshal(hit)
	if err != nil {
		return nil, fmt.Errorf("encode hit task: %w", err)
	}
	return asynq.NewTask(constants.TaskRecordHit, payload), nil
}

// NewHitHandler forwards queued hits to the stats service.
func NewHitHandler(client StatsClient) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var hit dto.EndpointHit
		if err := json.Unmarshal(task.Payload(), &hit); err != nil {
			logger.Error("HitHandler:Decode", "error", err)
			return fmt.Errorf("decode hit task: %w: %w", err, asynq.SkipRetry)
		}
		if err := client.RecordHit(ctx, hit); err != nil {
			logger.Warn("HitHandler:RecordHit", "uri", hit.URI, "error", err)
			return err
		}
		return nil
	}
}
