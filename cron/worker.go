package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"rosterly/config"
	"rosterly/models"
	"rosterly/services/roster"
)

// TypeScheduleGenerate is the task type for queued schedule generation.
const TypeScheduleGenerate = "schedule:generate"

// GenerateTaskPayload is the queued generation request. An empty WorkerIDs
// means the full worker pool.
type GenerateTaskPayload struct {
	Options   roster.GenerateOptions `json:"options"`
	WorkerIDs []string               `json:"workerIds,omitempty"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Enqueuer submits background schedule generation tasks.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer creates a task client against the queue Redis database.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(redisOpts())}
}

// EnqueueScheduleGeneration queues one generation run and returns the task id.
func (e *Enqueuer) EnqueueScheduleGeneration(opts roster.GenerateOptions, workerIDs []string) (string, error) {
	payload, err := json.Marshal(GenerateTaskPayload{Options: opts, WorkerIDs: workerIDs})
	if err != nil {
		return "", fmt.Errorf("failed to encode task payload: %w", err)
	}
	task := asynq.NewTask(TypeScheduleGenerate, payload)
	info, err := e.client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(2*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to enqueue task: %w", err)
	}
	return info.ID, nil
}

// Close releases the underlying queue connection.
func (e *Enqueuer) Close() error {
	return e.client.Close()
}

// InitScheduleWorker runs the async worker in the background. Generation
// failures are not retried when they are fatal placement errors; those need
// an availability change, not another attempt.
func InitScheduleWorker(rosterSvc roster.RosterService) *asynq.Server {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeScheduleGenerate, handleScheduleTask(rosterSvc))

	go func() {
		logger := zap.L()
		logger.Info("starting schedule worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("schedule worker stopped", zap.Error(err))
		}
	}()
	return srv
}

func handleScheduleTask(rosterSvc roster.RosterService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := zap.L()
		var p GenerateTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid schedule task payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %w", asynq.SkipRetry)
		}
		var doc *models.ScheduleDocument
		var err error
		if len(p.WorkerIDs) > 0 {
			doc, err = rosterSvc.GenerateScheduleForWorkerIDs(p.WorkerIDs, p.Options)
		} else {
			doc, err = rosterSvc.GenerateSchedule(p.Options)
		}
		if err != nil {
			if _, fatal := roster.AsWorkStudyError(err); fatal {
				logger.Warn("queued generation aborted", zap.Error(err))
				return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
			}
			logger.Error("queued generation failed", zap.Error(err))
			return err
		}
		logger.Info("queued generation complete", zap.String("scheduleId", doc.ID))
		return nil
	}
}
