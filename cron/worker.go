package cron

import (
	"context"
	"fmt"
	"time"

	"justnest/config"
	"justnest/services/notification"
	"justnest/services/tasks"

	"github.com/avast/retry-go/v4"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection for the relay queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitRelayWorker starts the background worker that republishes queued
// notifications through relay. The worker stops when ctx is done.
func InitRelayWorker(ctx context.Context, relay notification.Broadcaster, logger *zap.Logger) error {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger:   logger.Sugar(),
			LogLevel: asynq.WarnLevel,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRelayNotification, handleRelayTask(relay, logger))

	err := retry.Do(
		func() error { return srv.Start(mux) },
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(2*time.Second),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("Relay worker failed to start, retrying", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return fmt.Errorf("relay worker: %w", err)
	}
	logger.Info("Relay worker started")

	go func() {
		<-ctx.Done()
		srv.Shutdown()
		logger.Info("Relay worker stopped")
	}()
	return nil
}

func handleRelayTask(relay notification.Broadcaster, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := tasks.ParseRelayTask(task)
		if err != nil {
			logger.Error("Invalid relay payload", zap.Error(err))
			return fmt.Errorf("invalid relay payload: %v: %w", err, asynq.SkipRetry)
		}

		if err := relay.Broadcast(ctx, n); err != nil {
			logger.Warn("Relay publish failed", zap.String("room", n.Room), zap.String("event", n.Event), zap.Error(err))
			return err
		}
		return nil
	}
}
