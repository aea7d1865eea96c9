package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gatherly/config"
	auditRepo "gatherly/database/repository/audit"
	"gatherly/models"
	"gatherly/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewReminderClient returns an asynq client on the reminder queue; the event
// service uses it to enqueue one task per generated instance.
func NewReminderClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(audits auditRepo.AuditRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeEventReminder, handleReminderTask(audits))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		zap.L().Info("Starting event reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				zap.L().Error("Reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					log.Fatal("reminder worker: max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(audits auditRepo.AuditRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			zap.L().Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		zap.L().Info("Event reminder due",
			zap.String("eventID", p.EventID),
			zap.String("communityID", p.CommunityID),
			zap.String("title", p.Title),
			zap.Time("startsAt", p.StartsAt),
			zap.Int("seriesIndex", p.SeriesIndex),
		)

		_, err := audits.Record(ctx, models.AuditEntry{
			ActorID:    "system",
			Action:     "event.reminder",
			EntityType: "event",
			EntityID:   p.EventID,
			Detail: map[string]string{
				"title":    p.Title,
				"startsAt": p.StartsAt.Format(time.RFC3339),
			},
		})
		if err != nil {
			zap.L().Error("Failed to record reminder audit entry", zap.Error(err))
		}
		return err
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			zap.L().Warn("Reminder queue Redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
