package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"pawmart/config"
	"pawmart/models"

	"github.com/hibiken/asynq"
)

// TypeAppointmentExpire releases a provisional reservation whose payment
// never arrived inside the hold window.
const TypeAppointmentExpire = "appointment:expire"

// holdReleaser is the slice of the booking engine the worker needs.
type holdReleaser interface {
	ReleaseIfUnpaid(ctx context.Context, appointmentID string) error
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// ExpiryScheduler enqueues delayed expiry tasks for new reservations.
type ExpiryScheduler struct {
	client *asynq.Client
	ttl    time.Duration
}

// NewExpiryScheduler builds a scheduler using the configured hold TTL.
func NewExpiryScheduler() *ExpiryScheduler {
	return &ExpiryScheduler{
		client: asynq.NewClient(redisOpts()),
		ttl:    time.Duration(config.AppConfig.PendingHoldTTLMin) * time.Minute,
	}
}

// ScheduleRelease enqueues the expiry task for one appointment, to run
// after the hold TTL elapses. Appointments paid before then make the task
// a no-op.
func (s *ExpiryScheduler) ScheduleRelease(ctx context.Context, appointmentID string) error {
	payload, err := json.Marshal(models.ExpirePayload{AppointmentID: appointmentID})
	if err != nil {
		return fmt.Errorf("failed to marshal expiry payload: %w", err)
	}
	task := asynq.NewTask(TypeAppointmentExpire, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessIn(s.ttl)); err != nil {
		return fmt.Errorf("failed to enqueue expiry task: %w", err)
	}
	return nil
}

// InitExpiryWorker runs the async worker in background.
func InitExpiryWorker(releaser holdReleaser) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentExpire, handleExpireTask(releaser))

	// Start async worker with retry logic
	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleExpireTask(releaser holdReleaser) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ExpiryHandler] invalid payload: %v", err)
			return err
		}

		if err := releaser.ReleaseIfUnpaid(ctx, p.AppointmentID); err != nil {
			log.Printf("[ExpiryHandler] failed to release appointment %s: %v", p.AppointmentID, err)
			return err
		}
		return nil
	}
}
