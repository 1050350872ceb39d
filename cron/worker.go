package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"pulsecrm/config"
	meetingRepo "pulsecrm/database/repository/meeting"
	notificationRepo "pulsecrm/database/repository/notification"
	"pulsecrm/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeMeetingReminder = "meeting:reminder"

// ReminderClient enqueues meeting reminder tasks. It implements
// meeting.ReminderScheduler.
type ReminderClient struct {
	client *asynq.Client
}

// NewReminderClient creates an asynq client against the reminder queue DB.
func NewReminderClient() *ReminderClient {
	return &ReminderClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder task to run at the given instant.
func (c *ReminderClient) ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeMeetingReminder, data)
	if _, err := c.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(meetings meetingRepo.MeetingRepository, notifications notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMeetingReminder, handleReminderTask(meetings, notifications))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(meetings meetingRepo.MeetingRepository, notifications notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		// Re-check the record: a reminder for a meeting that was cancelled
		// or deleted in the meantime is dropped silently.
		m, err := meetings.GetByID(p.MeetingID)
		if err != nil {
			return err
		}
		if m == nil || m.Status != models.MeetingStatusScheduled {
			log.Printf("[ReminderHandler] dropping reminder for meeting %s (gone or not scheduled)", p.MeetingID)
			return nil
		}

		n := &models.Notification{
			ID:     uuid.New().String(),
			UserID: p.UserID,
			Title:  "Upcoming meeting",
			Body:   fmt.Sprintf("%s starts at %s", p.Subject, p.StartTime),
		}
		if err := notifications.Create(n); err != nil {
			log.Printf("[ReminderHandler] failed to write notification: %v", err)
			return err
		}
		return nil
	}
}
