// File: pulsecrm/cron/worker_test.go
package cron

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	meetingRepo "pulsecrm/database/repository/meeting"
	notificationRepo "pulsecrm/database/repository/notification"
	"pulsecrm/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reminderMeetingRepo struct {
	meetingRepo.MeetingRepository
	meeting *models.Meeting
}

func (r *reminderMeetingRepo) GetByID(id string) (*models.Meeting, error) {
	if r.meeting == nil || r.meeting.ID != id {
		return nil, nil
	}
	return r.meeting, nil
}

type reminderNotificationRepo struct {
	notificationRepo.NotificationRepository
	created []models.Notification
}

func (r *reminderNotificationRepo) Create(n *models.Notification) error {
	r.created = append(r.created, *n)
	return nil
}

// reminderTask builds the task exactly as ScheduleReminder enqueues it, so the
// handler sees the same bytes that went over the queue.
func reminderTask(t *testing.T, payload models.ReminderPayload) *asynq.Task {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(TypeMeetingReminder, data)
}

func scheduledMeeting(start time.Time) *models.Meeting {
	return &models.Meeting{
		ID:        "m-1",
		Subject:   "Demo call",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    models.MeetingStatusScheduled,
		CreatedBy: "user-1",
	}
}

func TestReminderPayloadRoundTrip(t *testing.T) {
	payload := models.ReminderPayload{
		MeetingID: "m-1",
		UserID:    "user-1",
		Subject:   "Demo call",
		StartTime: "2025-06-01T09:00:00Z",
	}

	task := reminderTask(t, payload)
	assert.Equal(t, TypeMeetingReminder, task.Type())

	var decoded models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}

func TestHandleReminderWritesNotification(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	meetings := &reminderMeetingRepo{meeting: scheduledMeeting(start)}
	notifications := &reminderNotificationRepo{}

	task := reminderTask(t, models.ReminderPayload{
		MeetingID: "m-1",
		UserID:    "user-1",
		Subject:   "Demo call",
		StartTime: start.Format(time.RFC3339),
	})

	handler := handleReminderTask(meetings, notifications)
	require.NoError(t, handler(context.Background(), task))

	require.Len(t, notifications.created, 1)
	n := notifications.created[0]
	assert.Equal(t, "user-1", n.UserID)
	assert.NotEmpty(t, n.ID)
	assert.Contains(t, n.Body, "Demo call")
	assert.Contains(t, n.Body, start.Format(time.RFC3339))
}

func TestHandleReminderDropsCancelledMeeting(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	cancelled := scheduledMeeting(start)
	cancelled.Status = models.MeetingStatusCancelled

	meetings := &reminderMeetingRepo{meeting: cancelled}
	notifications := &reminderNotificationRepo{}

	task := reminderTask(t, models.ReminderPayload{MeetingID: "m-1", UserID: "user-1"})

	// Cancelled after the reminder was enqueued: dropped without error so
	// asynq does not retry it.
	handler := handleReminderTask(meetings, notifications)
	require.NoError(t, handler(context.Background(), task))
	assert.Empty(t, notifications.created)
}

func TestHandleReminderDropsDeletedMeeting(t *testing.T) {
	meetings := &reminderMeetingRepo{}
	notifications := &reminderNotificationRepo{}

	task := reminderTask(t, models.ReminderPayload{MeetingID: "m-gone", UserID: "user-1"})

	handler := handleReminderTask(meetings, notifications)
	require.NoError(t, handler(context.Background(), task))
	assert.Empty(t, notifications.created)
}

func TestHandleReminderRejectsMalformedPayload(t *testing.T) {
	handler := handleReminderTask(&reminderMeetingRepo{}, &reminderNotificationRepo{})

	task := asynq.NewTask(TypeMeetingReminder, []byte("not json"))
	assert.Error(t, handler(context.Background(), task))
}
