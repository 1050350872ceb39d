package meeting

import (
	"context"
	"time"

	"pulsecrm/models"
)

// ScheduleInput is the scheduling-form payload: a calendar date plus an
// "HH:MM" slot for each side of the range.
type ScheduleInput struct {
	Subject     string `json:"subject"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate"`
	StartTime   string `json:"startTime"`
	EndDate     string `json:"endDate"`
	EndTime     string `json:"endTime"`
	LeadID      string `json:"leadId,omitempty"`
	ContactID   string `json:"contactId,omitempty"`
}

// MeetingService defines meeting scheduling operations.
type MeetingService interface {
	// Schedule validates and persists a new meeting.
	Schedule(ctx context.Context, input ScheduleInput, creatorID string) (*models.Meeting, error)
	// Reschedule updates an existing meeting's details and time range.
	Reschedule(ctx context.Context, id string, input ScheduleInput) (*models.Meeting, error)
	// Cancel marks a meeting cancelled.
	Cancel(ctx context.Context, id string) error
	// Get returns a single meeting with its derived display status.
	Get(ctx context.Context, id string, now time.Time) (*models.Meeting, error)
	// List returns all meetings with derived display statuses.
	List(ctx context.Context, now time.Time) ([]models.Meeting, error)
	// AttachJoinURL stores a provisioned join link on the meeting record.
	AttachJoinURL(ctx context.Context, id, joinURL string) error
}

// ReminderScheduler enqueues a reminder to fire shortly before a meeting
// starts. Enqueue failures are logged by the caller, never surfaced.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error
}
