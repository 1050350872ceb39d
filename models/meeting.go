package models

import "time"

// Meeting statuses. "completed" is derived at read time from the start
// instant and is never stored.
const (
	MeetingStatusScheduled = "scheduled"
	MeetingStatusCancelled = "cancelled"
	MeetingStatusCompleted = "completed"
)

// Meeting represents a scheduled meeting record.
// Invariant: EndTime is strictly after StartTime.
type Meeting struct {
	ID          string    `bson:"id" json:"id"`
	Subject     string    `bson:"subject" json:"subject"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	StartTime   time.Time `bson:"start_time" json:"start_time"`
	EndTime     time.Time `bson:"end_time" json:"end_time"`
	JoinURL     string    `bson:"join_url,omitempty" json:"join_url,omitempty"`
	LeadID      string    `bson:"lead_id,omitempty" json:"lead_id,omitempty"`
	ContactID   string    `bson:"contact_id,omitempty" json:"contact_id,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedBy   string    `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// DisplayStatus returns the status shown to clients: a scheduled meeting
// whose start instant has passed reads as completed.
func (m *Meeting) DisplayStatus(now time.Time) string {
	if m.Status == MeetingStatusScheduled && m.StartTime.Before(now) {
		return MeetingStatusCompleted
	}
	return m.Status
}

// Attendee is an ephemeral invitee built from a selected lead or contact.
// It is passed to the meeting provisioner and never persisted on its own.
type Attendee struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
