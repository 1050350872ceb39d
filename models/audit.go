package models

import "time"

// AuditRecord describes a security-relevant action. Writes are best-effort:
// failing to persist one never fails the action that produced it.
type AuditRecord struct {
	ID            string    `bson:"id" json:"id"`
	Action        string    `bson:"action" json:"action"` // e.g. "meeting.provisioned"
	ResourceType  string    `bson:"resource_type" json:"resource_type"`
	ResourceID    string    `bson:"resource_id" json:"resource_id"`
	Subject       string    `bson:"subject,omitempty" json:"subject,omitempty"`
	AttendeeCount int       `bson:"attendee_count,omitempty" json:"attendee_count,omitempty"`
	ActorID       string    `bson:"actor_id" json:"actor_id"`
	JoinURL       string    `bson:"join_url,omitempty" json:"join_url,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
