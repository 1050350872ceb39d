package models

import "time"

// Notification is an in-app message shown on the dashboard, e.g. a
// meeting reminder produced by the background worker.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ReminderPayload is the asynq task payload for a meeting reminder.
type ReminderPayload struct {
	MeetingID string `json:"meetingId"`
	UserID    string `json:"userId"`
	Subject   string `json:"subject"`
	StartTime string `json:"startTime"` // RFC 3339
}
