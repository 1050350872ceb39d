package models

import "time"

// Task represents a follow-up item on the dashboard.
type Task struct {
	ID         string     `bson:"id" json:"id"`
	Title      string     `bson:"title" json:"title"`
	Notes      string     `bson:"notes,omitempty" json:"notes,omitempty"`
	DueDate    *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Done       bool       `bson:"done" json:"done"`
	AssigneeID string     `bson:"assignee_id" json:"assignee_id"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
}
