package models

import "time"

// Lead statuses.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusLost      = "lost"
	LeadStatusConverted = "converted"
)

// Lead represents a prospective customer captured by the CRM.
type Lead struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company   string    `bson:"company,omitempty" json:"company,omitempty"`
	Source    string    `bson:"source,omitempty" json:"source,omitempty"` // e.g. "web", "referral"
	Status    string    `bson:"status" json:"status"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
