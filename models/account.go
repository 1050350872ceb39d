package models

import "time"

// Account represents a customer organization.
type Account struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Industry  string    `bson:"industry,omitempty" json:"industry,omitempty"`
	Website   string    `bson:"website,omitempty" json:"website,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
