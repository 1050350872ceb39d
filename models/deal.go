package models

import "time"

// Deal pipeline stages.
const (
	DealStageProspecting = "prospecting"
	DealStageProposal    = "proposal"
	DealStageNegotiation = "negotiation"
	DealStageWon         = "won"
	DealStageLost        = "lost"
)

// Deal represents an opportunity in the sales pipeline.
type Deal struct {
	ID         string     `bson:"id" json:"id"`
	Title      string     `bson:"title" json:"title"`
	Stage      string     `bson:"stage" json:"stage"`
	Value      float64    `bson:"value" json:"value"`
	AccountID  string     `bson:"account_id,omitempty" json:"account_id,omitempty"`
	ContactID  string     `bson:"contact_id,omitempty" json:"contact_id,omitempty"`
	OwnerID    string     `bson:"owner_id" json:"owner_id"`
	CloseDate  *time.Time `bson:"close_date,omitempty" json:"close_date,omitempty"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
}

// DealStageSummary aggregates pipeline value and count per stage for the dashboard.
type DealStageSummary struct {
	Stage string  `bson:"_id" json:"stage"`
	Count int     `bson:"count" json:"count"`
	Value float64 `bson:"value" json:"value"`
}
