package crm

import (
	"time"

	"pulsecrm/models"
)

// MeetingOptions holds the selection lists for the scheduling form.
type MeetingOptions struct {
	Leads    []models.Lead    `json:"leads"`
	Contacts []models.Contact `json:"contacts"`
}

// DashboardSummary aggregates per-module counts for the dashboard cards.
// Handlers drop the cards the caller's role may not see.
type DashboardSummary struct {
	LeadsByStatus    map[string]int            `json:"leadsByStatus,omitempty"`
	ContactCount     int64                     `json:"contactCount,omitempty"`
	AccountCount     int64                     `json:"accountCount,omitempty"`
	Pipeline         []models.DealStageSummary `json:"pipeline,omitempty"`
	OpenTasks        int                       `json:"openTasks,omitempty"`
	UpcomingMeetings int                       `json:"upcomingMeetings,omitempty"`
}

// CRMService defines lead, contact, account, deal and task operations.
type CRMService interface {
	// Leads.
	CreateLead(lead *models.Lead) (*models.Lead, error)
	UpdateLead(lead *models.Lead) (*models.Lead, error)
	DeleteLead(id string) error
	GetLead(id string) (*models.Lead, error)
	ListLeads() ([]models.Lead, error)
	// ConvertLead turns a lead into a contact and marks the lead converted.
	ConvertLead(id string) (*models.Contact, error)

	// Contacts.
	CreateContact(contact *models.Contact) (*models.Contact, error)
	UpdateContact(contact *models.Contact) (*models.Contact, error)
	DeleteContact(id string) error
	GetContact(id string) (*models.Contact, error)
	ListContacts() ([]models.Contact, error)

	// Accounts.
	CreateAccount(account *models.Account) (*models.Account, error)
	UpdateAccount(account *models.Account) (*models.Account, error)
	DeleteAccount(id string) error
	GetAccount(id string) (*models.Account, error)
	ListAccounts() ([]models.Account, error)

	// Deals.
	CreateDeal(deal *models.Deal) (*models.Deal, error)
	UpdateDeal(deal *models.Deal) (*models.Deal, error)
	DeleteDeal(id string) error
	GetDeal(id string) (*models.Deal, error)
	ListDeals() ([]models.Deal, error)
	MoveDealStage(id, stage string) error

	// Tasks.
	CreateTask(task *models.Task) (*models.Task, error)
	UpdateTask(task *models.Task) (*models.Task, error)
	DeleteTask(id string) error
	GetTask(id string) (*models.Task, error)
	ListTasks() ([]models.Task, error)
	CompleteTask(id string) error

	// GetMeetingOptions fetches the lead and contact lists concurrently.
	GetMeetingOptions() (*MeetingOptions, error)
	// Summary aggregates counts for the dashboard. The meetings card counts
	// scheduled meetings starting at or after the given instant.
	Summary(openTaskAssignee string, now time.Time) (*DashboardSummary, error)
}
