package crm

import (
	"sync"
	"time"

	accountRepo "pulsecrm/database/repository/account"
	contactRepo "pulsecrm/database/repository/contact"
	dealRepo "pulsecrm/database/repository/deal"
	leadRepo "pulsecrm/database/repository/lead"
	meetingRepo "pulsecrm/database/repository/meeting"
	taskRepo "pulsecrm/database/repository/task"
	"pulsecrm/models"

	"github.com/google/uuid"
)

// DefaultCRMService implements CRMService on the entity repositories.
type DefaultCRMService struct {
	Leads    leadRepo.LeadRepository
	Contacts contactRepo.ContactRepository
	Accounts accountRepo.AccountRepository
	Deals    dealRepo.DealRepository
	Tasks    taskRepo.TaskRepository
	Meetings meetingRepo.MeetingRepository
}

// Leads.

func (s *DefaultCRMService) CreateLead(lead *models.Lead) (*models.Lead, error) {
	if lead.Name == "" || lead.Email == "" {
		return nil, &ValidationError{Reason: "lead name and email are required"}
	}
	lead.ID = uuid.New().String()
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if err := s.Leads.Create(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *DefaultCRMService) UpdateLead(lead *models.Lead) (*models.Lead, error) {
	if err := s.Leads.Update(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *DefaultCRMService) DeleteLead(id string) error {
	return s.Leads.Delete(id)
}

func (s *DefaultCRMService) GetLead(id string) (*models.Lead, error) {
	lead, err := s.Leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, &NotFoundError{Kind: "lead", ID: id}
	}
	return lead, nil
}

func (s *DefaultCRMService) ListLeads() ([]models.Lead, error) {
	return s.Leads.GetAll()
}

// ConvertLead creates a contact from a lead and marks the lead converted.
func (s *DefaultCRMService) ConvertLead(id string) (*models.Contact, error) {
	lead, err := s.GetLead(id)
	if err != nil {
		return nil, err
	}
	if lead.Status == models.LeadStatusConverted {
		return nil, &ValidationError{Reason: "lead is already converted"}
	}

	contact := &models.Contact{
		ID:      uuid.New().String(),
		Name:    lead.Name,
		Email:   lead.Email,
		Phone:   lead.Phone,
		OwnerID: lead.OwnerID,
	}
	if err := s.Contacts.Create(contact); err != nil {
		return nil, err
	}
	if err := s.Leads.SetStatus(id, models.LeadStatusConverted); err != nil {
		return nil, err
	}
	return contact, nil
}

// Contacts.

func (s *DefaultCRMService) CreateContact(contact *models.Contact) (*models.Contact, error) {
	if contact.Name == "" || contact.Email == "" {
		return nil, &ValidationError{Reason: "contact name and email are required"}
	}
	contact.ID = uuid.New().String()
	if err := s.Contacts.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *DefaultCRMService) UpdateContact(contact *models.Contact) (*models.Contact, error) {
	if err := s.Contacts.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *DefaultCRMService) DeleteContact(id string) error {
	return s.Contacts.Delete(id)
}

func (s *DefaultCRMService) GetContact(id string) (*models.Contact, error) {
	contact, err := s.Contacts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, &NotFoundError{Kind: "contact", ID: id}
	}
	return contact, nil
}

func (s *DefaultCRMService) ListContacts() ([]models.Contact, error) {
	return s.Contacts.GetAll()
}

// Accounts.

func (s *DefaultCRMService) CreateAccount(account *models.Account) (*models.Account, error) {
	if account.Name == "" {
		return nil, &ValidationError{Reason: "account name is required"}
	}
	account.ID = uuid.New().String()
	if err := s.Accounts.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *DefaultCRMService) UpdateAccount(account *models.Account) (*models.Account, error) {
	if err := s.Accounts.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *DefaultCRMService) DeleteAccount(id string) error {
	return s.Accounts.Delete(id)
}

func (s *DefaultCRMService) GetAccount(id string) (*models.Account, error) {
	account, err := s.Accounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &NotFoundError{Kind: "account", ID: id}
	}
	return account, nil
}

func (s *DefaultCRMService) ListAccounts() ([]models.Account, error) {
	return s.Accounts.GetAll()
}

// Deals.

func (s *DefaultCRMService) CreateDeal(deal *models.Deal) (*models.Deal, error) {
	if deal.Title == "" {
		return nil, &ValidationError{Reason: "deal title is required"}
	}
	deal.ID = uuid.New().String()
	if deal.Stage == "" {
		deal.Stage = models.DealStageProspecting
	}
	if err := s.Deals.Create(deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *DefaultCRMService) UpdateDeal(deal *models.Deal) (*models.Deal, error) {
	if err := s.Deals.Update(deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *DefaultCRMService) DeleteDeal(id string) error {
	return s.Deals.Delete(id)
}

func (s *DefaultCRMService) GetDeal(id string) (*models.Deal, error) {
	deal, err := s.Deals.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, &NotFoundError{Kind: "deal", ID: id}
	}
	return deal, nil
}

func (s *DefaultCRMService) ListDeals() ([]models.Deal, error) {
	return s.Deals.GetAll()
}

func (s *DefaultCRMService) MoveDealStage(id, stage string) error {
	switch stage {
	case models.DealStageProspecting, models.DealStageProposal,
		models.DealStageNegotiation, models.DealStageWon, models.DealStageLost:
	default:
		return &ValidationError{Reason: "unknown deal stage: " + stage}
	}
	return s.Deals.SetStage(id, stage)
}

// Tasks.

func (s *DefaultCRMService) CreateTask(task *models.Task) (*models.Task, error) {
	if task.Title == "" {
		return nil, &ValidationError{Reason: "task title is required"}
	}
	task.ID = uuid.New().String()
	if err := s.Tasks.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *DefaultCRMService) UpdateTask(task *models.Task) (*models.Task, error) {
	if err := s.Tasks.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *DefaultCRMService) DeleteTask(id string) error {
	return s.Tasks.Delete(id)
}

func (s *DefaultCRMService) GetTask(id string) (*models.Task, error) {
	task, err := s.Tasks.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, &NotFoundError{Kind: "task", ID: id}
	}
	return task, nil
}

func (s *DefaultCRMService) ListTasks() ([]models.Task, error) {
	return s.Tasks.GetAll()
}

func (s *DefaultCRMService) CompleteTask(id string) error {
	return s.Tasks.SetDone(id, true)
}

// GetMeetingOptions fetches the lead and contact lists as an unordered
// parallel pair; the two fetches are independent and share no state.
func (s *DefaultCRMService) GetMeetingOptions() (*MeetingOptions, error) {
	var (
		wg         sync.WaitGroup
		leads      []models.Lead
		contacts   []models.Contact
		leadErr    error
		contactErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		leads, leadErr = s.Leads.GetAll()
	}()
	go func() {
		defer wg.Done()
		contacts, contactErr = s.Contacts.GetAll()
	}()
	wg.Wait()

	if leadErr != nil {
		return nil, leadErr
	}
	if contactErr != nil {
		return nil, contactErr
	}
	return &MeetingOptions{Leads: leads, Contacts: contacts}, nil
}

// Summary aggregates per-module counts for the dashboard cards.
func (s *DefaultCRMService) Summary(openTaskAssignee string, now time.Time) (*DashboardSummary, error) {
	leadCounts, err := s.Leads.CountByStatus()
	if err != nil {
		return nil, err
	}
	contactCount, err := s.Contacts.Count()
	if err != nil {
		return nil, err
	}
	accountCount, err := s.Accounts.Count()
	if err != nil {
		return nil, err
	}
	pipeline, err := s.Deals.StageSummary()
	if err != nil {
		return nil, err
	}
	openTasks, err := s.Tasks.GetOpenForAssignee(openTaskAssignee)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.Meetings.GetUpcoming(now)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		LeadsByStatus:    leadCounts,
		ContactCount:     contactCount,
		AccountCount:     accountCount,
		Pipeline:         pipeline,
		OpenTasks:        len(openTasks),
		UpcomingMeetings: len(upcoming),
	}, nil
}
