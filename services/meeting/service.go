package meeting

import (
	"context"
	"time"

	meetingRepo "pulsecrm/database/repository/meeting"
	"pulsecrm/models"
	"pulsecrm/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderLead is how long before the start instant a reminder fires.
const ReminderLead = 15 * time.Minute

// DefaultMeetingService implements MeetingService on top of the meeting
// repository. Reminders are optional; a nil scheduler disables them.
type DefaultMeetingService struct {
	Repo      meetingRepo.MeetingRepository
	Reminders ReminderScheduler
}

// resolveRange turns the form's date/slot pairs into validated instants.
func resolveRange(input ScheduleInput) (start, end time.Time, err error) {
	start, err = ResolveSlot(input.StartDate, input.StartTime, time.UTC)
	if err != nil {
		return
	}
	end, err = ResolveSlot(input.EndDate, input.EndTime, time.UTC)
	if err != nil {
		return
	}
	if !end.After(start) {
		err = &ValidationError{Field: "endTime", Reason: "end must be after start"}
	}
	return
}

func (s *DefaultMeetingService) Schedule(ctx context.Context, input ScheduleInput, creatorID string) (*models.Meeting, error) {
	if input.Subject == "" {
		return nil, &ValidationError{Field: "subject", Reason: "subject is required"}
	}
	start, end, err := resolveRange(input)
	if err != nil {
		return nil, err
	}

	m := &models.Meeting{
		ID:          uuid.New().String(),
		Subject:     input.Subject,
		Description: input.Description,
		StartTime:   start,
		EndTime:     end,
		LeadID:      input.LeadID,
		ContactID:   input.ContactID,
		Status:      models.MeetingStatusScheduled,
		CreatedBy:   creatorID,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	s.scheduleReminder(m)
	return m, nil
}

func (s *DefaultMeetingService) Reschedule(ctx context.Context, id string, input ScheduleInput) (*models.Meeting, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{ID: id}
	}
	if input.Subject == "" {
		return nil, &ValidationError{Field: "subject", Reason: "subject is required"}
	}
	start, end, err := resolveRange(input)
	if err != nil {
		return nil, err
	}

	existing.Subject = input.Subject
	existing.Description = input.Description
	existing.StartTime = start
	existing.EndTime = end
	existing.LeadID = input.LeadID
	existing.ContactID = input.ContactID

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	s.scheduleReminder(existing)
	return existing, nil
}

func (s *DefaultMeetingService) Cancel(ctx context.Context, id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{ID: id}
	}
	return s.Repo.SetStatus(id, models.MeetingStatusCancelled)
}

func (s *DefaultMeetingService) Get(ctx context.Context, id string, now time.Time) (*models.Meeting, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, &NotFoundError{ID: id}
	}
	m.Status = m.DisplayStatus(now)
	return m, nil
}

func (s *DefaultMeetingService) List(ctx context.Context, now time.Time) ([]models.Meeting, error) {
	meetings, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range meetings {
		meetings[i].Status = meetings[i].DisplayStatus(now)
	}
	return meetings, nil
}

func (s *DefaultMeetingService) AttachJoinURL(ctx context.Context, id, joinURL string) error {
	return s.Repo.SetJoinURL(id, joinURL)
}

// scheduleReminder enqueues a reminder for the meeting; failures are logged
// and swallowed so scheduling never depends on the queue being up.
func (s *DefaultMeetingService) scheduleReminder(m *models.Meeting) {
	if s.Reminders == nil {
		return
	}
	fireAt := m.StartTime.Add(-ReminderLead)
	if fireAt.Before(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		MeetingID: m.ID,
		UserID:    m.CreatedBy,
		Subject:   m.Subject,
		StartTime: m.StartTime.Format(time.RFC3339),
	}
	if err := s.Reminders.ScheduleReminder(payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to enqueue meeting reminder",
			zap.String("meetingID", m.ID), zap.Error(err))
	}
}
