// File: pulsecrm/services/meeting/service_test.go
package meeting

import (
	"context"
	"testing"
	"time"

	"pulsecrm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMeetingRepo struct {
	meetings map[string]*models.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[string]*models.Meeting)}
}

func (r *fakeMeetingRepo) GetByID(id string) (*models.Meeting, error) {
	m, ok := r.meetings[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMeetingRepo) GetAll() ([]models.Meeting, error) {
	out := make([]models.Meeting, 0, len(r.meetings))
	for _, m := range r.meetings {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMeetingRepo) GetUpcoming(after time.Time) ([]models.Meeting, error) {
	out := make([]models.Meeting, 0)
	for _, m := range r.meetings {
		if m.Status == models.MeetingStatusScheduled && !m.StartTime.Before(after) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMeetingRepo) Create(m *models.Meeting) error {
	cp := *m
	r.meetings[m.ID] = &cp
	return nil
}

func (r *fakeMeetingRepo) Update(m *models.Meeting) error {
	cp := *m
	r.meetings[m.ID] = &cp
	return nil
}

func (r *fakeMeetingRepo) SetStatus(id, status string) error {
	r.meetings[id].Status = status
	return nil
}

func (r *fakeMeetingRepo) SetJoinURL(id, joinURL string) error {
	r.meetings[id].JoinURL = joinURL
	return nil
}

type fakeReminders struct {
	payloads []models.ReminderPayload
}

func (f *fakeReminders) ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

func futureInput() ScheduleInput {
	day := time.Now().UTC().AddDate(0, 0, 7).Format(DateLayout)
	return ScheduleInput{
		Subject:   "Demo call",
		StartDate: day,
		StartTime: "09:00",
		EndDate:   day,
		EndTime:   "10:00",
		LeadID:    "lead-1",
	}
}

func TestSchedule(t *testing.T) {
	repo := newFakeMeetingRepo()
	reminders := &fakeReminders{}
	svc := &DefaultMeetingService{Repo: repo, Reminders: reminders}

	m, err := svc.Schedule(context.Background(), futureInput(), "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, models.MeetingStatusScheduled, m.Status)
	assert.Equal(t, "user-1", m.CreatedBy)
	assert.True(t, m.EndTime.After(m.StartTime))

	require.Len(t, reminders.payloads, 1)
	assert.Equal(t, m.ID, reminders.payloads[0].MeetingID)
}

func TestScheduleRejectsInvertedRange(t *testing.T) {
	svc := &DefaultMeetingService{Repo: newFakeMeetingRepo()}

	input := futureInput()
	input.EndTime = "08:00"

	_, err := svc.Schedule(context.Background(), input, "user-1")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endTime", verr.Field)
}

func TestScheduleRejectsMissingSubject(t *testing.T) {
	svc := &DefaultMeetingService{Repo: newFakeMeetingRepo()}

	input := futureInput()
	input.Subject = ""

	_, err := svc.Schedule(context.Background(), input, "user-1")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "subject", verr.Field)
}

func TestRescheduleUnknownMeeting(t *testing.T) {
	svc := &DefaultMeetingService{Repo: newFakeMeetingRepo()}

	_, err := svc.Reschedule(context.Background(), "nope", futureInput())
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestCancel(t *testing.T) {
	repo := newFakeMeetingRepo()
	svc := &DefaultMeetingService{Repo: repo}

	m, err := svc.Schedule(context.Background(), futureInput(), "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), m.ID))

	stored, err := repo.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCancelled, stored.Status)
}

func TestGetDerivesCompletedStatus(t *testing.T) {
	repo := newFakeMeetingRepo()
	svc := &DefaultMeetingService{Repo: repo}

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&models.Meeting{
		ID:        "m-1",
		Subject:   "Kickoff",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    models.MeetingStatusScheduled,
	}))

	// Viewed after the start instant the meeting reads as completed.
	got, err := svc.Get(context.Background(), "m-1", start.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCompleted, got.Status)

	// Viewed before, it is still scheduled. The stored status never changes.
	got, err = svc.Get(context.Background(), "m-1", start.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusScheduled, got.Status)
	assert.Equal(t, models.MeetingStatusScheduled, repo.meetings["m-1"].Status)
}

func TestGetDoesNotCompleteCancelled(t *testing.T) {
	repo := newFakeMeetingRepo()
	svc := &DefaultMeetingService{Repo: repo}

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&models.Meeting{
		ID:        "m-2",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    models.MeetingStatusCancelled,
	}))

	got, err := svc.Get(context.Background(), "m-2", start.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCancelled, got.Status)
}
