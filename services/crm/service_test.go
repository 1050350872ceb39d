// File: pulsecrm/services/crm/service_test.go
package crm

import (
	"testing"
	"time"

	accountRepo "pulsecrm/database/repository/account"
	contactRepo "pulsecrm/database/repository/contact"
	dealRepo "pulsecrm/database/repository/deal"
	leadRepo "pulsecrm/database/repository/lead"
	meetingRepo "pulsecrm/database/repository/meeting"
	taskRepo "pulsecrm/database/repository/task"
	"pulsecrm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fakes embed the repository interfaces and override only the methods
// Summary reads; anything else panics with a nil receiver if reached.

type summaryLeadRepo struct {
	leadRepo.LeadRepository
	counts map[string]int
}

func (r *summaryLeadRepo) CountByStatus() (map[string]int, error) { return r.counts, nil }

type summaryContactRepo struct {
	contactRepo.ContactRepository
	count int64
}

func (r *summaryContactRepo) Count() (int64, error) { return r.count, nil }

type summaryAccountRepo struct {
	accountRepo.AccountRepository
	count int64
}

func (r *summaryAccountRepo) Count() (int64, error) { return r.count, nil }

type summaryDealRepo struct {
	dealRepo.DealRepository
	stages []models.DealStageSummary
}

func (r *summaryDealRepo) StageSummary() ([]models.DealStageSummary, error) { return r.stages, nil }

type summaryTaskRepo struct {
	taskRepo.TaskRepository
	open []models.Task
}

func (r *summaryTaskRepo) GetOpenForAssignee(assigneeID string) ([]models.Task, error) {
	return r.open, nil
}

type summaryMeetingRepo struct {
	meetingRepo.MeetingRepository
	meetings []models.Meeting
}

func (r *summaryMeetingRepo) GetUpcoming(after time.Time) ([]models.Meeting, error) {
	out := make([]models.Meeting, 0)
	for _, m := range r.meetings {
		if m.Status == models.MeetingStatusScheduled && !m.StartTime.Before(after) {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestSummaryCountsUpcomingMeetingsOnly(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &DefaultCRMService{
		Leads:    &summaryLeadRepo{counts: map[string]int{models.LeadStatusNew: 3}},
		Contacts: &summaryContactRepo{count: 5},
		Accounts: &summaryAccountRepo{count: 2},
		Deals:    &summaryDealRepo{stages: []models.DealStageSummary{{Stage: models.DealStageProposal, Count: 1}}},
		Tasks:    &summaryTaskRepo{open: []models.Task{{ID: "t-1"}}},
		Meetings: &summaryMeetingRepo{meetings: []models.Meeting{
			{ID: "m-past", StartTime: now.Add(-time.Hour), Status: models.MeetingStatusScheduled},
			{ID: "m-cancelled", StartTime: now.Add(time.Hour), Status: models.MeetingStatusCancelled},
			{ID: "m-upcoming", StartTime: now.Add(time.Hour), Status: models.MeetingStatusScheduled},
			{ID: "m-next-week", StartTime: now.AddDate(0, 0, 7), Status: models.MeetingStatusScheduled},
		}},
	}

	summary, err := svc.Summary("user-1", now)
	require.NoError(t, err)

	// Past and cancelled meetings stay off the dashboard card.
	assert.Equal(t, 2, summary.UpcomingMeetings)
	assert.Equal(t, 3, summary.LeadsByStatus[models.LeadStatusNew])
	assert.Equal(t, int64(5), summary.ContactCount)
	assert.Equal(t, int64(2), summary.AccountCount)
	assert.Equal(t, 1, summary.OpenTasks)
	require.Len(t, summary.Pipeline, 1)
	assert.Equal(t, models.DealStageProposal, summary.Pipeline[0].Stage)
}
