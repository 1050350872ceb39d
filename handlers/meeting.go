package handlers

import (
	"errors"
	"net/http"
	"time"

	"pulsecrm/models"
	"pulsecrm/services/crm"
	"pulsecrm/services/meeting"
	"pulsecrm/services/teams"
	"pulsecrm/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MeetingHandler exposes meeting scheduling, slot availability and Teams
// provisioning endpoints.
type MeetingHandler struct {
	Meetings    meeting.MeetingService
	CRM         crm.CRMService
	Provisioner teams.Provisioner
}

func NewMeetingHandler(meetings meeting.MeetingService, crmSvc crm.CRMService, provisioner teams.Provisioner) *MeetingHandler {
	return &MeetingHandler{Meetings: meetings, CRM: crmSvc, Provisioner: provisioner}
}

func meetingError(c *gin.Context, err error) {
	var notFound *meeting.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}
	var invalid *meeting.ValidationError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// ListMeetingsHandler returns all meetings with derived display statuses.
func (h *MeetingHandler) ListMeetingsHandler(c *gin.Context) {
	meetings, err := h.Meetings.List(c.Request.Context(), time.Now().UTC())
	if err != nil {
		meetingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

// GetMeetingHandler returns a single meeting by ID.
func (h *MeetingHandler) GetMeetingHandler(c *gin.Context) {
	m, err := h.Meetings.Get(c.Request.Context(), c.Param("id"), time.Now().UTC())
	if err != nil {
		meetingError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// ScheduleMeetingHandler creates a meeting from the scheduling form.
func (h *MeetingHandler) ScheduleMeetingHandler(c *gin.Context) {
	var input meeting.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	m, err := h.Meetings.Schedule(c.Request.Context(), input, c.GetString("userID"))
	if err != nil {
		meetingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// RescheduleMeetingHandler updates a meeting's details and time range.
func (h *MeetingHandler) RescheduleMeetingHandler(c *gin.Context) {
	var input meeting.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	m, err := h.Meetings.Reschedule(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		meetingError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// CancelMeetingHandler marks a meeting cancelled.
func (h *MeetingHandler) CancelMeetingHandler(c *gin.Context) {
	if err := h.Meetings.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		meetingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meeting cancelled"})
}

// SlotsHandler returns the selectable time slots for a candidate date.
// Query params: date (required, 2006-01-02), field ("start" or "end"),
// and for the end field the chosen startDate and startTime.
func (h *MeetingHandler) SlotsHandler(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	date, err := time.ParseInLocation(meeting.DateLayout, dateStr, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + dateStr})
		return
	}

	now := time.Now().UTC()
	var slots []string
	if c.DefaultQuery("field", "start") == "end" {
		startDate := date
		if s := c.Query("startDate"); s != "" {
			startDate, err = time.ParseInLocation(meeting.DateLayout, s, time.UTC)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate: " + s})
				return
			}
		}
		slots = meeting.EndSlots(date, now, startDate, c.Query("startTime"))
	} else {
		slots = meeting.StartSlots(date, now)
	}

	if len(slots) == 0 {
		c.JSON(http.StatusOK, gin.H{"slots": []string{}, "message": "no valid time available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ResolveTimesHandler resolves the form's date/slot pairs to absolute
// instants. When the start side changed and the end no longer follows the
// start, the end is advanced to exactly one hour after the new start; a
// direct end edit is returned as-is and validated on submit instead.
func (h *MeetingHandler) ResolveTimesHandler(c *gin.Context) {
	var input struct {
		meeting.ScheduleInput
		Changed string `json:"changed"` // "start" or "end"
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	start, err := meeting.ResolveSlot(input.StartDate, input.StartTime, time.UTC)
	if err != nil {
		meetingError(c, err)
		return
	}
	end, err := meeting.ResolveSlot(input.EndDate, input.EndTime, time.UTC)
	if err != nil {
		meetingError(c, err)
		return
	}

	if input.Changed == "start" {
		end = meeting.AdvanceEnd(start, end)
	}
	c.JSON(http.StatusOK, gin.H{
		"startTime": start.Format(time.RFC3339),
		"endTime":   end.Format(time.RFC3339),
	})
}

// MeetingOptionsHandler returns the lead and contact selection lists for
// the scheduling form.
func (h *MeetingHandler) MeetingOptionsHandler(c *gin.Context) {
	options, err := h.CRM.GetMeetingOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, options)
}

// ProvisionTeamsMeetingHandler creates a hosted Teams meeting and, when a
// meeting record is referenced, attaches the join link to it. A failed
// attempt leaves the record's join_url empty; the user retries explicitly.
func (h *MeetingHandler) ProvisionTeamsMeetingHandler(c *gin.Context) {
	var input struct {
		Subject   string            `json:"subject"`
		Attendees []models.Attendee `json:"attendees"`
		StartTime time.Time         `json:"startTime"`
		EndTime   time.Time         `json:"endTime"`
		MeetingID string            `json:"meetingId,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	req := teams.ProvisionRequest{
		Subject:        input.Subject,
		Attendees:      input.Attendees,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		OrganizerEmail: c.GetString("userEmail"),
		ActorID:        c.GetString("userID"),
	}

	result, err := h.Provisioner.CreateMeeting(c.Request.Context(), req)
	if err != nil {
		var invalid *teams.InvalidRequestError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if input.MeetingID != "" {
		if err := h.Meetings.AttachJoinURL(c.Request.Context(), input.MeetingID, result.JoinURL); err != nil {
			utils.GetLogger().Warn("provisioned meeting but failed to attach join url",
				zap.String("meetingID", input.MeetingID), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, result)
}
