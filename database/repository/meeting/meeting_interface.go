package meetingRepo

import (
	"time"

	"pulsecrm/models"
)

// MeetingRepository defines methods for meeting data access.
type MeetingRepository interface {
	// GetByID retrieves a meeting by its unique ID.
	GetByID(id string) (*models.Meeting, error)
	// GetAll retrieves all meetings ordered by start time.
	GetAll() ([]models.Meeting, error)
	// GetUpcoming retrieves scheduled meetings starting at or after the given instant.
	GetUpcoming(after time.Time) ([]models.Meeting, error)
	// Create inserts a new meeting record.
	Create(meeting *models.Meeting) error
	// Update modifies an existing meeting record.
	Update(meeting *models.Meeting) error
	// SetStatus updates only the meeting's stored status.
	SetStatus(id, status string) error
	// SetJoinURL attaches a provisioned join link to the meeting.
	SetJoinURL(id, joinURL string) error
}
