// File: pulsecrm/handlers/meeting_test.go
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulsecrm/services/teams"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvisioner struct {
	result *teams.ProvisionResult
	err    error
}

func (f *fakeProvisioner) CreateMeeting(ctx context.Context, req teams.ProvisionRequest) (*teams.ProvisionResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func provisionRequest(t *testing.T, h *MeetingHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userEmail", "organizer@example.com")
	c.Set("userID", "user-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/meetings/provision", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.ProvisionTeamsMeetingHandler(c)
	return w
}

const provisionBody = `{
	"subject": "Quarterly review",
	"attendees": [{"email": "alice@example.com", "name": "Alice"}],
	"startTime": "2025-06-01T09:00:00Z",
	"endTime": "2025-06-01T10:00:00Z"
}`

func TestProvisionTeamsMeeting(t *testing.T) {
	h := &MeetingHandler{Provisioner: &fakeProvisioner{
		result: &teams.ProvisionResult{ID: "meeting-1", JoinURL: "https://teams.example.com/join/meeting-1"},
	}}

	w := provisionRequest(t, h, provisionBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "meeting-1")
}

func TestProvisionTeamsMeetingInvalidRequestIs400(t *testing.T) {
	h := &MeetingHandler{Provisioner: &fakeProvisioner{
		err: &teams.InvalidRequestError{Reason: "subject is required"},
	}}

	w := provisionRequest(t, h, provisionBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProvisionTeamsMeetingFailuresAre500(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"missing credentials", &teams.ConfigurationError{Missing: []string{"MS_TENANT_ID"}}},
		{"token exchange rejected", &teams.AuthProviderError{StatusCode: http.StatusBadRequest}},
		{"organizer not found", &teams.OrganizerNotFoundError{Email: "organizer@example.com"}},
		{"creation rejected", &teams.MeetingCreationError{Kind: teams.CreationKindAuth, StatusCode: http.StatusUnauthorized}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &MeetingHandler{Provisioner: &fakeProvisioner{err: tc.err}}

			w := provisionRequest(t, h, provisionBody)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
		})
	}
}
