// File: pulsecrm/services/teams/client_test.go
package teams

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"pulsecrm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	mu      sync.Mutex
	records []models.AuditRecord
	err     error
}

func (r *fakeRecorder) Record(record models.AuditRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, record)
	return nil
}

// graphStub fakes the identity provider and Graph endpoints the client talks
// to, counting calls so tests can assert the chain aborted where expected.
type graphStub struct {
	tokenCalls  int
	lookupCalls int
	createCalls int

	tokenStatus  int
	lookupStatus int
	createStatus int
}

func newGraphStub() *graphStub {
	return &graphStub{
		tokenStatus:  http.StatusOK,
		lookupStatus: http.StatusOK,
		createStatus: http.StatusCreated,
	}
}

func (g *graphStub) serve(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/tenant-1/oauth2/v2.0/token", func(w http.ResponseWriter, r *http.Request) {
		g.tokenCalls++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostFormValue("grant_type"))
		assert.Equal(t, "https://graph.microsoft.com/.default", r.PostFormValue("scope"))
		w.WriteHeader(g.tokenStatus)
		if g.tokenStatus == http.StatusOK {
			fmt.Fprint(w, `{"access_token":"token-abc"}`)
		}
	})
	mux.HandleFunc("/users/organizer@example.com", func(w http.ResponseWriter, r *http.Request) {
		g.lookupCalls++
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		w.WriteHeader(g.lookupStatus)
		if g.lookupStatus == http.StatusOK {
			fmt.Fprint(w, `{"id":"org-id-1"}`)
		}
	})
	mux.HandleFunc("/users/org-id-1/onlineMeetings", func(w http.ResponseWriter, r *http.Request) {
		g.createCalls++
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "everyone", payload["allowedPresenters"])

		w.WriteHeader(g.createStatus)
		if g.createStatus == http.StatusCreated {
			fmt.Fprint(w, `{
				"id": "meeting-1",
				"joinWebUrl": "https://teams.example.com/join/meeting-1",
				"subject": "Quarterly review",
				"startDateTime": "2025-06-01T09:00:00Z",
				"endDateTime": "2025-06-01T10:00:00Z",
				"joinInformation": {"content": "dial-in details"}
			}`)
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(server *httptest.Server, recorder *fakeRecorder) *Client {
	c := NewClient("tenant-1", "client-1", "secret-1", server.URL, server.URL, recorder)
	c.HTTP = server.Client()
	return c
}

func validRequest() ProvisionRequest {
	return ProvisionRequest{
		Subject: "Quarterly review",
		Attendees: []models.Attendee{
			{Email: "alice@example.com", Name: "Alice"},
		},
		StartTime:      time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		OrganizerEmail: "organizer@example.com",
		ActorID:        "user-1",
	}
}

func TestCreateMeeting(t *testing.T) {
	stub := newGraphStub()
	recorder := &fakeRecorder{}
	client := newTestClient(stub.serve(t), recorder)

	result, err := client.CreateMeeting(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "meeting-1", result.ID)
	assert.Equal(t, "https://teams.example.com/join/meeting-1", result.JoinURL)
	assert.Equal(t, "dial-in details", result.JoinInformation)

	assert.Equal(t, 1, stub.tokenCalls)
	assert.Equal(t, 1, stub.lookupCalls)
	assert.Equal(t, 1, stub.createCalls)

	require.Len(t, recorder.records, 1)
	record := recorder.records[0]
	assert.Equal(t, "meeting.provisioned", record.Action)
	assert.Equal(t, "meeting-1", record.ResourceID)
	assert.Equal(t, 1, record.AttendeeCount)
	assert.Equal(t, "user-1", record.ActorID)
}

func TestCreateMeetingNoAttendees(t *testing.T) {
	stub := newGraphStub()
	client := newTestClient(stub.serve(t), &fakeRecorder{})

	req := validRequest()
	req.Attendees = nil

	result, err := client.CreateMeeting(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "meeting-1", result.ID)
}

func TestCreateMeetingAuditFailureIsSwallowed(t *testing.T) {
	stub := newGraphStub()
	recorder := &fakeRecorder{err: fmt.Errorf("audit store down")}
	client := newTestClient(stub.serve(t), recorder)

	result, err := client.CreateMeeting(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "meeting-1", result.ID)
}

func TestCreateMeetingValidation(t *testing.T) {
	stub := newGraphStub()
	client := newTestClient(stub.serve(t), &fakeRecorder{})

	cases := []struct {
		name   string
		mutate func(*ProvisionRequest)
	}{
		{"empty subject", func(r *ProvisionRequest) { r.Subject = "   " }},
		{"zero start", func(r *ProvisionRequest) { r.StartTime = time.Time{} }},
		{"end before start", func(r *ProvisionRequest) { r.EndTime = r.StartTime.Add(-time.Hour) }},
		{"missing organizer", func(r *ProvisionRequest) { r.OrganizerEmail = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := client.CreateMeeting(context.Background(), req)
			var irErr *InvalidRequestError
			require.ErrorAs(t, err, &irErr)
		})
	}

	// Rejected requests never reach the network.
	assert.Equal(t, 0, stub.tokenCalls)
}

func TestCreateMeetingMissingCredentials(t *testing.T) {
	stub := newGraphStub()
	client := newTestClient(stub.serve(t), &fakeRecorder{})
	client.ClientSecret = ""

	_, err := client.CreateMeeting(context.Background(), validRequest())
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Missing, "MS_CLIENT_SECRET")
	assert.Equal(t, 0, stub.tokenCalls)
}

func TestCreateMeetingTokenExchangeRejected(t *testing.T) {
	stub := newGraphStub()
	stub.tokenStatus = http.StatusBadRequest
	client := newTestClient(stub.serve(t), &fakeRecorder{})

	_, err := client.CreateMeeting(context.Background(), validRequest())
	var authErr *AuthProviderError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusBadRequest, authErr.StatusCode)
	assert.Equal(t, 0, stub.lookupCalls)
}

func TestCreateMeetingOrganizerNotFound(t *testing.T) {
	stub := newGraphStub()
	stub.lookupStatus = http.StatusNotFound
	client := newTestClient(stub.serve(t), &fakeRecorder{})

	_, err := client.CreateMeeting(context.Background(), validRequest())
	var nfErr *OrganizerNotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "organizer@example.com", nfErr.Email)
	assert.Equal(t, 0, stub.createCalls)
}

func TestCreateMeetingCreationErrors(t *testing.T) {
	cases := []struct {
		status int
		kind   string
	}{
		{http.StatusUnauthorized, CreationKindAuth},
		{http.StatusForbidden, CreationKindAuth},
		{http.StatusNotFound, CreationKindUnlicensed},
		{http.StatusInternalServerError, CreationKindGeneric},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("status %d", tc.status), func(t *testing.T) {
			stub := newGraphStub()
			stub.createStatus = tc.status
			recorder := &fakeRecorder{}
			client := newTestClient(stub.serve(t), recorder)

			_, err := client.CreateMeeting(context.Background(), validRequest())
			var mcErr *MeetingCreationError
			require.ErrorAs(t, err, &mcErr)
			assert.Equal(t, tc.kind, mcErr.Kind)
			assert.Equal(t, tc.status, mcErr.StatusCode)
			assert.Empty(t, recorder.records)
		})
	}
}
