package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pulsecrm/models"
	"pulsecrm/services/audit"
	"pulsecrm/utils"

	"go.uber.org/zap"
)

// ProvisionRequest describes the online meeting to create.
type ProvisionRequest struct {
	Subject        string            `json:"subject"`
	Attendees      []models.Attendee `json:"attendees"`
	StartTime      time.Time         `json:"startTime"`
	EndTime        time.Time         `json:"endTime"`
	OrganizerEmail string            `json:"-"`
	ActorID        string            `json:"-"`
}

// ProvisionResult is the created meeting as reported by the provider.
type ProvisionResult struct {
	ID              string `json:"id"`
	JoinURL         string `json:"joinUrl"`
	JoinInformation string `json:"joinInformation"`
	Subject         string `json:"subject"`
	StartDateTime   string `json:"startDateTime"`
	EndDateTime     string `json:"endDateTime"`
}

// Provisioner creates hosted online meetings.
type Provisioner interface {
	CreateMeeting(ctx context.Context, req ProvisionRequest) (*ProvisionResult, error)
}

// Client provisions Teams online meetings through the Microsoft identity
// platform and Graph API. The three calls run strictly in sequence; the
// first failure aborts the chain.
type Client struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	LoginBaseURL string // e.g. https://login.microsoftonline.com
	GraphBaseURL string // e.g. https://graph.microsoft.com/v1.0
	HTTP         *http.Client
	Audit        audit.Recorder
}

// NewClient builds a provisioning client with the transport timeout applied.
func NewClient(tenantID, clientID, clientSecret, loginBaseURL, graphBaseURL string, recorder audit.Recorder) *Client {
	return &Client{
		TenantID:     tenantID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		LoginBaseURL: loginBaseURL,
		GraphBaseURL: graphBaseURL,
		HTTP:         &http.Client{Timeout: 30 * time.Second},
		Audit:        recorder,
	}
}

// CreateMeeting validates the request, then runs token exchange, organizer
// directory lookup and online-meeting creation. On success it also emits a
// best-effort audit record.
func (c *Client) CreateMeeting(ctx context.Context, req ProvisionRequest) (*ProvisionResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	organizerID, err := c.lookupOrganizer(ctx, token, req.OrganizerEmail)
	if err != nil {
		return nil, err
	}

	result, err := c.createOnlineMeeting(ctx, token, organizerID, req)
	if err != nil {
		return nil, err
	}

	c.recordAudit(req, result)
	return result, nil
}

// validateRequest rejects malformed requests before any network call.
// Attendees are optional invitees, not a precondition.
func validateRequest(req ProvisionRequest) error {
	if strings.TrimSpace(req.Subject) == "" {
		return &InvalidRequestError{Reason: "subject is required"}
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return &InvalidRequestError{Reason: "startTime and endTime are required"}
	}
	if !req.EndTime.After(req.StartTime) {
		return &InvalidRequestError{Reason: "endTime must be after startTime"}
	}
	if req.OrganizerEmail == "" {
		return &InvalidRequestError{Reason: "organizer email is required"}
	}
	return nil
}

func (c *Client) checkConfig() error {
	var missing []string
	if c.TenantID == "" {
		missing = append(missing, "MS_TENANT_ID")
	}
	if c.ClientID == "" {
		missing = append(missing, "MS_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "MS_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

// fetchAccessToken performs the client-credential exchange against the
// identity provider.
func (c *Client) fetchAccessToken(ctx context.Context) (string, error) {
	tokenURL := fmt.Sprintf("%s/%s/oauth2/v2.0/token", c.LoginBaseURL, c.TenantID)

	data := url.Values{}
	data.Set("client_id", c.ClientID)
	data.Set("client_secret", c.ClientSecret)
	data.Set("scope", "https://graph.microsoft.com/.default")
	data.Set("grant_type", "client_credentials")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to reach identity provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &AuthProviderError{StatusCode: resp.StatusCode, Provider: string(body)}
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", &AuthProviderError{StatusCode: resp.StatusCode, Provider: "empty access token in response"}
	}
	return tokenResp.AccessToken, nil
}

// lookupOrganizer resolves the organizer's email to a directory object ID.
func (c *Client) lookupOrganizer(ctx context.Context, token, email string) (string, error) {
	lookupURL := fmt.Sprintf("%s/users/%s?$select=id", c.GraphBaseURL, url.PathEscape(email))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create directory lookup request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to reach directory: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read directory response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &OrganizerNotFoundError{Email: email}
	}

	var user struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &user); err != nil || user.ID == "" {
		return "", &OrganizerNotFoundError{Email: email}
	}
	return user.ID, nil
}

// createOnlineMeeting issues the meeting creation request scoped to the
// organizer identity.
func (c *Client) createOnlineMeeting(ctx context.Context, token, organizerID string, req ProvisionRequest) (*ProvisionResult, error) {
	createURL := fmt.Sprintf("%s/users/%s/onlineMeetings", c.GraphBaseURL, organizerID)

	participants := make([]map[string]interface{}, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		participants = append(participants, map[string]interface{}{
			"upn":  a.Email,
			"role": "attendee",
		})
	}

	payload := map[string]interface{}{
		"subject":       req.Subject,
		"startDateTime": req.StartTime.UTC().Format(time.RFC3339),
		"endDateTime":   req.EndTime.UTC().Format(time.RFC3339),
		"lobbyBypassSettings": map[string]interface{}{
			"scope":                 "everyone",
			"isDialInBypassEnabled": true,
		},
		"allowedPresenters": "everyone",
		"participants": map[string]interface{}{
			"attendees": participants,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal meeting payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, createURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach meeting service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read meeting response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, classifyCreationError(resp.StatusCode, string(respBody))
	}

	var graphMeeting struct {
		ID              string `json:"id"`
		JoinWebURL      string `json:"joinWebUrl"`
		Subject         string `json:"subject"`
		StartDateTime   string `json:"startDateTime"`
		EndDateTime     string `json:"endDateTime"`
		JoinInformation struct {
			Content string `json:"content"`
		} `json:"joinInformation"`
	}
	if err := json.Unmarshal(respBody, &graphMeeting); err != nil {
		return nil, fmt.Errorf("failed to parse meeting response: %w", err)
	}

	return &ProvisionResult{
		ID:              graphMeeting.ID,
		JoinURL:         graphMeeting.JoinWebURL,
		JoinInformation: graphMeeting.JoinInformation.Content,
		Subject:         graphMeeting.Subject,
		StartDateTime:   graphMeeting.StartDateTime,
		EndDateTime:     graphMeeting.EndDateTime,
	}, nil
}

// classifyCreationError maps provider status codes into the error taxonomy
// instead of sniffing response payload strings.
func classifyCreationError(status int, provider string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &MeetingCreationError{Kind: CreationKindAuth, StatusCode: status, Provider: provider}
	case http.StatusNotFound:
		return &MeetingCreationError{Kind: CreationKindUnlicensed, StatusCode: status, Provider: provider}
	default:
		return &MeetingCreationError{Kind: CreationKindGeneric, StatusCode: status, Provider: provider}
	}
}

// recordAudit emits one audit record per successful provisioning. Failures
// are logged and swallowed; provisioning success never depends on the audit
// log being available.
func (c *Client) recordAudit(req ProvisionRequest, result *ProvisionResult) {
	if c.Audit == nil {
		return
	}
	record := models.AuditRecord{
		Action:        "meeting.provisioned",
		ResourceType:  "onlineMeeting",
		ResourceID:    result.ID,
		Subject:       req.Subject,
		AttendeeCount: len(req.Attendees),
		ActorID:       req.ActorID,
		JoinURL:       result.JoinURL,
	}
	if err := c.Audit.Record(record); err != nil {
		utils.GetLogger().Warn("failed to write audit record for provisioned meeting",
			zap.String("meetingID", result.ID), zap.Error(err))
	}
}
