package teams

import "fmt"

// ConfigurationError reports missing provisioning credentials. This is a
// deployment fault, not a retryable condition.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("teams provisioning is not configured: missing %v", e.Missing)
}

// AuthProviderError reports a rejected client-credential token exchange.
// The provider's response text is surfaced verbatim.
type AuthProviderError struct {
	StatusCode int
	Provider   string
}

func (e *AuthProviderError) Error() string {
	return fmt.Sprintf("identity provider rejected token exchange (status %d): %s", e.StatusCode, e.Provider)
}

// OrganizerNotFoundError reports a failed directory lookup for the organizer.
// The message is operator-facing: the two likely causes are a missing
// User.Read.All application permission grant, or the user not existing in
// the tenant directory.
type OrganizerNotFoundError struct {
	Email string
}

func (e *OrganizerNotFoundError) Error() string {
	return fmt.Sprintf(
		"could not resolve organizer %q in the directory: either the app registration lacks admin consent for the User.Read.All application permission, or no user with this email exists in the tenant",
		e.Email)
}

// MeetingCreationError kinds.
const (
	CreationKindAuth       = "auth"       // provider-reported authentication failure
	CreationKindUnlicensed = "unlicensed" // provider-reported resource not found
	CreationKindGeneric    = "generic"
)

// MeetingCreationError reports a rejected online-meeting creation request.
type MeetingCreationError struct {
	Kind       string
	StatusCode int
	Provider   string
}

func (e *MeetingCreationError) Error() string {
	switch e.Kind {
	case CreationKindAuth:
		return fmt.Sprintf("meeting creation rejected as unauthorized (status %d): the app registration likely lacks the OnlineMeetings.ReadWrite.All application permission: %s", e.StatusCode, e.Provider)
	case CreationKindUnlicensed:
		return fmt.Sprintf("meeting creation returned not-found (status %d): the organizer likely has no Microsoft Teams license for online meetings: %s", e.StatusCode, e.Provider)
	default:
		return fmt.Sprintf("meeting creation failed (status %d): %s", e.StatusCode, e.Provider)
	}
}

// InvalidRequestError reports a request rejected before any network call.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid provisioning request: " + e.Reason
}
