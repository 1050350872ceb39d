package user

// AuthError signals a failed registration or sign-in attempt.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// NotFoundError signals a missing user record.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "user " + e.ID + " not found"
}
