package user

import "pulsecrm/models"

// RegistrationInput is the sign-up payload.
type RegistrationInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role,omitempty"`
}

// AuthResult carries the signed session token and the account it belongs to.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService defines account management operations.
type UserService interface {
	// Register creates an account and returns a fresh session.
	Register(input RegistrationInput) (*AuthResult, error)
	// Authenticate verifies credentials and returns a fresh session.
	Authenticate(email, password string) (*AuthResult, error)
	// GetByID returns a single account.
	GetByID(id string) (*models.User, error)
	// GetAll returns all accounts.
	GetAll() ([]models.User, error)
	// UpdateProfile updates name and email.
	UpdateProfile(id, name, email string) (*models.User, error)
	// SetRole changes an account's role.
	SetRole(id, role string) error
	// Delete removes an account.
	Delete(id string) error
	// RevokeToken invalidates the account's current session.
	RevokeToken(id string) error
}
