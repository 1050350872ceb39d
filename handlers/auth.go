package handlers

import (
	"errors"
	"net/http"

	"pulsecrm/services/user"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration and session endpoints.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterHandler creates a new account.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input user.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.Register(input)
	if err != nil {
		var authErr *user.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusConflict, gin.H{"error": authErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginHandler verifies credentials and returns a session token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		var authErr *user.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// MeHandler returns the authenticated account.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	u, err := h.Service.GetByID(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// LogoutHandler revokes the caller's session token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.Service.RevokeToken(c.GetString("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
