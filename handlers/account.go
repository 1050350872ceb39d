package handlers

import (
	"net/http"

	"pulsecrm/models"

	"github.com/gin-gonic/gin"
)

// ListAccountsHandler returns all accounts.
func (h *CRMHandler) ListAccountsHandler(c *gin.Context) {
	accounts, err := h.Service.ListAccounts()
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// GetAccountHandler returns a single account by ID.
func (h *CRMHandler) GetAccountHandler(c *gin.Context) {
	account, err := h.Service.GetAccount(c.Param("id"))
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// CreateAccountHandler creates a new account owned by the caller.
func (h *CRMHandler) CreateAccountHandler(c *gin.Context) {
	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	account.OwnerID = c.GetString("userID")

	created, err := h.Service.CreateAccount(&account)
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAccountHandler replaces an account's mutable fields.
func (h *CRMHandler) UpdateAccountHandler(c *gin.Context) {
	var account models.Account
	if err := c.ShouldBindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	account.ID = c.Param("id")

	updated, err := h.Service.UpdateAccount(&account)
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAccountHandler removes an account.
func (h *CRMHandler) DeleteAccountHandler(c *gin.Context) {
	if err := h.Service.DeleteAccount(c.Param("id")); err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
