package handlers

import (
	"net/http"

	"pulsecrm/models"

	"github.com/gin-gonic/gin"
)

// ListContactsHandler returns all contacts.
func (h *CRMHandler) ListContactsHandler(c *gin.Context) {
	contacts, err := h.Service.ListContacts()
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// GetContactHandler returns a single contact by ID.
func (h *CRMHandler) GetContactHandler(c *gin.Context) {
	contact, err := h.Service.GetContact(c.Param("id"))
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// CreateContactHandler creates a new contact owned by the caller.
func (h *CRMHandler) CreateContactHandler(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	contact.OwnerID = c.GetString("userID")

	created, err := h.Service.CreateContact(&contact)
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateContactHandler replaces a contact's mutable fields.
func (h *CRMHandler) UpdateContactHandler(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	contact.ID = c.Param("id")

	updated, err := h.Service.UpdateContact(&contact)
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteContactHandler removes a contact.
func (h *CRMHandler) DeleteContactHandler(c *gin.Context) {
	if err := h.Service.DeleteContact(c.Param("id")); err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contact deleted"})
}
