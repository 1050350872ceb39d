package handlers

import (
	"net/http"

	"pulsecrm/models"

	"github.com/gin-gonic/gin"
)

// ListLeadsHandler returns all leads.
func (h *CRMHandler) ListLeadsHandler(c *gin.Context) {
	leads, err := h.Service.ListLeads()
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// GetLeadHandler returns a single lead by ID.
func (h *CRMHandler) GetLeadHandler(c *gin.Context) {
	lead, err := h.Service.GetLead(c.Param("id"))
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// CreateLeadHandler creates a new lead owned by the caller.
func (h *CRMHandler) CreateLeadHandler(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	lead.OwnerID = c.GetString("userID")

	created, err := h.Service.CreateLead(&lead)
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateLeadHandler replaces a lead's mutable fields.
func (h *CRMHandler) UpdateLeadHandler(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	lead.ID = c.Param("id")

	updated, err := h.Service.UpdateLead(&lead)
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteLeadHandler removes a lead.
func (h *CRMHandler) DeleteLeadHandler(c *gin.Context) {
	if err := h.Service.DeleteLead(c.Param("id")); err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lead deleted"})
}

// ConvertLeadHandler converts a lead into a contact.
func (h *CRMHandler) ConvertLeadHandler(c *gin.Context) {
	contact, err := h.Service.ConvertLead(c.Param("id"))
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": contact})
}
