package handlers

import (
	"net/http"

	"pulsecrm/models"

	"github.com/gin-gonic/gin"
)

// ListDealsHandler returns all deals.
func (h *CRMHandler) ListDealsHandler(c *gin.Context) {
	deals, err := h.Service.ListDeals()
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deals": deals})
}

// GetDealHandler returns a single deal by ID.
func (h *CRMHandler) GetDealHandler(c *gin.Context) {
	deal, err := h.Service.GetDeal(c.Param("id"))
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

// CreateDealHandler creates a new deal owned by the caller.
func (h *CRMHandler) CreateDealHandler(c *gin.Context) {
	var deal models.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	deal.OwnerID = c.GetString("userID")

	created, err := h.Service.CreateDeal(&deal)
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateDealHandler replaces a deal's mutable fields.
func (h *CRMHandler) UpdateDealHandler(c *gin.Context) {
	var deal models.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	deal.ID = c.Param("id")

	updated, err := h.Service.UpdateDeal(&deal)
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// MoveDealStageHandler moves a deal to another pipeline stage.
func (h *CRMHandler) MoveDealStageHandler(c *gin.Context) {
	var input struct {
		Stage string `json:"stage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.MoveDealStage(c.Param("id"), input.Stage); err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deal moved to " + input.Stage})
}

// DeleteDealHandler removes a deal.
func (h *CRMHandler) DeleteDealHandler(c *gin.Context) {
	if err := h.Service.DeleteDeal(c.Param("id")); err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deal deleted"})
}
