package handlers

import (
	"errors"
	"net/http"

	"pulsecrm/services/crm"

	"github.com/gin-gonic/gin"
)

// CRMHandler exposes lead, contact, account, deal and task endpoints.
type CRMHandler struct {
	Service crm.CRMService
}

func NewCRMHandler(svc crm.CRMService) *CRMHandler {
	return &CRMHandler{Service: svc}
}

// crmError maps CRM service errors to HTTP statuses.
func crmError(c *gin.Context, err error) {
	var notFound *crm.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}
	var invalid *crm.ValidationError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
