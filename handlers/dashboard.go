package handlers

import (
	"net/http"
	"time"

	"pulsecrm/services/crm"
	"pulsecrm/services/permission"

	"github.com/gin-gonic/gin"
)

// DashboardHandler builds the dashboard summary, dropping cards the
// caller's role may not see.
type DashboardHandler struct {
	CRM         crm.CRMService
	Permissions *permission.Service
}

func NewDashboardHandler(crmSvc crm.CRMService, perms *permission.Service) *DashboardHandler {
	return &DashboardHandler{CRM: crmSvc, Permissions: perms}
}

// SummaryHandler returns per-module counts filtered through the permission gate.
func (h *DashboardHandler) SummaryHandler(c *gin.Context) {
	userID := c.GetString("userID")
	role := permission.ParseRole(c.GetString("userRole"))

	summary, err := h.CRM.Summary(userID, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	index, err := h.Permissions.RouteIndex(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to evaluate permissions"})
		return
	}

	if !permission.Allowed(role, "leads", index) {
		summary.LeadsByStatus = nil
	}
	if !permission.Allowed(role, "contacts", index) {
		summary.ContactCount = 0
	}
	if !permission.Allowed(role, "accounts", index) {
		summary.AccountCount = 0
	}
	if !permission.Allowed(role, "deals", index) {
		summary.Pipeline = nil
	}
	if !permission.Allowed(role, "tasks", index) {
		summary.OpenTasks = 0
	}
	if !permission.Allowed(role, "meetings", index) {
		summary.UpcomingMeetings = 0
	}

	c.JSON(http.StatusOK, summary)
}
