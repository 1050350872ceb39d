package handlers

import (
	"net/http"

	auditRepo "pulsecrm/database/repository/audit"
	"pulsecrm/models"
	"pulsecrm/services/permission"
	"pulsecrm/services/user"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes permission, audit and user administration endpoints.
type AdminHandler struct {
	Users       user.UserService
	Permissions *permission.Service
	Audit       auditRepo.AuditRepository
}

func NewAdminHandler(users user.UserService, perms *permission.Service, audit auditRepo.AuditRepository) *AdminHandler {
	return &AdminHandler{Users: users, Permissions: perms, Audit: audit}
}

// GetAllUsersHandler returns every account.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// SetUserRoleHandler changes an account's role.
func (h *AdminHandler) SetUserRoleHandler(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Users.SetRole(c.Param("id"), input.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role updated"})
}

// ListPermissionsHandler returns all stored route permission records.
func (h *AdminHandler) ListPermissionsHandler(c *gin.Context) {
	perms, err := h.Permissions.Repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"permissions": perms})
}

// UpsertPermissionHandler stores a route permission record and invalidates
// the cached route index.
func (h *AdminHandler) UpsertPermissionHandler(c *gin.Context) {
	var perm models.Permission
	if err := c.ShouldBindJSON(&perm); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if perm.Route == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "route is required"})
		return
	}

	if err := h.Permissions.Upsert(c.Request.Context(), &perm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, perm)
}

// DeletePermissionHandler removes a route permission record, reopening the
// route to every role.
func (h *AdminHandler) DeletePermissionHandler(c *gin.Context) {
	if err := h.Permissions.Repo.Delete(c.Param("route")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.Permissions.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "permission removed"})
}

// GetAuditLogHandler returns the most recent audit records.
func (h *AdminHandler) GetAuditLogHandler(c *gin.Context) {
	records, err := h.Audit.GetRecent(200)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"audit": records})
}
