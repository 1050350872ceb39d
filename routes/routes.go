package routes

import (
	"net/http"
	"time"

	"pulsecrm/handlers"
	"pulsecrm/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.MeHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterLeadRoutes registers lead endpoints behind the "leads" gate.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/leads")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	api.Use(middleware.PermissionGate(hb.Permissions, "leads"))
	{
		api.GET("", hb.CRM.ListLeadsHandler)
		api.GET("/:id", hb.CRM.GetLeadHandler)
		api.POST("", hb.CRM.CreateLeadHandler)
		api.PUT("/:id", hb.CRM.UpdateLeadHandler)
		api.DELETE("/:id", hb.CRM.DeleteLeadHandler)
		api.POST("/:id/convert", hb.CRM.ConvertLeadHandler)
	}
}

// RegisterContactRoutes registers contact endpoints behind the "contacts" gate.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contacts")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	api.Use(middleware.PermissionGate(hb.Permissions, "contacts"))
	{
		api.GET("", hb.CRM.ListContactsHandler)
		api.GET("/:id", hb.CRM.GetContactHandler)
		api.POST("", hb.CRM.CreateContactHandler)
		api.PUT("/:id", hb.CRM.UpdateContactHandler)
		api.DELETE("/:id", hb.CRM.DeleteContactHandler)
	}
}

// RegisterAccountRoutes registers account endpoints behind the "accounts" gate.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/accounts")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	api.Use(middleware.PermissionGate(hb.Permissions, "accounts"))
	{
		api.GET("", hb.CRM.ListAccountsHandler)
		api.GET("/:id", hb.CRM.GetAccountHandler)
		api.POST("", hb.CRM.CreateAccountHandler)
		api.PUT("/:id", hb.CRM.UpdateAccountHandler)
		api.DELETE("/:id", hb.CRM.DeleteAccountHandler)
	}
}

// RegisterDealRoutes registers deal endpoints behind the "deals" gate.
func RegisterDealRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/deals")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	api.Use(middleware.PermissionGate(hb.Permissions, "deals"))
	{
		api.GET("", hb.CRM.ListDealsHandler)
		api.GET("/:id", hb.CRM.GetDealHandler)
		api.POST("", hb.CRM.CreateDealHandler)
		api.PUT("/:id", hb.CRM.UpdateDealHandler)
		api.PUT("/:id/stage", hb.CRM.MoveDealStageHandler)
		api.DELETE("/:id", hb.CRM.DeleteDealHandler)
	}
}

// RegisterTaskRoutes registers task endpoints behind the "tasks" gate.
func RegisterTaskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tasks")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	api.Use(middleware.PermissionGate(hb.Permissions, "tasks"))
	{
		api.GET("", hb.CRM.ListTasksHandler)
		api.GET("/:id", hb.CRM.GetTaskHandler)
		api.POST("", hb.CRM.CreateTaskHandler)
		api.PUT("/:id", hb.CRM.UpdateTaskHandler)
		api.PUT("/:id/complete", hb.CRM.CompleteTaskHandler)
		api.DELETE("/:id", hb.CRM.DeleteTaskHandler)
	}
}

// RegisterMeetingRoutes registers meeting scheduling and Teams provisioning
// endpoints behind the "meetings" gate.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meetings")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	api.Use(middleware.PermissionGate(hb.Permissions, "meetings"))
	{
		api.GET("", hb.Meetings.ListMeetingsHandler)
		api.GET("/slots", hb.Meetings.SlotsHandler)
		api.GET("/options", hb.Meetings.MeetingOptionsHandler)
		api.POST("/resolve", hb.Meetings.ResolveTimesHandler)
		api.POST("/provision", hb.Meetings.ProvisionTeamsMeetingHandler)
		api.GET("/:id", hb.Meetings.GetMeetingHandler)
		api.POST("", hb.Meetings.ScheduleMeetingHandler)
		api.PUT("/:id", hb.Meetings.RescheduleMeetingHandler)
		api.DELETE("/:id", hb.Meetings.CancelMeetingHandler)
	}
}

// RegisterNotificationRoutes registers in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	{
		api.GET("", hb.Notifications.ListNotificationsHandler)
		api.PUT("/:id/read", hb.Notifications.MarkNotificationReadHandler)
	}
}

// RegisterDashboardRoutes registers the dashboard summary endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	{
		api.GET("/summary", hb.Dashboard.SummaryHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
	api.Use(middleware.RequireAdmin())
	{
		api.GET("/users", hb.Admin.GetAllUsersHandler)
		api.PUT("/users/:id/role", hb.Admin.SetUserRoleHandler)
		api.GET("/permissions", hb.Admin.ListPermissionsHandler)
		api.PUT("/permissions", hb.Admin.UpsertPermissionHandler)
		api.DELETE("/permissions/:route", hb.Admin.DeletePermissionHandler)
		api.GET("/audit", hb.Admin.GetAuditLogHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm PulseCRM"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterDealRoutes(r, hb)
	RegisterTaskRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
