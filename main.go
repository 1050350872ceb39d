// File: pulsecrm/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulsecrm/config"
	"pulsecrm/cron"
	"pulsecrm/database"
	accountRepo "pulsecrm/database/repository/account"
	auditRepo "pulsecrm/database/repository/audit"
	contactRepo "pulsecrm/database/repository/contact"
	dealRepo "pulsecrm/database/repository/deal"
	leadRepo "pulsecrm/database/repository/lead"
	meetingRepo "pulsecrm/database/repository/meeting"
	notificationRepo "pulsecrm/database/repository/notification"
	permissionRepo "pulsecrm/database/repository/permission"
	taskRepo "pulsecrm/database/repository/task"
	userRepoPkg "pulsecrm/database/repository/user"
	"pulsecrm/handlers"
	"pulsecrm/middleware"
	"pulsecrm/routes"
	"pulsecrm/services/audit"
	"pulsecrm/services/crm"
	"pulsecrm/services/meeting"
	"pulsecrm/services/permission"
	"pulsecrm/services/teams"
	"pulsecrm/services/user"
	"pulsecrm/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitPermCache()

	// Create the Gin router.
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	leads := leadRepo.NewMongoLeadRepo()
	contacts := contactRepo.NewMongoContactRepo()
	accounts := accountRepo.NewMongoAccountRepo()
	deals := dealRepo.NewMongoDealRepo()
	tasks := taskRepo.NewMongoTaskRepo()
	meetings := meetingRepo.NewMongoMeetingRepo()
	permissions := permissionRepo.NewMongoPermissionRepo()
	notifications := notificationRepo.NewMongoNotificationRepo()
	auditLog := auditRepo.NewMongoAuditRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	permissionService := &permission.Service{
		Repo:  permissions,
		Cache: utils.GetPermCacheClient(),
	}

	crmService := &crm.DefaultCRMService{
		Leads:    leads,
		Contacts: contacts,
		Accounts: accounts,
		Deals:    deals,
		Tasks:    tasks,
		Meetings: meetings,
	}

	reminderClient := cron.NewReminderClient()
	meetingService := &meeting.DefaultMeetingService{
		Repo:      meetings,
		Reminders: reminderClient,
	}

	auditRecorder := &audit.MongoRecorder{Repo: auditLog}
	teamsClient := teams.NewClient(
		config.AppConfig.MSTenantID,
		config.AppConfig.MSClientID,
		config.AppConfig.MSClientSecret,
		config.AppConfig.MSLoginBaseURL,
		config.AppConfig.MSGraphBaseURL,
		auditRecorder,
	)

	// Background reminder worker.
	cron.InitReminderWorker(meetings, notifications)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:    userRepo,
		Permissions: permissionService,

		Auth:          handlers.NewAuthHandler(userService),
		CRM:           handlers.NewCRMHandler(crmService),
		Meetings:      handlers.NewMeetingHandler(meetingService, crmService, teamsClient),
		Notifications: handlers.NewNotificationHandler(notifications),
		Dashboard:     handlers.NewDashboardHandler(crmService, permissionService),
		Admin:         handlers.NewAdminHandler(userService, permissionService, auditLog),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
