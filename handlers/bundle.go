package handlers

import (
	userRepo "pulsecrm/database/repository/user"
	"pulsecrm/services/permission"
)

// HandlerBundle groups the assembled handlers plus the dependencies the
// route middleware needs.
type HandlerBundle struct {
	UserRepo    userRepo.UserRepository
	Permissions *permission.Service

	Auth          *AuthHandler
	CRM           *CRMHandler
	Meetings      *MeetingHandler
	Notifications *NotificationHandler
	Dashboard     *DashboardHandler
	Admin         *AdminHandler
}
