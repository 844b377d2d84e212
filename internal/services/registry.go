package services

import (
	"vpms_backend/internal/email"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService     AuthService
	NoticeService   NoticeService
	DispatchService DispatchService
	TenantService   TenantService
	EmailService    email.Provider
}
