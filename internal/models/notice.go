package models

import (
	"gorm.io/datatypes"
)

// Notice is an announcement record targeted at a subset of the owner's
// tenants. Audiences holds a serialized AudienceSpec; a null value means
// the notice cannot be dispatched.
type Notice struct {
	BaseModel
	UserID       string `gorm:"not null;index"`
	Title        string `gorm:"not null"`
	IssueDate    string `gorm:"not null"`
	Audiences    datatypes.JSON
	FolderID     string `gorm:"not null"`
	IsNotifySent int    `gorm:"not null;default:0"`
	PDF          string
}
