package audit

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionLogin  = "login"
	ActionLogout = "logout"
)

// AuditLog records who changed which resource, with JSON snapshots of the
// row before and after the change.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       *uint          `gorm:"index" json:"user_id"`
	Action       string         `gorm:"size:32;not null;index" json:"action"`
	ResourceType string         `gorm:"size:64;not null;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:64;not null" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	IPAddress    string         `gorm:"size:64" json:"ip_address"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	Description  string         `gorm:"type:text" json:"description"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Actor is the request-scoped metadata attached to every entry.
type Actor struct {
	UserID    *uint
	IPAddress string
	UserAgent string
}
