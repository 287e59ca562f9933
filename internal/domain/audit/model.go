package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records sensitive mutations: quotation conversions, technician
// assignments, role changes, and ownership substitutions.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"column:user_id;index" json:"user_id"`
	Action       string         `gorm:"size:50;not null;index" json:"action"`
	ResourceType string         `gorm:"size:50;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:50" json:"resource_id"`
	OldData      datatypes.JSON `gorm:"type:jsonb" json:"old_data"`
	NewData      datatypes.JSON `gorm:"type:jsonb" json:"new_data"`
	Message      string         `gorm:"type:text" json:"message"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
