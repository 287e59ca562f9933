package complaint

import "time"

type Status string

const (
	StatusOpen          Status = "open"
	StatusInvestigating Status = "investigating"
	StatusResolved      Status = "resolved"
	StatusClosed        Status = "closed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Complaint struct {
	ComplaintID          uint       `gorm:"primaryKey;column:complaint_id" json:"id"`
	CustomerID           uint       `gorm:"column:customer_id;not null" json:"customer_id"`
	CustomerName         string     `gorm:"size:100" json:"customer_name"`
	InstallationID       *uint      `gorm:"column:installation_id" json:"installation_id"`
	Title                string     `gorm:"size:200;not null" json:"title"`
	Description          string     `gorm:"type:text" json:"description"`
	Priority             string     `gorm:"size:10;default:'medium';not null" json:"priority"`
	Status               string     `gorm:"size:20;default:'open';not null" json:"status"`
	Resolution           string     `gorm:"type:text" json:"resolution"`
	AssignedTechnicianID *uint      `gorm:"column:assigned_technician_id" json:"assigned_technician_id"`
	ResolvedAt           *time.Time `json:"resolved_at"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Complaint) TableName() string {
	return "complaints"
}
