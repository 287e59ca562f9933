package installation

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Installation is a physical deployment project, either created directly or
// derived from a quotation. QuotationID is unique when set: a quotation maps
// to at most one installation.
type Installation struct {
	InstallationID   uint       `gorm:"primaryKey;column:installation_id" json:"id"`
	QuotationID      *uint      `gorm:"column:quotation_id;uniqueIndex" json:"quotation_id"`
	CustomerID       uint       `gorm:"column:customer_id;not null" json:"customer_id"`
	CustomerName     string     `gorm:"size:100" json:"customer_name"`
	Address          string     `gorm:"type:text" json:"address"`
	Capacity         float64    `json:"capacity"`
	TotalCost        float64    `json:"total_cost"`
	Status           string     `gorm:"size:20;default:'pending';not null" json:"status"`
	TechnicianID     *uint      `gorm:"column:technician_id" json:"technician_id"`
	InstallationDate *time.Time `json:"installation_date"`
	CompletionDate   *time.Time `json:"completion_date"`
	Progress         int        `gorm:"default:0" json:"progress"`
	Notes            string     `gorm:"type:text" json:"notes"`
	PhotoURL         string     `gorm:"size:255" json:"photo_url"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Installation) TableName() string {
	return "installations"
}
