package quotation

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusConverted Status = "converted"
)

// Quotation is a priced proposal for a solar installation.
//
// CustomerID is nullable: quote requests can arrive from the public site
// before the requester has an account, in which case CustomerName holds
// whatever free text they typed.
type Quotation struct {
	QuotationID          uint           `gorm:"primaryKey;column:quotation_id" json:"id"`
	CustomerID           *uint          `gorm:"column:customer_id" json:"customer_id"`
	CustomerName         string         `gorm:"size:100" json:"customer_name"`
	PropertyAddress      string         `gorm:"type:text" json:"property_address"`
	PropertyType         string         `gorm:"size:50" json:"property_type"`
	SystemSize           float64        `json:"system_size"`
	EstimatedCost        float64        `json:"estimated_cost"`
	Status               string         `gorm:"size:20;default:'pending';not null" json:"status"`
	Notes                string         `gorm:"type:text" json:"notes"`
	InstallationTimeline string         `gorm:"size:100" json:"installation_timeline"`
	Appliances           datatypes.JSON `gorm:"type:jsonb" json:"appliances"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Quotation) TableName() string {
	return "quotations"
}

// Convertible reports whether the quotation may still become an installation.
func (q *Quotation) Convertible() bool {
	return q.Status == string(StatusPending) || q.Status == string(StatusApproved)
}
