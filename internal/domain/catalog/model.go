package catalog

import "time"

// Service is a catalog entry offered to customers. Rows are soft-deleted by
// flipping IsActive so historical quotations keep a valid reference.
type Service struct {
	ServiceID   uint      `gorm:"primaryKey;column:service_id" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50" json:"category"`
	Price       float64   `gorm:"not null" json:"price"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}
