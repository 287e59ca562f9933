package technician

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on_leave"
)

// Technician is an assignable service provider. UserID is a weak reference:
// a technician may exist without a backing login account.
type Technician struct {
	TechID          uint           `gorm:"primaryKey;column:tech_id" json:"id"`
	UserID          *uint          `gorm:"column:user_id" json:"user_id"`
	Name            string         `gorm:"size:100;not null" json:"name"`
	Specializations datatypes.JSON `gorm:"type:jsonb" json:"specializations"`
	ExperienceYears int            `gorm:"default:0" json:"experience_years"`
	Certifications  datatypes.JSON `gorm:"type:jsonb" json:"certifications"`
	IsAvailable     bool           `gorm:"default:true" json:"is_available"`
	Status          string         `gorm:"size:20;default:'active';not null" json:"status"`
	Rating          float64        `gorm:"default:0" json:"rating"`
	CompletionRate  float64        `gorm:"default:0" json:"completion_rate"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Technician) TableName() string {
	return "technicians"
}

// Assignable reports whether the technician may take new work.
func (t *Technician) Assignable() bool {
	return t.Status == string(StatusActive)
}
