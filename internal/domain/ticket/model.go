package ticket

import "time"

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

type Ticket struct {
	TicketID     uint       `gorm:"primaryKey;column:ticket_id" json:"id"`
	CustomerID   uint       `gorm:"column:customer_id;not null" json:"customer_id"`
	CustomerName string     `gorm:"size:100" json:"customer_name"`
	Subject      string     `gorm:"size:200;not null" json:"subject"`
	Description  string     `gorm:"type:text" json:"description"`
	Priority     string     `gorm:"size:10;default:'medium';not null" json:"priority"`
	Status       string     `gorm:"size:20;default:'open';not null" json:"status"`
	Category     string     `gorm:"size:50" json:"category"`
	AssignedToID *uint      `gorm:"column:assigned_to_id" json:"assigned_to_id"`
	Response     string     `gorm:"type:text" json:"response"`
	ResolvedAt   *time.Time `json:"resolved_at"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Ticket) TableName() string {
	return "tickets"
}
