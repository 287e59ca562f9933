package installation

import "time"

type CreateInstallationInput struct {
	CustomerID       uint       `json:"customer_id" binding:"required"`
	CustomerName     string     `json:"customer_name" binding:"omitempty,max=100"`
	Address          string     `json:"address" binding:"required"`
	Capacity         float64    `json:"capacity" binding:"required,gt=0"`
	TotalCost        float64    `json:"total_cost" binding:"required,gt=0"`
	InstallationDate *time.Time `json:"installation_date"`
	Notes            *string    `json:"notes"`
}

type UpdateInstallationInput struct {
	CustomerName     *string    `json:"customer_name" binding:"omitempty,max=100"`
	Address          *string    `json:"address"`
	Capacity         *float64   `json:"capacity" binding:"omitempty,gt=0"`
	TotalCost        *float64   `json:"total_cost" binding:"omitempty,gt=0"`
	Status           *string    `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	InstallationDate *time.Time `json:"installation_date"`
	Progress         *int       `json:"progress" binding:"omitempty,gte=0,lte=100"`
	Notes            *string    `json:"notes"`
	PhotoURL         *string    `json:"photo_url"`
}

type ConvertInput struct {
	QuotationID uint `json:"quotation_id" binding:"required"`
}

type AssignTechnicianInput struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}
