package quotation

type CreateQuotationInput struct {
	CustomerID           *uint    `json:"customer_id"`
	CustomerName         string   `json:"customer_name" binding:"required,max=100"`
	PropertyAddress      string   `json:"property_address" binding:"required"`
	PropertyType         string   `json:"property_type" binding:"omitempty,max=50"`
	SystemSize           float64  `json:"system_size" binding:"required,gt=0"`
	EstimatedCost        float64  `json:"estimated_cost" binding:"required,gt=0"`
	Notes                *string  `json:"notes"`
	InstallationTimeline *string  `json:"installation_timeline"`
	Appliances           []string `json:"appliances"`
}

type UpdateQuotationInput struct {
	CustomerName         *string   `json:"customer_name" binding:"omitempty,max=100"`
	PropertyAddress      *string   `json:"property_address"`
	PropertyType         *string   `json:"property_type" binding:"omitempty,max=50"`
	SystemSize           *float64  `json:"system_size" binding:"omitempty,gt=0"`
	EstimatedCost        *float64  `json:"estimated_cost" binding:"omitempty,gt=0"`
	Notes                *string   `json:"notes"`
	InstallationTimeline *string   `json:"installation_timeline"`
	Appliances           *[]string `json:"appliances"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
