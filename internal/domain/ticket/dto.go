package ticket

type CreateTicketInput struct {
	CustomerID  *uint   `json:"customer_id"`
	Subject     string  `json:"subject" binding:"required,max=200"`
	Description string  `json:"description" binding:"required"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
}

type UpdateTicketInput struct {
	Subject     *string `json:"subject" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      *string `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	Response    *string `json:"response"`
}
