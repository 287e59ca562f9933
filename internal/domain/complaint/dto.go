package complaint

type CreateComplaintInput struct {
	CustomerID     *uint   `json:"customer_id"`
	InstallationID *uint   `json:"installation_id"`
	Title          string  `json:"title" binding:"required,max=200"`
	Description    string  `json:"description" binding:"required"`
	Priority       *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type UpdateComplaintInput struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      *string `json:"status" binding:"omitempty,oneof=open investigating resolved closed"`
	Resolution  *string `json:"resolution"`
}
