package technician

type CreateTechnicianInput struct {
	UserID          *uint    `json:"user_id"`
	Name            string   `json:"name" binding:"required,max=100"`
	Specializations []string `json:"specializations"`
	ExperienceYears int      `json:"experience_years" binding:"omitempty,gte=0"`
	Certifications  []string `json:"certifications"`
	Status          *string  `json:"status" binding:"omitempty,oneof=active inactive on_leave"`
}

type UpdateTechnicianInput struct {
	Name            *string   `json:"name" binding:"omitempty,max=100"`
	Specializations *[]string `json:"specializations"`
	ExperienceYears *int      `json:"experience_years" binding:"omitempty,gte=0"`
	Certifications  *[]string `json:"certifications"`
	IsAvailable     *bool     `json:"is_available"`
	Status          *string   `json:"status" binding:"omitempty,oneof=active inactive on_leave"`
	Rating          *float64  `json:"rating" binding:"omitempty,gte=0,lte=5"`
	CompletionRate  *float64  `json:"completion_rate" binding:"omitempty,gte=0,lte=100"`
}
