package catalog

type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"omitempty,max=50"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type UpdateServiceInput struct {
	Name        *string  `json:"name" binding:"omitempty,max=100"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" binding:"omitempty,max=50"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	IsActive    *bool    `json:"is_active"`
}

// SeedEntry is one service in the optional YAML seed file.
type SeedEntry struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Price       float64 `yaml:"price"`
}

type SeedFile struct {
	Services []SeedEntry `yaml:"services"`
}
