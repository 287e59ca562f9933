package user

type CreateUserInput struct {
	Email     string  `json:"email" binding:"required,email" example:"user@example.com"`
	Password  string  `json:"password" binding:"required,min=6" example:"password123"`
	FirstName string  `json:"first_name" binding:"required,max=50" example:"John"`
	LastName  string  `json:"last_name" binding:"required,max=50" example:"Doe"`
	Role      *string `json:"role" binding:"omitempty,oneof=admin technician customer" example:"customer"`
	Phone     *string `json:"phone" example:"+91 98765 43210"`
	Address   *string `json:"address" example:"12 MG Road, Pune"`
}

type UpdateUserInput struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
	FirstName *string `json:"first_name" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,max=50"`
	Role      *string `json:"role" binding:"omitempty,oneof=admin technician customer"`
	Status    *string `json:"status" binding:"omitempty,oneof=active inactive"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
