package handler

type changeRoleRequest struct {
	Role string `json:"rol" validate:"required,oneof=employee admin"`
}

type addUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"rol"      validate:"omitempty,oneof=employee admin"`
	Password string `json:"password" validate:"required,min=6"`
}
