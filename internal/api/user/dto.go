package users

import "time"

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Address  string `json:"address" validate:"omitempty,max=256"`
}

// UpdateUserRequest carries only the fields present in the request body;
// nil means "leave unchanged".
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=80"`
	Email    *string `json:"email" validate:"omitempty,email,max=120"`
	Address  *string `json:"address" validate:"omitempty,max=256"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	Lat       *float64  `json:"lat"`
	Lng       *float64  `json:"lng"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
