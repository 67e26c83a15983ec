package dto

import "time"

// RegisterRequest input for creating an account.
type RegisterRequest struct {
	Username     string   `json:"username" validate:"required,min=3,max=100"`
	Password     string   `json:"password" validate:"required,min=8"`
	Roles        []string `json:"roles"`
	EmployeeCode string   `json:"employee_code"`
}

// LoginRequest input for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse account output (never includes the password hash).
type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Roles        []string  `json:"roles"`
	EmployeeCode string    `json:"employee_code,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginResponse token plus the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
