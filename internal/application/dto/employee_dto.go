package dto

import "time"

// CreateEmployeeRequest input for creating an employee master record.
type CreateEmployeeRequest struct {
	EmployeeCode string `json:"employee_code" validate:"required,min=1,max=100"`
	FullName     string `json:"full_name" validate:"required,min=1,max=200"`
	Email        string `json:"email" validate:"required,email"`
}

// UpdateEmployeeRequest input for updating an employee (code is immutable).
type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
}

// EmployeeResponse employee output.
type EmployeeResponse struct {
	ID           string     `json:"id"`
	EmployeeCode string     `json:"employee_code"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	CreatedBy    string     `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedBy    string     `json:"updated_by,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// EmployeeListResponse paginated list of employees.
type EmployeeListResponse struct {
	Items      []EmployeeResponse `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	Total      int                `json:"total"`
	TotalPages int                `json:"total_pages"`
}
