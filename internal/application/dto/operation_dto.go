package dto

import "time"

// CreateOperationRequest input for creating an operation master record.
type CreateOperationRequest struct {
	OperationCode    string `json:"operation_code" validate:"required,min=1,max=100"`
	OperationName    string `json:"operation_name" validate:"required,min=1,max=200"`
	CycleTimeSeconds int    `json:"cycle_time_seconds"`
}

// UpdateOperationRequest input for updating an operation (code is immutable).
type UpdateOperationRequest struct {
	OperationName    *string `json:"operation_name"`
	CycleTimeSeconds *int    `json:"cycle_time_seconds"`
}

// OperationResponse operation output.
type OperationResponse struct {
	ID               string     `json:"id"`
	OperationCode    string     `json:"operation_code"`
	OperationName    string     `json:"operation_name"`
	CycleTimeSeconds int        `json:"cycle_time_seconds"`
	CreatedBy        string     `json:"created_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedBy        string     `json:"updated_by,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// OperationListResponse paginated list of operations.
type OperationListResponse struct {
	Items      []OperationResponse `json:"items"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	Total      int                 `json:"total"`
	TotalPages int                 `json:"total_pages"`
}
