package entity

import "time"

// Employee represents a shop-floor employee master record.
type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedBy    string
	UpdatedAt    *time.Time
	IsDeleted    bool
}
