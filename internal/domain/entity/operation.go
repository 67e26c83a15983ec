package entity

import "time"

// Operation represents a process step (cutting, welding, assembly...), keyed by operation code.
type Operation struct {
	ID               string
	OperationCode    string
	OperationName    string
	CycleTimeSeconds int
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedBy        string
	UpdatedAt        *time.Time
	IsDeleted        bool
}
