package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOutputRequest input for recording produced quantity against a plan.
// ProductionDate defaults to now when omitted.
type CreateOutputRequest struct {
	PlanID         string          `json:"plan_id" validate:"required"`
	ProductCode    string          `json:"product_code" validate:"required"`
	Quantity       decimal.Decimal `json:"quantity"`
	ProductionDate *time.Time      `json:"production_date"`
	OperationCode  string          `json:"operation_code"`
}

// UpdateOutputRequest input for editing a ledger entry. References are not
// re-validated here; only existence of the entry is checked.
type UpdateOutputRequest struct {
	PlanID         *string          `json:"plan_id"`
	ProductCode    *string          `json:"product_code"`
	ProductName    *string          `json:"product_name"`
	Quantity       *decimal.Decimal `json:"quantity"`
	ProductionDate *time.Time       `json:"production_date"`
	OperationCode  *string          `json:"operation_code"`
}

// OutputResponse ledger entry output.
type OutputResponse struct {
	ID             string          `json:"id"`
	PlanID         string          `json:"plan_id"`
	ProductCode    string          `json:"product_code"`
	ProductName    string          `json:"product_name,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	ProductionDate time.Time       `json:"production_date"`
	OperationCode  string          `json:"operation_code,omitempty"`
	CreatedBy      string          `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AddOutputResponse created entry plus the plan's fresh progress snapshot.
type AddOutputResponse struct {
	Created  OutputResponse   `json:"created"`
	Progress ProgressResponse `json:"progress"`
}

// OutputListResponse list of ledger entries for a filter.
type OutputListResponse struct {
	Items []OutputResponse `json:"items"`
}
