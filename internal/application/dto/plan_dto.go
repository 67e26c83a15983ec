package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePlanRequest input for creating a production plan.
type CreatePlanRequest struct {
	ProductCode string          `json:"product_code" validate:"required"`
	ShipDate    time.Time       `json:"ship_date" validate:"required"`
	PlanQty     decimal.Decimal `json:"plan_qty"`
}

// UpdatePlanRequest input for editing a plan's target.
type UpdatePlanRequest struct {
	ProductCode *string          `json:"product_code"`
	ShipDate    *time.Time       `json:"ship_date"`
	PlanQty     *decimal.Decimal `json:"plan_qty"`
}

// PlanResponse plan output.
type PlanResponse struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"product_code"`
	ShipDate    time.Time       `json:"ship_date"`
	PlanQty     decimal.Decimal `json:"plan_qty"`
	Started     bool            `json:"started"`
	IsCompleted bool            `json:"is_completed"`
	CreatedBy   string          `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedBy   string          `json:"updated_by,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// ProgressResponse aggregated progress of one plan.
type ProgressResponse struct {
	PlanID       string          `json:"plan_id"`
	PlanQty      decimal.Decimal `json:"plan_qty"`
	ProducedQty  decimal.Decimal `json:"produced_qty"`
	RemainingQty decimal.Decimal `json:"remaining_qty"`
	Started      bool            `json:"started"`
	IsCompleted  bool            `json:"is_completed"`
}

// PlanDetailResponse plan plus its current progress.
type PlanDetailResponse struct {
	Plan     PlanResponse     `json:"plan"`
	Progress ProgressResponse `json:"progress"`
}

// PlanListResponse paginated list of plans.
type PlanListResponse struct {
	Items      []PlanResponse `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}
