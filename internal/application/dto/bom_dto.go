package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBOMRequest input for creating a BOM row. EffectiveFrom defaults to now.
type CreateBOMRequest struct {
	ParentProductCode    string          `json:"parent_product_code" validate:"required"`
	ComponentProductCode string          `json:"component_product_code" validate:"required"`
	QuantityPer          decimal.Decimal `json:"quantity_per" validate:"required"`
	OperationCode        string          `json:"operation_code"`
	ScrapRate            decimal.Decimal `json:"scrap_rate"`
	EffectiveFrom        *time.Time      `json:"effective_from"`
	EffectiveTo          *time.Time      `json:"effective_to"`
}

// UpdateBOMRequest input for updating a BOM row.
type UpdateBOMRequest struct {
	ParentProductCode    *string          `json:"parent_product_code"`
	ComponentProductCode *string          `json:"component_product_code"`
	QuantityPer          *decimal.Decimal `json:"quantity_per"`
	OperationCode        *string          `json:"operation_code"`
	ScrapRate            *decimal.Decimal `json:"scrap_rate"`
	EffectiveFrom        *time.Time       `json:"effective_from"`
	EffectiveTo          *time.Time       `json:"effective_to"`
}

// BOMResponse BOM row output.
type BOMResponse struct {
	ID                   string          `json:"id"`
	ParentProductCode    string          `json:"parent_product_code"`
	ComponentProductCode string          `json:"component_product_code"`
	QuantityPer          decimal.Decimal `json:"quantity_per"`
	OperationCode        string          `json:"operation_code,omitempty"`
	ScrapRate            decimal.Decimal `json:"scrap_rate"`
	EffectiveFrom        time.Time       `json:"effective_from"`
	EffectiveTo          *time.Time      `json:"effective_to,omitempty"`
	CreatedBy            string          `json:"created_by,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedBy            string          `json:"updated_by,omitempty"`
	UpdatedAt            *time.Time      `json:"updated_at,omitempty"`
}

// BOMListResponse list of BOM rows for a filter.
type BOMListResponse struct {
	Items []BOMResponse `json:"items"`
}
