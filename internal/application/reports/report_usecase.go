package reports

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/openmes/mes-api/internal/domain/repository"
)

// Export size guard. Filters narrower than this are unaffected.
const exportLimit = 10000

// ReportUseCase builds Excel exports of plans and their progress.
type ReportUseCase struct {
	plans   repository.PlanRepository
	outputs repository.OutputRepository
}

// NewReportUseCase builds the use case.
func NewReportUseCase(plans repository.PlanRepository, outputs repository.OutputRepository) *ReportUseCase {
	return &ReportUseCase{plans: plans, outputs: outputs}
}

// ExportPlans renders the filtered plans as an .xlsx workbook, one row per
// plan with its produced and remaining quantities re-summed from the ledger.
func (uc *ReportUseCase) ExportPlans(ctx context.Context, filter repository.PlanFilter) (*bytes.Buffer, error) {
	filter.Limit = exportLimit
	filter.Offset = 0
	plans, _, err := uc.plans.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Plans"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Plan ID", "Product Code", "Ship Date", "Plan Qty", "Produced Qty", "Remaining Qty", "Started", "Completed", "Created By", "Created At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", headerStyle); err != nil {
		return nil, err
	}

	for row, plan := range plans {
		produced, err := uc.outputs.SumQuantityByPlan(ctx, plan.ID)
		if err != nil {
			return nil, err
		}
		remaining := plan.PlanQty.Sub(produced)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		values := []interface{}{
			plan.ID,
			plan.ProductCode,
			plan.ShipDate.Format("2006-01-02"),
			plan.PlanQty.String(),
			produced.String(),
			remaining.String(),
			plan.Started,
			plan.IsCompleted,
			plan.CreatedBy,
			plan.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 38); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", "J", 16); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
