// seed populates a development database with demo master data and a few
// production plans so the API can be exercised right away.
//
// Usage: go run ./cmd/seed
// Safe to re-run: records that already exist are skipped.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/infrastructure/postgres"
	"github.com/openmes/mes-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL connection: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	products := postgres.NewProductRepository(pool)
	operations := postgres.NewOperationRepository(pool)
	employees := postgres.NewEmployeeRepository(pool)
	boms := postgres.NewBOMRepository(pool)
	plans := postgres.NewPlanRepository(pool)

	now := time.Now()
	seeded := 0

	demoProducts := []*entity.Product{
		{ProductCode: "TP-CHAIR-01", ProductName: "Office chair", UOM: "EA", Category: entity.CategoryFinished, QtyPerBox: decimal.NewFromInt(1)},
		{ProductCode: "BTP-FRAME-01", ProductName: "Chair frame, welded", UOM: "EA", Category: entity.CategorySemiFinished, QtyPerBox: decimal.NewFromInt(4)},
		{ProductCode: "NVL-TUBE-25", ProductName: "Steel tube 25mm", UOM: "M", Category: entity.CategoryRawMaterial, MinStock: decimal.NewFromInt(500)},
		{ProductCode: "NVL-FABRIC-BK", ProductName: "Upholstery fabric, black", UOM: "M2", Category: entity.CategoryRawMaterial, MinStock: decimal.NewFromInt(200)},
	}
	for _, p := range demoProducts {
		existing, err := products.GetByCode(ctx, p.ProductCode)
		if err != nil {
			fatal("lookup product %s: %v", p.ProductCode, err)
		}
		if existing != nil {
			continue
		}
		p.ID = uuid.New().String()
		p.CreatedBy = "seed"
		p.CreatedAt = now
		if err := products.Create(ctx, p); err != nil {
			fatal("create product %s: %v", p.ProductCode, err)
		}
		seeded++
	}

	demoOperations := []*entity.Operation{
		{OperationCode: "OP-CUT", OperationName: "Tube cutting", CycleTimeSeconds: 45},
		{OperationCode: "OP-WELD", OperationName: "Frame welding", CycleTimeSeconds: 300},
		{OperationCode: "OP-ASSY", OperationName: "Final assembly", CycleTimeSeconds: 600},
	}
	for _, op := range demoOperations {
		existing, err := operations.GetByCode(ctx, op.OperationCode)
		if err != nil {
			fatal("lookup operation %s: %v", op.OperationCode, err)
		}
		if existing != nil {
			continue
		}
		op.ID = uuid.New().String()
		op.CreatedBy = "seed"
		op.CreatedAt = now
		if err := operations.Create(ctx, op); err != nil {
			fatal("create operation %s: %v", op.OperationCode, err)
		}
		seeded++
	}

	demoEmployees := []*entity.Employee{
		{EmployeeCode: "EMP-001", FullName: "Ana Torres", Email: "ana.torres@example.com"},
		{EmployeeCode: "EMP-002", FullName: "Luis Pardo", Email: "luis.pardo@example.com"},
	}
	for _, e := range demoEmployees {
		existing, err := employees.GetByCode(ctx, e.EmployeeCode)
		if err != nil {
			fatal("lookup employee %s: %v", e.EmployeeCode, err)
		}
		if existing != nil {
			continue
		}
		e.ID = uuid.New().String()
		e.CreatedBy = "seed"
		e.CreatedAt = now
		if err := employees.Create(ctx, e); err != nil {
			fatal("create employee %s: %v", e.EmployeeCode, err)
		}
		seeded++
	}

	demoBOMs := []*entity.BOM{
		{ParentProductCode: "BTP-FRAME-01", ComponentProductCode: "NVL-TUBE-25", QuantityPer: decimal.NewFromFloat(3.2), OperationCode: "OP-WELD", ScrapRate: decimal.NewFromInt(2)},
		{ParentProductCode: "TP-CHAIR-01", ComponentProductCode: "BTP-FRAME-01", QuantityPer: decimal.NewFromInt(1), OperationCode: "OP-ASSY"},
		{ParentProductCode: "TP-CHAIR-01", ComponentProductCode: "NVL-FABRIC-BK", QuantityPer: decimal.NewFromFloat(1.5), OperationCode: "OP-ASSY", ScrapRate: decimal.NewFromInt(5)},
	}
	for _, b := range demoBOMs {
		b.ID = uuid.New().String()
		b.EffectiveFrom = now
		b.CreatedBy = "seed"
		b.CreatedAt = now
		if err := boms.Create(ctx, b); err != nil {
			// The unique constraint on (parent, component, operation, window)
			// makes re-runs collide here; skip and keep going.
			continue
		}
		seeded++
	}

	shipDate := now.AddDate(0, 0, 7)
	demoPlans := []*entity.ProductionPlan{
		{ProductCode: "TP-CHAIR-01", ShipDate: shipDate, PlanQty: decimal.NewFromInt(100)},
		{ProductCode: "BTP-FRAME-01", ShipDate: shipDate, PlanQty: decimal.NewFromInt(120)},
	}
	for _, p := range demoPlans {
		p.ID = uuid.New().String()
		p.CreatedBy = "seed"
		p.CreatedAt = now
		if err := plans.Create(ctx, p); err != nil {
			// Duplicate (product, ship date) on re-run; skip.
			continue
		}
		seeded++
	}

	fmt.Printf("seed complete: %d records created\n", seeded)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
