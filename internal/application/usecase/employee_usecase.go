package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openmes/mes-api/internal/application/dto"
	"github.com/openmes/mes-api/internal/domain"
	"github.com/openmes/mes-api/internal/domain/entity"
	"github.com/openmes/mes-api/internal/domain/repository"
)

// EmployeeUseCase CRUD for employee master data.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
}

// NewEmployeeUseCase builds the use case.
func NewEmployeeUseCase(employees repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees}
}

// Create registers an employee.
func (uc *EmployeeUseCase) Create(ctx context.Context, createdBy string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp := &entity.Employee{
		ID:           uuid.New().String(),
		EmployeeCode: in.EmployeeCode,
		FullName:     in.FullName,
		Email:        in.Email,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
	}
	if err := uc.employees.Create(ctx, emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Get resolves a live employee by code.
func (uc *EmployeeUseCase) Get(ctx context.Context, code string) (*dto.EmployeeResponse, error) {
	emp, err := uc.employees.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(emp), nil
}

// List pages employees matching the query.
func (uc *EmployeeUseCase) List(ctx context.Context, query string, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	emps, total, err := uc.employees.List(ctx, query, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      total,
		TotalPages: page.TotalPages(total),
	}, nil
}

// Update overwrites the supplied fields. The employee code itself is immutable.
func (uc *EmployeeUseCase) Update(ctx context.Context, code, updatedBy string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.employees.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != nil {
		emp.FullName = *in.FullName
	}
	if in.Email != nil {
		emp.Email = *in.Email
	}
	now := time.Now()
	emp.UpdatedBy = updatedBy
	emp.UpdatedAt = &now
	if err := uc.employees.Update(ctx, emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Delete soft-deletes the employee.
func (uc *EmployeeUseCase) Delete(ctx context.Context, code, deletedBy string) error {
	emp, err := uc.employees.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	emp.IsDeleted = true
	emp.UpdatedBy = deletedBy
	emp.UpdatedAt = &now
	return uc.employees.Update(ctx, emp)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt,
		UpdatedBy:    e.UpdatedBy,
		UpdatedAt:    e.UpdatedAt,
	}
}
