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

// Search results are capped, not paginated.
const productSearchLimit = 500

// ProductUseCase CRUD for product master data.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create registers a product. A live product with the same code surfaces as
// ErrDuplicate from the repository.
func (uc *ProductUseCase) Create(ctx context.Context, createdBy string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !validCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock.IsNegative() || in.QtyPerBox.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:                   uuid.New().String(),
		ProductCode:          in.ProductCode,
		ProductName:          in.ProductName,
		UOM:                  in.UOM,
		Category:             in.Category,
		InitialWarehouseCode: in.InitialWarehouseCode,
		SupplierName:         in.SupplierName,
		SupplierCode:         in.SupplierCode,
		MinStock:             in.MinStock,
		QtyPerBox:            in.QtyPerBox,
		CreatedBy:            createdBy,
		CreatedAt:            time.Now(),
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get resolves a live product by code.
func (uc *ProductUseCase) Get(ctx context.Context, code string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Search matches code or name against the query, optionally narrowed by category.
func (uc *ProductUseCase) Search(ctx context.Context, query, category string) (*dto.ProductListResponse, error) {
	if category != "" && !validCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.products.Search(ctx, query, category, productSearchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Update overwrites the supplied fields. The product code itself is immutable.
func (uc *ProductUseCase) Update(ctx context.Context, code, updatedBy string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductName != nil {
		product.ProductName = *in.ProductName
	}
	if in.UOM != nil {
		product.UOM = *in.UOM
	}
	if in.Category != nil {
		if !validCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		product.Category = *in.Category
	}
	if in.InitialWarehouseCode != nil {
		product.InitialWarehouseCode = *in.InitialWarehouseCode
	}
	if in.SupplierName != nil {
		product.SupplierName = *in.SupplierName
	}
	if in.SupplierCode != nil {
		product.SupplierCode = *in.SupplierCode
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.QtyPerBox != nil {
		if in.QtyPerBox.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.QtyPerBox = *in.QtyPerBox
	}
	now := time.Now()
	product.UpdatedBy = updatedBy
	product.UpdatedAt = &now
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete soft-deletes the product. Plans and ledger entries referencing the
// code are left in place.
func (uc *ProductUseCase) Delete(ctx context.Context, code, deletedBy string) error {
	product, err := uc.products.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	product.IsDeleted = true
	product.UpdatedBy = deletedBy
	product.UpdatedAt = &now
	return uc.products.Update(ctx, product)
}

func validCategory(c string) bool {
	switch c {
	case entity.CategoryRawMaterial, entity.CategorySemiFinished, entity.CategoryFinished:
		return true
	}
	return false
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                   p.ID,
		ProductCode:          p.ProductCode,
		ProductName:          p.ProductName,
		UOM:                  p.UOM,
		Category:             p.Category,
		InitialWarehouseCode: p.InitialWarehouseCode,
		SupplierName:         p.SupplierName,
		SupplierCode:         p.SupplierCode,
		MinStock:             p.MinStock,
		QtyPerBox:            p.QtyPerBox,
		CreatedBy:            p.CreatedBy,
		CreatedAt:            p.CreatedAt,
		UpdatedBy:            p.UpdatedBy,
		UpdatedAt:            p.UpdatedAt,
	}
}
