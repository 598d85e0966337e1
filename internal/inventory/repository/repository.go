package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrInsufficientStock 调整会导致库存为负
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Repositories 库存域仓库集合
type Repositories struct {
	Product    *ProductRepository
	Category   *CategoryRepository
	Supplier   *SupplierRepository
	Adjustment *AdjustmentRepository
	Order      *OrderRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Product:    NewProductRepository(db),
		Category:   NewCategoryRepository(db),
		Supplier:   NewSupplierRepository(db),
		Adjustment: NewAdjustmentRepository(db),
		Order:      NewOrderRepository(db),
	}
}
