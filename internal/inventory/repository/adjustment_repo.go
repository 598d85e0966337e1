package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdjustmentRepository 库存调整仓库
type AdjustmentRepository struct {
	db *gorm.DB
}

func NewAdjustmentRepository(db *gorm.DB) *AdjustmentRepository {
	return &AdjustmentRepository{db: db}
}

// FindAll 查询调整历史，按时间倒序
func (r *AdjustmentRepository) FindAll(ctx context.Context, page, pageSize int, productID uint) ([]entity.StockAdjustment, int64, error) {
	var items []entity.StockAdjustment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockAdjustment{})
	if productID != 0 {
		query = query.Where("product_id = ?", productID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Product").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// Apply 在单个事务内完成检查与写入：锁定商品行，校验调整后数量不为负，
// 更新商品库存并追加调整记录。任一步失败则整体回滚，商品与历史均不变。
func (r *AdjustmentRepository) Apply(ctx context.Context, adj *entity.StockAdjustment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product entity.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", adj.ProductID).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		newQuantity := product.Quantity + adj.Delta()
		if newQuantity < 0 {
			return ErrInsufficientStock
		}

		err = tx.Model(&entity.Product{}).
			Where("id = ?", product.ID).
			Updates(map[string]interface{}{
				"quantity":   newQuantity,
				"updated_at": time.Now(),
			}).Error
		if err != nil {
			return err
		}

		return tx.Create(adj).Error
	})
}
