package service

import (
	"context"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/redis/go-redis/v9"
)

// AdjustmentService 库存调整服务
type AdjustmentService struct {
	repo *repository.AdjustmentRepository
	rdb  *redis.Client
}

func NewAdjustmentService(repo *repository.AdjustmentRepository, rdb *redis.Client) *AdjustmentService {
	return &AdjustmentService{repo: repo, rdb: rdb}
}

// CreateAdjustmentRequest 创建库存调整请求
type CreateAdjustmentRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Type      string `json:"type" binding:"required,oneof=addition subtraction"`
	Reason    string `json:"reason" binding:"required"`
}

// List 获取调整历史
func (s *AdjustmentService) List(ctx context.Context, page, pageSize int, productID uint) ([]entity.StockAdjustment, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, productID)
}

// Apply 应用库存调整。调整会导致库存为负时返回
// repository.ErrInsufficientStock，商品与调整历史均保持不变。
func (s *AdjustmentService) Apply(ctx context.Context, req *CreateAdjustmentRequest) (*entity.StockAdjustment, error) {
	adj := &entity.StockAdjustment{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Type:      req.Type,
		Reason:    req.Reason,
	}

	if err := s.repo.Apply(ctx, adj); err != nil {
		return nil, err
	}

	if s.rdb != nil {
		s.rdb.Del(ctx, dashboardStatsCacheKey)
	}
	return adj, nil
}
