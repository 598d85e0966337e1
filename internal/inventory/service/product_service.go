package service

import (
	"context"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/redis/go-redis/v9"
)

// ProductService 商品服务
type ProductService struct {
	repo *repository.ProductRepository
	rdb  *redis.Client
}

func NewProductService(repo *repository.ProductRepository, rdb *redis.Client) *ProductService {
	return &ProductService{repo: repo, rdb: rdb}
}

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name       string  `json:"name" binding:"required"`
	SKU        string  `json:"sku" binding:"required"`
	Quantity   int     `json:"quantity" binding:"gte=0"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	CategoryID uint    `json:"category_id" binding:"required"`
	SupplierID uint    `json:"supplier_id" binding:"required"`
}

// UpdateProductRequest 更新商品请求
type UpdateProductRequest struct {
	Name       *string  `json:"name"`
	SKU        *string  `json:"sku"`
	Quantity   *int     `json:"quantity" binding:"omitempty,gte=0"`
	Price      *float64 `json:"price" binding:"omitempty,gt=0"`
	CategoryID *uint    `json:"category_id"`
	SupplierID *uint    `json:"supplier_id"`
}

// List 获取商品列表
func (s *ProductService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Product, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

// Get 获取商品详情
func (s *ProductService) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create 创建商品
func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*entity.Product, error) {
	product := &entity.Product{
		Name:       req.Name,
		SKU:        req.SKU,
		Quantity:   req.Quantity,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		SupplierID: req.SupplierID,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateStatsCache(ctx)
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(ctx context.Context, id uint, req *UpdateProductRequest) (*entity.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.SupplierID != nil {
		product.SupplierID = *req.SupplierID
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateStatsCache(ctx)
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateStatsCache(ctx)
	return nil
}

func (s *ProductService) invalidateStatsCache(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, dashboardStatsCacheKey)
	}
}
