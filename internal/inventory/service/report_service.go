package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/redis/go-redis/v9"
)

const (
	dashboardStatsCacheKey = "inventory:dashboard_stats"
	dashboardStatsCacheTTL = 30 * time.Second
)

// ReportService 报表服务。所有方法都是当前库存快照上的只读投影。
type ReportService struct {
	productRepo  *repository.ProductRepository
	categoryRepo *repository.CategoryRepository
	supplierRepo *repository.SupplierRepository
	rdb          *redis.Client
}

func NewReportService(productRepo *repository.ProductRepository, categoryRepo *repository.CategoryRepository, supplierRepo *repository.SupplierRepository, rdb *redis.Client) *ReportService {
	return &ReportService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		rdb:          rdb,
	}
}

// GetDashboardStats 获取库存总览统计，命中缓存时直接返回。
// 商品或库存的任何写入都会使缓存失效。
func (s *ReportService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, dashboardStatsCacheKey).Result()
		if err == nil && cached != "" {
			var stats DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	products, err := s.productRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeDashboardStats(products)

	if s.rdb != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.rdb.Set(ctx, dashboardStatsCacheKey, data, dashboardStatsCacheTTL)
		}
	}
	return &stats, nil
}

// GetInventoryRows 库存明细报表
func (s *ReportService) GetInventoryRows(ctx context.Context) ([]InventoryRow, error) {
	products, err := s.productRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.supplierRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}
	return InventoryRows(products, categories, suppliers), nil
}

// GetCategoryBreakdown 按分类统计
func (s *ReportService) GetCategoryBreakdown(ctx context.Context) ([]GroupBreakdown, error) {
	products, err := s.productRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}
	return CategoryBreakdown(products, categories), nil
}

// GetSupplierBreakdown 按供应商统计
func (s *ReportService) GetSupplierBreakdown(ctx context.Context) ([]GroupBreakdown, error) {
	products, err := s.productRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.supplierRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}
	return SupplierBreakdown(products, suppliers), nil
}

// GetTopProducts 按货值取前n个商品
func (s *ReportService) GetTopProducts(ctx context.Context, n int) ([]ProductValueRow, error) {
	products, err := s.productRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}
	return TopProductsByValue(products, n), nil
}
