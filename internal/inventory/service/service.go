package service

import (
	"errors"

	"github.com/bitfantasy/nimo-inventory/internal/config"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrInUse 记录仍被商品引用，不允许删除
var ErrInUse = errors.New("record is referenced by existing products")

// Services 服务集合
type Services struct {
	Product    *ProductService
	Category   *CategoryService
	Supplier   *SupplierService
	Adjustment *AdjustmentService
	Report     *ReportService
	Export     *ExportService
	Order      *OrderService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) *Services {
	// 初始化MinIO客户端（未配置时导出不归档）
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			minioClient = nil
		}
	}

	reportSvc := NewReportService(repos.Product, repos.Category, repos.Supplier, rdb)

	return &Services{
		Product:    NewProductService(repos.Product, rdb),
		Category:   NewCategoryService(repos.Category, repos.Product),
		Supplier:   NewSupplierService(repos.Supplier, repos.Product),
		Adjustment: NewAdjustmentService(repos.Adjustment, rdb),
		Report:     reportSvc,
		Export:     NewExportService(repos.Product, repos.Category, repos.Supplier, minioClient, cfg.MinIO.Bucket, logger),
		Order:      NewOrderService(repos.Order, repos.Product),
	}
}
