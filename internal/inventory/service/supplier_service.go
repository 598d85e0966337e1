package service

import (
	"context"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
)

// SupplierService 供应商服务
type SupplierService struct {
	repo        *repository.SupplierRepository
	productRepo *repository.ProductRepository
}

func NewSupplierService(repo *repository.SupplierRepository, productRepo *repository.ProductRepository) *SupplierService {
	return &SupplierService{repo: repo, productRepo: productRepo}
}

// CreateSupplierRequest 创建供应商请求
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateSupplierRequest 更新供应商请求
type UpdateSupplierRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// List 获取供应商列表
func (s *SupplierService) List(ctx context.Context, page, pageSize int, search string) ([]entity.Supplier, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, search)
}

// Get 获取供应商详情
func (s *SupplierService) Get(ctx context.Context, id uint) (*entity.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

// Create 创建供应商
func (s *SupplierService) Create(ctx context.Context, req *CreateSupplierRequest) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Update 更新供应商
func (s *SupplierService) Update(ctx context.Context, id uint, req *UpdateSupplierRequest) (*entity.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete 删除供应商。仍有商品引用该供应商时拒绝删除。
func (s *SupplierService) Delete(ctx context.Context, id uint) error {
	count, err := s.productRepo.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrInUse
	}
	return s.repo.Delete(ctx, id)
}
