package service

import (
	"context"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
)

// CategoryService 分类服务
type CategoryService struct {
	repo        *repository.CategoryRepository
	productRepo *repository.ProductRepository
}

func NewCategoryService(repo *repository.CategoryRepository, productRepo *repository.ProductRepository) *CategoryService {
	return &CategoryService{repo: repo, productRepo: productRepo}
}

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest 更新分类请求
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// List 获取分类列表
func (s *CategoryService) List(ctx context.Context, page, pageSize int, search string) ([]entity.Category, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, search)
}

// Get 获取分类详情
func (s *CategoryService) Get(ctx context.Context, id uint) (*entity.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// Create 创建分类
func (s *CategoryService) Create(ctx context.Context, req *CreateCategoryRequest) (*entity.Category, error) {
	category := &entity.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update 更新分类
func (s *CategoryService) Update(ctx context.Context, id uint, req *UpdateCategoryRequest) (*entity.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类。仍有商品引用该分类时拒绝删除。
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrInUse
	}
	return s.repo.Delete(ctx, id)
}
