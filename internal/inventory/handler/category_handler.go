package handler

import (
	"errors"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

// CategoryHandler 分类处理器
type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// ListCategories 分类列表
// GET /api/v1/categories?search=xxx&page=1&page_size=20
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	page, pageSize := GetPagination(c)

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, c.Query("search"))
	if err != nil {
		InternalError(c, "获取分类列表失败: "+err.Error())
		return
	}

	ListOK(c, items, page, pageSize, total)
}

// GetCategory 分类详情
// GET /api/v1/categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := GetIDParam(c, "id")
	if !ok {
		return
	}

	category, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "分类不存在")
			return
		}
		InternalError(c, "获取分类失败: "+err.Error())
		return
	}
	Success(c, category)
}

// CreateCategory 创建分类
// POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	category, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		InternalError(c, "创建分类失败: "+err.Error())
		return
	}

	Created(c, category)
}

// UpdateCategory 更新分类
// PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := GetIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	category, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "分类不存在")
			return
		}
		InternalError(c, "更新分类失败: "+err.Error())
		return
	}

	Success(c, category)
}

// DeleteCategory 删除分类。仍有商品引用时返回409。
// DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := GetIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrInUse):
			Conflict(c, "分类下仍有商品，无法删除")
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "分类不存在")
		default:
			InternalError(c, "删除分类失败: "+err.Error())
		}
		return
	}
	Success(c, nil)
}
