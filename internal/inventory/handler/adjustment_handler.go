package handler

import (
	"errors"
	"strconv"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

// AdjustmentHandler 库存调整处理器
type AdjustmentHandler struct {
	svc *service.AdjustmentService
}

func NewAdjustmentHandler(svc *service.AdjustmentService) *AdjustmentHandler {
	return &AdjustmentHandler{svc: svc}
}

// ListAdjustments 调整历史
// GET /api/v1/stock-adjustments?product_id=1&page=1&page_size=20
func (h *AdjustmentHandler) ListAdjustments(c *gin.Context) {
	page, pageSize := GetPagination(c)

	var productID uint
	if p := c.Query("product_id"); p != "" {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			BadRequest(c, "product_id参数无效")
			return
		}
		productID = uint(v)
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, productID)
	if err != nil {
		InternalError(c, "获取调整历史失败: "+err.Error())
		return
	}

	ListOK(c, items, page, pageSize, total)
}

// CreateAdjustment 创建库存调整
// POST /api/v1/stock-adjustments
func (h *AdjustmentHandler) CreateAdjustment(c *gin.Context) {
	var req service.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	adj, err := h.svc.Apply(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			BadRequest(c, "库存不足，调整后数量不能为负")
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "商品不存在")
		default:
			InternalError(c, "创建库存调整失败: "+err.Error())
		}
		return
	}

	Created(c, adj)
}
