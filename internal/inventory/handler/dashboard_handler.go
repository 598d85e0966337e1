package handler

import (
	"github.com/bitfantasy/nimo-inventory/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler 看板处理器
type DashboardHandler struct {
	svc *service.ReportService
}

func NewDashboardHandler(svc *service.ReportService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetStats 库存总览统计
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.svc.GetDashboardStats(c.Request.Context())
	if err != nil {
		InternalError(c, "获取库存统计失败: "+err.Error())
		return
	}
	Success(c, stats)
}
