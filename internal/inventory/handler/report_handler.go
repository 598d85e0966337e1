package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/service"
	"github.com/gin-gonic/gin"
)

// ReportHandler 报表处理器
type ReportHandler struct {
	reportSvc *service.ReportService
	exportSvc *service.ExportService
}

func NewReportHandler(reportSvc *service.ReportService, exportSvc *service.ExportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, exportSvc: exportSvc}
}

// GetInventoryReport 库存明细
// GET /api/v1/reports/inventory
func (h *ReportHandler) GetInventoryReport(c *gin.Context) {
	rows, err := h.reportSvc.GetInventoryRows(c.Request.Context())
	if err != nil {
		InternalError(c, "获取库存明细失败: "+err.Error())
		return
	}
	Success(c, gin.H{"items": rows})
}

// GetCategoryReport 分类汇总
// GET /api/v1/reports/categories
func (h *ReportHandler) GetCategoryReport(c *gin.Context) {
	rows, err := h.reportSvc.GetCategoryBreakdown(c.Request.Context())
	if err != nil {
		InternalError(c, "获取分类报表失败: "+err.Error())
		return
	}
	Success(c, gin.H{"items": rows})
}

// GetSupplierReport 供应商汇总
// GET /api/v1/reports/suppliers
func (h *ReportHandler) GetSupplierReport(c *gin.Context) {
	rows, err := h.reportSvc.GetSupplierBreakdown(c.Request.Context())
	if err != nil {
		InternalError(c, "获取供应商报表失败: "+err.Error())
		return
	}
	Success(c, gin.H{"items": rows})
}

// GetTopProducts 货值排行
// GET /api/v1/reports/top-products?limit=8
func (h *ReportHandler) GetTopProducts(c *gin.Context) {
	limit := 8
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	rows, err := h.reportSvc.GetTopProducts(c.Request.Context(), limit)
	if err != nil {
		InternalError(c, "获取货值排行失败: "+err.Error())
		return
	}
	Success(c, gin.H{"items": rows})
}

// ExportReport 导出报表文件
// GET /api/v1/reports/:type/export?format=csv|xlsx
func (h *ReportHandler) ExportReport(c *gin.Context) {
	reportType := c.Param("type")
	format := c.DefaultQuery("format", service.FormatCSV)

	data, contentType, filename, err := h.exportSvc.Export(c.Request.Context(), reportType, format)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownReport):
			BadRequest(c, "未知的报表类型: "+reportType)
		case errors.Is(err, service.ErrUnknownFormat):
			BadRequest(c, "未知的导出格式: "+format)
		default:
			InternalError(c, "导出报表失败: "+err.Error())
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
