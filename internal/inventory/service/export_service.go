package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// 报表类型
const (
	ReportInventory  = "inventory"
	ReportCategories = "categories"
	ReportSuppliers  = "suppliers"
)

// 导出格式
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var (
	ErrUnknownReport = errors.New("unknown report type")
	ErrUnknownFormat = errors.New("unknown export format")
)

// Report 待导出的报表：固定列集与已字符串化的数据行
type Report struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Filename 导出文件名 <report>_report.<format>
func (r *Report) Filename(format string) string {
	return r.Name + "_report." + format
}

// ExportService 报表导出服务
type ExportService struct {
	productRepo  *repository.ProductRepository
	categoryRepo *repository.CategoryRepository
	supplierRepo *repository.SupplierRepository

	minioClient *minio.Client
	bucket      string
	logger      *zap.Logger
}

func NewExportService(productRepo *repository.ProductRepository, categoryRepo *repository.CategoryRepository, supplierRepo *repository.SupplierRepository, minioClient *minio.Client, bucket string, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		minioClient:  minioClient,
		bucket:       bucket,
		logger:       logger,
	}
}

// Export 构建并序列化报表。配置了MinIO时同时归档一份副本，归档失败不影响导出。
func (s *ExportService) Export(ctx context.Context, reportType, format string) (data []byte, contentType, filename string, err error) {
	var report *Report
	switch reportType {
	case ReportInventory:
		report, err = s.BuildInventoryReport(ctx)
	case ReportCategories:
		report, err = s.BuildCategoryReport(ctx)
	case ReportSuppliers:
		report, err = s.BuildSupplierReport(ctx)
	default:
		return nil, "", "", ErrUnknownReport
	}
	if err != nil {
		return nil, "", "", err
	}

	switch format {
	case FormatCSV:
		data = []byte(ToCSV(report.Headers, report.Rows))
		contentType = "text/csv; charset=utf-8"
	case FormatXLSX:
		data, err = ToXLSX(report.Headers, report.Rows)
		if err != nil {
			return nil, "", "", err
		}
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, "", "", ErrUnknownFormat
	}

	filename = report.Filename(format)
	if archiveErr := s.archive(ctx, filename, data, contentType); archiveErr != nil {
		s.logger.Warn("Failed to archive report",
			zap.String("filename", filename),
			zap.Error(archiveErr))
	}
	return data, contentType, filename, nil
}

// BuildInventoryReport 库存明细报表
func (s *ExportService) BuildInventoryReport(ctx context.Context) (*Report, error) {
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

	report := &Report{
		Name:    "inventory",
		Headers: []string{"Product Name", "SKU", "Quantity", "Price", "Value", "Category", "Supplier", "Status"},
	}
	for _, row := range InventoryRows(products, categories, suppliers) {
		report.Rows = append(report.Rows, []string{
			row.Name,
			row.SKU,
			strconv.Itoa(row.Quantity),
			formatFloat(row.Price),
			formatFloat(row.Value),
			row.Category,
			row.Supplier,
			entity.StockStatusLabel(row.Status),
		})
	}
	return report, nil
}

// BuildCategoryReport 分类汇总报表
func (s *ExportService) BuildCategoryReport(ctx context.Context) (*Report, error) {
	products, err := s.productRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Name:    "category",
		Headers: []string{"Category", "Product Count", "Total Value"},
	}
	for _, row := range CategoryBreakdown(products, categories) {
		report.Rows = append(report.Rows, []string{
			row.Name,
			strconv.Itoa(row.ProductCount),
			formatFloat(row.TotalValue),
		})
	}
	return report, nil
}

// BuildSupplierReport 供应商汇总报表
func (s *ExportService) BuildSupplierReport(ctx context.Context) (*Report, error) {
	products, err := s.productRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.supplierRepo.FindAllForReport(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Name:    "supplier",
		Headers: []string{"Supplier", "Product Count", "Total Value"},
	}
	for _, row := range SupplierBreakdown(products, suppliers) {
		report.Rows = append(report.Rows, []string{
			row.Name,
			strconv.Itoa(row.ProductCount),
			formatFloat(row.TotalValue),
		})
	}
	return report, nil
}

// ToCSV 序列化为CSV文本：表头按原样以逗号连接，数据字段都用双引号包裹、
// 字段内引号翻倍，行以换行符连接。没有数据行时返回空文本。
func ToCSV(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		writeCSVRow(&b, row)
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
}

// ToXLSX 序列化为XLSX工作簿
func ToXLSX(headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) archive(ctx context.Context, filename string, data []byte, contentType string) error {
	if s.minioClient == nil || s.bucket == "" {
		return nil
	}
	objectName := "reports/" + time.Now().Format("20060102T150405") + "_" + filename
	_, err := s.minioClient.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("archive report %s: %w", objectName, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
