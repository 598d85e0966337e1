package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/service"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupReportTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	reportSvc := service.NewReportService(repos.Product, repos.Category, repos.Supplier, nil)
	exportSvc := service.NewExportService(repos.Product, repos.Category, repos.Supplier, nil, "", nil)
	dashboardHandler := NewDashboardHandler(reportSvc)
	reportHandler := NewReportHandler(reportSvc, exportSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	api.GET("/dashboard/stats", dashboardHandler.GetStats)

	reports := api.Group("/reports")
	reports.GET("/inventory", reportHandler.GetInventoryReport)
	reports.GET("/categories", reportHandler.GetCategoryReport)
	reports.GET("/suppliers", reportHandler.GetSupplierReport)
	reports.GET("/top-products", reportHandler.GetTopProducts)
	reports.GET("/:type/export", reportHandler.ExportReport)

	return router, db
}

func seedReportData(t *testing.T, db *gorm.DB) {
	t.Helper()
	electronics := testutil.SeedCategory(t, db, "Electronics")
	office := testutil.SeedCategory(t, db, "Office")
	testutil.SeedCategory(t, db, "Empty Category")
	acme := testutil.SeedSupplier(t, db, "Acme")

	// quantity 0 -> out of stock, 2 -> low stock, 10 -> in stock
	testutil.SeedProduct(t, db, "Gone", "SKU-R1", 0, 10, electronics.ID, acme.ID)
	testutil.SeedProduct(t, db, "Scarce", "SKU-R2", 2, 5, electronics.ID, acme.ID)
	testutil.SeedProduct(t, db, "Plenty", "SKU-R3", 10, 1, office.ID, acme.ID)
}

func TestDashboardStats(t *testing.T) {
	router, db := setupReportTest(t)
	token := testutil.DefaultTestToken()
	seedReportData(t, db)

	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/stats", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["total_products"].(float64) != 3 {
		t.Errorf("Expected total_products 3, got %v", data["total_products"])
	}
	if data["out_of_stock_count"].(float64) != 1 {
		t.Errorf("Expected out_of_stock_count 1, got %v", data["out_of_stock_count"])
	}
	if data["low_stock_count"].(float64) != 1 {
		t.Errorf("Expected low_stock_count 1, got %v", data["low_stock_count"])
	}
	// 0*10 + 2*5 + 10*1 = 20
	if data["product_value"].(float64) != 20 {
		t.Errorf("Expected product_value 20, got %v", data["product_value"])
	}
}

func TestDashboardStatsEmpty(t *testing.T) {
	router, _ := setupReportTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/dashboard/stats", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["total_products"].(float64) != 0 || data["product_value"].(float64) != 0 {
		t.Errorf("Expected all-zero stats, got %v", data)
	}
}

func TestInventoryReport(t *testing.T) {
	router, db := setupReportTest(t)
	token := testutil.DefaultTestToken()
	seedReportData(t, db)

	w := testutil.DoRequest(router, "GET", "/api/v1/reports/inventory", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(items))
	}

	first := items[0].(map[string]interface{})
	if first["name"] != "Gone" {
		t.Errorf("Expected first row 'Gone', got %v", first["name"])
	}
	if first["status"] != "out_of_stock" {
		t.Errorf("Expected status 'out_of_stock', got %v", first["status"])
	}
	if first["value"].(float64) != 0 {
		t.Errorf("Expected value 0 for out-of-stock row, got %v", first["value"])
	}
	if first["category"] != "Electronics" {
		t.Errorf("Expected category 'Electronics', got %v", first["category"])
	}
	if first["supplier"] != "Acme" {
		t.Errorf("Expected supplier 'Acme', got %v", first["supplier"])
	}
}

func TestCategoryReportKeepsEmptyGroups(t *testing.T) {
	router, db := setupReportTest(t)
	token := testutil.DefaultTestToken()
	seedReportData(t, db)

	w := testutil.DoRequest(router, "GET", "/api/v1/reports/categories", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("Expected 3 category rows, got %d", len(items))
	}

	var foundEmpty bool
	for _, it := range items {
		row := it.(map[string]interface{})
		if row["name"] == "Empty Category" {
			foundEmpty = true
			if row["product_count"].(float64) != 0 || row["total_value"].(float64) != 0 {
				t.Errorf("Expected zero row for empty category, got %v", row)
			}
		}
	}
	if !foundEmpty {
		t.Error("Expected empty category to appear in breakdown")
	}
}

func TestTopProductsReport(t *testing.T) {
	router, db := setupReportTest(t)
	token := testutil.DefaultTestToken()
	seedReportData(t, db)

	w := testutil.DoRequest(router, "GET", "/api/v1/reports/top-products?limit=2", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(items))
	}
	first := items[0].(map[string]interface{})
	// Plenty: 10*1 = 10 is the highest value
	if first["name"] != "Plenty" {
		t.Errorf("Expected top product 'Plenty', got %v", first["name"])
	}
}

func TestExportInventoryCSV(t *testing.T) {
	router, db := setupReportTest(t)
	token := testutil.DefaultTestToken()
	seedReportData(t, db)

	w := testutil.DoRequest(router, "GET", "/api/v1/reports/inventory/export", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Expected text/csv content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "inventory_report.csv") {
		t.Errorf("Expected attachment filename, got %q", cd)
	}

	body := w.Body.String()
	lines := strings.Split(body, "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header + 3 rows, got %d lines", len(lines))
	}
	wantHeader := "Product Name,SKU,Quantity,Price,Value,Category,Supplier,Status"
	if lines[0] != wantHeader {
		t.Errorf("Header = %q, want %q", lines[0], wantHeader)
	}
	if !strings.Contains(body, `"Out of Stock"`) {
		t.Errorf("Expected an out-of-stock row in export:\n%s", body)
	}
}

func TestExportCategoryCSV(t *testing.T) {
	router, db := setupReportTest(t)
	token := testutil.DefaultTestToken()
	seedReportData(t, db)

	w := testutil.DoRequest(router, "GET", "/api/v1/reports/categories/export?format=csv", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	lines := strings.Split(w.Body.String(), "\n")
	if lines[0] != "Category,Product Count,Total Value" {
		t.Errorf("Header = %q", lines[0])
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "category_report.csv") {
		t.Errorf("Expected category_report.csv filename, got %q", cd)
	}
}

func TestExportXLSX(t *testing.T) {
	router, db := setupReportTest(t)
	token := testutil.DefaultTestToken()
	seedReportData(t, db)

	w := testutil.DoRequest(router, "GET", "/api/v1/reports/suppliers/export?format=xlsx", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Expected xlsx content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "supplier_report.xlsx") {
		t.Errorf("Expected supplier_report.xlsx filename, got %q", cd)
	}
}

func TestExportUnknownReportType(t *testing.T) {
	router, _ := setupReportTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/reports/bogus/export", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown report type, got %d: %s", w.Code, w.Body.String())
	}
}

func TestExportUnknownFormat(t *testing.T) {
	router, db := setupReportTest(t)
	token := testutil.DefaultTestToken()
	seedReportData(t, db)

	w := testutil.DoRequest(router, "GET", "/api/v1/reports/inventory/export?format=pdf", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown format, got %d: %s", w.Code, w.Body.String())
	}
}
