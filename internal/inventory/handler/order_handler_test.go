package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/service"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupOrderTest(t *testing.T) (*gin.Engine, *gorm.DB, *entity.Product, *entity.Product) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	category := testutil.SeedCategory(t, db, "Goods")
	supplier := testutil.SeedSupplier(t, db, "Acme")
	cheap := testutil.SeedProduct(t, db, "Cheap Thing", "SKU-ORD-1", 100, 2.5, category.ID, supplier.ID)
	pricey := testutil.SeedProduct(t, db, "Pricey Thing", "SKU-ORD-2", 50, 40, category.ID, supplier.ID)

	repos := repository.NewRepositories(db)
	orderSvc := service.NewOrderService(repos.Order, repos.Product)
	orderHandler := NewOrderHandler(orderSvc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	orders := api.Group("/orders")
	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.POST("", orderHandler.CreateOrder)
	orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)

	return router, db, cheap, pricey
}

func TestOrderCreate(t *testing.T) {
	router, _, cheap, pricey := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/orders", map[string]interface{}{
		"customer_name":  "Jordan Lee",
		"customer_email": "jordan@example.com",
		"order_items": []map[string]interface{}{
			{"product_id": cheap.ID, "quantity": 4},
			{"product_id": pricey.ID, "quantity": 1},
		},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})

	number, ok := data["order_number"].(string)
	if !ok || !strings.HasPrefix(number, "ORD-") {
		t.Errorf("Expected order number with ORD- prefix, got %v", data["order_number"])
	}
	if data["status"] != entity.OrderStatusPending {
		t.Errorf("Expected status 'pending', got %v", data["status"])
	}
	// 4*2.5 + 1*40 = 50
	if data["total_amount"].(float64) != 50 {
		t.Errorf("Expected total_amount 50, got %v", data["total_amount"])
	}
}

func TestOrderCreateUnknownProduct(t *testing.T) {
	router, _, _, _ := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/orders", map[string]interface{}{
		"customer_name": "Ghost Buyer",
		"order_items": []map[string]interface{}{
			{"product_id": 99999, "quantity": 1},
		},
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrderCreateRequiresItems(t *testing.T) {
	router, _, _, _ := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/orders", map[string]interface{}{
		"customer_name": "No Items",
		"order_items":   []map[string]interface{}{},
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty items, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrderGetWithItems(t *testing.T) {
	router, _, cheap, _ := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/orders", map[string]interface{}{
		"customer_name": "Item Checker",
		"order_items": []map[string]interface{}{
			{"product_id": cheap.ID, "quantity": 2},
		},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := testutil.ParseResponse(w)["data"].(map[string]interface{})
	id := int(created["id"].(float64))

	w = testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/orders/%d", id), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	items := data["order_items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("Expected 1 order item, got %d", len(items))
	}
	item := items[0].(map[string]interface{})
	if item["unit_price"].(float64) != 2.5 {
		t.Errorf("Expected unit_price snapshot 2.5, got %v", item["unit_price"])
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	router, _, cheap, _ := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/orders", map[string]interface{}{
		"customer_name": "Status Changer",
		"order_items": []map[string]interface{}{
			{"product_id": cheap.ID, "quantity": 1},
		},
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := testutil.ParseResponse(w)["data"].(map[string]interface{})
	id := int(created["id"].(float64))

	w = testutil.DoRequest(router, "PUT", fmt.Sprintf("/api/v1/orders/%d/status", id),
		map[string]string{"status": entity.OrderStatusCompleted}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["status"] != entity.OrderStatusCompleted {
		t.Errorf("Expected status 'completed', got %v", data["status"])
	}
}

func TestOrderUpdateStatusInvalid(t *testing.T) {
	router, _, cheap, _ := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/orders", map[string]interface{}{
		"customer_name": "Bad Status",
		"order_items": []map[string]interface{}{
			{"product_id": cheap.ID, "quantity": 1},
		},
	}, token)
	created := testutil.ParseResponse(w)["data"].(map[string]interface{})
	id := int(created["id"].(float64))

	w = testutil.DoRequest(router, "PUT", fmt.Sprintf("/api/v1/orders/%d/status", id),
		map[string]string{"status": "shipped"}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid status, got %d: %s", w.Code, w.Body.String())
	}
}

func TestOrderListFilterByStatus(t *testing.T) {
	router, _, cheap, _ := setupOrderTest(t)
	token := testutil.DefaultTestToken()

	for i := 0; i < 2; i++ {
		w := testutil.DoRequest(router, "POST", "/api/v1/orders", map[string]interface{}{
			"customer_name": fmt.Sprintf("Buyer %d", i),
			"order_items": []map[string]interface{}{
				{"product_id": cheap.ID, "quantity": 1},
			},
		}, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(router, "GET", "/api/v1/orders?status=pending", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 2 {
		t.Errorf("Expected 2 pending orders, got %v", pagination["total"])
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/orders?status=completed", nil, token)
	data = testutil.ParseResponse(w)["data"].(map[string]interface{})
	pagination = data["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 0 {
		t.Errorf("Expected 0 completed orders, got %v", pagination["total"])
	}
}
