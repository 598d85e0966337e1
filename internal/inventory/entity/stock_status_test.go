package entity

import "testing"

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     string
	}{
		{"zero quantity is out of stock", 0, StockStatusOutOfStock},
		{"negative quantity is out of stock", -5, StockStatusOutOfStock},
		{"quantity 1 is low stock", 1, StockStatusLowStock},
		{"quantity at threshold is low stock", 3, StockStatusLowStock},
		{"quantity just above threshold is in stock", 4, StockStatusInStock},
		{"large quantity is in stock", 1000, StockStatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStock(tt.quantity)
			if got != tt.want {
				t.Errorf("ClassifyStock(%d) = %q, want %q", tt.quantity, got, tt.want)
			}
		})
	}
}

func TestStockStatusLabel(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{StockStatusOutOfStock, "Out of Stock"},
		{StockStatusLowStock, "Low Stock"},
		{StockStatusInStock, "In Stock"},
	}

	for _, tt := range tests {
		got := StockStatusLabel(tt.status)
		if got != tt.want {
			t.Errorf("StockStatusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestProductValue(t *testing.T) {
	p := Product{Quantity: 4, Price: 2.5}
	if got := p.Value(); got != 10 {
		t.Errorf("Value() = %v, want 10", got)
	}

	empty := Product{Quantity: 0, Price: 99.9}
	if got := empty.Value(); got != 0 {
		t.Errorf("Value() for zero quantity = %v, want 0", got)
	}
}
