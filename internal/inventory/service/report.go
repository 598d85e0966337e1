package service

import (
	"sort"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
)

// DashboardStats 库存总览统计
type DashboardStats struct {
	TotalProducts   int     `json:"total_products"`
	OutOfStockCount int     `json:"out_of_stock_count"`
	LowStockCount   int     `json:"low_stock_count"`
	ProductValue    float64 `json:"product_value"`
}

// GroupBreakdown 按分类或供应商分组的统计行
type GroupBreakdown struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	ProductCount int     `json:"product_count"`
	TotalValue   float64 `json:"total_value"`
}

// ProductValueRow 商品货值排行
type ProductValueRow struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// InventoryRow 库存明细行
type InventoryRow struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	Supplier string  `json:"supplier"`
	Status   string  `json:"status"`
}

// ComputeDashboardStats 单趟遍历商品快照，统计总数、缺货数、低库存数与总货值。
// 空快照返回全零。
func ComputeDashboardStats(products []entity.Product) DashboardStats {
	var stats DashboardStats
	stats.TotalProducts = len(products)
	for i := range products {
		p := &products[i]
		switch entity.ClassifyStock(p.Quantity) {
		case entity.StockStatusOutOfStock:
			stats.OutOfStockCount++
		case entity.StockStatusLowStock:
			stats.LowStockCount++
		}
		stats.ProductValue += p.Value()
	}
	return stats
}

// CategoryBreakdown 按分类统计商品数与货值。没有商品的分类也会出现在结果中。
func CategoryBreakdown(products []entity.Product, categories []entity.Category) []GroupBreakdown {
	rows := make([]GroupBreakdown, 0, len(categories))
	for _, c := range categories {
		row := GroupBreakdown{ID: c.ID, Name: c.Name}
		for i := range products {
			if products[i].CategoryID == c.ID {
				row.ProductCount++
				row.TotalValue += products[i].Value()
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// SupplierBreakdown 按供应商统计商品数与货值。没有商品的供应商也会出现在结果中。
func SupplierBreakdown(products []entity.Product, suppliers []entity.Supplier) []GroupBreakdown {
	rows := make([]GroupBreakdown, 0, len(suppliers))
	for _, s := range suppliers {
		row := GroupBreakdown{ID: s.ID, Name: s.Name}
		for i := range products {
			if products[i].SupplierID == s.ID {
				row.ProductCount++
				row.TotalValue += products[i].Value()
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// InventoryRows 组装库存明细。分类或供应商已不存在时名称记为Unknown。
func InventoryRows(products []entity.Product, categories []entity.Category, suppliers []entity.Supplier) []InventoryRow {
	categoryNames := make(map[uint]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	supplierNames := make(map[uint]string, len(suppliers))
	for _, s := range suppliers {
		supplierNames[s.ID] = s.Name
	}

	rows := make([]InventoryRow, 0, len(products))
	for i := range products {
		p := &products[i]
		categoryName, ok := categoryNames[p.CategoryID]
		if !ok {
			categoryName = "Unknown"
		}
		supplierName, ok := supplierNames[p.SupplierID]
		if !ok {
			supplierName = "Unknown"
		}
		rows = append(rows, InventoryRow{
			ID:       p.ID,
			Name:     p.Name,
			SKU:      p.SKU,
			Quantity: p.Quantity,
			Price:    p.Price,
			Value:    p.Value(),
			Category: categoryName,
			Supplier: supplierName,
			Status:   entity.ClassifyStock(p.Quantity),
		})
	}
	return rows
}

// TopProductsByValue 按货值降序取前n个商品。货值相同的保持输入顺序。
func TopProductsByValue(products []entity.Product, n int) []ProductValueRow {
	rows := make([]ProductValueRow, 0, len(products))
	for i := range products {
		rows = append(rows, ProductValueRow{
			Name:  products[i].Name,
			Value: products[i].Value(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value > rows[j].Value
	})

	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}
