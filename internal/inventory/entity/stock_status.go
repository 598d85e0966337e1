package entity

// 库存状态
const (
	StockStatusOutOfStock = "out_of_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusInStock    = "in_stock"
)

// LowStockThreshold 低库存阈值（含）。数量为0视为缺货，1~3为低库存，4及以上为正常。
const LowStockThreshold = 3

// ClassifyStock 根据库存数量判定库存状态
func ClassifyStock(quantity int) string {
	switch {
	case quantity <= 0:
		return StockStatusOutOfStock
	case quantity <= LowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// StockStatusLabel 库存状态的报表展示名
func StockStatusLabel(status string) string {
	switch status {
	case StockStatusOutOfStock:
		return "Out of Stock"
	case StockStatusLowStock:
		return "Low Stock"
	default:
		return "In Stock"
	}
}
