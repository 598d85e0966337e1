package entity

import (
	"time"
)

// Product 商品
type Product struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:200;not null"`
	SKU        string    `json:"sku" gorm:"size:64;uniqueIndex;not null"`
	Quantity   int       `json:"quantity" gorm:"not null;default:0"`
	Price      float64   `json:"price" gorm:"type:decimal(12,2);not null"`
	CategoryID uint      `json:"category_id" gorm:"index"`
	SupplierID uint      `json:"supplier_id" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 关联
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

func (Product) TableName() string {
	return "inv_products"
}

// Value 库存货值 = 单价 × 数量
func (p *Product) Value() float64 {
	return p.Price * float64(p.Quantity)
}
