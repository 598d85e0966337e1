package entity

import (
	"time"
)

// 调整类型
const (
	AdjustmentTypeAddition    = "addition"
	AdjustmentTypeSubtraction = "subtraction"
)

// StockAdjustment 库存调整记录。调整一经写入即为审计历史，不允许修改或删除。
type StockAdjustment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Type      string    `json:"type" gorm:"size:20;not null"`
	Reason    string    `json:"reason" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (StockAdjustment) TableName() string {
	return "inv_stock_adjustments"
}

// Delta 带符号的数量变化：addition为正，subtraction为负
func (a *StockAdjustment) Delta() int {
	if a.Type == AdjustmentTypeSubtraction {
		return -a.Quantity
	}
	return a.Quantity
}
