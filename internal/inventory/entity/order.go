package entity

import (
	"time"
)

// 订单状态
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus 校验订单状态取值
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order 销售订单
type Order struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OrderNumber   string    `json:"order_number" gorm:"size:32;uniqueIndex;not null"`
	CustomerName  string    `json:"customer_name" gorm:"size:200;not null"`
	CustomerEmail string    `json:"customer_email" gorm:"size:200"`
	Status        string    `json:"status" gorm:"size:20;not null;default:pending"`
	TotalAmount   float64   `json:"total_amount" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "inv_orders"
}

// OrderItem 订单行项。UnitPrice为下单时商品单价的快照。
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(12,2);not null"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "inv_order_items"
}
