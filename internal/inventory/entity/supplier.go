package entity

import (
	"time"
)

// Supplier 供应商
type Supplier struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	Email     string    `json:"email,omitempty" gorm:"size:200"`
	Phone     string    `json:"phone,omitempty" gorm:"size:50"`
	Address   string    `json:"address,omitempty" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "inv_suppliers"
}
