package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `gorm:"index;not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // หน่วยเป็น đồng

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload เมื่อจำเป็น

	ImageURL    string `json:"imageUrl"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`

	// Stock = nil หมายถึงไม่นับสต็อก (ขายได้ไม่จำกัด)
	Stock *int `json:"stock"`

	PrepMinutes int `json:"prepMinutes"`
	Calories    int `json:"calories"`

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}

// StockTracked reports whether inventory is counted for this product.
func (p *Product) StockTracked() bool { return p.Stock != nil }
