package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"index" json:"productId"`
	Product   Product `json:"-"` // preload เฉพาะตอนต้องการชื่อสินค้า

	Quantity    int    `json:"quantity"`
	PriceAtTime int64  `json:"priceAtTime"` // ราคาที่ล็อกไว้ตอนสั่ง
	Subtotal    int64  `json:"subtotal"`    // Quantity * PriceAtTime
	Notes       string `json:"notes"`
}
