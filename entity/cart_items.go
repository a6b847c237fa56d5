package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"` // preload เฉพาะตอนต้องการชื่อสินค้า

	Quantity    int   `json:"quantity"`
	PriceAtTime int64 `json:"priceAtTime"` // ราคาตอนหยิบใส่ตะกร้า
}
