package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Subtotal รวมราคาทุกชิ้นจาก snapshot ตอนหยิบใส่ตะกร้า
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.PriceAtTime * int64(it.Quantity)
	}
	return sum
}
