package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Code string `gorm:"uniqueIndex" json:"code"` // รหัสออเดอร์สำหรับโชว์ลูกค้า

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"` // preload เฉพาะตอนต้องการ user detail

	// โต๊ะสำหรับ dine-in (optional)
	TableID *uint  `gorm:"index" json:"tableId"`
	Table   *Table `json:"-"`

	TotalAmount int64 `json:"totalAmount"`

	Status        OrderStatus   `gorm:"index;default:pending" json:"status"`
	PaymentStatus PaymentStatus `gorm:"default:unpaid" json:"paymentStatus"`
	PaymentMethod string        `json:"paymentMethod"`

	DeliveryType string `gorm:"default:pickup" json:"deliveryType"` // pickup | dine-in
	Notes        string `json:"notes"`

	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// preload แค่ตอน detail
	Items       []OrderItem       `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Reservation *TableReservation `gorm:"foreignKey:OrderID" json:"reservation,omitempty"`
}

// ItemTotal sums the stored subtotals; must always equal TotalAmount.
func (o *Order) ItemTotal() int64 {
	var sum int64
	for _, it := range o.Items {
		sum += it.Subtotal
	}
	return sum
}
