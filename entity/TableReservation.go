package entity

import (
	"time"

	"gorm.io/gorm"
)

type TableReservation struct {
	gorm.Model
	TableID uint  `gorm:"index" json:"tableId"`
	Table   Table `json:"-"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	// ผูกกับออเดอร์ตอนสั่งอาหารแบบ dine-in (back-reference เฉย ๆ)
	OrderID *uint  `gorm:"index" json:"orderId"`
	Order   *Order `json:"-"`

	StartTime time.Time `gorm:"index" json:"startTime"`
	EndTime   time.Time `gorm:"index" json:"endTime"`
	PartySize int       `gorm:"default:1" json:"partySize"`
	Notes     string    `json:"notes"`

	Status ReservationStatus `gorm:"index;default:confirmed" json:"status"`
}

// Blocking reports whether the reservation still claims its time window.
func (r *TableReservation) Blocking() bool {
	switch r.Status {
	case ReservationPending, ReservationConfirmed, ReservationActive:
		return true
	}
	return false
}
