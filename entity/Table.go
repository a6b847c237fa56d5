package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	TableNumber string `gorm:"uniqueIndex;not null" json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location"` // เช่น "Ground Floor"
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	// Status is derived from reservations on every read; the column only
	// holds the fallback shown when no reservation overlaps.
	Status TableStatus `gorm:"default:available" json:"status"`

	Orders       []Order            `json:"-"`
	Reservations []TableReservation `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
