package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`

	Products []Product `json:"-"`
}
