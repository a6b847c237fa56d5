package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `gorm:"not null;default:student" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	// ข้อมูลนักเรียน (optional)
	StudentID string `json:"studentId"`
	ClassName string `json:"className"`

	// Relations — preload เฉพาะตอนจำเป็น
	Cart         *Cart              `json:"-"`
	Orders       []Order            `json:"-"`
	Reservations []TableReservation `json:"-"`
}

// Privileged reports whether the user may act on other users' orders.
func (u *User) Privileged() bool {
	return u.Role == RoleAdmin || u.Role == RoleStaff
}
