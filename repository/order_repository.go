package repository

import (
	"time"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// Get โหลดออเดอร์พร้อมความสัมพันธ์ครบ สำหรับ detail/notification
func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Product").
		Preload("User").
		Preload("Table").
		Preload("Reservation").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, it *entity.OrderItem) error {
	return tx.Create(it).Error
}

func (r *OrderRepository) ListForUser(userID uint, limit, offset int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) List(status entity.OrderStatus, limit, offset int) ([]entity.Order, error) {
	q := r.DB.Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []entity.Order
	err := q.Limit(limit).Offset(offset).Find(&orders).Error
	return orders, err
}

// UpdateStatus persists the new status, bumps updated_at and stamps
// completed_at for completed orders.
func (r *OrderRepository) UpdateStatus(tx *gorm.DB, id uint, status entity.OrderStatus) error {
	updates := map[string]any{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if status == entity.OrderCompleted {
		updates["completed_at"] = time.Now().UTC()
	}
	return tx.Model(&entity.Order{}).Where("id = ?", id).Updates(updates).Error
}

func (r *OrderRepository) UpdatePaymentStatus(tx *gorm.DB, id uint, status entity.PaymentStatus) error {
	return tx.Model(&entity.Order{}).Where("id = ?", id).
		Update("payment_status", status).Error
}

// ---- statistics ----

func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Count(&n).Error
	return n, err
}

func (r *OrderRepository) CountByStatus(status entity.OrderStatus) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

// CompletedRevenue sums total_amount over completed orders.
func (r *OrderRepository) CompletedRevenue() (int64, error) {
	var total struct{ Revenue int64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue").
		Where("status = ?", entity.OrderCompleted).
		Scan(&total).Error
	return total.Revenue, err
}
