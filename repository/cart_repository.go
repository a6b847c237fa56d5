package repository

import (
	"errors"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreate คืน Cart ของ user สร้างใหม่ถ้ายังไม่มี
func (r *CartRepository) GetOrCreate(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *CartRepository) GetWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

// GetItem อ่านรายการเฉพาะที่อยู่ใน cart นี้เท่านั้น
func (r *CartRepository) GetItem(cartID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("id = ? AND cart_id = ?", itemID, cartID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// UpsertItem merges quantity when the product is already in the cart,
// keeping the original price snapshot.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, row.ProductID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += row.Quantity
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateItemQuantity(tx *gorm.DB, itemID uint, quantity int) error {
	return tx.Model(&entity.CartItem{}).Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID, itemID uint) error {
	return tx.Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&entity.CartItem{}).Error
}

// Clear ลบของในตะกร้าทั้งหมด แต่คงแถว cart ไว้
func (r *CartRepository) Clear(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
