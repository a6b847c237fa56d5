package repository

import (
	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetForUpdate reads the product inside tx so stock checks and the decrement
// see the same row version.
func (r *ProductRepository) GetForUpdate(tx *gorm.DB, id uint) (*entity.Product, error) {
	q := tx
	// sqlite มี writer เดียวทั้งไฟล์อยู่แล้ว และ parse FOR UPDATE ไม่ได้
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var p entity.Product
	if err := q.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(categoryID uint, availableOnly bool, limit, offset int) ([]entity.Product, error) {
	q := r.DB.Order("id")
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if availableOnly {
		q = q.Where("is_available = ?", true)
	}
	var products []entity.Product
	err := q.Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(p *entity.Product) error { return r.DB.Create(p).Error }
func (r *ProductRepository) Save(p *entity.Product) error   { return r.DB.Save(p).Error }

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

// InUse reports whether any order item still references the product.
func (r *ProductRepository) InUse(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).Where("product_id = ?", id).Count(&count).Error
	return count > 0, err
}

// AdjustStock shifts tracked stock by delta; untracked products are skipped.
func (r *ProductRepository) AdjustStock(tx *gorm.DB, id uint, delta int) error {
	return tx.Model(&entity.Product{}).
		Where("id = ? AND stock IS NOT NULL", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}
