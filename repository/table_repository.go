package repository

import (
	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"gorm.io/gorm"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

func (r *TableRepository) Get(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) GetByNumber(number string) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("table_number = ?", number).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) List(activeOnly bool) ([]entity.Table, error) {
	q := r.DB.Order("table_number")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var tables []entity.Table
	err := q.Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Create(t *entity.Table) error { return r.DB.Create(t).Error }
func (r *TableRepository) Save(t *entity.Table) error   { return r.DB.Save(t).Error }

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}

// UpdateStatus writes the fallback status column; it is overridden by the
// derived projection on reads.
func (r *TableRepository) UpdateStatus(tx *gorm.DB, id uint, status entity.TableStatus) error {
	return tx.Model(&entity.Table{}).Where("id = ?", id).
		Update("status", status).Error
}
