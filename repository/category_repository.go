package repository

import (
	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) Get(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) List(activeOnly bool) ([]entity.Category, error) {
	q := r.DB.Order("sort_order, id")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var cats []entity.Category
	err := q.Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) Create(c *entity.Category) error { return r.DB.Create(c).Error }
func (r *CategoryRepository) Save(c *entity.Category) error   { return r.DB.Save(c).Error }

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}
