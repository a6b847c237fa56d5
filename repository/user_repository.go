package repository

import (
	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) Save(u *entity.User) error {
	return r.DB.Save(u).Error
}

func (r *UserRepository) List(limit, offset int) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Limit(limit).Offset(offset).Order("id").Find(&users).Error
	return users, err
}
