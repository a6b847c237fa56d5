package services

import (
	"errors"

	"github.com/VanThinh512/Ordering-Food-Website/configs"
	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/apperr"
	"github.com/VanThinh512/Ordering-Food-Website/repository"
	"github.com/VanThinh512/Ordering-Food-Website/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is mapped to 401 by the auth controller.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	Users *repository.UserRepository
	Cfg   *configs.Config
}

func NewAuthService(ur *repository.UserRepository, cfg *configs.Config) *AuthService {
	return &AuthService{Users: ur, Cfg: cfg}
}

type RegisterIn struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FullName  string `json:"fullName" binding:"required"`
	Phone     string `json:"phone"`
	StudentID string `json:"studentId"`
	ClassName string `json:"className"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	if _, err := s.Users.GetByEmail(in.Email); err == nil {
		return nil, apperr.New(apperr.Conflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:     in.Email,
		Password:  string(hash),
		FullName:  in.FullName,
		Phone:     in.Phone,
		StudentID: in.StudentID,
		ClassName: in.ClassName,
		Role:      entity.RoleStudent,
		IsActive:  true,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	u, err := s.Users.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return "", nil, apperr.New(apperr.Forbidden, "account disabled")
	}

	token, err := utils.GenerateToken(u.ID, u.Role, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
