package controllers

import (
	"errors"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/resp"
	"github.com/VanThinh512/Ordering-Food-Website/repository"
	"github.com/VanThinh512/Ordering-Food-Website/services"
	"github.com/VanThinh512/Ordering-Food-Website/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	Svc   *services.AuthService
	Users *repository.UserRepository
}

func NewAuthController(svc *services.AuthService, users *repository.UserRepository) *AuthController {
	return &AuthController{Svc: svc, Users: users}
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := h.Svc.Register(&req)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, u)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, u, err := h.Svc.Login(req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.Unauthorized(c, err.Error())
		return
	}
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": u})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	u, err := h.Users.GetByID(utils.CurrentUserID(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "user not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, u)
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	var req struct {
		FullName  *string `json:"fullName"`
		Phone     *string `json:"phone"`
		StudentID *string `json:"studentId"`
		ClassName *string `json:"className"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := h.Users.GetByID(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	applyUserPatch(u, req.FullName, req.Phone, req.StudentID, req.ClassName)
	if err := h.Users.Save(u); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, u)
}

func applyUserPatch(u *entity.User, fullName, phone, studentID, className *string) {
	if fullName != nil {
		u.FullName = *fullName
	}
	if phone != nil {
		u.Phone = *phone
	}
	if studentID != nil {
		u.StudentID = *studentID
	}
	if className != nil {
		u.ClassName = *className
	}
}
