package controllers

import (
	"errors"
	"strconv"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/resp"
	"github.com/VanThinh512/Ordering-Food-Website/repository"
	"github.com/VanThinh512/Ordering-Food-Website/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	Repo *repository.UserRepository
}

func NewUserController(repo *repository.UserRepository) *UserController {
	return &UserController{Repo: repo}
}

// GET /admin/users
func (h *UserController) List(c *gin.Context) {
	limit, offset := pageParams(c)
	users, err := h.Repo.List(limit, offset)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// PATCH /admin/users/:id
func (h *UserController) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req struct {
		IsActive *bool   `json:"isActive"`
		Role     *string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := h.Repo.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "user not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	if req.Role != nil {
		switch *req.Role {
		case entity.RoleAdmin, entity.RoleStaff, entity.RoleStudent:
		default:
			resp.BadRequest(c, "invalid role")
			return
		}
		u.Role = *req.Role
	}
	if req.IsActive != nil {
		// ห้ามปิด account ตัวเอง
		if !*req.IsActive && u.ID == utils.CurrentUserID(c) {
			resp.BadRequest(c, "cannot deactivate your own account")
			return
		}
		u.IsActive = *req.IsActive
	}

	if err := h.Repo.Save(u); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, u)
}
