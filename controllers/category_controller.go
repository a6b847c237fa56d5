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

type CategoryController struct {
	Repo *repository.CategoryRepository
}

func NewCategoryController(r *repository.CategoryRepository) *CategoryController {
	return &CategoryController{Repo: r}
}

// GET /categories — ลูกค้าเห็นเฉพาะหมวดที่เปิดใช้
func (h *CategoryController) List(c *gin.Context) {
	activeOnly := utils.CurrentRole(c) != entity.RoleAdmin
	cats, err := h.Repo.List(activeOnly)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

type categoryIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	IsActive    *bool  `json:"isActive"`
	SortOrder   int    `json:"sortOrder"`
}

// POST /admin/categories
func (h *CategoryController) Create(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := entity.Category{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive == nil || *req.IsActive,
		SortOrder:   req.SortOrder,
	}
	if err := h.Repo.Create(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /admin/categories/:id
func (h *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	cat, err := h.Repo.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "category not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat.Name = req.Name
	cat.Description = req.Description
	cat.ImageURL = req.ImageURL
	cat.SortOrder = req.SortOrder
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	if err := h.Repo.Save(cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /admin/categories/:id
func (h *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if _, err := h.Repo.Get(uint(id)); errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "category not found")
		return
	} else if err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
