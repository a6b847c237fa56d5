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

type ProductController struct {
	Repo *repository.ProductRepository
}

func NewProductController(r *repository.ProductRepository) *ProductController {
	return &ProductController{Repo: r}
}

// GET /products?categoryId=&limit=&offset=
func (h *ProductController) List(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("categoryId"), 10, 64)
	limit, offset := pageParams(c)

	availableOnly := utils.CurrentRole(c) != entity.RoleAdmin
	products, err := h.Repo.List(uint(categoryID), availableOnly, limit, offset)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /products/:id
func (h *ProductController) Detail(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	p, err := h.Repo.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "product not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

type productIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	IsAvailable *bool  `json:"isAvailable"`
	Stock       *int   `json:"stock"`
	PrepMinutes int    `json:"prepMinutes"`
	Calories    int    `json:"calories"`
}

// POST /admin/products
func (h *ProductController) Create(c *gin.Context) {
	var req productIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Stock != nil && *req.Stock < 0 {
		resp.BadRequest(c, "stock cannot be negative")
		return
	}
	p := entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable == nil || *req.IsAvailable,
		Stock:       req.Stock,
		PrepMinutes: req.PrepMinutes,
		Calories:    req.Calories,
	}
	if err := h.Repo.Create(&p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /admin/products/:id
func (h *ProductController) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	p, err := h.Repo.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "product not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req productIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Stock != nil && *req.Stock < 0 {
		resp.BadRequest(c, "stock cannot be negative")
		return
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.CategoryID = req.CategoryID
	p.ImageURL = req.ImageURL
	p.Stock = req.Stock
	p.PrepMinutes = req.PrepMinutes
	p.Calories = req.Calories
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	if err := h.Repo.Save(p); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /admin/products/:id — ห้ามลบถ้ายังถูกอ้างจากออเดอร์
func (h *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if _, err := h.Repo.Get(uint(id)); errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "product not found")
		return
	} else if err != nil {
		resp.ServerError(c, err)
		return
	}

	inUse, err := h.Repo.InUse(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if inUse {
		resp.Conflict(c, "product is referenced by existing orders")
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
