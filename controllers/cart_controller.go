package controllers

import (
	"strconv"

	"github.com/VanThinh512/Ordering-Food-Website/pkg/resp"
	"github.com/VanThinh512/Ordering-Food-Website/services"
	"github.com/VanThinh512/Ordering-Food-Website/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, subtotal, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, gin.H{"added": req.ProductID})
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQuantity(c *gin.Context) {
	itemID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), uint(itemID), body.Quantity); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": itemID})
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	itemID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), uint(itemID)); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": itemID})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
