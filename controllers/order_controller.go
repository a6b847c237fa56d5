package controllers

import (
	"strconv"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/resp"
	"github.com/VanThinh512/Ordering-Food-Website/services"
	"github.com/VanThinh512/Ordering-Food-Website/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

func privileged(c *gin.Context) bool {
	role := utils.CurrentRole(c)
	return role == entity.RoleAdmin || role == entity.RoleStaff
}

// GET /orders?status=&limit=&offset= — staff เห็นทั้งหมด user เห็นของตัวเอง
func (h *OrderController) List(c *gin.Context) {
	limit, offset := pageParams(c)

	if privileged(c) {
		orders, err := h.Svc.List(entity.OrderStatus(c.Query("status")), limit, offset)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, orders)
		return
	}

	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c), limit, offset)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /orders — สร้างออเดอร์จากตะกร้า
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.CreateFromCart(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	order, err := h.Svc.Detail(uint(id), utils.CurrentUserID(c), privileged(c))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/status — staff/admin เท่านั้น
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var body struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.UpdateStatus(uint(id), body.Status)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	order, err := h.Svc.Cancel(uint(id), utils.CurrentUserID(c), privileged(c))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, order)
}
