package controllers

import (
	"strconv"
	"time"

	"github.com/VanThinh512/Ordering-Food-Website/pkg/resp"
	"github.com/VanThinh512/Ordering-Food-Website/services"
	"github.com/VanThinh512/Ordering-Food-Website/utils"
	"github.com/gin-gonic/gin"
)

type ReservationController struct{ Svc *services.ReservationService }

func NewReservationController(s *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: s}
}

// GET /reservations — ของฉันทั้งหมด
func (h *ReservationController) ListMine(c *gin.Context) {
	rows, err := h.Svc.ListMine(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// POST /reservations
func (h *ReservationController) Create(c *gin.Context) {
	var req services.CreateReservationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	res, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /reservations/availability/:tableId?date=2006-01-02
func (h *ReservationController) Availability(c *gin.Context) {
	tableID, _ := strconv.ParseUint(c.Param("tableId"), 10, 64)

	day := time.Now().UTC()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			resp.BadRequest(c, "invalid date format, want YYYY-MM-DD")
			return
		}
		day = parsed
	}

	rows, err := h.Svc.ForTableDay(uint(tableID), day)
	if err != nil {
		resp.Err(c, err)
		return
	}

	userID := utils.CurrentUserID(c)
	type slot struct {
		StartTime time.Time `json:"startTime"`
		EndTime   time.Time `json:"endTime"`
		Status    string    `json:"status"`
		IsOwned   bool      `json:"isOwned"`
	}
	out := make([]slot, 0, len(rows))
	for _, r := range rows {
		out = append(out, slot{
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Status:    string(r.Status),
			IsOwned:   r.UserID == userID,
		})
	}
	resp.OK(c, out)
}

// DELETE /reservations/:id
func (h *ReservationController) Cancel(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	res, err := h.Svc.Cancel(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Err(c, err)
		return
	}
	resp.OK(c, res)
}
