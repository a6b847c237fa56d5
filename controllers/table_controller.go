package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/VanThinh512/Ordering-Food-Website/pkg/resp"
	"github.com/VanThinh512/Ordering-Food-Website/repository"
	"github.com/VanThinh512/Ordering-Food-Website/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TableController struct {
	Repo   *repository.TableRepository
	Status *services.TableStatusService
}

func NewTableController(r *repository.TableRepository, st *services.TableStatusService) *TableController {
	return &TableController{Repo: r, Status: st}
}

// GET /tables?date=2006-01-02&start=15:04&end=15:04
// ไม่ส่งช่วงเวลามา = ดูสถานะตอนนี้
func (h *TableController) List(c *gin.Context) {
	tables, err := h.Repo.List(true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var targetStart, targetEnd *time.Time
	if d, s, e := c.Query("date"), c.Query("start"), c.Query("end"); d != "" && s != "" && e != "" {
		day, err1 := time.Parse("2006-01-02", d)
		st, err2 := time.Parse("15:04", s)
		en, err3 := time.Parse("15:04", e)
		if err1 != nil || err2 != nil || err3 != nil {
			resp.BadRequest(c, "invalid date/start/end format")
			return
		}
		from := time.Date(day.Year(), day.Month(), day.Day(), st.Hour(), st.Minute(), 0, 0, time.UTC)
		to := time.Date(day.Year(), day.Month(), day.Day(), en.Hour(), en.Minute(), 0, 0, time.UTC)
		targetStart, targetEnd = &from, &to
	}

	tables, err = h.Status.Annotate(tables, targetStart, targetEnd, time.Now().UTC())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

// GET /tables/:id
func (h *TableController) Detail(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	t, err := h.Repo.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "table not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	annotated, err := h.Status.Annotate([]entity.Table{*t}, nil, nil, time.Now().UTC())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, annotated[0])
}

type tableIn struct {
	TableNumber string `json:"tableNumber" binding:"required"`
	Capacity    int    `json:"capacity" binding:"min=1"`
	Location    string `json:"location"`
	IsActive    *bool  `json:"isActive"`
}

// POST /admin/tables
func (h *TableController) Create(c *gin.Context) {
	var req tableIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := h.Repo.GetByNumber(req.TableNumber); err == nil {
		resp.BadRequest(c, "table with this number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		resp.ServerError(c, err)
		return
	}

	t := entity.Table{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Location:    req.Location,
		IsActive:    req.IsActive == nil || *req.IsActive,
		Status:      entity.TableAvailable,
	}
	if err := h.Repo.Create(&t); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, t)
}

// PUT /admin/tables/:id
func (h *TableController) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	t, err := h.Repo.Get(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "table not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var req tableIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t.TableNumber = req.TableNumber
	t.Capacity = req.Capacity
	t.Location = req.Location
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if err := h.Repo.Save(t); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, t)
}

// DELETE /admin/tables/:id
func (h *TableController) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if _, err := h.Repo.Get(uint(id)); errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "table not found")
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
