package controllers

import (
	"github.com/VanThinh512/Ordering-Food-Website/pkg/resp"
	"github.com/VanThinh512/Ordering-Food-Website/services"
	"github.com/gin-gonic/gin"
)

type StatsController struct{ Svc *services.StatsService }

func NewStatsController(s *services.StatsService) *StatsController {
	return &StatsController{Svc: s}
}

// GET /admin/statistics/overview
func (h *StatsController) Overview(c *gin.Context) {
	out, err := h.Svc.Overview()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
