package controllers

import (
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/pkg/resp"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/services"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *services.DashboardService
}

func NewDashboardController(s *services.DashboardService) *DashboardController {
	return &DashboardController{Service: s}
}

// GET /api/dashboard/stats
func (ctl *DashboardController) Stats(c *gin.Context) {
	stats, err := ctl.Service.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /api/dashboard/recent-reservations
func (ctl *DashboardController) RecentReservations(c *gin.Context) {
	reservations, err := ctl.Service.RecentReservations()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reservations)
}
