package controller

import (
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Stats godoc
// @Summary Platform-wide counts for the admin dashboard
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Router /api/admin/dashboard [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.DashboardService.Stats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
