package controller

import (
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	AttendanceService *service.AttendanceService
}

func NewAttendanceController(attendanceService *service.AttendanceService) *AttendanceController {
	return &AttendanceController{AttendanceService: attendanceService}
}

// Record godoc
// @Summary Record a day's attendance for a course
// @Description The whole batch is validated first and written atomically.
// @Tags attendance
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.RecordAttendanceRequest true "Attendance batch"
// @Success 201 {object} util.Response{data=[]model.AttendanceRecord}
// @Failure 400 {object} util.Response "Empty or invalid batch"
// @Router /api/attendance [post]
func (c *AttendanceController) Record(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RecordAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	records, err := c.AttendanceService.Record(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, records)
}

// ListByDate godoc
// @Summary List a course's attendance for one date
// @Tags attendance
// @Produce json
// @Security ApiKeyAuth
// @Param courseId query int true "Course ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} util.Response{data=[]model.AttendanceRecord}
// @Router /api/attendance [get]
func (c *AttendanceController) ListByDate(ctx *gin.Context) {
	records, err := c.AttendanceService.ListByDate(util.MustParseUint(ctx.Query("courseId")), ctx.Query("date"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// Summary godoc
// @Summary Per-student attendance aggregates for a course
// @Tags attendance
// @Produce json
// @Security ApiKeyAuth
// @Param courseId query int true "Course ID"
// @Success 200 {object} util.Response{data=[]repository.AttendanceSummary}
// @Router /api/attendance/summary [get]
func (c *AttendanceController) Summary(ctx *gin.Context) {
	sums, err := c.AttendanceService.Summary(util.MustParseUint(ctx.Query("courseId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sums)
}

// MySummary godoc
// @Summary The calling student's attendance aggregate for a course
// @Tags attendance
// @Produce json
// @Security ApiKeyAuth
// @Param courseId query int true "Course ID"
// @Success 200 {object} util.Response{data=repository.AttendanceSummary}
// @Router /api/attendance/me [get]
func (c *AttendanceController) MySummary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sum, err := c.AttendanceService.MySummary(claims.UserID, util.MustParseUint(ctx.Query("courseId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sum)
}
