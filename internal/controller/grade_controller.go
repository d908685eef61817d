package controller

import (
	"obe_backend/internal/model"
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// GradeController exposes exam mark recording and the aggregate views.
type GradeController struct {
	ExamMarkService *service.ExamMarkService
}

func NewGradeController(examMarkService *service.ExamMarkService) *GradeController {
	return &GradeController{ExamMarkService: examMarkService}
}

// Record godoc
// @Summary Record an exam's marks for a course
// @Description The whole batch is validated first and written atomically.
// @Tags grades
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.RecordMarksRequest true "Marks batch"
// @Success 201 {object} util.Response{data=[]model.ExamMark}
// @Failure 400 {object} util.Response "Empty or invalid batch"
// @Router /api/marks [post]
func (c *GradeController) Record(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RecordMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	marks, err := c.ExamMarkService.Record(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, marks)
}

// ListByCourse godoc
// @Summary List a course's marks, optionally by exam type
// @Tags grades
// @Produce json
// @Security ApiKeyAuth
// @Param courseId query int true "Course ID"
// @Param examType query string false "quiz, mid, final or internal"
// @Success 200 {object} util.Response{data=[]model.ExamMark}
// @Router /api/marks [get]
func (c *GradeController) ListByCourse(ctx *gin.Context) {
	marks, err := c.ExamMarkService.ListByCourse(
		util.MustParseUint(ctx.Query("courseId")),
		model.ExamType(ctx.Query("examType")),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, marks)
}

// MyMarks godoc
// @Summary The calling student's marks across courses
// @Tags grades
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ExamMark}
// @Router /api/marks/me [get]
func (c *GradeController) MyMarks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	marks, err := c.ExamMarkService.MyMarks(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, marks)
}

// Totals godoc
// @Summary Per-student mark totals for a course
// @Tags grades
// @Produce json
// @Security ApiKeyAuth
// @Param courseId query int true "Course ID"
// @Success 200 {object} util.Response{data=[]repository.MarkTotal}
// @Router /api/marks/totals [get]
func (c *GradeController) Totals(ctx *gin.Context) {
	totals, err := c.ExamMarkService.Totals(util.MustParseUint(ctx.Query("courseId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, totals)
}
