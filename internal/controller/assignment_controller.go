package controller

import (
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// Create godoc
// @Summary Create an assignment for a course
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateAssignmentRequest true "Assignment details"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Router /api/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.AssignmentService.Create(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// AttachFile godoc
// @Summary Attach the assignment statement file
// @Tags assignments
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Param file formData file true "Statement file (pdf or image)"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Router /api/assignments/{id}/file [post]
func (c *AssignmentController) AttachFile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	a, err := c.AssignmentService.AttachFile(ctx.Request.Context(), claims.UserID, util.MustParseUint(ctx.Param("id")), file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// Get godoc
// @Summary Get one assignment
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id} [get]
func (c *AssignmentController) Get(ctx *gin.Context) {
	a, err := c.AssignmentService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// ListByCourse godoc
// @Summary List assignments of a course
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param courseId query int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/assignments [get]
func (c *AssignmentController) ListByCourse(ctx *gin.Context) {
	as, err := c.AssignmentService.ListByCourse(util.MustParseUint(ctx.Query("courseId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, as)
}

// ListPending godoc
// @Summary List the calling student's open, unsubmitted assignments
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/assignments/pending [get]
func (c *AssignmentController) ListPending(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	as, err := c.AssignmentService.ListPending(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, as)
}

// Submit godoc
// @Summary Submit an answer file for an assignment
// @Tags assignments
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Param file formData file true "Answer file (pdf or image)"
// @Success 201 {object} util.Response{data=model.AssignmentSubmission}
// @Failure 409 {object} util.Response "Already submitted"
// @Router /api/assignments/{id}/submit [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	sub, err := c.AssignmentService.Submit(ctx.Request.Context(), claims.UserID, util.MustParseUint(ctx.Param("id")), file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, sub)
}

// ListSubmissions godoc
// @Summary List submissions of an assignment
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} util.Response{data=[]model.AssignmentSubmission}
// @Router /api/assignments/{id}/submissions [get]
func (c *AssignmentController) ListSubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	subs, err := c.AssignmentService.ListSubmissions(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, subs)
}

// Grade godoc
// @Summary Grade a student's submission
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Param body body service.GradeSubmissionRequest true "Marks"
// @Success 200 {object} util.Response{data=model.AssignmentSubmission}
// @Router /api/assignments/{id}/grade [post]
func (c *AssignmentController) Grade(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GradeSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.AssignmentService.Grade(claims.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}
