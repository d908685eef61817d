package controller

import (
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// OutcomeController exposes the outcome taxonomy (PEO, PLO, CLO), the
// mapping matrix, and per-course content and lesson plans.
type OutcomeController struct {
	OutcomeService *service.OutcomeService
}

func NewOutcomeController(outcomeService *service.OutcomeService) *OutcomeController {
	return &OutcomeController{OutcomeService: outcomeService}
}

// CreatePEO godoc
// @Summary Add a program educational objective
// @Tags outcomes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Program ID"
// @Param body body service.OutcomeRequest true "Objective"
// @Success 201 {object} util.Response{data=model.PEO}
// @Router /api/programs/{id}/peos [post]
func (c *OutcomeController) CreatePEO(ctx *gin.Context) {
	var req service.OutcomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	peo, err := c.OutcomeService.CreatePEO(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, peo)
}

// ListPEOs godoc
// @Summary List a program's educational objectives
// @Tags outcomes
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} util.Response{data=[]model.PEO}
// @Router /api/programs/{id}/peos [get]
func (c *OutcomeController) ListPEOs(ctx *gin.Context) {
	peos, err := c.OutcomeService.ListPEOs(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, peos)
}

// CreatePLO godoc
// @Summary Add a program learning outcome
// @Tags outcomes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Program ID"
// @Param body body service.OutcomeRequest true "Outcome"
// @Success 201 {object} util.Response{data=model.PLO}
// @Router /api/programs/{id}/plos [post]
func (c *OutcomeController) CreatePLO(ctx *gin.Context) {
	var req service.OutcomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plo, err := c.OutcomeService.CreatePLO(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, plo)
}

// ListPLOs godoc
// @Summary List a program's learning outcomes
// @Tags outcomes
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} util.Response{data=[]model.PLO}
// @Router /api/programs/{id}/plos [get]
func (c *OutcomeController) ListPLOs(ctx *gin.Context) {
	plos, err := c.OutcomeService.ListPLOs(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, plos)
}

// CreateCLO godoc
// @Summary Add a course learning outcome
// @Tags outcomes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param body body service.OutcomeRequest true "Outcome"
// @Success 201 {object} util.Response{data=model.CLO}
// @Router /api/courses/{id}/clos [post]
func (c *OutcomeController) CreateCLO(ctx *gin.Context) {
	var req service.OutcomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	clo, err := c.OutcomeService.CreateCLO(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, clo)
}

// ListCLOs godoc
// @Summary List a course's learning outcomes
// @Tags outcomes
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.CLO}
// @Router /api/courses/{id}/clos [get]
func (c *OutcomeController) ListCLOs(ctx *gin.Context) {
	clos, err := c.OutcomeService.ListCLOs(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, clos)
}

// MapCLOToPLO godoc
// @Summary Map a CLO onto a PLO
// @Tags outcomes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.MappingRequest true "Mapping"
// @Success 200 {object} util.Response
// @Router /api/mappings/clo-plo [post]
func (c *OutcomeController) MapCLOToPLO(ctx *gin.Context) {
	var req service.MappingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.OutcomeService.MapCLOToPLO(req); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UnmapCLOFromPLO godoc
// @Summary Remove a CLO to PLO mapping
// @Tags outcomes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.MappingRequest true "Mapping"
// @Success 200 {object} util.Response
// @Router /api/mappings/clo-plo [delete]
func (c *OutcomeController) UnmapCLOFromPLO(ctx *gin.Context) {
	var req service.MappingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.OutcomeService.UnmapCLOFromPLO(req); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// MapPLOToPEO godoc
// @Summary Map a PLO onto a PEO
// @Tags outcomes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.MappingRequest true "Mapping"
// @Success 200 {object} util.Response
// @Router /api/mappings/plo-peo [post]
func (c *OutcomeController) MapPLOToPEO(ctx *gin.Context) {
	var req service.MappingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.OutcomeService.MapPLOToPEO(req); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UnmapPLOFromPEO godoc
// @Summary Remove a PLO to PEO mapping
// @Tags outcomes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.MappingRequest true "Mapping"
// @Success 200 {object} util.Response
// @Router /api/mappings/plo-peo [delete]
func (c *OutcomeController) UnmapPLOFromPEO(ctx *gin.Context) {
	var req service.MappingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.OutcomeService.UnmapPLOFromPEO(req); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Matrix godoc
// @Summary Program-wide outcome mapping matrix
// @Tags outcomes
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} util.Response{data=service.MappingMatrix}
// @Router /api/programs/{id}/outcome-matrix [get]
func (c *OutcomeController) Matrix(ctx *gin.Context) {
	m, err := c.OutcomeService.Matrix(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

// CreateContent godoc
// @Summary Add a course content entry
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param body body service.ContentRequest true "Content"
// @Success 201 {object} util.Response{data=model.CourseContent}
// @Router /api/courses/{id}/contents [post]
func (c *OutcomeController) CreateContent(ctx *gin.Context) {
	var req service.ContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := c.OutcomeService.CreateContent(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, content)
}

// ListContents godoc
// @Summary List course content entries
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.CourseContent}
// @Router /api/courses/{id}/contents [get]
func (c *OutcomeController) ListContents(ctx *gin.Context) {
	contents, err := c.OutcomeService.ListContents(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, contents)
}

// CreateLessonPlan godoc
// @Summary Add a lesson plan entry
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param body body service.LessonPlanRequest true "Lesson plan"
// @Success 201 {object} util.Response{data=model.LessonPlan}
// @Router /api/courses/{id}/lesson-plans [post]
func (c *OutcomeController) CreateLessonPlan(ctx *gin.Context) {
	var req service.LessonPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.OutcomeService.CreateLessonPlan(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, plan)
}

// ListLessonPlans godoc
// @Summary List lesson plan entries
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.LessonPlan}
// @Router /api/courses/{id}/lesson-plans [get]
func (c *OutcomeController) ListLessonPlans(ctx *gin.Context) {
	plans, err := c.OutcomeService.ListLessonPlans(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, plans)
}
