package controller

import (
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PeopleController struct {
	PeopleService *service.PeopleService
}

func NewPeopleController(peopleService *service.PeopleService) *PeopleController {
	return &PeopleController{PeopleService: peopleService}
}

// CreateTeacher godoc
// @Summary Create a teacher profile for an existing user
// @Tags people
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.TeacherProfileRequest true "Teacher profile"
// @Success 201 {object} util.Response{data=model.Teacher}
// @Router /api/admin/teachers [post]
func (c *PeopleController) CreateTeacher(ctx *gin.Context) {
	var req service.TeacherProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	t, err := c.PeopleService.CreateTeacher(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, t)
}

// GetTeacher godoc
// @Summary Get one teacher profile
// @Tags people
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} util.Response{data=model.Teacher}
// @Failure 404 {object} util.Response
// @Router /api/teachers/{id} [get]
func (c *PeopleController) GetTeacher(ctx *gin.Context) {
	t, err := c.PeopleService.GetTeacher(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, t)
}

// ListTeachers godoc
// @Summary List teachers of a department
// @Tags people
// @Produce json
// @Param departmentId query int false "Department filter"
// @Success 200 {object} util.Response{data=[]model.Teacher}
// @Router /api/teachers [get]
func (c *PeopleController) ListTeachers(ctx *gin.Context) {
	ts, err := c.PeopleService.ListTeachers(util.MustParseUint(ctx.Query("departmentId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, ts)
}

// CreateStudent godoc
// @Summary Create a student profile for an existing user
// @Tags people
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.StudentProfileRequest true "Student profile"
// @Success 201 {object} util.Response{data=model.Student}
// @Router /api/admin/students [post]
func (c *PeopleController) CreateStudent(ctx *gin.Context) {
	var req service.StudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	st, err := c.PeopleService.CreateStudent(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, st)
}

// GetStudent godoc
// @Summary Get one student profile
// @Tags people
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} util.Response{data=model.Student}
// @Failure 404 {object} util.Response
// @Router /api/students/{id} [get]
func (c *PeopleController) GetStudent(ctx *gin.Context) {
	st, err := c.PeopleService.GetStudent(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, st)
}

// ListStudents godoc
// @Summary List students of a program
// @Tags people
// @Produce json
// @Param programId query int false "Program filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/students [get]
func (c *PeopleController) ListStudents(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	sts, total, err := c.PeopleService.ListStudents(util.MustParseUint(ctx.Query("programId")), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: sts, Total: total, Page: page, Limit: limit})
}
