package controller

import (
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AcademicController exposes the faculty > department > program > course
// hierarchy.
type AcademicController struct {
	AcademicService *service.AcademicService
}

func NewAcademicController(academicService *service.AcademicService) *AcademicController {
	return &AcademicController{AcademicService: academicService}
}

// CreateFaculty godoc
// @Summary Create a faculty
// @Tags academic
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.FacultyRequest true "Faculty details"
// @Success 201 {object} util.Response{data=model.Faculty}
// @Router /api/admin/faculties [post]
func (c *AcademicController) CreateFaculty(ctx *gin.Context) {
	var req service.FacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	f, err := c.AcademicService.CreateFaculty(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, f)
}

// ListFaculties godoc
// @Summary List faculties
// @Tags academic
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Faculty}
// @Router /api/faculties [get]
func (c *AcademicController) ListFaculties(ctx *gin.Context) {
	fs, err := c.AcademicService.ListFaculties()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, fs)
}

// GetFaculty godoc
// @Summary Get one faculty with its departments
// @Tags academic
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} util.Response{data=model.Faculty}
// @Failure 404 {object} util.Response
// @Router /api/faculties/{id} [get]
func (c *AcademicController) GetFaculty(ctx *gin.Context) {
	f, err := c.AcademicService.GetFaculty(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, f)
}

// UpdateFaculty godoc
// @Summary Update a faculty
// @Tags academic
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Faculty ID"
// @Param body body service.FacultyRequest true "Faculty details"
// @Success 200 {object} util.Response{data=model.Faculty}
// @Router /api/admin/faculties/{id} [put]
func (c *AcademicController) UpdateFaculty(ctx *gin.Context) {
	var req service.FacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	f, err := c.AcademicService.UpdateFaculty(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, f)
}

// DeleteFaculty godoc
// @Summary Delete a faculty
// @Tags academic
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} util.Response
// @Router /api/admin/faculties/{id} [delete]
func (c *AcademicController) DeleteFaculty(ctx *gin.Context) {
	if err := c.AcademicService.DeleteFaculty(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateDepartment godoc
// @Summary Create a department
// @Tags academic
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.DepartmentRequest true "Department details"
// @Success 201 {object} util.Response{data=model.Department}
// @Router /api/admin/departments [post]
func (c *AcademicController) CreateDepartment(ctx *gin.Context) {
	var req service.DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	d, err := c.AcademicService.CreateDepartment(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, d)
}

// ListDepartments godoc
// @Summary List departments, optionally by faculty
// @Tags academic
// @Produce json
// @Param facultyId query int false "Faculty filter"
// @Success 200 {object} util.Response{data=[]model.Department}
// @Router /api/departments [get]
func (c *AcademicController) ListDepartments(ctx *gin.Context) {
	ds, err := c.AcademicService.ListDepartments(util.MustParseUint(ctx.Query("facultyId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, ds)
}

// GetDepartment godoc
// @Summary Get one department
// @Tags academic
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} util.Response{data=model.Department}
// @Failure 404 {object} util.Response
// @Router /api/departments/{id} [get]
func (c *AcademicController) GetDepartment(ctx *gin.Context) {
	d, err := c.AcademicService.GetDepartment(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, d)
}

// UpdateDepartment godoc
// @Summary Update a department (including chairman assignment)
// @Tags academic
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Department ID"
// @Param body body service.DepartmentRequest true "Department details"
// @Success 200 {object} util.Response{data=model.Department}
// @Router /api/admin/departments/{id} [put]
func (c *AcademicController) UpdateDepartment(ctx *gin.Context) {
	var req service.DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	d, err := c.AcademicService.UpdateDepartment(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, d)
}

// DeleteDepartment godoc
// @Summary Delete a department
// @Tags academic
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Department ID"
// @Success 200 {object} util.Response
// @Router /api/admin/departments/{id} [delete]
func (c *AcademicController) DeleteDepartment(ctx *gin.Context) {
	if err := c.AcademicService.DeleteDepartment(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateProgram godoc
// @Summary Create a degree program
// @Tags academic
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ProgramRequest true "Program details"
// @Success 201 {object} util.Response{data=model.Program}
// @Router /api/admin/programs [post]
func (c *AcademicController) CreateProgram(ctx *gin.Context) {
	var req service.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.AcademicService.CreateProgram(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, p)
}

// ListPrograms godoc
// @Summary List programs, optionally by department
// @Tags academic
// @Produce json
// @Param departmentId query int false "Department filter"
// @Success 200 {object} util.Response{data=[]model.Program}
// @Router /api/programs [get]
func (c *AcademicController) ListPrograms(ctx *gin.Context) {
	ps, err := c.AcademicService.ListPrograms(util.MustParseUint(ctx.Query("departmentId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, ps)
}

// GetProgram godoc
// @Summary Get one program
// @Tags academic
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} util.Response{data=model.Program}
// @Failure 404 {object} util.Response
// @Router /api/programs/{id} [get]
func (c *AcademicController) GetProgram(ctx *gin.Context) {
	p, err := c.AcademicService.GetProgram(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// DeleteProgram godoc
// @Summary Delete a program
// @Tags academic
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Program ID"
// @Success 200 {object} util.Response
// @Router /api/admin/programs/{id} [delete]
func (c *AcademicController) DeleteProgram(ctx *gin.Context) {
	if err := c.AcademicService.DeleteProgram(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags academic
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseRequest true "Course details"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /api/admin/courses [post]
func (c *AcademicController) CreateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.AcademicService.CreateCourse(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// ListCourses godoc
// @Summary List courses of a program
// @Tags academic
// @Produce json
// @Param programId query int false "Program filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/courses [get]
func (c *AcademicController) ListCourses(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	courses, total, err := c.AcademicService.ListCourses(util.MustParseUint(ctx.Query("programId")), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: courses, Total: total, Page: page, Limit: limit})
}

// GetCourse godoc
// @Summary Get one course
// @Tags academic
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *AcademicController) GetCourse(ctx *gin.Context) {
	course, err := c.AcademicService.GetCourse(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// UpdateCourse godoc
// @Summary Update a course (including teacher assignment)
// @Tags academic
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Param body body service.CourseRequest true "Course details"
// @Success 200 {object} util.Response{data=model.Course}
// @Router /api/admin/courses/{id} [put]
func (c *AcademicController) UpdateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.AcademicService.UpdateCourse(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags academic
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id} [delete]
func (c *AcademicController) DeleteCourse(ctx *gin.Context) {
	if err := c.AcademicService.DeleteCourse(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
