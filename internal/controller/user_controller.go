package controller

import (
	"obe_backend/internal/model"
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// List godoc
// @Summary List user accounts
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param role query string false "Filter by role"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	role := model.UserRole(ctx.Query("role"))

	users, total, err := c.UserService.List(page, limit, role)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Get one user account
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	user, err := c.UserService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// UpdateRole godoc
// @Summary Change a user's role
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param body body service.UpdateRoleRequest true "New role"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/admin/users/{id}/role [put]
func (c *UserController) UpdateRole(ctx *gin.Context) {
	var req service.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateRole(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

type setDisabledRequest struct {
	Disabled bool `json:"disabled"`
}

// SetDisabled godoc
// @Summary Enable or disable a user account
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/admin/users/{id}/disabled [put]
func (c *UserController) SetDisabled(ctx *gin.Context) {
	var req setDisabledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.SetDisabled(util.MustParseUint(ctx.Param("id")), req.Disabled)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
