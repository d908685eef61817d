package controller

import (
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Register godoc
// @Summary Register a new user account
// @Description Self-registration for students and teachers. Admin accounts are seeded.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "Registration details"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// Login godoc
// @Summary Authenticate and obtain a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "Login credentials"
// @Success 200 {object} util.Response{data=service.AuthResponse}
// @Failure 401 {object} util.Response "Bad credentials or disabled account"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.AuthService.Login(req)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, resp)
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.Profile(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
