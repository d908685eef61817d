package controller

import (
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SupportController struct {
	SupportService *service.SupportService
}

func NewSupportController(supportService *service.SupportService) *SupportController {
	return &SupportController{SupportService: supportService}
}

// Ask godoc
// @Summary Post a support question
// @Tags support
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.AskQuestionRequest true "Question"
// @Success 201 {object} util.Response{data=model.SupportQuestion}
// @Router /api/support/questions [post]
func (c *SupportController) Ask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AskQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.SupportService.Ask(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// Get godoc
// @Summary Get one question with its answers
// @Tags support
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response{data=model.SupportQuestion}
// @Failure 404 {object} util.Response
// @Router /api/support/questions/{id} [get]
func (c *SupportController) Get(ctx *gin.Context) {
	q, err := c.SupportService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// List godoc
// @Summary List support questions, optionally by course
// @Tags support
// @Produce json
// @Param courseId query int false "Course filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/support/questions [get]
func (c *SupportController) List(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	qs, total, err := c.SupportService.List(util.MustParseUint(ctx.Query("courseId")), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: qs, Total: total, Page: page, Limit: limit})
}

// Answer godoc
// @Summary Answer a support question
// @Tags support
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question ID"
// @Param body body service.AnswerRequest true "Answer"
// @Success 201 {object} util.Response{data=model.SupportAnswer}
// @Router /api/support/questions/{id}/answers [post]
func (c *SupportController) Answer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.SupportService.Answer(claims.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// Delete godoc
// @Summary Delete a question (asker or admin)
// @Tags support
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response
// @Router /api/support/questions/{id} [delete]
func (c *SupportController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.SupportService.Delete(claims.UserID, claims.Role, util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
