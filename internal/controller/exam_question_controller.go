package controller

import (
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ExamQuestionController covers the authoring side of exam papers: drafts
// and their ordered question items. Workflow actions live in
// ModerationController.
type ExamQuestionController struct {
	ExamQuestionService *service.ExamQuestionService
	ModerationService   *service.ModerationService
}

func NewExamQuestionController(examQuestionService *service.ExamQuestionService, moderationService *service.ModerationService) *ExamQuestionController {
	return &ExamQuestionController{
		ExamQuestionService: examQuestionService,
		ModerationService:   moderationService,
	}
}

// Create godoc
// @Summary Create a draft exam paper
// @Tags exam-questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateExamQuestionRequest true "Paper details"
// @Success 201 {object} util.Response{data=model.ExamQuestion}
// @Router /api/exam-questions [post]
func (c *ExamQuestionController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateExamQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.ExamQuestionService.Create(claims, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// ListMine godoc
// @Summary List the calling teacher's exam papers
// @Tags exam-questions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ExamQuestion}
// @Router /api/exam-questions [get]
func (c *ExamQuestionController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	qs, err := c.ExamQuestionService.ListMine(claims)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, qs)
}

// Get godoc
// @Summary Full paper view including items, feedback and marks check
// @Tags exam-questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Success 200 {object} util.Response{data=service.PaperDetail}
// @Failure 404 {object} util.Response
// @Router /api/exam-questions/{id} [get]
func (c *ExamQuestionController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	detail, err := c.ModerationService.Detail(claims, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// Update godoc
// @Summary Update a paper's header fields
// @Tags exam-questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Param body body service.UpdateExamQuestionRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.ExamQuestion}
// @Failure 409 {object} util.Response "Paper is approved and locked"
// @Router /api/exam-questions/{id} [put]
func (c *ExamQuestionController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateExamQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.ExamQuestionService.Update(claims, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// AddItem godoc
// @Summary Add a question item to a paper
// @Tags exam-questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Param body body service.ExamQuestionItemRequest true "Item details"
// @Success 201 {object} util.Response{data=model.ExamQuestionItem}
// @Failure 409 {object} util.Response "Paper is approved and locked"
// @Router /api/exam-questions/{id}/items [post]
func (c *ExamQuestionController) AddItem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ExamQuestionItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.ExamQuestionService.AddItem(claims, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, item)
}

// UpdateItem godoc
// @Summary Update a question item
// @Tags exam-questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Param itemId path int true "Item ID"
// @Param body body service.ExamQuestionItemRequest true "Item details"
// @Success 200 {object} util.Response{data=model.ExamQuestionItem}
// @Router /api/exam-questions/{id}/items/{itemId} [put]
func (c *ExamQuestionController) UpdateItem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ExamQuestionItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.ExamQuestionService.UpdateItem(claims,
		util.MustParseUint(ctx.Param("id")),
		util.MustParseUint(ctx.Param("itemId")),
		req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteItem godoc
// @Summary Delete a question item
// @Tags exam-questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} util.Response
// @Router /api/exam-questions/{id}/items/{itemId} [delete]
func (c *ExamQuestionController) DeleteItem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.ExamQuestionService.DeleteItem(claims,
		util.MustParseUint(ctx.Param("id")),
		util.MustParseUint(ctx.Param("itemId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Submit godoc
// @Summary Submit a draft paper for moderation
// @Tags exam-questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Success 200 {object} util.Response{data=model.ExamQuestion}
// @Failure 409 {object} util.Response "Not in Draft state or concurrent update"
// @Router /api/exam-questions/{id}/submit [post]
func (c *ExamQuestionController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	q, err := c.ModerationService.Submit(claims, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// Resubmit godoc
// @Summary Return a revised paper to the moderation queue
// @Tags exam-questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Success 200 {object} util.Response{data=model.ExamQuestion}
// @Failure 409 {object} util.Response "Not awaiting revision or concurrent update"
// @Router /api/exam-questions/{id}/resubmit [post]
func (c *ExamQuestionController) Resubmit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	q, err := c.ModerationService.Resubmit(claims, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}
