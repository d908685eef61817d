package controller

import (
	"obe_backend/internal/service"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ModerationController exposes committee management and the moderator side
// of the exam paper workflow.
type ModerationController struct {
	ModerationService *service.ModerationService
}

func NewModerationController(moderationService *service.ModerationService) *ModerationController {
	return &ModerationController{ModerationService: moderationService}
}

// Capabilities godoc
// @Summary The caller's authorization set for a department
// @Description Reports whether the caller is chairman, dean or admin, so clients gate UI on facts instead of guessing from roles.
// @Tags moderation
// @Produce json
// @Security ApiKeyAuth
// @Param departmentId query int true "Department ID"
// @Success 200 {object} util.Response{data=service.Capability}
// @Router /api/moderation/capabilities [get]
func (c *ModerationController) Capabilities(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	caps, _, err := c.ModerationService.Capabilities(claims, util.MustParseUint(ctx.Query("departmentId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, caps)
}

// FormCommittee godoc
// @Summary Form a moderation committee
// @Description The acting teacher becomes chairman. Committee and member rows persist atomically.
// @Tags moderation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.FormCommitteeRequest true "Committee details"
// @Success 201 {object} util.Response{data=model.ModerationCommittee}
// @Failure 403 {object} util.Response "Caller is not chairman, dean or admin"
// @Router /api/moderation-committees [post]
func (c *ModerationController) FormCommittee(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.FormCommitteeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	committee, err := c.ModerationService.FormCommittee(claims, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, committee)
}

// GetCommittee godoc
// @Summary Get one committee with its members
// @Tags moderation
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Committee ID"
// @Success 200 {object} util.Response{data=model.ModerationCommittee}
// @Failure 404 {object} util.Response
// @Router /api/moderation-committees/{id} [get]
func (c *ModerationController) GetCommittee(ctx *gin.Context) {
	committee, err := c.ModerationService.GetCommittee(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, committee)
}

// ListCommittees godoc
// @Summary List committees of a department
// @Tags moderation
// @Produce json
// @Security ApiKeyAuth
// @Param departmentId query int false "Department filter"
// @Success 200 {object} util.Response{data=[]model.ModerationCommittee}
// @Router /api/moderation-committees [get]
func (c *ModerationController) ListCommittees(ctx *gin.Context) {
	committees, err := c.ModerationService.ListCommittees(util.MustParseUint(ctx.Query("departmentId")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, committees)
}

// DisbandCommittee godoc
// @Summary Disband a committee
// @Description Papers assigned but not approved return to the Submitted queue.
// @Tags moderation
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Committee ID"
// @Success 200 {object} util.Response
// @Router /api/moderation-committees/{id} [delete]
func (c *ModerationController) DisbandCommittee(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ModerationService.DisbandCommittee(claims, util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Queue godoc
// @Summary The calling moderator's paper queue
// @Description Papers assigned to the caller's committees plus unassigned submissions from those departments.
// @Tags moderation
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.ModerationQueueEntry}
// @Router /api/moderation [get]
func (c *ModerationController) Queue(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.ModerationService.Queue(claims)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// Detail godoc
// @Summary Full moderation view of one paper
// @Tags moderation
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Success 200 {object} util.Response{data=service.PaperDetail}
// @Failure 404 {object} util.Response
// @Router /api/moderation/{id} [get]
func (c *ModerationController) Detail(ctx *gin.Context) {
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

// PickUp godoc
// @Summary Assign a submitted paper to the caller's committee and start moderating
// @Tags moderation
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Success 200 {object} util.Response{data=model.ExamQuestion}
// @Failure 409 {object} util.Response "Not in Submitted state or concurrent update"
// @Router /api/moderation/{id}/pickup [post]
func (c *ModerationController) PickUp(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	q, err := c.ModerationService.PickUp(claims, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

type revisionRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// RequestRevision godoc
// @Summary Send a paper back to its author with feedback
// @Tags moderation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Param body body revisionRequest true "Feedback for the author"
// @Success 200 {object} util.Response{data=model.ExamQuestion}
// @Failure 400 {object} util.Response "Empty feedback"
// @Failure 409 {object} util.Response "Already approved or concurrent update"
// @Router /api/moderation/{id}/revision [post]
func (c *ModerationController) RequestRevision(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req revisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.ModerationService.RequestRevision(claims, util.MustParseUint(ctx.Param("id")), req.Feedback)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// Approve godoc
// @Summary Approve a paper, locking it against further edits
// @Tags moderation
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Success 200 {object} util.Response{data=model.ExamQuestion}
// @Failure 409 {object} util.Response "Already approved or concurrent update"
// @Router /api/moderation/{id}/approve [post]
func (c *ModerationController) Approve(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	q, err := c.ModerationService.Approve(claims, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// ReviewItem godoc
// @Summary Record a satisfactory/unsatisfactory verdict on one item
// @Tags moderation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Paper ID"
// @Param itemId path int true "Item ID"
// @Param body body service.ItemReviewRequest true "Verdict"
// @Success 200 {object} util.Response{data=model.ExamQuestionItem}
// @Failure 409 {object} util.Response "Paper is approved and locked"
// @Router /api/moderation/{id}/items/{itemId}/review [put]
func (c *ModerationController) ReviewItem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ItemReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.ModerationService.ReviewItem(claims,
		util.MustParseUint(ctx.Param("id")),
		util.MustParseUint(ctx.Param("itemId")),
		req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, item)
}
