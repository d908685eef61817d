package controller

import (
	"errors"
	"net/http"
	"obe_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service-layer sentinel errors onto HTTP responses so
// each handler does not repeat the same errors.Is ladder. Anything
// unrecognized is logged and reported as a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrFacultyNotFound),
		errors.Is(err, util.ErrDepartmentNotFound),
		errors.Is(err, util.ErrProgramNotFound),
		errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrTeacherNotFound),
		errors.Is(err, util.ErrStudentNotFound),
		errors.Is(err, util.ErrExamQuestionNotFound),
		errors.Is(err, util.ErrCommitteeNotFound),
		errors.Is(err, util.ErrAssignmentNotFound),
		errors.Is(err, util.ErrSubmissionNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrCLONotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrInvalidTransition),
		errors.Is(err, util.ErrAlreadyApproved),
		errors.Is(err, util.ErrPaperLocked),
		errors.Is(err, util.ErrConcurrentUpdate),
		errors.Is(err, util.ErrAlreadySubmitted):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrEmptyFeedback),
		errors.Is(err, util.ErrEmptyBatch),
		errors.Is(err, util.ErrInvalidFileType):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func pageParams(ctx *gin.Context) (int, int) {
	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
