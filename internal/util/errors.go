package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrPermissionDenied = errors.New("permission denied")

	ErrFacultyNotFound    = errors.New("faculty not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrProgramNotFound    = errors.New("program not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrTeacherNotFound    = errors.New("teacher not found")
	ErrStudentNotFound    = errors.New("student not found")

	ErrExamQuestionNotFound = errors.New("exam question not found")
	ErrCommitteeNotFound    = errors.New("moderation committee not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAlreadyApproved      = errors.New("exam question already approved")
	ErrPaperLocked          = errors.New("exam question is approved and locked")
	ErrEmptyFeedback        = errors.New("revision feedback must not be empty")
	ErrConcurrentUpdate     = errors.New("exam question was modified concurrently")

	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrQuestionNotFound   = errors.New("support question not found")
	ErrCLONotFound        = errors.New("course learning outcome not found")
	ErrInvalidFileType    = errors.New("unsupported file type")
	ErrAlreadySubmitted   = errors.New("assignment already submitted")
	ErrEmptyBatch         = errors.New("batch must not be empty")
)
