package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"
	"testing"
	"time"

	"go.uber.org/zap"
)

// storage stays nil: these tests exercise metadata paths, not uploads.
func newAssignmentService(env *testEnv) (*AssignmentService, *repository.AssignmentRepository) {
	repo := repository.NewAssignmentRepository(env.db)
	svc := NewAssignmentService(repo, env.courses, env.teachers, env.students, nil, zap.NewNop())
	return svc, repo
}

func TestCreateAssignment(t *testing.T) {
	env := newTestEnv(t)
	svc, _ := newAssignmentService(env)

	a, err := svc.Create(env.author.UserID, CreateAssignmentRequest{
		CourseID: env.course.ID,
		Title:    "ER modelling exercise",
		DueDate:  time.Now().Add(72 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.TeacherID != env.author.ID {
		t.Fatalf("teacher = %d, want %d", a.TeacherID, env.author.ID)
	}

	_, err = svc.Create(env.author.UserID, CreateAssignmentRequest{
		CourseID: 9999,
		Title:    "orphan",
		DueDate:  time.Now().Add(time.Hour),
	})
	if !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestListPendingFiltersSubmittedAndClosed(t *testing.T) {
	env := newTestEnv(t)
	svc, repo := newAssignmentService(env)
	alice := env.addStudent(t, "alice@obe.local", "2021-1001")

	open, err := svc.Create(env.author.UserID, CreateAssignmentRequest{
		CourseID: env.course.ID,
		Title:    "open",
		DueDate:  time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create open: %v", err)
	}
	submitted, err := svc.Create(env.author.UserID, CreateAssignmentRequest{
		CourseID: env.course.ID,
		Title:    "already submitted",
		DueDate:  time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create submitted: %v", err)
	}
	// past-due assignment never shows up
	overdue := &model.Assignment{
		CourseID:  env.course.ID,
		TeacherID: env.author.ID,
		Title:     "overdue",
		DueDate:   time.Now().Add(-time.Hour),
	}
	mustCreate(t, env.db, overdue)

	if err := repo.CreateSubmission(&model.AssignmentSubmission{
		AssignmentID: submitted.ID,
		StudentID:    alice.ID,
		FilePath:     "submissions/x.pdf",
		SubmittedAt:  time.Now(),
	}); err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	pending, err := svc.ListPending(alice.UserID)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != open.ID {
		t.Fatalf("pending = %+v, want only %q", pending, open.Title)
	}
}

func TestGradeSubmission(t *testing.T) {
	env := newTestEnv(t)
	svc, repo := newAssignmentService(env)
	alice := env.addStudent(t, "alice@obe.local", "2021-1001")

	a, err := svc.Create(env.author.UserID, CreateAssignmentRequest{
		CourseID: env.course.ID,
		Title:    "normalization",
		DueDate:  time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.CreateSubmission(&model.AssignmentSubmission{
		AssignmentID: a.ID,
		StudentID:    alice.ID,
		FilePath:     "submissions/x.pdf",
		SubmittedAt:  time.Now(),
	}); err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	// only the setting teacher may grade
	_, err = svc.Grade(env.member.UserID, a.ID, GradeSubmissionRequest{StudentID: alice.ID, Marks: 9})
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("non-owner Grade err = %v, want ErrPermissionDenied", err)
	}

	sub, err := svc.Grade(env.author.UserID, a.ID, GradeSubmissionRequest{StudentID: alice.ID, Marks: 9})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if sub.Marks == nil || *sub.Marks != 9 {
		t.Fatalf("marks = %v, want 9", sub.Marks)
	}

	_, err = svc.Grade(env.author.UserID, a.ID, GradeSubmissionRequest{StudentID: 9999, Marks: 5})
	if !errors.Is(err, util.ErrSubmissionNotFound) {
		t.Fatalf("err = %v, want ErrSubmissionNotFound", err)
	}
}
