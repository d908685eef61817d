package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"
	"testing"
)

func newSupportService(env *testEnv) *SupportService {
	return NewSupportService(repository.NewSupportRepository(env.db), env.courses)
}

func TestSupportThread(t *testing.T) {
	env := newTestEnv(t)
	svc := newSupportService(env)
	alice := env.addStudent(t, "alice@obe.local", "2021-1001")

	q, err := svc.Ask(alice.UserID, AskQuestionRequest{
		CourseID: &env.course.ID,
		Title:    "Normalization confusion",
		Body:     "When is 3NF not enough?",
	})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}

	if _, err := svc.Answer(env.author.UserID, q.ID, AnswerRequest{
		Body: "When a relation has overlapping candidate keys, aim for BCNF.",
	}); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	got, err := svc.Get(q.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(got.Answers))
	}
}

func TestAskUnknownCourse(t *testing.T) {
	env := newTestEnv(t)
	svc := newSupportService(env)
	alice := env.addStudent(t, "alice@obe.local", "2021-1001")
	missing := uint(9999)

	_, err := svc.Ask(alice.UserID, AskQuestionRequest{
		CourseID: &missing,
		Title:    "x",
		Body:     "y",
	})
	if !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestDeleteQuestionAskerOrAdmin(t *testing.T) {
	env := newTestEnv(t)
	svc := newSupportService(env)
	alice := env.addStudent(t, "alice@obe.local", "2021-1001")
	bob := env.addStudent(t, "bob@obe.local", "2021-1002")

	q, err := svc.Ask(alice.UserID, AskQuestionRequest{Title: "t", Body: "b"})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}

	if err := svc.Delete(bob.UserID, model.RoleStudent, q.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("stranger delete err = %v, want ErrPermissionDenied", err)
	}
	if err := svc.Delete(alice.UserID, model.RoleStudent, q.ID); err != nil {
		t.Fatalf("asker delete: %v", err)
	}
	if _, err := svc.Get(q.ID); !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("after delete err = %v, want ErrQuestionNotFound", err)
	}
}
