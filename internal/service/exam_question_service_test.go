package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/util"
	"testing"
)

func TestCreatePaperDefaults(t *testing.T) {
	env := newTestEnv(t)

	q, err := env.examQuestions.Create(env.claimsFor(t, env.author), CreateExamQuestionRequest{
		CourseID: env.course.ID,
		Session:  "2025-2026",
		Semester: "6th",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if q.TotalMarks != util.DefaultExamTotalMarks {
		t.Fatalf("TotalMarks = %d, want %d", q.TotalMarks, util.DefaultExamTotalMarks)
	}
	if q.Duration != util.DefaultExamDuration {
		t.Fatalf("Duration = %q, want %q", q.Duration, util.DefaultExamDuration)
	}
	if q.Status != model.StatusDraft {
		t.Fatalf("Status = %q, want %q", q.Status, model.StatusDraft)
	}
}

func TestCreatePaperExplicitValues(t *testing.T) {
	env := newTestEnv(t)

	q, err := env.examQuestions.Create(env.claimsFor(t, env.author), CreateExamQuestionRequest{
		CourseID:   env.course.ID,
		Session:    "2025-2026",
		Semester:   "6th",
		TotalMarks: 100,
		Duration:   "4 Hours",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if q.TotalMarks != 100 || q.Duration != "4 Hours" {
		t.Fatalf("got %d/%q, want 100/4 Hours", q.TotalMarks, q.Duration)
	}
}

func TestCreatePaperUnknownCourse(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.examQuestions.Create(env.claimsFor(t, env.author), CreateExamQuestionRequest{
		CourseID: 9999,
		Session:  "2025-2026",
		Semester: "6th",
	})
	if !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestUpdatePaperOwnership(t *testing.T) {
	env := newTestEnv(t)
	paper := env.newPaper(t)

	_, err := env.examQuestions.Update(env.claimsFor(t, env.member), paper.ID, UpdateExamQuestionRequest{
		Duration: "2 Hours",
	})
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}

	got, err := env.examQuestions.Update(env.claimsFor(t, env.author), paper.ID, UpdateExamQuestionRequest{
		Duration: "2 Hours",
	})
	if err != nil {
		t.Fatalf("owner Update: %v", err)
	}
	if got.Duration != "2 Hours" {
		t.Fatalf("Duration = %q, want 2 Hours", got.Duration)
	}
}

func TestAddItemRejectsInvalidBloomsLevel(t *testing.T) {
	env := newTestEnv(t)
	paper := env.newPaper(t)

	_, err := env.examQuestions.AddItem(env.claimsFor(t, env.author), paper.ID, ExamQuestionItemRequest{
		QuestionLabel: "1",
		QuestionText:  "What is a transaction?",
		Marks:         5,
		BloomsLevel:   "Memorize",
	})
	if err == nil {
		t.Fatal("invalid taxonomy level accepted")
	}
}

func TestAddItemRejectsUnknownCLO(t *testing.T) {
	env := newTestEnv(t)
	paper := env.newPaper(t)
	missing := uint(9999)

	_, err := env.examQuestions.AddItem(env.claimsFor(t, env.author), paper.ID, ExamQuestionItemRequest{
		CLOID:         &missing,
		QuestionLabel: "1",
		QuestionText:  "What is a transaction?",
		Marks:         5,
		BloomsLevel:   string(model.BloomRemember),
	})
	if !errors.Is(err, util.ErrCLONotFound) {
		t.Fatalf("err = %v, want ErrCLONotFound", err)
	}
}

func TestItemLifecycle(t *testing.T) {
	env := newTestEnv(t)
	paper := env.newPaper(t)
	author := env.claimsFor(t, env.author)

	item, err := env.examQuestions.AddItem(author, paper.ID, ExamQuestionItemRequest{
		QuestionLabel: "1(a)",
		QuestionText:  "Normalize the given relation.",
		Marks:         10,
		BloomsLevel:   string(model.BloomApply),
		Position:      1,
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	updated, err := env.examQuestions.UpdateItem(author, paper.ID, item.ID, ExamQuestionItemRequest{
		QuestionLabel: "1(a)",
		QuestionText:  "Normalize the given relation to BCNF.",
		Marks:         12,
		BloomsLevel:   string(model.BloomAnalyze),
		Position:      1,
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Marks != 12 || updated.BloomsLevel != model.BloomAnalyze {
		t.Fatalf("item after update = %+v", updated)
	}

	if err := env.examQuestions.DeleteItem(author, paper.ID, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	detail, err := env.mod.Detail(author, paper.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.ItemMarksTotal != 0 {
		t.Fatalf("ItemMarksTotal after delete = %v, want 0", detail.ItemMarksTotal)
	}
}

func TestItemMustBelongToPaper(t *testing.T) {
	env := newTestEnv(t)
	author := env.claimsFor(t, env.author)
	first := env.newPaper(t)
	second := env.newPaper(t)

	item, err := env.examQuestions.AddItem(author, first.ID, ExamQuestionItemRequest{
		QuestionLabel: "1",
		QuestionText:  "Explain locking.",
		Marks:         5,
		BloomsLevel:   string(model.BloomUnderstand),
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	err = env.examQuestions.DeleteItem(author, second.ID, item.ID)
	if !errors.Is(err, util.ErrExamQuestionNotFound) {
		t.Fatalf("cross-paper delete err = %v, want ErrExamQuestionNotFound", err)
	}
}

func TestApprovedPaperIsLocked(t *testing.T) {
	env := newTestEnv(t)
	env.newCommittee(t)
	paper := env.newPaper(t)
	author := env.claimsFor(t, env.author)
	moderator := env.claimsFor(t, env.member)

	if _, err := env.mod.Submit(author, paper.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := env.mod.PickUp(moderator, paper.ID); err != nil {
		t.Fatalf("PickUp: %v", err)
	}
	if _, err := env.mod.Approve(moderator, paper.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	if _, err := env.examQuestions.AddItem(author, paper.ID, ExamQuestionItemRequest{
		QuestionLabel: "2",
		QuestionText:  "Sneak in a question.",
		Marks:         5,
		BloomsLevel:   string(model.BloomRemember),
	}); !errors.Is(err, util.ErrPaperLocked) {
		t.Fatalf("AddItem err = %v, want ErrPaperLocked", err)
	}
	if err := env.examQuestions.DeleteItem(author, paper.ID, 1); !errors.Is(err, util.ErrPaperLocked) {
		t.Fatalf("DeleteItem err = %v, want ErrPaperLocked", err)
	}
}

func TestListMine(t *testing.T) {
	env := newTestEnv(t)
	env.newPaper(t)
	env.newPaper(t)

	mine, err := env.examQuestions.ListMine(env.claimsFor(t, env.author))
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("len = %d, want 2", len(mine))
	}

	others, err := env.examQuestions.ListMine(env.claimsFor(t, env.member))
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if len(others) != 0 {
		t.Fatalf("member sees %d papers, want 0", len(others))
	}
}
