package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", m, err)
	}
	return n
}

func TestCourseDeleteRemovesOwnedChildren(t *testing.T) {
	env := newTestEnv(t)
	author := env.claimsFor(t, env.author)
	alice := env.addStudent(t, "alice@obe.local", "2021-1001")

	paper := env.newPaper(t)
	if _, err := env.examQuestions.AddItem(author, paper.ID, ExamQuestionItemRequest{
		QuestionLabel: "1",
		QuestionText:  "Define a relation.",
		Marks:         5,
		BloomsLevel:   string(model.BloomRemember),
	}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := env.mod.Submit(author, paper.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	outcomes := newOutcomeService(env)
	clo, err := outcomes.CreateCLO(env.course.ID, OutcomeRequest{RefCode: "CLO-1", Statement: "x"})
	if err != nil {
		t.Fatalf("CreateCLO: %v", err)
	}
	plo, err := outcomes.CreatePLO(env.program.ID, OutcomeRequest{RefCode: "PLO-1", Statement: "x"})
	if err != nil {
		t.Fatalf("CreatePLO: %v", err)
	}
	if err := outcomes.MapCLOToPLO(MappingRequest{FromID: clo.ID, ToID: plo.ID}); err != nil {
		t.Fatalf("MapCLOToPLO: %v", err)
	}

	assignRepo := repository.NewAssignmentRepository(env.db)
	assignments := NewAssignmentService(assignRepo, env.courses, env.teachers, env.students, nil, zap.NewNop())
	a, err := assignments.Create(env.author.UserID, CreateAssignmentRequest{
		CourseID: env.course.ID,
		Title:    "hw1",
		DueDate:  time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create assignment: %v", err)
	}
	if err := assignRepo.CreateSubmission(&model.AssignmentSubmission{
		AssignmentID: a.ID,
		StudentID:    alice.ID,
		FilePath:     "submissions/x.pdf",
		SubmittedAt:  time.Now(),
	}); err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	if err := env.courses.Delete(env.course.ID); err != nil {
		t.Fatalf("Delete course: %v", err)
	}

	for _, m := range []interface{}{
		&model.ExamQuestion{},
		&model.ExamQuestionItem{},
		&model.CLO{},
		&model.CLOPLOMapping{},
		&model.Assignment{},
		&model.AssignmentSubmission{},
	} {
		if n := countRows(t, env.db, m); n != 0 {
			t.Fatalf("%T rows after course delete = %d, want 0", m, n)
		}
	}

	// the submitted paper must not reappear in any moderation queue
	env.newCommittee(t)
	entries, err := env.mod.Queue(env.claimsFor(t, env.member))
	if err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("queue after course delete = %+v, want empty", entries)
	}

	if _, err := env.examQ.FindByID(paper.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("paper lookup err = %v, want record not found", err)
	}
}

func TestProgramDeleteRemovesOutcomes(t *testing.T) {
	env := newTestEnv(t)
	outcomes := newOutcomeService(env)

	peo, err := outcomes.CreatePEO(env.program.ID, OutcomeRequest{RefCode: "PEO-1", Statement: "x"})
	if err != nil {
		t.Fatalf("CreatePEO: %v", err)
	}
	plo, err := outcomes.CreatePLO(env.program.ID, OutcomeRequest{RefCode: "PLO-1", Statement: "x"})
	if err != nil {
		t.Fatalf("CreatePLO: %v", err)
	}
	if err := outcomes.MapPLOToPEO(MappingRequest{FromID: plo.ID, ToID: peo.ID}); err != nil {
		t.Fatalf("MapPLOToPEO: %v", err)
	}

	if err := env.programs.Delete(env.program.ID); err != nil {
		t.Fatalf("Delete program: %v", err)
	}

	for _, m := range []interface{}{
		&model.Course{},
		&model.PEO{},
		&model.PLO{},
		&model.PLOPEOMapping{},
	} {
		if n := countRows(t, env.db, m); n != 0 {
			t.Fatalf("%T rows after program delete = %d, want 0", m, n)
		}
	}

	_, err = env.programs.FindByID(env.program.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("program lookup err = %v, want record not found", err)
	}
}

func TestFacultyDeleteCascadesWholeTree(t *testing.T) {
	env := newTestEnv(t)
	env.newCommittee(t)
	paper := env.newPaper(t)
	if _, err := env.mod.Submit(env.claimsFor(t, env.author), paper.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := env.faculties.Delete(env.faculty.ID); err != nil {
		t.Fatalf("Delete faculty: %v", err)
	}

	for _, m := range []interface{}{
		&model.Department{},
		&model.Program{},
		&model.Course{},
		&model.ExamQuestion{},
		&model.ModerationCommittee{},
		&model.ModerationCommitteeMember{},
	} {
		if n := countRows(t, env.db, m); n != 0 {
			t.Fatalf("%T rows after faculty delete = %d, want 0", m, n)
		}
	}

	// people profiles are cross-references, not owned children
	if n := countRows(t, env.db, &model.Teacher{}); n == 0 {
		t.Fatal("teacher profiles removed by faculty delete, want kept")
	}
}

func TestDisbandInvalidatesHeldRevision(t *testing.T) {
	env := newTestEnv(t)
	committee := env.newCommittee(t)
	paper := env.newPaper(t)
	moderator := env.claimsFor(t, env.member)

	if _, err := env.mod.Submit(env.claimsFor(t, env.author), paper.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := env.mod.PickUp(moderator, paper.ID); err != nil {
		t.Fatalf("PickUp: %v", err)
	}

	// a moderator reads the paper, then the chairman disbands the committee
	held, err := env.examQ.FindByID(paper.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := env.mod.DisbandCommittee(env.claimsFor(t, env.chairman), committee.ID); err != nil {
		t.Fatalf("Disband: %v", err)
	}

	// the pre-disband revision token must no longer land a write
	err = env.examQ.UpdateStatusCAS(paper.ID, held.Revision, map[string]interface{}{
		"status": model.StatusApproved,
	})
	if !errors.Is(err, util.ErrConcurrentUpdate) {
		t.Fatalf("stale CAS err = %v, want ErrConcurrentUpdate", err)
	}

	got, err := env.examQ.FindByID(paper.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != model.StatusSubmitted {
		t.Fatalf("status = %q, want %q", got.Status, model.StatusSubmitted)
	}
	if got.ModerationCommitteeID != nil {
		t.Fatalf("committee = %v, want nil", got.ModerationCommitteeID)
	}
}
