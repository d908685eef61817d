package service

import (
	"errors"
	"obe_backend/internal/util"
	"testing"
)

func newOutcomeService(env *testEnv) *OutcomeService {
	return NewOutcomeService(env.outcomes, env.programs, env.courses)
}

func TestOutcomeMappingMatrix(t *testing.T) {
	env := newTestEnv(t)
	svc := newOutcomeService(env)

	peo, err := svc.CreatePEO(env.program.ID, OutcomeRequest{
		RefCode:   "PEO-1",
		Statement: "Graduates practise engineering professionally.",
	})
	if err != nil {
		t.Fatalf("CreatePEO: %v", err)
	}
	plo, err := svc.CreatePLO(env.program.ID, OutcomeRequest{
		RefCode:   "PLO-3",
		Statement: "Design solutions for complex problems.",
	})
	if err != nil {
		t.Fatalf("CreatePLO: %v", err)
	}
	clo, err := svc.CreateCLO(env.course.ID, OutcomeRequest{
		RefCode:   "CLO-2",
		Statement: "Design a normalized relational schema.",
	})
	if err != nil {
		t.Fatalf("CreateCLO: %v", err)
	}

	if err := svc.MapCLOToPLO(MappingRequest{FromID: clo.ID, ToID: plo.ID}); err != nil {
		t.Fatalf("MapCLOToPLO: %v", err)
	}
	if err := svc.MapPLOToPEO(MappingRequest{FromID: plo.ID, ToID: peo.ID}); err != nil {
		t.Fatalf("MapPLOToPEO: %v", err)
	}

	matrix, err := svc.Matrix(env.program.ID)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	if len(matrix.CLOToPLO) != 1 || matrix.CLOToPLO[0].CLOID != clo.ID || matrix.CLOToPLO[0].PLOID != plo.ID {
		t.Fatalf("CLOToPLO = %+v", matrix.CLOToPLO)
	}
	if len(matrix.PLOToPEO) != 1 || matrix.PLOToPEO[0].PLOID != plo.ID || matrix.PLOToPEO[0].PEOID != peo.ID {
		t.Fatalf("PLOToPEO = %+v", matrix.PLOToPEO)
	}

	if err := svc.UnmapCLOFromPLO(MappingRequest{FromID: clo.ID, ToID: plo.ID}); err != nil {
		t.Fatalf("UnmapCLOFromPLO: %v", err)
	}
	matrix, err = svc.Matrix(env.program.ID)
	if err != nil {
		t.Fatalf("Matrix: %v", err)
	}
	if len(matrix.CLOToPLO) != 0 {
		t.Fatalf("CLOToPLO after unmap = %+v, want empty", matrix.CLOToPLO)
	}
}

func TestOutcomeUnknownParents(t *testing.T) {
	env := newTestEnv(t)
	svc := newOutcomeService(env)

	_, err := svc.CreatePEO(9999, OutcomeRequest{RefCode: "PEO-1", Statement: "x"})
	if !errors.Is(err, util.ErrProgramNotFound) {
		t.Fatalf("CreatePEO err = %v, want ErrProgramNotFound", err)
	}
	_, err = svc.CreateCLO(9999, OutcomeRequest{RefCode: "CLO-1", Statement: "x"})
	if !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("CreateCLO err = %v, want ErrCourseNotFound", err)
	}
}

func TestLessonPlanWithCLO(t *testing.T) {
	env := newTestEnv(t)
	svc := newOutcomeService(env)

	clo, err := svc.CreateCLO(env.course.ID, OutcomeRequest{
		RefCode:   "CLO-1",
		Statement: "Explain ACID properties.",
	})
	if err != nil {
		t.Fatalf("CreateCLO: %v", err)
	}

	plan, err := svc.CreateLessonPlan(env.course.ID, LessonPlanRequest{
		Week:  3,
		Topic: "Transactions",
		CLOID: &clo.ID,
	})
	if err != nil {
		t.Fatalf("CreateLessonPlan: %v", err)
	}
	if plan.CLOID == nil || *plan.CLOID != clo.ID {
		t.Fatalf("plan CLO = %v, want %d", plan.CLOID, clo.ID)
	}

	plans, err := svc.ListLessonPlans(env.course.ID)
	if err != nil {
		t.Fatalf("ListLessonPlans: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("plans = %d, want 1", len(plans))
	}
}
