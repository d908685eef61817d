package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/util"
	"testing"
)

func TestSubmitMovesDraftToSubmitted(t *testing.T) {
	env := newTestEnv(t)
	paper := env.newPaper(t)

	got, err := env.mod.Submit(env.claimsFor(t, env.author), paper.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.Status != model.StatusSubmitted {
		t.Fatalf("status = %q, want %q", got.Status, model.StatusSubmitted)
	}
	if got.Revision != paper.Revision+1 {
		t.Fatalf("revision = %d, want %d", got.Revision, paper.Revision+1)
	}
}

func TestSubmitRejectsNonOwner(t *testing.T) {
	env := newTestEnv(t)
	paper := env.newPaper(t)

	_, err := env.mod.Submit(env.claimsFor(t, env.member), paper.ID)
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestSubmitRejectsNonDraft(t *testing.T) {
	env := newTestEnv(t)
	paper := env.newPaper(t)
	claims := env.claimsFor(t, env.author)

	if _, err := env.mod.Submit(claims, paper.ID); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	_, err := env.mod.Submit(claims, paper.ID)
	if !errors.Is(err, util.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestPickUpAssignsCommittee(t *testing.T) {
	env := newTestEnv(t)
	committee := env.newCommittee(t)
	paper := env.newPaper(t)

	if _, err := env.mod.Submit(env.claimsFor(t, env.author), paper.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	got, err := env.mod.PickUp(env.claimsFor(t, env.member), paper.ID)
	if err != nil {
		t.Fatalf("PickUp: %v", err)
	}
	if got.Status != model.StatusModerating {
		t.Fatalf("status = %q, want %q", got.Status, model.StatusModerating)
	}
	if got.ModerationCommitteeID == nil || *got.ModerationCommitteeID != committee.ID {
		t.Fatalf("committee = %v, want %d", got.ModerationCommitteeID, committee.ID)
	}
}

func TestPickUpRejectsOutsider(t *testing.T) {
	env := newTestEnv(t)
	env.newCommittee(t)
	paper := env.newPaper(t)

	if _, err := env.mod.Submit(env.claimsFor(t, env.author), paper.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	_, err := env.mod.PickUp(env.claimsFor(t, env.outsider), paper.ID)
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestRequestRevisionRequiresFeedback(t *testing.T) {
	env := newTestEnv(t)
	env.newCommittee(t)
	paper := env.newPaper(t)

	if _, err := env.mod.Submit(env.claimsFor(t, env.author), paper.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	for _, feedback := range []string{"", "   ", "\t\n"} {
		_, err := env.mod.RequestRevision(env.claimsFor(t, env.member), paper.ID, feedback)
		if !errors.Is(err, util.ErrEmptyFeedback) {
			t.Fatalf("feedback %q: err = %v, want ErrEmptyFeedback", feedback, err)
		}
	}
}

func TestRevisionRoundTrip(t *testing.T) {
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

	got, err := env.mod.RequestRevision(moderator, paper.ID, "question 3 exceeds the syllabus")
	if err != nil {
		t.Fatalf("RequestRevision: %v", err)
	}
	if got.Status != model.StatusRevisionNeeded {
		t.Fatalf("status = %q, want %q", got.Status, model.StatusRevisionNeeded)
	}
	if got.ModeratorFeedback == nil || *got.ModeratorFeedback != "question 3 exceeds the syllabus" {
		t.Fatalf("feedback = %v, want stored verbatim", got.ModeratorFeedback)
	}

	// author resubmits; feedback stays visible until the next verdict
	got, err = env.mod.Resubmit(author, paper.ID)
	if err != nil {
		t.Fatalf("Resubmit: %v", err)
	}
	if got.Status != model.StatusSubmitted {
		t.Fatalf("status = %q, want %q", got.Status, model.StatusSubmitted)
	}
	if got.ModeratorFeedback == nil {
		t.Fatal("feedback cleared on resubmit, want retained")
	}
}

func TestResubmitOnlyFromRevisionNeeded(t *testing.T) {
	env := newTestEnv(t)
	paper := env.newPaper(t)
	author := env.claimsFor(t, env.author)

	_, err := env.mod.Resubmit(author, paper.ID)
	if !errors.Is(err, util.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestApproveLocksThePaper(t *testing.T) {
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

	got, err := env.mod.Approve(moderator, paper.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if got.Status != model.StatusApproved {
		t.Fatalf("status = %q, want %q", got.Status, model.StatusApproved)
	}

	// a second approval is rejected, not a silent no-op
	if _, err := env.mod.Approve(moderator, paper.ID); !errors.Is(err, util.ErrAlreadyApproved) {
		t.Fatalf("second Approve err = %v, want ErrAlreadyApproved", err)
	}

	// revision requests are rejected too
	if _, err := env.mod.RequestRevision(moderator, paper.ID, "too late"); !errors.Is(err, util.ErrAlreadyApproved) {
		t.Fatalf("RequestRevision err = %v, want ErrAlreadyApproved", err)
	}

	// and the author can no longer edit
	_, err = env.examQuestions.Update(author, paper.ID, UpdateExamQuestionRequest{Duration: "2 Hours"})
	if !errors.Is(err, util.ErrPaperLocked) {
		t.Fatalf("Update err = %v, want ErrPaperLocked", err)
	}
}

func TestApproveRejectsDraft(t *testing.T) {
	env := newTestEnv(t)
	env.newCommittee(t)
	paper := env.newPaper(t)

	_, err := env.mod.Approve(env.claimsFor(t, env.member), paper.ID)
	if !errors.Is(err, util.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestConcurrentTransitionDetected(t *testing.T) {
	env := newTestEnv(t)
	env.newCommittee(t)
	paper := env.newPaper(t)

	if _, err := env.mod.Submit(env.claimsFor(t, env.author), paper.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// simulate a racing moderator landing first: the stored revision moves
	// past the one this pickup read
	loaded, err := env.examQ.FindByID(paper.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := env.examQ.UpdateStatusCAS(paper.ID, loaded.Revision, map[string]interface{}{
		"status": model.StatusModerating,
	}); err != nil {
		t.Fatalf("first CAS: %v", err)
	}

	err = env.examQ.UpdateStatusCAS(paper.ID, loaded.Revision, map[string]interface{}{
		"status": model.StatusModerating,
	})
	if !errors.Is(err, util.ErrConcurrentUpdate) {
		t.Fatalf("second CAS err = %v, want ErrConcurrentUpdate", err)
	}
}

func TestFormCommitteePermissions(t *testing.T) {
	env := newTestEnv(t)

	req := FormCommitteeRequest{
		DepartmentID: env.department.ID,
		Session:      "2025-2026",
		Semester:     "6th",
		MemberIDs:    []uint{env.member.ID},
	}

	// a plain teacher is refused and nothing persists
	if _, err := env.mod.FormCommittee(env.claimsFor(t, env.author), req); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("plain teacher err = %v, want ErrPermissionDenied", err)
	}
	var count int64
	env.db.Model(&model.ModerationCommittee{}).Count(&count)
	if count != 0 {
		t.Fatalf("committees persisted = %d, want 0", count)
	}

	// the chairman may form one
	committee, err := env.mod.FormCommittee(env.claimsFor(t, env.chairman), req)
	if err != nil {
		t.Fatalf("chairman FormCommittee: %v", err)
	}
	if committee.ChairmanID != env.chairman.ID {
		t.Fatalf("chairman = %d, want %d", committee.ChairmanID, env.chairman.ID)
	}
	if len(committee.Members) != 1 || committee.Members[0].TeacherID != env.member.ID {
		t.Fatalf("members = %+v, want just teacher %d", committee.Members, env.member.ID)
	}
}

func TestFormCommitteeDeanAllowed(t *testing.T) {
	env := newTestEnv(t)

	dean := env.addTeacher(t, "dean@obe.local")
	env.faculty.DeanID = &dean.ID
	if err := env.db.Save(env.faculty).Error; err != nil {
		t.Fatalf("assign dean: %v", err)
	}

	_, err := env.mod.FormCommittee(env.claimsFor(t, dean), FormCommitteeRequest{
		DepartmentID: env.department.ID,
		Session:      "2025-2026",
		Semester:     "6th",
		MemberIDs:    []uint{env.member.ID},
	})
	if err != nil {
		t.Fatalf("dean FormCommittee: %v", err)
	}
}

func TestCommitteeMembersRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	a := env.addTeacher(t, "a@obe.local")
	b := env.addTeacher(t, "b@obe.local")
	c := env.addTeacher(t, "c@obe.local")

	formed, err := env.mod.FormCommittee(env.claimsFor(t, env.chairman), FormCommitteeRequest{
		DepartmentID: env.department.ID,
		Session:      "2024-2025",
		Semester:     "I",
		MemberIDs:    []uint{a.ID, b.ID, c.ID},
	})
	if err != nil {
		t.Fatalf("FormCommittee: %v", err)
	}

	got, err := env.mod.GetCommittee(formed.ID)
	if err != nil {
		t.Fatalf("GetCommittee: %v", err)
	}
	if got.ChairmanID != env.chairman.ID {
		t.Fatalf("chairman = %d, want %d", got.ChairmanID, env.chairman.ID)
	}
	want := map[uint]bool{a.ID: true, b.ID: true, c.ID: true}
	if len(got.Members) != len(want) {
		t.Fatalf("members = %d, want %d", len(got.Members), len(want))
	}
	for _, m := range got.Members {
		if !want[m.TeacherID] {
			t.Fatalf("unexpected member %d", m.TeacherID)
		}
	}
}

func TestApproveByNonMember(t *testing.T) {
	env := newTestEnv(t)
	env.newCommittee(t)
	paper := env.newPaper(t)

	if _, err := env.mod.Submit(env.claimsFor(t, env.author), paper.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	_, err := env.mod.Approve(env.claimsFor(t, env.outsider), paper.ID)
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}

	got, err := env.examQ.FindByID(paper.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != model.StatusSubmitted {
		t.Fatalf("status = %q, want unchanged %q", got.Status, model.StatusSubmitted)
	}
}

func TestFormCommitteeUnknownMemberAtomic(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.mod.FormCommittee(env.claimsFor(t, env.chairman), FormCommitteeRequest{
		DepartmentID: env.department.ID,
		Session:      "2025-2026",
		Semester:     "6th",
		MemberIDs:    []uint{env.member.ID, 9999},
	})
	if !errors.Is(err, util.ErrTeacherNotFound) {
		t.Fatalf("err = %v, want ErrTeacherNotFound", err)
	}

	var count int64
	env.db.Model(&model.ModerationCommittee{}).Count(&count)
	if count != 0 {
		t.Fatalf("committees persisted = %d, want 0", count)
	}
}

func TestCapabilitiesDerivation(t *testing.T) {
	env := newTestEnv(t)

	caps, _, err := env.mod.Capabilities(env.claimsFor(t, env.chairman), env.department.ID)
	if err != nil {
		t.Fatalf("Capabilities: %v", err)
	}
	if !caps.IsChairman || caps.IsDean || caps.IsAdmin {
		t.Fatalf("chairman caps = %+v", caps)
	}

	caps, _, err = env.mod.Capabilities(env.claimsFor(t, env.author), env.department.ID)
	if err != nil {
		t.Fatalf("Capabilities: %v", err)
	}
	if caps.Any() {
		t.Fatalf("plain teacher caps = %+v, want none", caps)
	}

	caps, _, err = env.mod.Capabilities(env.adminClaims(t), env.department.ID)
	if err != nil {
		t.Fatalf("Capabilities: %v", err)
	}
	if !caps.IsAdmin {
		t.Fatalf("admin caps = %+v", caps)
	}
}

func TestDisbandCommitteeReleasesPapers(t *testing.T) {
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

	// a plain member cannot disband
	if err := env.mod.DisbandCommittee(moderator, committee.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("member disband err = %v, want ErrPermissionDenied", err)
	}

	if err := env.mod.DisbandCommittee(env.claimsFor(t, env.chairman), committee.ID); err != nil {
		t.Fatalf("chairman disband: %v", err)
	}

	got, err := env.examQ.FindByID(paper.ID)
	if err != nil {
		t.Fatalf("reload paper: %v", err)
	}
	if got.Status != model.StatusSubmitted {
		t.Fatalf("status after disband = %q, want %q", got.Status, model.StatusSubmitted)
	}
	if got.ModerationCommitteeID != nil {
		t.Fatalf("committee after disband = %v, want nil", got.ModerationCommitteeID)
	}
}

func TestQueueVisibility(t *testing.T) {
	env := newTestEnv(t)
	env.newCommittee(t)
	paper := env.newPaper(t)

	// drafts are invisible to moderators
	entries, err := env.mod.Queue(env.claimsFor(t, env.member))
	if err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("queue with draft = %d entries, want 0", len(entries))
	}

	if _, err := env.mod.Submit(env.claimsFor(t, env.author), paper.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	entries, err = env.mod.Queue(env.claimsFor(t, env.member))
	if err != nil {
		t.Fatalf("Queue: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != paper.ID {
		t.Fatalf("queue = %+v, want the submitted paper", entries)
	}
	if entries[0].CourseCode != "CSE-301" {
		t.Fatalf("course code = %q, want CSE-301", entries[0].CourseCode)
	}

	// a teacher with no committee sees nothing
	entries, err = env.mod.Queue(env.claimsFor(t, env.outsider))
	if err != nil {
		t.Fatalf("outsider Queue: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("outsider queue = %d entries, want 0", len(entries))
	}
}

func TestReviewItemVerdicts(t *testing.T) {
	env := newTestEnv(t)
	env.newCommittee(t)
	paper := env.newPaper(t)
	author := env.claimsFor(t, env.author)
	moderator := env.claimsFor(t, env.member)

	item, err := env.examQuestions.AddItem(author, paper.ID, ExamQuestionItemRequest{
		QuestionLabel: "1(a)",
		QuestionText:  "Define third normal form.",
		Marks:         5,
		BloomsLevel:   string(model.BloomRemember),
		Position:      1,
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	// no verdicts while the paper is a draft
	_, err = env.mod.ReviewItem(moderator, paper.ID, item.ID, ItemReviewRequest{IsSatisfactory: "yes"})
	if !errors.Is(err, util.ErrInvalidTransition) {
		t.Fatalf("draft review err = %v, want ErrInvalidTransition", err)
	}

	if _, err := env.mod.Submit(author, paper.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := env.mod.PickUp(moderator, paper.ID); err != nil {
		t.Fatalf("PickUp: %v", err)
	}

	got, err := env.mod.ReviewItem(moderator, paper.ID, item.ID, ItemReviewRequest{
		IsSatisfactory: "no",
		Comment:        "not aligned with the stated outcome",
	})
	if err != nil {
		t.Fatalf("ReviewItem: %v", err)
	}
	if got.IsSatisfactory == nil || *got.IsSatisfactory != model.SatisfactoryNo {
		t.Fatalf("verdict = %v, want no", got.IsSatisfactory)
	}
	if got.ModeratorComment == nil || *got.ModeratorComment == "" {
		t.Fatal("comment not stored")
	}

	// invalid verdict values are rejected
	if _, err := env.mod.ReviewItem(moderator, paper.ID, item.ID, ItemReviewRequest{IsSatisfactory: "maybe"}); err == nil {
		t.Fatal("invalid verdict accepted")
	}

	// verdicts stop once approved
	if _, err := env.mod.Approve(moderator, paper.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	_, err = env.mod.ReviewItem(moderator, paper.ID, item.ID, ItemReviewRequest{IsSatisfactory: "yes"})
	if !errors.Is(err, util.ErrPaperLocked) {
		t.Fatalf("post-approval review err = %v, want ErrPaperLocked", err)
	}
}

func TestDetailMarksMismatchAdvisory(t *testing.T) {
	env := newTestEnv(t)
	paper := env.newPaper(t)
	author := env.claimsFor(t, env.author)

	if _, err := env.examQuestions.AddItem(author, paper.ID, ExamQuestionItemRequest{
		QuestionLabel: "1",
		QuestionText:  "Explain indexing.",
		Marks:         30,
		BloomsLevel:   string(model.BloomUnderstand),
		Position:      1,
	}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	detail, err := env.mod.Detail(author, paper.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.ItemMarksTotal != 30 {
		t.Fatalf("ItemMarksTotal = %v, want 30", detail.ItemMarksTotal)
	}
	// declared total defaults to 70, so 30 is flagged
	if !detail.MarksMismatch {
		t.Fatal("MarksMismatch = false, want true")
	}

	if _, err := env.examQuestions.AddItem(author, paper.ID, ExamQuestionItemRequest{
		QuestionLabel: "2",
		QuestionText:  "Design a schema.",
		Marks:         40,
		BloomsLevel:   string(model.BloomCreate),
		Position:      2,
	}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	detail, err = env.mod.Detail(author, paper.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.MarksMismatch {
		t.Fatalf("MarksMismatch = true at total %v, want false", detail.ItemMarksTotal)
	}
	if len(detail.Items) != 2 || detail.Items[0].Position > detail.Items[1].Position {
		t.Fatalf("items not in position order: %+v", detail.Items)
	}
}

func TestDetailVisibility(t *testing.T) {
	env := newTestEnv(t)
	paper := env.newPaper(t)

	// an unrelated teacher cannot read another teacher's draft
	_, err := env.mod.Detail(env.claimsFor(t, env.outsider), paper.ID)
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("outsider Detail err = %v, want ErrPermissionDenied", err)
	}

	// admins can
	if _, err := env.mod.Detail(env.adminClaims(t), paper.ID); err != nil {
		t.Fatalf("admin Detail: %v", err)
	}
}
