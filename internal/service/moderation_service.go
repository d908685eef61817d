package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"
	"obe_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ModerationService owns committee formation and the exam paper workflow
// state machine. All status writes go through the repository's CAS update so
// a concurrent moderator surfaces as a conflict instead of a lost write.
type ModerationService struct {
	ExamRepo       *repository.ExamQuestionRepository
	ModRepo        *repository.ModerationRepository
	TeacherRepo    *repository.TeacherRepository
	DepartmentRepo *repository.DepartmentRepository
	FacultyRepo    *repository.FacultyRepository
	CourseRepo     *repository.CourseRepository
}

func NewModerationService(
	examRepo *repository.ExamQuestionRepository,
	modRepo *repository.ModerationRepository,
	teacherRepo *repository.TeacherRepository,
	departmentRepo *repository.DepartmentRepository,
	facultyRepo *repository.FacultyRepository,
	courseRepo *repository.CourseRepository,
) *ModerationService {
	return &ModerationService{
		ExamRepo:       examRepo,
		ModRepo:        modRepo,
		TeacherRepo:    teacherRepo,
		DepartmentRepo: departmentRepo,
		FacultyRepo:    facultyRepo,
		CourseRepo:     courseRepo,
	}
}

// Capability is the explicit authorization set for one user against one
// department, derived once per request instead of re-queried ad hoc.
type Capability struct {
	IsChairman bool `json:"isChairman"`
	IsDean     bool `json:"isDean"`
	IsAdmin    bool `json:"isAdmin"`
}

func (c Capability) Any() bool {
	return c.IsChairman || c.IsDean || c.IsAdmin
}

// Capabilities derives the capability set of the acting user for the given
// department. Chairman and dean are derived facts read off the department
// and faculty rows; admin comes from the token role.
func (s *ModerationService) Capabilities(claims *util.Claims, departmentID uint) (Capability, *model.Teacher, error) {
	caps := Capability{IsAdmin: claims.Role == model.RoleAdmin}

	teacher, err := s.TeacherRepo.FindByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return caps, nil, nil
		}
		return Capability{}, nil, err
	}

	dept, err := s.DepartmentRepo.FindByID(departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Capability{}, nil, util.ErrDepartmentNotFound
		}
		return Capability{}, nil, err
	}

	if dept.ChairmanID != nil && *dept.ChairmanID == teacher.ID {
		caps.IsChairman = true
	}

	faculty, err := s.FacultyRepo.FindByID(dept.FacultyID)
	if err == nil && faculty.DeanID != nil && *faculty.DeanID == teacher.ID {
		caps.IsDean = true
	}

	return caps, teacher, nil
}

type FormCommitteeRequest struct {
	DepartmentID uint   `json:"departmentId" binding:"required"`
	Session      string `json:"session" binding:"required"`
	Semester     string `json:"semester" binding:"required"`
	MemberIDs    []uint `json:"memberIds" binding:"required"`
}

// FormCommittee creates a moderation committee with the acting teacher as
// chairman. The committee and all member rows persist in one transaction;
// any failure leaves nothing behind.
func (s *ModerationService) FormCommittee(claims *util.Claims, req FormCommitteeRequest) (*model.ModerationCommittee, error) {
	if _, err := s.DepartmentRepo.FindByID(req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}

	caps, teacher, err := s.Capabilities(claims, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if !caps.Any() {
		return nil, util.ErrPermissionDenied
	}
	if teacher == nil {
		// an admin without a teacher profile cannot be recorded as chairman
		return nil, util.ErrTeacherNotFound
	}

	memberIDs := dedupeIDs(req.MemberIDs)
	count, err := s.TeacherRepo.CountByIDs(memberIDs)
	if err != nil {
		return nil, err
	}
	if count != int64(len(memberIDs)) {
		return nil, util.ErrTeacherNotFound
	}

	committee := &model.ModerationCommittee{
		DepartmentID: req.DepartmentID,
		Session:      req.Session,
		Semester:     req.Semester,
		ChairmanID:   teacher.ID,
	}
	if err := s.ModRepo.CreateCommittee(committee, memberIDs); err != nil {
		return nil, err
	}

	logger.Log.Info("moderation committee formed",
		zap.Uint("committee", committee.ID),
		zap.Uint("department", req.DepartmentID),
		zap.Uint("chairman", teacher.ID),
	)

	return s.ModRepo.FindCommitteeByID(committee.ID)
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	var out []uint
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (s *ModerationService) GetCommittee(id uint) (*model.ModerationCommittee, error) {
	c, err := s.ModRepo.FindCommitteeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCommitteeNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *ModerationService) ListCommittees(departmentID uint) ([]model.ModerationCommittee, error) {
	return s.ModRepo.ListCommitteesByDepartment(departmentID)
}

// DisbandCommittee releases assigned papers back to the Submitted queue and
// removes the committee. Admin or the committee chairman only.
func (s *ModerationService) DisbandCommittee(claims *util.Claims, id uint) error {
	committee, err := s.GetCommittee(id)
	if err != nil {
		return err
	}

	if claims.Role != model.RoleAdmin {
		teacher, err := s.TeacherRepo.FindByUserID(claims.UserID)
		if err != nil || teacher.ID != committee.ChairmanID {
			return util.ErrPermissionDenied
		}
	}

	return s.ModRepo.DeleteCommittee(id)
}

// actingTeacher resolves the teacher profile behind the token.
func (s *ModerationService) actingTeacher(claims *util.Claims) (*model.Teacher, error) {
	teacher, err := s.TeacherRepo.FindByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPermissionDenied
		}
		return nil, err
	}
	return teacher, nil
}

func (s *ModerationService) paper(id uint) (*model.ExamQuestion, error) {
	q, err := s.ExamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

// committeeForActor resolves which committee entitles the teacher to act on
// the paper. For an assigned paper that is the assigned committee; for an
// unassigned paper it is any committee of the course's department the
// teacher sits on (implicit pickup).
func (s *ModerationService) committeeForActor(q *model.ExamQuestion, teacher *model.Teacher) (uint, error) {
	if q.ModerationCommitteeID != nil {
		ok, err := s.ModRepo.IsActor(*q.ModerationCommitteeID, teacher.ID)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, util.ErrPermissionDenied
		}
		return *q.ModerationCommitteeID, nil
	}

	course, err := s.CourseRepo.FindByID(q.CourseID)
	if err != nil {
		return 0, err
	}
	if course.Program == nil {
		return 0, util.ErrPermissionDenied
	}

	committees, err := s.ModRepo.ListCommitteesByDepartment(course.Program.DepartmentID)
	if err != nil {
		return 0, err
	}
	for _, c := range committees {
		if c.ChairmanID == teacher.ID {
			return c.ID, nil
		}
		for _, m := range c.Members {
			if m.TeacherID == teacher.ID {
				return c.ID, nil
			}
		}
	}
	return 0, util.ErrPermissionDenied
}

// Submit moves an owner's Draft paper into the department moderation queue.
func (s *ModerationService) Submit(claims *util.Claims, id uint) (*model.ExamQuestion, error) {
	q, err := s.paper(id)
	if err != nil {
		return nil, err
	}

	teacher, err := s.actingTeacher(claims)
	if err != nil {
		return nil, err
	}
	if q.TeacherID != teacher.ID {
		return nil, util.ErrPermissionDenied
	}

	if q.Status != model.StatusDraft {
		return nil, util.ErrInvalidTransition
	}

	err = s.ExamRepo.UpdateStatusCAS(q.ID, q.Revision, map[string]interface{}{
		"status": model.StatusSubmitted,
	})
	if err != nil {
		return nil, err
	}
	return s.paper(id)
}

// PickUp assigns the paper to the acting moderator's committee and starts
// moderation.
func (s *ModerationService) PickUp(claims *util.Claims, id uint) (*model.ExamQuestion, error) {
	q, err := s.paper(id)
	if err != nil {
		return nil, err
	}
	if q.Status != model.StatusSubmitted {
		return nil, util.ErrInvalidTransition
	}

	teacher, err := s.actingTeacher(claims)
	if err != nil {
		return nil, err
	}
	committeeID, err := s.committeeForActor(q, teacher)
	if err != nil {
		return nil, err
	}

	err = s.ExamRepo.UpdateStatusCAS(q.ID, q.Revision, map[string]interface{}{
		"status":                  model.StatusModerating,
		"moderation_committee_id": committeeID,
	})
	if err != nil {
		return nil, err
	}
	return s.paper(id)
}

// RequestRevision records moderator feedback and returns the paper to the
// author's queue. The latest feedback overwrites any prior note; history is
// not kept.
func (s *ModerationService) RequestRevision(claims *util.Claims, id uint, feedback string) (*model.ExamQuestion, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return nil, util.ErrEmptyFeedback
	}

	q, err := s.paper(id)
	if err != nil {
		return nil, err
	}
	switch q.Status {
	case model.StatusApproved:
		return nil, util.ErrAlreadyApproved
	case model.StatusDraft:
		return nil, util.ErrInvalidTransition
	}

	teacher, err := s.actingTeacher(claims)
	if err != nil {
		return nil, err
	}
	committeeID, err := s.committeeForActor(q, teacher)
	if err != nil {
		return nil, err
	}

	err = s.ExamRepo.UpdateStatusCAS(q.ID, q.Revision, map[string]interface{}{
		"status":                  model.StatusRevisionNeeded,
		"moderator_feedback":      feedback,
		"moderation_committee_id": committeeID,
	})
	if err != nil {
		return nil, err
	}
	return s.paper(id)
}

// Resubmit returns a revised paper to the moderation queue. The previous
// feedback stays visible until the next revision or approval.
func (s *ModerationService) Resubmit(claims *util.Claims, id uint) (*model.ExamQuestion, error) {
	q, err := s.paper(id)
	if err != nil {
		return nil, err
	}

	teacher, err := s.actingTeacher(claims)
	if err != nil {
		return nil, err
	}
	if q.TeacherID != teacher.ID {
		return nil, util.ErrPermissionDenied
	}

	if q.Status != model.StatusRevisionNeeded {
		return nil, util.ErrInvalidTransition
	}

	err = s.ExamRepo.UpdateStatusCAS(q.ID, q.Revision, map[string]interface{}{
		"status": model.StatusSubmitted,
	})
	if err != nil {
		return nil, err
	}
	return s.paper(id)
}

// Approve locks the paper. Approving an already approved paper is rejected
// rather than treated as a no-op, so double submissions are visible to the
// caller. There is no completeness gate on item annotations.
func (s *ModerationService) Approve(claims *util.Claims, id uint) (*model.ExamQuestion, error) {
	q, err := s.paper(id)
	if err != nil {
		return nil, err
	}
	switch q.Status {
	case model.StatusApproved:
		return nil, util.ErrAlreadyApproved
	case model.StatusDraft:
		return nil, util.ErrInvalidTransition
	}

	teacher, err := s.actingTeacher(claims)
	if err != nil {
		return nil, err
	}
	committeeID, err := s.committeeForActor(q, teacher)
	if err != nil {
		return nil, err
	}

	err = s.ExamRepo.UpdateStatusCAS(q.ID, q.Revision, map[string]interface{}{
		"status":                  model.StatusApproved,
		"moderation_committee_id": committeeID,
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("exam question approved",
		zap.Uint("examQuestion", q.ID),
		zap.Uint("committee", committeeID),
		zap.Uint("moderator", teacher.ID),
	)
	return s.paper(id)
}

type ItemReviewRequest struct {
	IsSatisfactory string `json:"isSatisfactory" binding:"required"`
	Comment        string `json:"comment"`
}

// ReviewItem records a moderator's per-item verdict. Item annotation is
// independent of the paper's status transitions but stops once the paper is
// approved.
func (s *ModerationService) ReviewItem(claims *util.Claims, paperID, itemID uint, req ItemReviewRequest) (*model.ExamQuestionItem, error) {
	q, err := s.paper(paperID)
	if err != nil {
		return nil, err
	}
	if q.Status == model.StatusApproved {
		return nil, util.ErrPaperLocked
	}
	if q.Status == model.StatusDraft {
		return nil, util.ErrInvalidTransition
	}

	verdict := model.Satisfactory(req.IsSatisfactory)
	if !verdict.Valid() {
		return nil, util.ErrInvalidTransition
	}

	teacher, err := s.actingTeacher(claims)
	if err != nil {
		return nil, err
	}
	if _, err := s.committeeForActor(q, teacher); err != nil {
		return nil, err
	}

	item, err := s.ExamRepo.FindItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamQuestionNotFound
		}
		return nil, err
	}
	if item.ExamQuestionID != q.ID {
		return nil, util.ErrExamQuestionNotFound
	}

	item.IsSatisfactory = &verdict
	if req.Comment != "" {
		comment := req.Comment
		item.ModeratorComment = &comment
	}
	if err := s.ExamRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ModerationQueueEntry is one row in the moderator's queue listing.
type ModerationQueueEntry struct {
	ID          uint                     `json:"id"`
	CourseCode  string                   `json:"courseCode"`
	CourseTitle string                   `json:"courseTitle"`
	TeacherName string                   `json:"teacherName"`
	Session     string                   `json:"session"`
	Semester    string                   `json:"semester"`
	Status      model.ExamQuestionStatus `json:"status"`
	CommitteeID *uint                    `json:"committeeId,omitempty"`
}

// Queue lists papers visible to the acting moderator: papers assigned to
// their committees plus unassigned submitted papers from the departments
// those committees belong to.
func (s *ModerationService) Queue(claims *util.Claims) ([]ModerationQueueEntry, error) {
	teacher, err := s.actingTeacher(claims)
	if err != nil {
		return nil, err
	}

	committeeIDs, err := s.ModRepo.CommitteesForTeacher(teacher.ID)
	if err != nil {
		return nil, err
	}
	deptIDs, err := s.ModRepo.DepartmentsForTeacher(teacher.ID)
	if err != nil {
		return nil, err
	}

	papers, err := s.ExamRepo.ListForModeration(committeeIDs, deptIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]ModerationQueueEntry, 0, len(papers))
	for _, q := range papers {
		entry := ModerationQueueEntry{
			ID:          q.ID,
			Session:     q.Session,
			Semester:    q.Semester,
			Status:      q.Status,
			CommitteeID: q.ModerationCommitteeID,
		}
		if q.Course != nil {
			entry.CourseCode = q.Course.Code
			entry.CourseTitle = q.Course.Title
		}
		if q.Teacher != nil && q.Teacher.User != nil {
			entry.TeacherName = q.Teacher.User.Name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// PaperDetail is the full moderation view of one paper, including the
// advisory check of item marks against the declared total.
type PaperDetail struct {
	*model.ExamQuestion
	ItemMarksTotal float64 `json:"itemMarksTotal"`
	MarksMismatch  bool    `json:"marksMismatch"`
}

// Detail returns the paper with items, committee and feedback. Visible to
// the owner, admins, and committee actors.
func (s *ModerationService) Detail(claims *util.Claims, id uint) (*PaperDetail, error) {
	q, err := s.ExamRepo.FindDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamQuestionNotFound
		}
		return nil, err
	}

	if claims.Role != model.RoleAdmin {
		teacher, err := s.actingTeacher(claims)
		if err != nil {
			return nil, err
		}
		if q.TeacherID != teacher.ID {
			if _, err := s.committeeForActor(q, teacher); err != nil {
				return nil, err
			}
		}
	}

	total, err := s.ExamRepo.SumItemMarks(q.ID)
	if err != nil {
		return nil, err
	}

	return &PaperDetail{
		ExamQuestion:   q,
		ItemMarksTotal: total,
		MarksMismatch:  total != float64(q.TotalMarks),
	}, nil
}
