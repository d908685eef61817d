package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"

	"gorm.io/gorm"
)

// ExamQuestionService covers authoring: a course teacher drafting a paper
// and its ordered items. Workflow transitions live in ModerationService.
type ExamQuestionService struct {
	ExamRepo    *repository.ExamQuestionRepository
	CourseRepo  *repository.CourseRepository
	TeacherRepo *repository.TeacherRepository
	OutcomeRepo *repository.OutcomeRepository
}

func NewExamQuestionService(
	examRepo *repository.ExamQuestionRepository,
	courseRepo *repository.CourseRepository,
	teacherRepo *repository.TeacherRepository,
	outcomeRepo *repository.OutcomeRepository,
) *ExamQuestionService {
	return &ExamQuestionService{
		ExamRepo:    examRepo,
		CourseRepo:  courseRepo,
		TeacherRepo: teacherRepo,
		OutcomeRepo: outcomeRepo,
	}
}

type CreateExamQuestionRequest struct {
	CourseID   uint   `json:"courseId" binding:"required"`
	Session    string `json:"session" binding:"required"`
	Semester   string `json:"semester" binding:"required"`
	TotalMarks int    `json:"totalMarks"`
	Duration   string `json:"duration"`
}

func (s *ExamQuestionService) Create(claims *util.Claims, req CreateExamQuestionRequest) (*model.ExamQuestion, error) {
	teacher, err := s.TeacherRepo.FindByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPermissionDenied
		}
		return nil, err
	}

	if _, err := s.CourseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if req.TotalMarks <= 0 {
		req.TotalMarks = util.DefaultExamTotalMarks
	}
	if req.Duration == "" {
		req.Duration = util.DefaultExamDuration
	}

	q := &model.ExamQuestion{
		CourseID:   req.CourseID,
		TeacherID:  teacher.ID,
		Session:    req.Session,
		Semester:   req.Semester,
		TotalMarks: req.TotalMarks,
		Duration:   req.Duration,
		Status:     model.StatusDraft,
	}
	if err := s.ExamRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// ownedEditable loads a paper and checks the actor owns it and that it is
// still editable. Approved papers are locked server side, not just hidden
// in the UI.
func (s *ExamQuestionService) ownedEditable(claims *util.Claims, id uint) (*model.ExamQuestion, error) {
	q, err := s.ExamRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamQuestionNotFound
		}
		return nil, err
	}

	teacher, err := s.TeacherRepo.FindByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPermissionDenied
		}
		return nil, err
	}
	if q.TeacherID != teacher.ID {
		return nil, util.ErrPermissionDenied
	}

	if q.Status == model.StatusApproved {
		return nil, util.ErrPaperLocked
	}
	return q, nil
}

type UpdateExamQuestionRequest struct {
	Session    string `json:"session"`
	Semester   string `json:"semester"`
	TotalMarks int    `json:"totalMarks"`
	Duration   string `json:"duration"`
}

func (s *ExamQuestionService) Update(claims *util.Claims, id uint, req UpdateExamQuestionRequest) (*model.ExamQuestion, error) {
	q, err := s.ownedEditable(claims, id)
	if err != nil {
		return nil, err
	}

	if req.Session != "" {
		q.Session = req.Session
	}
	if req.Semester != "" {
		q.Semester = req.Semester
	}
	if req.TotalMarks > 0 {
		q.TotalMarks = req.TotalMarks
	}
	if req.Duration != "" {
		q.Duration = req.Duration
	}
	if err := s.ExamRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *ExamQuestionService) ListMine(claims *util.Claims) ([]model.ExamQuestion, error) {
	teacher, err := s.TeacherRepo.FindByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPermissionDenied
		}
		return nil, err
	}
	return s.ExamRepo.ListByTeacher(teacher.ID)
}

type ExamQuestionItemRequest struct {
	CLOID         *uint   `json:"cloId"`
	QuestionLabel string  `json:"questionLabel" binding:"required"`
	QuestionText  string  `json:"questionText" binding:"required"`
	Marks         float64 `json:"marks" binding:"required"`
	BloomsLevel   string  `json:"bloomsLevel" binding:"required"`
	Position      int     `json:"position"`
}

func (s *ExamQuestionService) AddItem(claims *util.Claims, paperID uint, req ExamQuestionItemRequest) (*model.ExamQuestionItem, error) {
	q, err := s.ownedEditable(claims, paperID)
	if err != nil {
		return nil, err
	}

	level := model.BloomsLevel(req.BloomsLevel)
	if !level.Valid() {
		return nil, errors.New("invalid blooms taxonomy level: " + req.BloomsLevel)
	}

	if req.CLOID != nil {
		if _, err := s.OutcomeRepo.FindCLOByID(*req.CLOID); err != nil {
			return nil, util.ErrCLONotFound
		}
	}

	item := &model.ExamQuestionItem{
		ExamQuestionID: q.ID,
		CLOID:          req.CLOID,
		QuestionLabel:  req.QuestionLabel,
		QuestionText:   req.QuestionText,
		Marks:          req.Marks,
		BloomsLevel:    level,
		Position:       req.Position,
	}
	if err := s.ExamRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ExamQuestionService) UpdateItem(claims *util.Claims, paperID, itemID uint, req ExamQuestionItemRequest) (*model.ExamQuestionItem, error) {
	q, err := s.ownedEditable(claims, paperID)
	if err != nil {
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

	level := model.BloomsLevel(req.BloomsLevel)
	if !level.Valid() {
		return nil, errors.New("invalid blooms taxonomy level: " + req.BloomsLevel)
	}

	item.CLOID = req.CLOID
	item.QuestionLabel = req.QuestionLabel
	item.QuestionText = req.QuestionText
	item.Marks = req.Marks
	item.BloomsLevel = level
	item.Position = req.Position
	if err := s.ExamRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ExamQuestionService) DeleteItem(claims *util.Claims, paperID, itemID uint) error {
	q, err := s.ownedEditable(claims, paperID)
	if err != nil {
		return err
	}

	item, err := s.ExamRepo.FindItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrExamQuestionNotFound
		}
		return err
	}
	if item.ExamQuestionID != q.ID {
		return util.ErrExamQuestionNotFound
	}
	return s.ExamRepo.DeleteItem(itemID)
}
