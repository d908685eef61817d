package service

import (
	"errors"
	"fmt"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ExamMarkService struct {
	MarkRepo    *repository.ExamMarkRepository
	CourseRepo  *repository.CourseRepository
	StudentRepo *repository.StudentRepository
	TeacherRepo *repository.TeacherRepository
	Logger      *zap.Logger
}

func NewExamMarkService(
	markRepo *repository.ExamMarkRepository,
	courseRepo *repository.CourseRepository,
	studentRepo *repository.StudentRepository,
	teacherRepo *repository.TeacherRepository,
	logger *zap.Logger,
) *ExamMarkService {
	return &ExamMarkService{
		MarkRepo:    markRepo,
		CourseRepo:  courseRepo,
		StudentRepo: studentRepo,
		TeacherRepo: teacherRepo,
		Logger:      logger,
	}
}

type MarkEntry struct {
	StudentID uint    `json:"studentId" binding:"required"`
	Marks     float64 `json:"marks" binding:"min=0"`
}

type RecordMarksRequest struct {
	CourseID uint           `json:"courseId" binding:"required"`
	ExamType model.ExamType `json:"examType" binding:"required"`
	OutOf    float64        `json:"outOf" binding:"required,gt=0"`
	Entries  []MarkEntry    `json:"entries" binding:"required"`
}

// Record validates every entry, then persists the batch in one transaction.
func (s *ExamMarkService) Record(userID uint, req RecordMarksRequest) ([]model.ExamMark, error) {
	if len(req.Entries) == 0 {
		return nil, util.ErrEmptyBatch
	}
	if !req.ExamType.Valid() {
		return nil, fmt.Errorf("invalid exam type %q", req.ExamType)
	}

	if _, err := s.TeacherRepo.FindByUserID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPermissionDenied
		}
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	seen := make(map[uint]bool, len(req.Entries))
	marks := make([]model.ExamMark, 0, len(req.Entries))
	for _, e := range req.Entries {
		if seen[e.StudentID] {
			return nil, fmt.Errorf("duplicate student %d in batch", e.StudentID)
		}
		seen[e.StudentID] = true

		if e.Marks < 0 || e.Marks > req.OutOf {
			return nil, fmt.Errorf("marks %.2f for student %d out of range [0, %.2f]",
				e.Marks, e.StudentID, req.OutOf)
		}

		student, err := s.StudentRepo.FindByID(e.StudentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("student %d: %w", e.StudentID, util.ErrStudentNotFound)
			}
			return nil, err
		}
		if student.ProgramID != course.ProgramID {
			return nil, fmt.Errorf("student %d is not enrolled in this program: %w",
				e.StudentID, util.ErrPermissionDenied)
		}

		marks = append(marks, model.ExamMark{
			CourseID:  req.CourseID,
			StudentID: e.StudentID,
			ExamType:  req.ExamType,
			Marks:     e.Marks,
			OutOf:     req.OutOf,
		})
	}

	if err := s.MarkRepo.CreateBatch(marks); err != nil {
		return nil, err
	}
	s.Logger.Info("exam marks recorded",
		zap.Uint("courseId", req.CourseID),
		zap.String("examType", string(req.ExamType)),
		zap.Int("count", len(marks)))
	return marks, nil
}

func (s *ExamMarkService) ListByCourse(courseID uint, examType model.ExamType) ([]model.ExamMark, error) {
	if examType != "" && !examType.Valid() {
		return nil, fmt.Errorf("invalid exam type %q", examType)
	}
	return s.MarkRepo.ListByCourse(courseID, examType)
}

// MyMarks lists the calling student's marks across courses.
func (s *ExamMarkService) MyMarks(userID uint) ([]model.ExamMark, error) {
	student, err := s.StudentRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return s.MarkRepo.ListByStudent(student.ID)
}

func (s *ExamMarkService) Totals(courseID uint) ([]repository.MarkTotal, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.MarkRepo.TotalsByCourse(courseID)
}
