package service

import (
	"errors"
	"fmt"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AttendanceService struct {
	AttendanceRepo *repository.AttendanceRepository
	CourseRepo     *repository.CourseRepository
	StudentRepo    *repository.StudentRepository
	TeacherRepo    *repository.TeacherRepository
	Logger         *zap.Logger
}

func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	courseRepo *repository.CourseRepository,
	studentRepo *repository.StudentRepository,
	teacherRepo *repository.TeacherRepository,
	logger *zap.Logger,
) *AttendanceService {
	return &AttendanceService{
		AttendanceRepo: attendanceRepo,
		CourseRepo:     courseRepo,
		StudentRepo:    studentRepo,
		TeacherRepo:    teacherRepo,
		Logger:         logger,
	}
}

type AttendanceEntry struct {
	StudentID uint `json:"studentId" binding:"required"`
	Present   bool `json:"present"`
}

type RecordAttendanceRequest struct {
	CourseID uint              `json:"courseId" binding:"required"`
	Date     string            `json:"date" binding:"required"`
	Entries  []AttendanceEntry `json:"entries" binding:"required"`
}

// Record validates the whole batch first, then writes every row inside one
// transaction. A single bad entry rejects the entire batch.
func (s *AttendanceService) Record(userID uint, req RecordAttendanceRequest) ([]model.AttendanceRecord, error) {
	if len(req.Entries) == 0 {
		return nil, util.ErrEmptyBatch
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

	date, err := time.Parse(util.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	seen := make(map[uint]bool, len(req.Entries))
	records := make([]model.AttendanceRecord, 0, len(req.Entries))
	for _, e := range req.Entries {
		if seen[e.StudentID] {
			return nil, fmt.Errorf("duplicate student %d in batch", e.StudentID)
		}
		seen[e.StudentID] = true

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

		records = append(records, model.AttendanceRecord{
			CourseID:  req.CourseID,
			StudentID: e.StudentID,
			Date:      date,
			Present:   e.Present,
		})
	}

	if err := s.AttendanceRepo.CreateBatch(records); err != nil {
		return nil, err
	}
	s.Logger.Info("attendance recorded",
		zap.Uint("courseId", req.CourseID),
		zap.String("date", req.Date),
		zap.Int("count", len(records)))
	return records, nil
}

func (s *AttendanceService) ListByDate(courseID uint, date string) ([]model.AttendanceRecord, error) {
	d, err := time.Parse(util.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return s.AttendanceRepo.ListByCourseAndDate(courseID, d)
}

func (s *AttendanceService) Summary(courseID uint) ([]repository.AttendanceSummary, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.AttendanceRepo.SummaryByCourse(courseID)
}

// MySummary is the student-facing view of their own attendance in a course.
func (s *AttendanceService) MySummary(userID, courseID uint) (*repository.AttendanceSummary, error) {
	student, err := s.StudentRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return s.AttendanceRepo.SummaryForStudent(courseID, student.ID)
}
