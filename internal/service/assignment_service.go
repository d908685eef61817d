package service

import (
	"context"
	"errors"
	"mime/multipart"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	CourseRepo     *repository.CourseRepository
	TeacherRepo    *repository.TeacherRepository
	StudentRepo    *repository.StudentRepository
	Storage        *StorageService
	Logger         *zap.Logger
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	courseRepo *repository.CourseRepository,
	teacherRepo *repository.TeacherRepository,
	studentRepo *repository.StudentRepository,
	storage *StorageService,
	logger *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		CourseRepo:     courseRepo,
		TeacherRepo:    teacherRepo,
		StudentRepo:    studentRepo,
		Storage:        storage,
		Logger:         logger,
	}
}

type CreateAssignmentRequest struct {
	CourseID    uint      `json:"courseId" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
}

func (s *AssignmentService) Create(userID uint, req CreateAssignmentRequest) (*model.Assignment, error) {
	teacher, err := s.TeacherRepo.FindByUserID(userID)
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

	a := &model.Assignment{
		CourseID:    req.CourseID,
		TeacherID:   teacher.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if err := s.AssignmentRepo.Create(a); err != nil {
		return nil, err
	}
	s.Logger.Info("assignment created",
		zap.Uint("assignmentId", a.ID),
		zap.Uint("courseId", a.CourseID),
		zap.Uint("teacherId", teacher.ID))
	return a, nil
}

// AttachFile stores the assignment statement file and records its path.
func (s *AssignmentService) AttachFile(ctx context.Context, userID, assignmentID uint, file *multipart.FileHeader) (*model.Assignment, error) {
	a, err := s.ownedAssignment(userID, assignmentID)
	if err != nil {
		return nil, err
	}

	contentType := file.Header.Get("Content-Type")
	if !util.IsPDF(contentType) && !util.IsImage(contentType) {
		return nil, util.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := "assignments/" + uuid.New().String() + filepath.Ext(file.Filename)
	url, err := s.Storage.Upload(ctx, filename, src, file.Size, contentType)
	if err != nil {
		return nil, err
	}

	a.FilePath = url
	if err := s.AssignmentRepo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssignmentService) Get(id uint) (*model.Assignment, error) {
	a, err := s.AssignmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AssignmentService) ListByCourse(courseID uint) ([]model.Assignment, error) {
	return s.AssignmentRepo.ListByCourse(courseID)
}

// ListPending lists open, unsubmitted assignments for the calling student.
func (s *AssignmentService) ListPending(userID uint) ([]model.Assignment, error) {
	student, err := s.StudentRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return s.AssignmentRepo.ListPendingForStudent(student)
}

// Submit uploads a student's answer file and records the submission. A
// student submits each assignment at most once.
func (s *AssignmentService) Submit(ctx context.Context, userID, assignmentID uint, file *multipart.FileHeader) (*model.AssignmentSubmission, error) {
	student, err := s.StudentRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	if _, err := s.AssignmentRepo.FindByID(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}

	if _, err := s.AssignmentRepo.FindSubmission(assignmentID, student.ID); err == nil {
		return nil, util.ErrAlreadySubmitted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	contentType := file.Header.Get("Content-Type")
	if !util.IsPDF(contentType) && !util.IsImage(contentType) {
		return nil, util.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := "submissions/" + uuid.New().String() + filepath.Ext(file.Filename)
	url, err := s.Storage.Upload(ctx, filename, src, file.Size, contentType)
	if err != nil {
		return nil, err
	}

	sub := &model.AssignmentSubmission{
		AssignmentID: assignmentID,
		StudentID:    student.ID,
		FilePath:     url,
		SubmittedAt:  time.Now(),
	}
	if err := s.AssignmentRepo.CreateSubmission(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *AssignmentService) ListSubmissions(userID, assignmentID uint) ([]model.AssignmentSubmission, error) {
	if _, err := s.ownedAssignment(userID, assignmentID); err != nil {
		return nil, err
	}
	return s.AssignmentRepo.ListSubmissions(assignmentID)
}

type GradeSubmissionRequest struct {
	StudentID uint    `json:"studentId" binding:"required"`
	Marks     float64 `json:"marks" binding:"min=0"`
}

func (s *AssignmentService) Grade(userID, assignmentID uint, req GradeSubmissionRequest) (*model.AssignmentSubmission, error) {
	if _, err := s.ownedAssignment(userID, assignmentID); err != nil {
		return nil, err
	}
	sub, err := s.AssignmentRepo.FindSubmission(assignmentID, req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}
	sub.Marks = &req.Marks
	if err := s.AssignmentRepo.UpdateSubmission(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// ownedAssignment loads an assignment and checks that the caller is the
// teacher who set it.
func (s *AssignmentService) ownedAssignment(userID, assignmentID uint) (*model.Assignment, error) {
	teacher, err := s.TeacherRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPermissionDenied
		}
		return nil, err
	}
	a, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	if a.TeacherID != teacher.ID {
		return nil, util.ErrPermissionDenied
	}
	return a, nil
}
