package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"

	"gorm.io/gorm"
)

// PeopleService manages teacher and student profiles layered over user
// accounts.
type PeopleService struct {
	UserRepo       *repository.UserRepository
	TeacherRepo    *repository.TeacherRepository
	StudentRepo    *repository.StudentRepository
	DepartmentRepo *repository.DepartmentRepository
	ProgramRepo    *repository.ProgramRepository
}

func NewPeopleService(
	userRepo *repository.UserRepository,
	teacherRepo *repository.TeacherRepository,
	studentRepo *repository.StudentRepository,
	departmentRepo *repository.DepartmentRepository,
	programRepo *repository.ProgramRepository,
) *PeopleService {
	return &PeopleService{
		UserRepo:       userRepo,
		TeacherRepo:    teacherRepo,
		StudentRepo:    studentRepo,
		DepartmentRepo: departmentRepo,
		ProgramRepo:    programRepo,
	}
}

type TeacherProfileRequest struct {
	UserID       uint   `json:"userId" binding:"required"`
	DepartmentID uint   `json:"departmentId" binding:"required"`
	Designation  string `json:"designation"`
}

func (s *PeopleService) CreateTeacher(req TeacherProfileRequest) (*model.Teacher, error) {
	user, err := s.UserRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if user.Role != model.RoleTeacher && user.Role != model.RoleAdmin {
		return nil, util.ErrPermissionDenied
	}

	if _, err := s.DepartmentRepo.FindByID(req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}

	t := &model.Teacher{
		UserID:       req.UserID,
		DepartmentID: req.DepartmentID,
		Designation:  req.Designation,
	}
	if err := s.TeacherRepo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *PeopleService) GetTeacher(id uint) (*model.Teacher, error) {
	t, err := s.TeacherRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTeacherNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *PeopleService) ListTeachers(departmentID uint) ([]model.Teacher, error) {
	return s.TeacherRepo.ListByDepartment(departmentID)
}

type StudentProfileRequest struct {
	UserID         uint   `json:"userId" binding:"required"`
	ProgramID      uint   `json:"programId" binding:"required"`
	RegistrationNo string `json:"registrationNo" binding:"required"`
	Session        string `json:"session"`
	Semester       string `json:"semester"`
}

func (s *PeopleService) CreateStudent(req StudentProfileRequest) (*model.Student, error) {
	user, err := s.UserRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if user.Role != model.RoleStudent {
		return nil, util.ErrPermissionDenied
	}

	if _, err := s.ProgramRepo.FindByID(req.ProgramID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProgramNotFound
		}
		return nil, err
	}

	st := &model.Student{
		UserID:         req.UserID,
		ProgramID:      req.ProgramID,
		RegistrationNo: req.RegistrationNo,
		Session:        req.Session,
		Semester:       req.Semester,
	}
	if err := s.StudentRepo.Create(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *PeopleService) GetStudent(id uint) (*model.Student, error) {
	st, err := s.StudentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *PeopleService) ListStudents(programID uint, page, limit int) ([]model.Student, int64, error) {
	return s.StudentRepo.ListByProgram(programID, page, limit)
}

// StudentForUser resolves the student profile behind a token.
func (s *PeopleService) StudentForUser(userID uint) (*model.Student, error) {
	st, err := s.StudentRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return st, nil
}

// TeacherForUser resolves the teacher profile behind a token.
func (s *PeopleService) TeacherForUser(userID uint) (*model.Teacher, error) {
	t, err := s.TeacherRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTeacherNotFound
		}
		return nil, err
	}
	return t, nil
}
