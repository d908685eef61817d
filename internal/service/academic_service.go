package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"

	"gorm.io/gorm"
)

// AcademicService covers the Faculty -> Department -> Program -> Course
// hierarchy. Plain CRUD with referential checks; deletes cascade to owned
// children through the schema constraints.
type AcademicService struct {
	FacultyRepo    *repository.FacultyRepository
	DepartmentRepo *repository.DepartmentRepository
	ProgramRepo    *repository.ProgramRepository
	CourseRepo     *repository.CourseRepository
	TeacherRepo    *repository.TeacherRepository
}

func NewAcademicService(
	facultyRepo *repository.FacultyRepository,
	departmentRepo *repository.DepartmentRepository,
	programRepo *repository.ProgramRepository,
	courseRepo *repository.CourseRepository,
	teacherRepo *repository.TeacherRepository,
) *AcademicService {
	return &AcademicService{
		FacultyRepo:    facultyRepo,
		DepartmentRepo: departmentRepo,
		ProgramRepo:    programRepo,
		CourseRepo:     courseRepo,
		TeacherRepo:    teacherRepo,
	}
}

type FacultyRequest struct {
	Name   string `json:"name" binding:"required"`
	DeanID *uint  `json:"deanId"`
}

func (s *AcademicService) CreateFaculty(req FacultyRequest) (*model.Faculty, error) {
	if req.DeanID != nil {
		if _, err := s.TeacherRepo.FindByID(*req.DeanID); err != nil {
			return nil, util.ErrTeacherNotFound
		}
	}
	f := &model.Faculty{Name: req.Name, DeanID: req.DeanID}
	if err := s.FacultyRepo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *AcademicService) GetFaculty(id uint) (*model.Faculty, error) {
	f, err := s.FacultyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrFacultyNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *AcademicService) ListFaculties() ([]model.Faculty, error) {
	return s.FacultyRepo.List()
}

func (s *AcademicService) UpdateFaculty(id uint, req FacultyRequest) (*model.Faculty, error) {
	f, err := s.GetFaculty(id)
	if err != nil {
		return nil, err
	}
	if req.DeanID != nil {
		if _, err := s.TeacherRepo.FindByID(*req.DeanID); err != nil {
			return nil, util.ErrTeacherNotFound
		}
	}
	f.Name = req.Name
	f.DeanID = req.DeanID
	if err := s.FacultyRepo.Update(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *AcademicService) DeleteFaculty(id uint) error {
	if _, err := s.GetFaculty(id); err != nil {
		return err
	}
	return s.FacultyRepo.Delete(id)
}

type DepartmentRequest struct {
	FacultyID  uint   `json:"facultyId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	ChairmanID *uint  `json:"chairmanId"`
}

func (s *AcademicService) CreateDepartment(req DepartmentRequest) (*model.Department, error) {
	if _, err := s.GetFaculty(req.FacultyID); err != nil {
		return nil, err
	}
	if req.ChairmanID != nil {
		if _, err := s.TeacherRepo.FindByID(*req.ChairmanID); err != nil {
			return nil, util.ErrTeacherNotFound
		}
	}
	d := &model.Department{FacultyID: req.FacultyID, Name: req.Name, ChairmanID: req.ChairmanID}
	if err := s.DepartmentRepo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *AcademicService) GetDepartment(id uint) (*model.Department, error) {
	d, err := s.DepartmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *AcademicService) ListDepartments(facultyID uint) ([]model.Department, error) {
	return s.DepartmentRepo.ListByFaculty(facultyID)
}

func (s *AcademicService) UpdateDepartment(id uint, req DepartmentRequest) (*model.Department, error) {
	d, err := s.GetDepartment(id)
	if err != nil {
		return nil, err
	}
	if req.ChairmanID != nil {
		if _, err := s.TeacherRepo.FindByID(*req.ChairmanID); err != nil {
			return nil, util.ErrTeacherNotFound
		}
	}
	d.Name = req.Name
	d.ChairmanID = req.ChairmanID
	if err := s.DepartmentRepo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *AcademicService) DeleteDepartment(id uint) error {
	if _, err := s.GetDepartment(id); err != nil {
		return err
	}
	return s.DepartmentRepo.Delete(id)
}

type ProgramRequest struct {
	DepartmentID uint   `json:"departmentId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	DegreeLevel  string `json:"degreeLevel"`
}

func (s *AcademicService) CreateProgram(req ProgramRequest) (*model.Program, error) {
	if _, err := s.GetDepartment(req.DepartmentID); err != nil {
		return nil, err
	}
	p := &model.Program{DepartmentID: req.DepartmentID, Name: req.Name, DegreeLevel: req.DegreeLevel}
	if err := s.ProgramRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *AcademicService) GetProgram(id uint) (*model.Program, error) {
	p, err := s.ProgramRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProgramNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *AcademicService) ListPrograms(departmentID uint) ([]model.Program, error) {
	return s.ProgramRepo.ListByDepartment(departmentID)
}

func (s *AcademicService) DeleteProgram(id uint) error {
	if _, err := s.GetProgram(id); err != nil {
		return err
	}
	return s.ProgramRepo.Delete(id)
}

type CourseRequest struct {
	ProgramID uint    `json:"programId" binding:"required"`
	Code      string  `json:"code" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Credits   float64 `json:"credits"`
	Semester  string  `json:"semester"`
	TeacherID *uint   `json:"teacherId"`
}

func (s *AcademicService) CreateCourse(req CourseRequest) (*model.Course, error) {
	if _, err := s.GetProgram(req.ProgramID); err != nil {
		return nil, err
	}
	if req.TeacherID != nil {
		if _, err := s.TeacherRepo.FindByID(*req.TeacherID); err != nil {
			return nil, util.ErrTeacherNotFound
		}
	}
	c := &model.Course{
		ProgramID: req.ProgramID,
		Code:      req.Code,
		Title:     req.Title,
		Credits:   req.Credits,
		Semester:  req.Semester,
		TeacherID: req.TeacherID,
	}
	if err := s.CourseRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *AcademicService) GetCourse(id uint) (*model.Course, error) {
	c, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *AcademicService) ListCourses(programID uint, page, limit int) ([]model.Course, int64, error) {
	return s.CourseRepo.ListByProgram(programID, page, limit)
}

func (s *AcademicService) UpdateCourse(id uint, req CourseRequest) (*model.Course, error) {
	c, err := s.GetCourse(id)
	if err != nil {
		return nil, err
	}
	if req.TeacherID != nil {
		if _, err := s.TeacherRepo.FindByID(*req.TeacherID); err != nil {
			return nil, util.ErrTeacherNotFound
		}
	}
	c.Code = req.Code
	c.Title = req.Title
	c.Credits = req.Credits
	c.Semester = req.Semester
	c.TeacherID = req.TeacherID
	if err := s.CourseRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *AcademicService) DeleteCourse(id uint) error {
	if _, err := s.GetCourse(id); err != nil {
		return err
	}
	return s.CourseRepo.Delete(id)
}
