package repository

import (
	"obe_backend/internal/model"

	"gorm.io/gorm"
)

type FacultyRepository struct {
	DB *gorm.DB
}

func NewFacultyRepository(db *gorm.DB) *FacultyRepository {
	return &FacultyRepository{DB: db}
}

func (r *FacultyRepository) Create(f *model.Faculty) error {
	return r.DB.Create(f).Error
}

func (r *FacultyRepository) FindByID(id uint) (*model.Faculty, error) {
	var f model.Faculty
	err := r.DB.Preload("Dean.User").First(&f, id).Error
	return &f, err
}

func (r *FacultyRepository) List() ([]model.Faculty, error) {
	var fs []model.Faculty
	err := r.DB.Preload("Dean.User").Order("name asc").Find(&fs).Error
	return fs, err
}

func (r *FacultyRepository) Update(f *model.Faculty) error {
	return r.DB.Save(f).Error
}

// Delete removes a faculty and everything it owns. Rows are soft-deleted, so
// the database's ON DELETE CASCADE never fires; each level removes its owned
// children explicitly, all inside one transaction.
func (r *FacultyRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var deptIDs []uint
		if err := tx.Model(&model.Department{}).Where("faculty_id = ?", id).
			Pluck("id", &deptIDs).Error; err != nil {
			return err
		}
		if err := deleteDepartmentsCascade(tx, deptIDs); err != nil {
			return err
		}
		return tx.Delete(&model.Faculty{}, id).Error
	})
}

type DepartmentRepository struct {
	DB *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) Create(d *model.Department) error {
	return r.DB.Create(d).Error
}

func (r *DepartmentRepository) FindByID(id uint) (*model.Department, error) {
	var d model.Department
	err := r.DB.Preload("Faculty").Preload("Chairman.User").First(&d, id).Error
	return &d, err
}

func (r *DepartmentRepository) ListByFaculty(facultyID uint) ([]model.Department, error) {
	var ds []model.Department
	query := r.DB.Preload("Chairman.User")
	if facultyID > 0 {
		query = query.Where("faculty_id = ?", facultyID)
	}
	err := query.Order("name asc").Find(&ds).Error
	return ds, err
}

func (r *DepartmentRepository) Update(d *model.Department) error {
	return r.DB.Save(d).Error
}

func (r *DepartmentRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return deleteDepartmentsCascade(tx, []uint{id})
	})
}

type ProgramRepository struct {
	DB *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{DB: db}
}

func (r *ProgramRepository) Create(p *model.Program) error {
	return r.DB.Create(p).Error
}

func (r *ProgramRepository) FindByID(id uint) (*model.Program, error) {
	var p model.Program
	err := r.DB.Preload("Department").First(&p, id).Error
	return &p, err
}

func (r *ProgramRepository) ListByDepartment(departmentID uint) ([]model.Program, error) {
	var ps []model.Program
	query := r.DB.Model(&model.Program{})
	if departmentID > 0 {
		query = query.Where("department_id = ?", departmentID)
	}
	err := query.Order("name asc").Find(&ps).Error
	return ps, err
}

func (r *ProgramRepository) Update(p *model.Program) error {
	return r.DB.Save(p).Error
}

func (r *ProgramRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return deleteProgramsCascade(tx, []uint{id})
	})
}

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(c *model.Course) error {
	return r.DB.Create(c).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var c model.Course
	err := r.DB.Preload("Program").Preload("Teacher.User").First(&c, id).Error
	return &c, err
}

func (r *CourseRepository) ListByProgram(programID uint, page, limit int) ([]model.Course, int64, error) {
	var cs []model.Course
	var total int64
	query := r.DB.Model(&model.Course{})
	if programID > 0 {
		query = query.Where("program_id = ?", programID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Teacher.User").Order("code asc").
		Offset(offset).Limit(limit).Find(&cs).Error
	return cs, total, err
}

func (r *CourseRepository) ListByTeacher(teacherID uint) ([]model.Course, error) {
	var cs []model.Course
	err := r.DB.Where("teacher_id = ?", teacherID).Order("code asc").Find(&cs).Error
	return cs, err
}

func (r *CourseRepository) Update(c *model.Course) error {
	return r.DB.Save(c).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return deleteCoursesCascade(tx, []uint{id})
	})
}

// deleteCoursesCascade soft-deletes the courses and every row they own:
// exam papers with their items, CLOs with their mappings, contents, lesson
// plans, assignments with submissions, attendance and marks.
func deleteCoursesCascade(tx *gorm.DB, courseIDs []uint) error {
	if len(courseIDs) == 0 {
		return nil
	}

	var paperIDs []uint
	if err := tx.Model(&model.ExamQuestion{}).Where("course_id IN ?", courseIDs).
		Pluck("id", &paperIDs).Error; err != nil {
		return err
	}
	if len(paperIDs) > 0 {
		if err := tx.Where("exam_question_id IN ?", paperIDs).
			Delete(&model.ExamQuestionItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", paperIDs).
			Delete(&model.ExamQuestion{}).Error; err != nil {
			return err
		}
	}

	var cloIDs []uint
	if err := tx.Model(&model.CLO{}).Where("course_id IN ?", courseIDs).
		Pluck("id", &cloIDs).Error; err != nil {
		return err
	}
	if len(cloIDs) > 0 {
		if err := tx.Where("clo_id IN ?", cloIDs).
			Delete(&model.CLOPLOMapping{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", cloIDs).Delete(&model.CLO{}).Error; err != nil {
			return err
		}
	}

	var assignmentIDs []uint
	if err := tx.Model(&model.Assignment{}).Where("course_id IN ?", courseIDs).
		Pluck("id", &assignmentIDs).Error; err != nil {
		return err
	}
	if len(assignmentIDs) > 0 {
		if err := tx.Where("assignment_id IN ?", assignmentIDs).
			Delete(&model.AssignmentSubmission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", assignmentIDs).
			Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
	}

	for _, m := range []interface{}{
		&model.CourseContent{},
		&model.LessonPlan{},
		&model.AttendanceRecord{},
		&model.ExamMark{},
	} {
		if err := tx.Where("course_id IN ?", courseIDs).Delete(m).Error; err != nil {
			return err
		}
	}

	return tx.Where("id IN ?", courseIDs).Delete(&model.Course{}).Error
}

// deleteProgramsCascade removes programs with their courses and outcome
// definitions. Student profiles reference a program but are people records,
// not owned children; they stay.
func deleteProgramsCascade(tx *gorm.DB, programIDs []uint) error {
	if len(programIDs) == 0 {
		return nil
	}

	var courseIDs []uint
	if err := tx.Model(&model.Course{}).Where("program_id IN ?", programIDs).
		Pluck("id", &courseIDs).Error; err != nil {
		return err
	}
	if err := deleteCoursesCascade(tx, courseIDs); err != nil {
		return err
	}

	var ploIDs []uint
	if err := tx.Model(&model.PLO{}).Where("program_id IN ?", programIDs).
		Pluck("id", &ploIDs).Error; err != nil {
		return err
	}
	if len(ploIDs) > 0 {
		if err := tx.Where("plo_id IN ?", ploIDs).
			Delete(&model.CLOPLOMapping{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plo_id IN ?", ploIDs).
			Delete(&model.PLOPEOMapping{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", ploIDs).Delete(&model.PLO{}).Error; err != nil {
			return err
		}
	}

	var peoIDs []uint
	if err := tx.Model(&model.PEO{}).Where("program_id IN ?", programIDs).
		Pluck("id", &peoIDs).Error; err != nil {
		return err
	}
	if len(peoIDs) > 0 {
		if err := tx.Where("peo_id IN ?", peoIDs).
			Delete(&model.PLOPEOMapping{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", peoIDs).Delete(&model.PEO{}).Error; err != nil {
			return err
		}
	}

	return tx.Where("id IN ?", programIDs).Delete(&model.Program{}).Error
}

// deleteDepartmentsCascade removes departments with their programs and
// moderation committees.
func deleteDepartmentsCascade(tx *gorm.DB, deptIDs []uint) error {
	if len(deptIDs) == 0 {
		return nil
	}

	var programIDs []uint
	if err := tx.Model(&model.Program{}).Where("department_id IN ?", deptIDs).
		Pluck("id", &programIDs).Error; err != nil {
		return err
	}
	if err := deleteProgramsCascade(tx, programIDs); err != nil {
		return err
	}

	var committeeIDs []uint
	if err := tx.Model(&model.ModerationCommittee{}).Where("department_id IN ?", deptIDs).
		Pluck("id", &committeeIDs).Error; err != nil {
		return err
	}
	if len(committeeIDs) > 0 {
		if err := tx.Where("committee_id IN ?", committeeIDs).
			Delete(&model.ModerationCommitteeMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", committeeIDs).
			Delete(&model.ModerationCommittee{}).Error; err != nil {
			return err
		}
	}

	return tx.Where("id IN ?", deptIDs).Delete(&model.Department{}).Error
}
