package repository

import (
	"obe_backend/internal/model"

	"gorm.io/gorm"
)

type TeacherRepository struct {
	DB *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

func (r *TeacherRepository) Create(t *model.Teacher) error {
	return r.DB.Create(t).Error
}

func (r *TeacherRepository) FindByID(id uint) (*model.Teacher, error) {
	var t model.Teacher
	err := r.DB.Preload("User").First(&t, id).Error
	return &t, err
}

func (r *TeacherRepository) FindByUserID(userID uint) (*model.Teacher, error) {
	var t model.Teacher
	err := r.DB.Where("user_id = ?", userID).First(&t).Error
	return &t, err
}

func (r *TeacherRepository) ListByDepartment(departmentID uint) ([]model.Teacher, error) {
	var ts []model.Teacher
	err := r.DB.Preload("User").Where("department_id = ?", departmentID).
		Order("id asc").Find(&ts).Error
	return ts, err
}

func (r *TeacherRepository) Update(t *model.Teacher) error {
	return r.DB.Save(t).Error
}

func (r *TeacherRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Teacher{}, id).Error
}

// CountByIDs returns how many of the given teacher ids exist. Used to
// validate committee member lists before creating anything.
func (r *TeacherRepository) CountByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&model.Teacher{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(s *model.Student) error {
	return r.DB.Create(s).Error
}

func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var s model.Student
	err := r.DB.Preload("User").Preload("Program").First(&s, id).Error
	return &s, err
}

func (r *StudentRepository) FindByUserID(userID uint) (*model.Student, error) {
	var s model.Student
	err := r.DB.Where("user_id = ?", userID).First(&s).Error
	return &s, err
}

func (r *StudentRepository) ListByProgram(programID uint, page, limit int) ([]model.Student, int64, error) {
	var ss []model.Student
	var total int64
	query := r.DB.Model(&model.Student{}).Where("program_id = ?", programID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("User").Order("registration_no asc").
		Offset(offset).Limit(limit).Find(&ss).Error
	return ss, total, err
}

func (r *StudentRepository) Update(s *model.Student) error {
	return r.DB.Save(s).Error
}

func (r *StudentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Student{}, id).Error
}
