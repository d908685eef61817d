package repository

import (
	"obe_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(a *model.Assignment) error {
	return r.DB.Create(a).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var a model.Assignment
	err := r.DB.Preload("Course").Preload("Teacher.User").First(&a, id).Error
	return &a, err
}

func (r *AssignmentRepository) ListByCourse(courseID uint) ([]model.Assignment, error) {
	var as []model.Assignment
	err := r.DB.Where("course_id = ?", courseID).Order("due_date asc").Find(&as).Error
	return as, err
}

// ListPendingForStudent returns assignments in the student's program courses
// that the student has not submitted yet and that are still open.
func (r *AssignmentRepository) ListPendingForStudent(student *model.Student) ([]model.Assignment, error) {
	var as []model.Assignment
	err := r.DB.
		Joins("JOIN courses ON courses.id = assignments.course_id").
		Where("courses.program_id = ?", student.ProgramID).
		Where("assignments.due_date > ?", time.Now()).
		Where("assignments.id NOT IN (?)",
			r.DB.Model(&model.AssignmentSubmission{}).
				Select("assignment_id").
				Where("student_id = ?", student.ID),
		).
		Order("assignments.due_date asc").
		Find(&as).Error
	return as, err
}

func (r *AssignmentRepository) Update(a *model.Assignment) error {
	return r.DB.Save(a).Error
}

func (r *AssignmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Assignment{}, id).Error
}

// Submissions

func (r *AssignmentRepository) CreateSubmission(s *model.AssignmentSubmission) error {
	return r.DB.Create(s).Error
}

func (r *AssignmentRepository) FindSubmission(assignmentID, studentID uint) (*model.AssignmentSubmission, error) {
	var s model.AssignmentSubmission
	err := r.DB.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&s).Error
	return &s, err
}

func (r *AssignmentRepository) ListSubmissions(assignmentID uint) ([]model.AssignmentSubmission, error) {
	var ss []model.AssignmentSubmission
	err := r.DB.Preload("Student.User").
		Where("assignment_id = ?", assignmentID).
		Order("submitted_at asc").Find(&ss).Error
	return ss, err
}

func (r *AssignmentRepository) UpdateSubmission(s *model.AssignmentSubmission) error {
	return r.DB.Save(s).Error
}
