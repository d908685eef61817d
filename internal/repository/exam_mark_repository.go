package repository

import (
	"obe_backend/internal/model"

	"gorm.io/gorm"
)

type ExamMarkRepository struct {
	DB *gorm.DB
}

func NewExamMarkRepository(db *gorm.DB) *ExamMarkRepository {
	return &ExamMarkRepository{DB: db}
}

// CreateBatch persists all marks in one transaction; a failure rolls back
// the entire batch.
func (r *ExamMarkRepository) CreateBatch(marks []model.ExamMark) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range marks {
			if err := tx.Create(&marks[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ExamMarkRepository) ListByCourse(courseID uint, examType model.ExamType) ([]model.ExamMark, error) {
	var ms []model.ExamMark
	query := r.DB.Preload("Student.User").Where("course_id = ?", courseID)
	if examType != "" {
		query = query.Where("exam_type = ?", examType)
	}
	err := query.Order("student_id asc").Find(&ms).Error
	return ms, err
}

func (r *ExamMarkRepository) ListByStudent(studentID uint) ([]model.ExamMark, error) {
	var ms []model.ExamMark
	err := r.DB.Preload("Course").Where("student_id = ?", studentID).
		Order("course_id asc, exam_type asc").Find(&ms).Error
	return ms, err
}

// MarkTotal is one student's aggregate across exam types for a course.
type MarkTotal struct {
	StudentID uint    `json:"studentId"`
	Obtained  float64 `json:"obtained"`
	OutOf     float64 `json:"outOf"`
}

func (r *ExamMarkRepository) TotalsByCourse(courseID uint) ([]MarkTotal, error) {
	var ts []MarkTotal
	err := r.DB.Model(&model.ExamMark{}).
		Select("student_id, SUM(marks) as obtained, SUM(out_of) as out_of").
		Where("course_id = ?", courseID).
		Group("student_id").
		Scan(&ts).Error
	return ts, err
}
