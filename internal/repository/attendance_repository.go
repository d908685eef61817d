package repository

import (
	"obe_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// CreateBatch writes the whole batch inside one transaction. Either every
// record persists or none do.
func (r *AttendanceRepository) CreateBatch(records []model.AttendanceRecord) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AttendanceRepository) ListByCourseAndDate(courseID uint, date time.Time) ([]model.AttendanceRecord, error) {
	var rs []model.AttendanceRecord
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	err := r.DB.Preload("Student.User").
		Where("course_id = ? AND date >= ? AND date < ?", courseID, dayStart, dayEnd).
		Find(&rs).Error
	return rs, err
}

// AttendanceSummary is one student's aggregate for a course.
type AttendanceSummary struct {
	StudentID uint  `json:"studentId"`
	Total     int64 `json:"total"`
	Present   int64 `json:"present"`
}

func (r *AttendanceRepository) SummaryByCourse(courseID uint) ([]AttendanceSummary, error) {
	var sums []AttendanceSummary
	err := r.DB.Model(&model.AttendanceRecord{}).
		Select("student_id, COUNT(*) as total, SUM(CASE WHEN present THEN 1 ELSE 0 END) as present").
		Where("course_id = ?", courseID).
		Group("student_id").
		Scan(&sums).Error
	return sums, err
}

func (r *AttendanceRepository) SummaryForStudent(courseID, studentID uint) (*AttendanceSummary, error) {
	var sum AttendanceSummary
	err := r.DB.Model(&model.AttendanceRecord{}).
		Select("student_id, COUNT(*) as total, SUM(CASE WHEN present THEN 1 ELSE 0 END) as present").
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Group("student_id").
		Scan(&sum).Error
	return &sum, err
}
