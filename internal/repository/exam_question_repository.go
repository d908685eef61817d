package repository

import (
	"obe_backend/internal/model"
	"obe_backend/internal/util"

	"gorm.io/gorm"
)

type ExamQuestionRepository struct {
	DB *gorm.DB
}

func NewExamQuestionRepository(db *gorm.DB) *ExamQuestionRepository {
	return &ExamQuestionRepository{DB: db}
}

func (r *ExamQuestionRepository) Create(q *model.ExamQuestion) error {
	return r.DB.Create(q).Error
}

func (r *ExamQuestionRepository) FindByID(id uint) (*model.ExamQuestion, error) {
	var q model.ExamQuestion
	err := r.DB.First(&q, id).Error
	return &q, err
}

// FindDetail loads the paper with items in position order plus the course,
// author, committee and chairman needed by the detail view.
func (r *ExamQuestionRepository) FindDetail(id uint) (*model.ExamQuestion, error) {
	var q model.ExamQuestion
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Items.CLO").
		Preload("Course").
		Preload("Teacher.User").
		Preload("Committee.Chairman.User").
		Preload("Committee.Members.Teacher.User").
		First(&q, id).Error
	return &q, err
}

func (r *ExamQuestionRepository) ListByTeacher(teacherID uint) ([]model.ExamQuestion, error) {
	var qs []model.ExamQuestion
	err := r.DB.Preload("Course").Where("teacher_id = ?", teacherID).
		Order("created_at desc").Find(&qs).Error
	return qs, err
}

// ListForModeration returns papers visible to a committee moderator: those
// assigned to the given committees plus unassigned submitted papers from
// courses in the given departments.
func (r *ExamQuestionRepository) ListForModeration(committeeIDs, departmentIDs []uint) ([]model.ExamQuestion, error) {
	var qs []model.ExamQuestion
	query := r.DB.Preload("Course").Preload("Teacher.User").
		Joins("JOIN courses ON courses.id = exam_questions.course_id").
		Joins("JOIN programs ON programs.id = courses.program_id").
		Where("courses.deleted_at IS NULL").
		Where("exam_questions.status <> ?", model.StatusDraft)

	switch {
	case len(committeeIDs) > 0 && len(departmentIDs) > 0:
		query = query.Where(
			"exam_questions.moderation_committee_id IN ? OR (exam_questions.moderation_committee_id IS NULL AND programs.department_id IN ?)",
			committeeIDs, departmentIDs,
		)
	case len(committeeIDs) > 0:
		query = query.Where("exam_questions.moderation_committee_id IN ?", committeeIDs)
	case len(departmentIDs) > 0:
		query = query.Where("exam_questions.moderation_committee_id IS NULL AND programs.department_id IN ?", departmentIDs)
	default:
		return nil, nil
	}

	err := query.Order("exam_questions.updated_at desc").Find(&qs).Error
	return qs, err
}

// Update persists paper fields without touching the revision counter. Status
// changes must go through UpdateStatusCAS.
func (r *ExamQuestionRepository) Update(q *model.ExamQuestion) error {
	return r.DB.Save(q).Error
}

// UpdateStatusCAS applies a status transition guarded by the revision
// counter. The update only lands when the stored revision still matches;
// otherwise ErrConcurrentUpdate is returned and nothing changes.
func (r *ExamQuestionRepository) UpdateStatusCAS(id uint, revision int, updates map[string]interface{}) error {
	updates["revision"] = revision + 1
	res := r.DB.Model(&model.ExamQuestion{}).
		Where("id = ? AND revision = ?", id, revision).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrConcurrentUpdate
	}
	return nil
}

func (r *ExamQuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.ExamQuestion{}, id).Error
}

// Items

func (r *ExamQuestionRepository) CreateItem(item *model.ExamQuestionItem) error {
	return r.DB.Create(item).Error
}

func (r *ExamQuestionRepository) FindItemByID(id uint) (*model.ExamQuestionItem, error) {
	var item model.ExamQuestionItem
	err := r.DB.First(&item, id).Error
	return &item, err
}

func (r *ExamQuestionRepository) ListItems(examQuestionID uint) ([]model.ExamQuestionItem, error) {
	var items []model.ExamQuestionItem
	err := r.DB.Preload("CLO").
		Where("exam_question_id = ?", examQuestionID).
		Order("position asc").Find(&items).Error
	return items, err
}

func (r *ExamQuestionRepository) UpdateItem(item *model.ExamQuestionItem) error {
	return r.DB.Save(item).Error
}

func (r *ExamQuestionRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&model.ExamQuestionItem{}, id).Error
}

// SumItemMarks reports the item mark total for the advisory comparison
// against the paper's declared TotalMarks.
func (r *ExamQuestionRepository) SumItemMarks(examQuestionID uint) (float64, error) {
	var sum float64
	err := r.DB.Model(&model.ExamQuestionItem{}).
		Where("exam_question_id = ?", examQuestionID).
		Select("COALESCE(SUM(marks), 0)").
		Scan(&sum).Error
	return sum, err
}
