package repository

import (
	"obe_backend/internal/model"

	"gorm.io/gorm"
)

type SupportRepository struct {
	DB *gorm.DB
}

func NewSupportRepository(db *gorm.DB) *SupportRepository {
	return &SupportRepository{DB: db}
}

func (r *SupportRepository) CreateQuestion(q *model.SupportQuestion) error {
	return r.DB.Create(q).Error
}

func (r *SupportRepository) FindQuestionByID(id uint) (*model.SupportQuestion, error) {
	var q model.SupportQuestion
	err := r.DB.Preload("User").Preload("Course").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Answers.User").
		First(&q, id).Error
	return &q, err
}

func (r *SupportRepository) ListQuestions(courseID uint, page, limit int) ([]model.SupportQuestion, int64, error) {
	var qs []model.SupportQuestion
	var total int64
	query := r.DB.Model(&model.SupportQuestion{})
	if courseID > 0 {
		query = query.Where("course_id = ?", courseID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("User").Order("created_at desc").
		Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}

func (r *SupportRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.SupportQuestion{}, id).Error
}

func (r *SupportRepository) CreateAnswer(a *model.SupportAnswer) error {
	return r.DB.Create(a).Error
}

func (r *SupportRepository) DeleteAnswer(id uint) error {
	return r.DB.Delete(&model.SupportAnswer{}, id).Error
}
