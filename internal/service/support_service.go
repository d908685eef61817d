package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"

	"gorm.io/gorm"
)

// SupportService runs the course Q&A board. Any authenticated user can ask;
// any authenticated user can answer.
type SupportService struct {
	SupportRepo *repository.SupportRepository
	CourseRepo  *repository.CourseRepository
}

func NewSupportService(supportRepo *repository.SupportRepository, courseRepo *repository.CourseRepository) *SupportService {
	return &SupportService{SupportRepo: supportRepo, CourseRepo: courseRepo}
}

type AskQuestionRequest struct {
	CourseID *uint  `json:"courseId"`
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

func (s *SupportService) Ask(userID uint, req AskQuestionRequest) (*model.SupportQuestion, error) {
	if req.CourseID != nil {
		if _, err := s.CourseRepo.FindByID(*req.CourseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrCourseNotFound
			}
			return nil, err
		}
	}
	q := &model.SupportQuestion{
		UserID:   userID,
		CourseID: req.CourseID,
		Title:    req.Title,
		Body:     req.Body,
	}
	if err := s.SupportRepo.CreateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *SupportService) Get(id uint) (*model.SupportQuestion, error) {
	q, err := s.SupportRepo.FindQuestionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *SupportService) List(courseID uint, page, limit int) ([]model.SupportQuestion, int64, error) {
	return s.SupportRepo.ListQuestions(courseID, page, limit)
}

type AnswerRequest struct {
	Body string `json:"body" binding:"required"`
}

func (s *SupportService) Answer(userID, questionID uint, req AnswerRequest) (*model.SupportAnswer, error) {
	if _, err := s.SupportRepo.FindQuestionByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	a := &model.SupportAnswer{
		QuestionID: questionID,
		UserID:     userID,
		Body:       req.Body,
	}
	if err := s.SupportRepo.CreateAnswer(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes a question. Only the asker or an admin may delete.
func (s *SupportService) Delete(userID uint, role model.UserRole, questionID uint) error {
	q, err := s.SupportRepo.FindQuestionByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	if q.UserID != userID && role != model.RoleAdmin {
		return util.ErrPermissionDenied
	}
	return s.SupportRepo.DeleteQuestion(questionID)
}
