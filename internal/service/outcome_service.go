package service

import (
	"errors"
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"

	"gorm.io/gorm"
)

type OutcomeService struct {
	OutcomeRepo *repository.OutcomeRepository
	ProgramRepo *repository.ProgramRepository
	CourseRepo  *repository.CourseRepository
}

func NewOutcomeService(
	outcomeRepo *repository.OutcomeRepository,
	programRepo *repository.ProgramRepository,
	courseRepo *repository.CourseRepository,
) *OutcomeService {
	return &OutcomeService{
		OutcomeRepo: outcomeRepo,
		ProgramRepo: programRepo,
		CourseRepo:  courseRepo,
	}
}

type OutcomeRequest struct {
	RefCode   string `json:"refCode" binding:"required"`
	Statement string `json:"statement" binding:"required"`
}

func (s *OutcomeService) programExists(programID uint) error {
	if _, err := s.ProgramRepo.FindByID(programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrProgramNotFound
		}
		return err
	}
	return nil
}

func (s *OutcomeService) CreatePEO(programID uint, req OutcomeRequest) (*model.PEO, error) {
	if err := s.programExists(programID); err != nil {
		return nil, err
	}
	p := &model.PEO{ProgramID: programID, RefCode: req.RefCode, Statement: req.Statement}
	if err := s.OutcomeRepo.CreatePEO(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *OutcomeService) ListPEOs(programID uint) ([]model.PEO, error) {
	return s.OutcomeRepo.ListPEOs(programID)
}

func (s *OutcomeService) CreatePLO(programID uint, req OutcomeRequest) (*model.PLO, error) {
	if err := s.programExists(programID); err != nil {
		return nil, err
	}
	p := &model.PLO{ProgramID: programID, RefCode: req.RefCode, Statement: req.Statement}
	if err := s.OutcomeRepo.CreatePLO(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *OutcomeService) ListPLOs(programID uint) ([]model.PLO, error) {
	return s.OutcomeRepo.ListPLOs(programID)
}

func (s *OutcomeService) CreateCLO(courseID uint, req OutcomeRequest) (*model.CLO, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	c := &model.CLO{CourseID: courseID, RefCode: req.RefCode, Statement: req.Statement}
	if err := s.OutcomeRepo.CreateCLO(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *OutcomeService) ListCLOs(courseID uint) ([]model.CLO, error) {
	return s.OutcomeRepo.ListCLOs(courseID)
}

type MappingRequest struct {
	FromID uint `json:"fromId" binding:"required"`
	ToID   uint `json:"toId" binding:"required"`
}

func (s *OutcomeService) MapCLOToPLO(req MappingRequest) error {
	return s.OutcomeRepo.MapCLOToPLO(req.FromID, req.ToID)
}

func (s *OutcomeService) MapPLOToPEO(req MappingRequest) error {
	return s.OutcomeRepo.MapPLOToPEO(req.FromID, req.ToID)
}

func (s *OutcomeService) UnmapCLOFromPLO(req MappingRequest) error {
	return s.OutcomeRepo.UnmapCLOFromPLO(req.FromID, req.ToID)
}

func (s *OutcomeService) UnmapPLOFromPEO(req MappingRequest) error {
	return s.OutcomeRepo.UnmapPLOFromPEO(req.FromID, req.ToID)
}

// MappingMatrix is the program-wide outcome mapping view: which CLOs feed
// each PLO and which PLOs feed each PEO.
type MappingMatrix struct {
	CLOToPLO []model.CLOPLOMapping `json:"cloToPlo"`
	PLOToPEO []model.PLOPEOMapping `json:"ploToPeo"`
}

func (s *OutcomeService) Matrix(programID uint) (*MappingMatrix, error) {
	if err := s.programExists(programID); err != nil {
		return nil, err
	}

	cloPlo, err := s.OutcomeRepo.ListCLOPLOMappings(programID)
	if err != nil {
		return nil, err
	}
	ploPeo, err := s.OutcomeRepo.ListPLOPEOMappings(programID)
	if err != nil {
		return nil, err
	}
	return &MappingMatrix{CLOToPLO: cloPlo, PLOToPEO: ploPeo}, nil
}

type ContentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func (s *OutcomeService) CreateContent(courseID uint, req ContentRequest) (*model.CourseContent, error) {
	c := &model.CourseContent{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	}
	if err := s.OutcomeRepo.CreateContent(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *OutcomeService) ListContents(courseID uint) ([]model.CourseContent, error) {
	return s.OutcomeRepo.ListContents(courseID)
}

type LessonPlanRequest struct {
	Week  int    `json:"week" binding:"required"`
	Topic string `json:"topic" binding:"required"`
	CLOID *uint  `json:"cloId"`
}

func (s *OutcomeService) CreateLessonPlan(courseID uint, req LessonPlanRequest) (*model.LessonPlan, error) {
	p := &model.LessonPlan{
		CourseID: courseID,
		Week:     req.Week,
		Topic:    req.Topic,
		CLOID:    req.CLOID,
	}
	if err := s.OutcomeRepo.CreateLessonPlan(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *OutcomeService) ListLessonPlans(courseID uint) ([]model.LessonPlan, error) {
	return s.OutcomeRepo.ListLessonPlans(courseID)
}
