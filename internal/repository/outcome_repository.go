package repository

import (
	"obe_backend/internal/model"

	"gorm.io/gorm"
)

// OutcomeRepository covers the PEO/PLO/CLO hierarchy, their mappings, and
// the per-course content and lesson plan rows.
type OutcomeRepository struct {
	DB *gorm.DB
}

func NewOutcomeRepository(db *gorm.DB) *OutcomeRepository {
	return &OutcomeRepository{DB: db}
}

// PEO

func (r *OutcomeRepository) CreatePEO(p *model.PEO) error {
	return r.DB.Create(p).Error
}

func (r *OutcomeRepository) ListPEOs(programID uint) ([]model.PEO, error) {
	var ps []model.PEO
	err := r.DB.Where("program_id = ?", programID).Order("ref_code asc").Find(&ps).Error
	return ps, err
}

func (r *OutcomeRepository) DeletePEO(id uint) error {
	return r.DB.Delete(&model.PEO{}, id).Error
}

// PLO

func (r *OutcomeRepository) CreatePLO(p *model.PLO) error {
	return r.DB.Create(p).Error
}

func (r *OutcomeRepository) ListPLOs(programID uint) ([]model.PLO, error) {
	var ps []model.PLO
	err := r.DB.Where("program_id = ?", programID).Order("ref_code asc").Find(&ps).Error
	return ps, err
}

func (r *OutcomeRepository) DeletePLO(id uint) error {
	return r.DB.Delete(&model.PLO{}, id).Error
}

// CLO

func (r *OutcomeRepository) CreateCLO(c *model.CLO) error {
	return r.DB.Create(c).Error
}

func (r *OutcomeRepository) FindCLOByID(id uint) (*model.CLO, error) {
	var c model.CLO
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *OutcomeRepository) ListCLOs(courseID uint) ([]model.CLO, error) {
	var cs []model.CLO
	err := r.DB.Where("course_id = ?", courseID).Order("ref_code asc").Find(&cs).Error
	return cs, err
}

func (r *OutcomeRepository) DeleteCLO(id uint) error {
	return r.DB.Delete(&model.CLO{}, id).Error
}

// Mappings

func (r *OutcomeRepository) MapCLOToPLO(cloID, ploID uint) error {
	return r.DB.Create(&model.CLOPLOMapping{CLOID: cloID, PLOID: ploID}).Error
}

func (r *OutcomeRepository) MapPLOToPEO(ploID, peoID uint) error {
	return r.DB.Create(&model.PLOPEOMapping{PLOID: ploID, PEOID: peoID}).Error
}

func (r *OutcomeRepository) ListCLOPLOMappings(programID uint) ([]model.CLOPLOMapping, error) {
	var ms []model.CLOPLOMapping
	err := r.DB.Preload("CLO").Preload("PLO").
		Joins("JOIN plos ON plos.id = clo_plo_mappings.plo_id").
		Where("plos.program_id = ?", programID).
		Find(&ms).Error
	return ms, err
}

func (r *OutcomeRepository) ListPLOPEOMappings(programID uint) ([]model.PLOPEOMapping, error) {
	var ms []model.PLOPEOMapping
	err := r.DB.Preload("PLO").Preload("PEO").
		Joins("JOIN peos ON peos.id = plo_peo_mappings.peo_id").
		Where("peos.program_id = ?", programID).
		Find(&ms).Error
	return ms, err
}

func (r *OutcomeRepository) UnmapCLOFromPLO(cloID, ploID uint) error {
	return r.DB.Where("clo_id = ? AND plo_id = ?", cloID, ploID).
		Delete(&model.CLOPLOMapping{}).Error
}

func (r *OutcomeRepository) UnmapPLOFromPEO(ploID, peoID uint) error {
	return r.DB.Where("plo_id = ? AND peo_id = ?", ploID, peoID).
		Delete(&model.PLOPEOMapping{}).Error
}

// Course content and lesson plans

func (r *OutcomeRepository) CreateContent(c *model.CourseContent) error {
	return r.DB.Create(c).Error
}

func (r *OutcomeRepository) ListContents(courseID uint) ([]model.CourseContent, error) {
	var cs []model.CourseContent
	err := r.DB.Where("course_id = ?", courseID).Order("created_at asc").Find(&cs).Error
	return cs, err
}

func (r *OutcomeRepository) DeleteContent(id uint) error {
	return r.DB.Delete(&model.CourseContent{}, id).Error
}

func (r *OutcomeRepository) CreateLessonPlan(p *model.LessonPlan) error {
	return r.DB.Create(p).Error
}

func (r *OutcomeRepository) ListLessonPlans(courseID uint) ([]model.LessonPlan, error) {
	var ps []model.LessonPlan
	err := r.DB.Preload("CLO").Where("course_id = ?", courseID).
		Order("week asc").Find(&ps).Error
	return ps, err
}

func (r *OutcomeRepository) DeleteLessonPlan(id uint) error {
	return r.DB.Delete(&model.LessonPlan{}, id).Error
}
