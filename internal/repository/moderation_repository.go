package repository

import (
	"obe_backend/internal/model"

	"gorm.io/gorm"
)

type ModerationRepository struct {
	DB *gorm.DB
}

func NewModerationRepository(db *gorm.DB) *ModerationRepository {
	return &ModerationRepository{DB: db}
}

// CreateCommittee persists the committee and all member rows in one
// transaction so a failed member insert leaves nothing behind.
func (r *ModerationRepository) CreateCommittee(c *model.ModerationCommittee, memberIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		for _, tid := range memberIDs {
			member := model.ModerationCommitteeMember{
				CommitteeID: c.ID,
				TeacherID:   tid,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ModerationRepository) FindCommitteeByID(id uint) (*model.ModerationCommittee, error) {
	var c model.ModerationCommittee
	err := r.DB.Preload("Chairman.User").
		Preload("Members.Teacher.User").
		Preload("Department").
		First(&c, id).Error
	return &c, err
}

func (r *ModerationRepository) ListCommitteesByDepartment(departmentID uint) ([]model.ModerationCommittee, error) {
	var cs []model.ModerationCommittee
	err := r.DB.Preload("Chairman.User").Preload("Members.Teacher.User").
		Where("department_id = ?", departmentID).
		Order("created_at desc").Find(&cs).Error
	return cs, err
}

// CommitteesForTeacher returns ids of committees in which the teacher sits
// as chairman or member.
func (r *ModerationRepository) CommitteesForTeacher(teacherID uint) ([]uint, error) {
	var chairedIDs []uint
	if err := r.DB.Model(&model.ModerationCommittee{}).
		Where("chairman_id = ?", teacherID).
		Pluck("id", &chairedIDs).Error; err != nil {
		return nil, err
	}

	var memberIDs []uint
	if err := r.DB.Model(&model.ModerationCommitteeMember{}).
		Where("teacher_id = ?", teacherID).
		Pluck("committee_id", &memberIDs).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(chairedIDs)+len(memberIDs))
	var ids []uint
	for _, id := range append(chairedIDs, memberIDs...) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// DepartmentsForTeacher returns the distinct department ids of every
// committee the teacher sits on. Queue visibility for unassigned papers is
// scoped to these departments.
func (r *ModerationRepository) DepartmentsForTeacher(teacherID uint) ([]uint, error) {
	committeeIDs, err := r.CommitteesForTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	if len(committeeIDs) == 0 {
		return nil, nil
	}

	var deptIDs []uint
	err = r.DB.Model(&model.ModerationCommittee{}).
		Where("id IN ?", committeeIDs).
		Distinct().
		Pluck("department_id", &deptIDs).Error
	return deptIDs, err
}

// IsActor reports whether the teacher is the chairman or a listed member of
// the committee.
func (r *ModerationRepository) IsActor(committeeID, teacherID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ModerationCommittee{}).
		Where("id = ? AND chairman_id = ?", committeeID, teacherID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = r.DB.Model(&model.ModerationCommitteeMember{}).
		Where("committee_id = ? AND teacher_id = ?", committeeID, teacherID).
		Count(&count).Error
	return count > 0, err
}

// DeleteCommittee removes a committee. Papers still assigned to it are
// released back to the Submitted queue with the committee link cleared, so
// none are stranded mid-moderation.
func (r *ModerationRepository) DeleteCommittee(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		// bumping revision invalidates any CAS token read before the disband
		if err := tx.Model(&model.ExamQuestion{}).
			Where("moderation_committee_id = ? AND status <> ?", id, model.StatusApproved).
			Updates(map[string]interface{}{
				"moderation_committee_id": nil,
				"status":                  model.StatusSubmitted,
				"revision":                gorm.Expr("revision + 1"),
			}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.ExamQuestion{}).
			Where("moderation_committee_id = ?", id).
			Updates(map[string]interface{}{
				"moderation_committee_id": nil,
				"revision":                gorm.Expr("revision + 1"),
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("committee_id = ?", id).
			Delete(&model.ModerationCommitteeMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ModerationCommittee{}, id).Error
	})
}
