package model

// ModerationCommittee is a department-scoped panel for one session/semester.
// The chairman is tracked separately from the members set; the schema does
// not stop a chairman from also appearing as a member.
// swagger:model ModerationCommittee
type ModerationCommittee struct {
	BaseModel
	DepartmentID uint   `gorm:"index;not null" json:"departmentId"`
	Session      string `gorm:"size:20;not null" json:"session"`
	Semester     string `gorm:"size:20;not null" json:"semester"`
	ChairmanID   uint   `gorm:"index;not null" json:"chairmanId"`

	Department *Department                 `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"department,omitempty"`
	Chairman   *Teacher                    `gorm:"foreignKey:ChairmanID" json:"chairman,omitempty"`
	Members    []ModerationCommitteeMember `gorm:"foreignKey:CommitteeID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

func (ModerationCommittee) TableName() string {
	return "moderation_committees"
}

// ModerationCommitteeMember is a pure membership fact.
type ModerationCommitteeMember struct {
	BaseModel
	CommitteeID uint `gorm:"index;not null" json:"committeeId"`
	TeacherID   uint `gorm:"index;not null" json:"teacherId"`

	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

func (ModerationCommitteeMember) TableName() string {
	return "moderation_committee_members"
}
