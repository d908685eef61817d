package model

// ExamQuestionStatus is the closed set of moderation workflow states.
// Transition logic lives in the moderation service; nothing else writes it.
type ExamQuestionStatus string

const (
	StatusDraft          ExamQuestionStatus = "Draft"
	StatusSubmitted      ExamQuestionStatus = "Submitted"
	StatusModerating     ExamQuestionStatus = "Moderating"
	StatusRevisionNeeded ExamQuestionStatus = "RevisionNeeded"
	StatusApproved       ExamQuestionStatus = "Approved"
)

func (s ExamQuestionStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusModerating, StatusRevisionNeeded, StatusApproved:
		return true
	}
	return false
}

type BloomsLevel string

const (
	BloomRemember   BloomsLevel = "Remember"
	BloomUnderstand BloomsLevel = "Understand"
	BloomApply      BloomsLevel = "Apply"
	BloomAnalyze    BloomsLevel = "Analyze"
	BloomEvaluate   BloomsLevel = "Evaluate"
	BloomCreate     BloomsLevel = "Create"
)

func (l BloomsLevel) Valid() bool {
	switch l {
	case BloomRemember, BloomUnderstand, BloomApply, BloomAnalyze, BloomEvaluate, BloomCreate:
		return true
	}
	return false
}

// Satisfactory is the moderator's tri-state verdict on one item.
type Satisfactory string

const (
	SatisfactoryYes Satisfactory = "yes"
	SatisfactoryNo  Satisfactory = "no"
	SatisfactoryNA  Satisfactory = "na"
)

func (s Satisfactory) Valid() bool {
	switch s {
	case SatisfactoryYes, SatisfactoryNo, SatisfactoryNA:
		return true
	}
	return false
}

// ExamQuestion is one exam paper draft. ModeratorFeedback keeps only the
// latest revision note; history is not kept. Revision is the optimistic
// concurrency token compared-and-swapped on every status transition.
// swagger:model ExamQuestion
type ExamQuestion struct {
	BaseModel
	CourseID              uint               `gorm:"index;not null" json:"courseId"`
	TeacherID             uint               `gorm:"index;not null" json:"teacherId"`
	ModerationCommitteeID *uint              `gorm:"index" json:"moderationCommitteeId,omitempty"`
	Session               string             `gorm:"size:20;not null" json:"session"`
	Semester              string             `gorm:"size:20;not null" json:"semester"`
	TotalMarks            int                `gorm:"default:70" json:"totalMarks"`
	Duration              string             `gorm:"size:50;default:'3 Hours'" json:"duration"`
	Status                ExamQuestionStatus `gorm:"size:20;not null;default:'Draft'" json:"status"`
	ModeratorFeedback     *string            `gorm:"type:text" json:"moderatorFeedback,omitempty"`
	Revision              int                `gorm:"not null;default:0" json:"revision"`

	Course    *Course              `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
	Teacher   *Teacher             `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Committee *ModerationCommittee `gorm:"foreignKey:ModerationCommitteeID;constraint:OnDelete:SET NULL" json:"committee,omitempty"`
	Items     []ExamQuestionItem   `gorm:"foreignKey:ExamQuestionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (ExamQuestion) TableName() string {
	return "exam_questions"
}

// ExamQuestionItem is one question within a paper. Item marks summing to the
// paper's TotalMarks is advisory only and reported, not enforced.
// swagger:model ExamQuestionItem
type ExamQuestionItem struct {
	BaseModel
	ExamQuestionID   uint          `gorm:"index;not null" json:"examQuestionId"`
	CLOID            *uint         `gorm:"index;column:clo_id" json:"cloId,omitempty"`
	QuestionLabel    string        `gorm:"size:20;not null" json:"questionLabel"` // e.g. "1(a)"
	QuestionText     string        `gorm:"type:text;not null" json:"questionText"`
	Marks            float64       `gorm:"not null" json:"marks"`
	BloomsLevel      BloomsLevel   `gorm:"size:20;not null" json:"bloomsLevel"`
	Position         int           `gorm:"not null;default:0" json:"position"`
	IsSatisfactory   *Satisfactory `gorm:"size:10" json:"isSatisfactory,omitempty"`
	ModeratorComment *string       `gorm:"type:text" json:"moderatorComment,omitempty"`

	CLO *CLO `gorm:"foreignKey:CLOID" json:"clo,omitempty"`
}

func (ExamQuestionItem) TableName() string {
	return "exam_question_items"
}
