package model

// PEO - Program Educational Objective, the longest-term outcome statement.
// swagger:model PEO
type PEO struct {
	BaseModel
	ProgramID uint   `gorm:"index;not null" json:"programId"`
	RefCode   string `gorm:"size:20;not null" json:"refCode"` // e.g. "PEO-1"
	Statement string `gorm:"type:text;not null" json:"statement"`

	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

func (PEO) TableName() string {
	return "peos"
}

// PLO - Program Learning Outcome, composed of CLOs across courses.
// swagger:model PLO
type PLO struct {
	BaseModel
	ProgramID uint   `gorm:"index;not null" json:"programId"`
	RefCode   string `gorm:"size:20;not null" json:"refCode"`
	Statement string `gorm:"type:text;not null" json:"statement"`

	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

func (PLO) TableName() string {
	return "plos"
}

// CLO - Course Learning Outcome, the unit an exam question item maps to.
// swagger:model CLO
type CLO struct {
	BaseModel
	CourseID  uint   `gorm:"index;not null" json:"courseId"`
	RefCode   string `gorm:"size:20;not null" json:"refCode"`
	Statement string `gorm:"type:text;not null" json:"statement"`

	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (CLO) TableName() string {
	return "clos"
}

// CLOPLOMapping links one CLO to one PLO it contributes to.
type CLOPLOMapping struct {
	BaseModel
	CLOID uint `gorm:"index;not null;column:clo_id" json:"cloId"`
	PLOID uint `gorm:"index;not null;column:plo_id" json:"ploId"`

	CLO *CLO `gorm:"foreignKey:CLOID;constraint:OnDelete:CASCADE" json:"clo,omitempty"`
	PLO *PLO `gorm:"foreignKey:PLOID;constraint:OnDelete:CASCADE" json:"plo,omitempty"`
}

func (CLOPLOMapping) TableName() string {
	return "clo_plo_mappings"
}

// PLOPEOMapping links one PLO to one PEO it contributes to.
type PLOPEOMapping struct {
	BaseModel
	PLOID uint `gorm:"index;not null;column:plo_id" json:"ploId"`
	PEOID uint `gorm:"index;not null;column:peo_id" json:"peoId"`

	PLO *PLO `gorm:"foreignKey:PLOID;constraint:OnDelete:CASCADE" json:"plo,omitempty"`
	PEO *PEO `gorm:"foreignKey:PEOID;constraint:OnDelete:CASCADE" json:"peo,omitempty"`
}

func (PLOPEOMapping) TableName() string {
	return "plo_peo_mappings"
}

// swagger:model CourseContent
type CourseContent struct {
	BaseModel
	CourseID    uint   `gorm:"index;not null" json:"courseId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	URL         string `gorm:"size:512" json:"url"`
}

func (CourseContent) TableName() string {
	return "course_contents"
}

// swagger:model LessonPlan
type LessonPlan struct {
	BaseModel
	CourseID uint   `gorm:"index;not null" json:"courseId"`
	Week     int    `gorm:"not null" json:"week"`
	Topic    string `gorm:"size:255;not null" json:"topic"`
	CLOID    *uint  `gorm:"index;column:clo_id" json:"cloId,omitempty"`

	CLO *CLO `gorm:"foreignKey:CLOID" json:"clo,omitempty"`
}

func (LessonPlan) TableName() string {
	return "lesson_plans"
}
