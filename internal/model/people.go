package model

// swagger:model Teacher
type Teacher struct {
	BaseModel
	UserID       uint   `gorm:"uniqueIndex;not null" json:"userId"`
	DepartmentID uint   `gorm:"index;not null" json:"departmentId"`
	Designation  string `gorm:"size:100" json:"designation"` // e.g. Professor, Lecturer

	User       *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Teacher) TableName() string {
	return "teachers"
}

// swagger:model Student
type Student struct {
	BaseModel
	UserID         uint   `gorm:"uniqueIndex;not null" json:"userId"`
	ProgramID      uint   `gorm:"index;not null" json:"programId"`
	RegistrationNo string `gorm:"size:50;uniqueIndex;not null" json:"registrationNo"`
	Session        string `gorm:"size:20" json:"session"` // e.g. "2024-2025"
	Semester       string `gorm:"size:20" json:"semester"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

func (Student) TableName() string {
	return "students"
}
