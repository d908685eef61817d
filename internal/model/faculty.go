package model

// Faculty is the top of the academic hierarchy. The dean is derived from
// DeanID rather than a stored role claim on the teacher.
// swagger:model Faculty
type Faculty struct {
	BaseModel
	Name   string `gorm:"size:255;not null" json:"name"`
	DeanID *uint  `gorm:"index" json:"deanId,omitempty"`

	Dean        *Teacher     `gorm:"foreignKey:DeanID" json:"dean,omitempty"`
	Departments []Department `gorm:"constraint:OnDelete:CASCADE" json:"departments,omitempty"`
}

func (Faculty) TableName() string {
	return "faculties"
}

// swagger:model Department
type Department struct {
	BaseModel
	FacultyID  uint   `gorm:"index;not null" json:"facultyId"`
	Name       string `gorm:"size:255;not null" json:"name"`
	ChairmanID *uint  `gorm:"index" json:"chairmanId,omitempty"`

	Faculty  *Faculty  `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
	Chairman *Teacher  `gorm:"foreignKey:ChairmanID" json:"chairman,omitempty"`
	Programs []Program `gorm:"constraint:OnDelete:CASCADE" json:"programs,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}

// swagger:model Program
type Program struct {
	BaseModel
	DepartmentID uint   `gorm:"index;not null" json:"departmentId"`
	Name         string `gorm:"size:255;not null" json:"name"`
	DegreeLevel  string `gorm:"size:50" json:"degreeLevel"` // e.g. BSc, MSc

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Courses    []Course    `gorm:"constraint:OnDelete:CASCADE" json:"courses,omitempty"`
}

func (Program) TableName() string {
	return "programs"
}

// swagger:model Course
type Course struct {
	BaseModel
	ProgramID uint    `gorm:"index;not null" json:"programId"`
	Code      string  `gorm:"size:50;not null" json:"code"`
	Title     string  `gorm:"size:255;not null" json:"title"`
	Credits   float64 `gorm:"default:3" json:"credits"`
	Semester  string  `gorm:"size:20" json:"semester"`
	TeacherID *uint   `gorm:"index" json:"teacherId,omitempty"`

	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	CLOs    []CLO    `gorm:"constraint:OnDelete:CASCADE" json:"clos,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
