package model

import "time"

// swagger:model Assignment
type Assignment struct {
	BaseModel
	CourseID    uint      `gorm:"index;not null" json:"courseId"`
	TeacherID   uint      `gorm:"index;not null" json:"teacherId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `json:"dueDate"`
	FilePath    string    `gorm:"size:512" json:"filePath"`

	Course  *Course  `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// swagger:model AssignmentSubmission
type AssignmentSubmission struct {
	BaseModel
	AssignmentID uint      `gorm:"index;not null" json:"assignmentId"`
	StudentID    uint      `gorm:"index;not null" json:"studentId"`
	FilePath     string    `gorm:"size:512;not null" json:"filePath"`
	SubmittedAt  time.Time `json:"submittedAt"`
	Marks        *float64  `json:"marks,omitempty"`

	Assignment *Assignment `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"assignment,omitempty"`
	Student    *Student    `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (AssignmentSubmission) TableName() string {
	return "assignment_submissions"
}

// swagger:model AttendanceRecord
type AttendanceRecord struct {
	BaseModel
	CourseID  uint      `gorm:"index;not null" json:"courseId"`
	StudentID uint      `gorm:"index;not null" json:"studentId"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Present   bool      `gorm:"not null" json:"present"`

	Course  *Course  `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

type ExamType string

const (
	ExamQuiz     ExamType = "quiz"
	ExamMid      ExamType = "mid"
	ExamFinal    ExamType = "final"
	ExamInternal ExamType = "internal"
)

func (t ExamType) Valid() bool {
	switch t {
	case ExamQuiz, ExamMid, ExamFinal, ExamInternal:
		return true
	}
	return false
}

// swagger:model ExamMark
type ExamMark struct {
	BaseModel
	CourseID  uint     `gorm:"index;not null" json:"courseId"`
	StudentID uint     `gorm:"index;not null" json:"studentId"`
	ExamType  ExamType `gorm:"size:20;not null" json:"examType"`
	Marks     float64  `gorm:"not null" json:"marks"`
	OutOf     float64  `gorm:"not null" json:"outOf"`

	Course  *Course  `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (ExamMark) TableName() string {
	return "exam_marks"
}

// swagger:model SupportQuestion
type SupportQuestion struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"userId"`
	CourseID *uint  `gorm:"index" json:"courseId,omitempty"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Body     string `gorm:"type:text;not null" json:"body"`

	User    *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course  *Course         `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Answers []SupportAnswer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

func (SupportQuestion) TableName() string {
	return "support_questions"
}

// swagger:model SupportAnswer
type SupportAnswer struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	UserID     uint   `gorm:"index;not null" json:"userId"`
	Body       string `gorm:"type:text;not null" json:"body"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (SupportAnswer) TableName() string {
	return "support_answers"
}
