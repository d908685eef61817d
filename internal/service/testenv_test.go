package service

import (
	"obe_backend/internal/model"
	"obe_backend/internal/repository"
	"obe_backend/internal/util"
	"obe_backend/pkg/database"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires every repository and service against an in-memory sqlite
// database, plus a small academic fixture used across the workflow tests:
// one faculty, one department, one program, one course, and three teachers
// (chairman, course teacher, committee member).
type testEnv struct {
	db *gorm.DB

	users      *repository.UserRepository
	teachers   *repository.TeacherRepository
	students   *repository.StudentRepository
	faculties  *repository.FacultyRepository
	depts      *repository.DepartmentRepository
	programs   *repository.ProgramRepository
	courses    *repository.CourseRepository
	outcomes   *repository.OutcomeRepository
	examQ      *repository.ExamQuestionRepository
	moderation *repository.ModerationRepository
	attendance *repository.AttendanceRepository
	marks      *repository.ExamMarkRepository

	examQuestions *ExamQuestionService
	mod           *ModerationService

	faculty    *model.Faculty
	department *model.Department
	program    *model.Program
	course     *model.Course

	chairman *model.Teacher // department chairman
	author   *model.Teacher // course teacher authoring papers
	member   *model.Teacher // plain committee member
	outsider *model.Teacher // teacher in another department
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	env := &testEnv{
		db:         db,
		users:      repository.NewUserRepository(db),
		teachers:   repository.NewTeacherRepository(db),
		students:   repository.NewStudentRepository(db),
		faculties:  repository.NewFacultyRepository(db),
		depts:      repository.NewDepartmentRepository(db),
		programs:   repository.NewProgramRepository(db),
		courses:    repository.NewCourseRepository(db),
		outcomes:   repository.NewOutcomeRepository(db),
		examQ:      repository.NewExamQuestionRepository(db),
		moderation: repository.NewModerationRepository(db),
		attendance: repository.NewAttendanceRepository(db),
		marks:      repository.NewExamMarkRepository(db),
	}

	env.examQuestions = NewExamQuestionService(env.examQ, env.courses, env.teachers, env.outcomes)
	env.mod = NewModerationService(env.examQ, env.moderation, env.teachers, env.depts, env.faculties, env.courses)

	env.faculty = &model.Faculty{Name: "Engineering"}
	mustCreate(t, db, env.faculty)

	env.department = &model.Department{FacultyID: env.faculty.ID, Name: "Computer Science"}
	mustCreate(t, db, env.department)

	env.chairman = env.addTeacher(t, "chairman@obe.local")
	env.author = env.addTeacher(t, "author@obe.local")
	env.member = env.addTeacher(t, "member@obe.local")

	env.department.ChairmanID = &env.chairman.ID
	if err := db.Save(env.department).Error; err != nil {
		t.Fatalf("assign chairman: %v", err)
	}

	otherDept := &model.Department{FacultyID: env.faculty.ID, Name: "Mathematics"}
	mustCreate(t, db, otherDept)
	env.outsider = env.addTeacherIn(t, "outsider@obe.local", otherDept.ID)

	env.program = &model.Program{DepartmentID: env.department.ID, Name: "BSc CSE", DegreeLevel: "BSc"}
	mustCreate(t, db, env.program)

	env.course = &model.Course{
		ProgramID: env.program.ID,
		Code:      "CSE-301",
		Title:     "Database Systems",
		Semester:  "6th",
		TeacherID: &env.author.ID,
	}
	mustCreate(t, db, env.course)

	return env
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func (e *testEnv) addTeacher(t *testing.T, email string) *model.Teacher {
	return e.addTeacherIn(t, email, e.department.ID)
}

func (e *testEnv) addTeacherIn(t *testing.T, email string, departmentID uint) *model.Teacher {
	t.Helper()
	user := &model.User{Name: email, Email: email, Password: "x", Role: model.RoleTeacher}
	mustCreate(t, e.db, user)
	teacher := &model.Teacher{UserID: user.ID, DepartmentID: departmentID, Designation: "Lecturer"}
	mustCreate(t, e.db, teacher)
	return teacher
}

func (e *testEnv) addStudent(t *testing.T, email, regNo string) *model.Student {
	t.Helper()
	user := &model.User{Name: email, Email: email, Password: "x", Role: model.RoleStudent}
	mustCreate(t, e.db, user)
	student := &model.Student{UserID: user.ID, ProgramID: e.program.ID, RegistrationNo: regNo}
	mustCreate(t, e.db, student)
	return student
}

// claimsFor builds token claims for a teacher fixture.
func (e *testEnv) claimsFor(t *testing.T, teacher *model.Teacher) *util.Claims {
	t.Helper()
	user, err := e.users.FindByID(teacher.UserID)
	if err != nil {
		t.Fatalf("load user %d: %v", teacher.UserID, err)
	}
	return &util.Claims{UserID: user.ID, Role: user.Role, Email: user.Email}
}

func (e *testEnv) adminClaims(t *testing.T) *util.Claims {
	t.Helper()
	user := &model.User{Name: "admin", Email: "admin@test.local", Password: "x", Role: model.RoleAdmin}
	mustCreate(t, e.db, user)
	return &util.Claims{UserID: user.ID, Role: user.Role, Email: user.Email}
}

// newPaper creates a draft paper owned by the author fixture.
func (e *testEnv) newPaper(t *testing.T) *model.ExamQuestion {
	t.Helper()
	q, err := e.examQuestions.Create(e.claimsFor(t, e.author), CreateExamQuestionRequest{
		CourseID: e.course.ID,
		Session:  "2025-2026",
		Semester: "6th",
	})
	if err != nil {
		t.Fatalf("create paper: %v", err)
	}
	return q
}

// newCommittee forms a committee chaired by the chairman with the member
// fixture on it.
func (e *testEnv) newCommittee(t *testing.T) *model.ModerationCommittee {
	t.Helper()
	committee, err := e.mod.FormCommittee(e.claimsFor(t, e.chairman), FormCommitteeRequest{
		DepartmentID: e.department.ID,
		Session:      "2025-2026",
		Semester:     "6th",
		MemberIDs:    []uint{e.member.ID},
	})
	if err != nil {
		t.Fatalf("form committee: %v", err)
	}
	return committee
}
