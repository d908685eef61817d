package app

import (
	"obe_backend/docs"
	"obe_backend/internal/config"
	"obe_backend/internal/middleware"
	"obe_backend/internal/model"
	"obe_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerAuthenticatedRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, repos, cfg)
}

// Public surface: registration, login, and read-only academic structure.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	api := router.Group("/api")
	{
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)

		api.GET("/faculties", c.academic.ListFaculties)
		api.GET("/faculties/:id", c.academic.GetFaculty)
		api.GET("/departments", c.academic.ListDepartments)
		api.GET("/departments/:id", c.academic.GetDepartment)
		api.GET("/programs", c.academic.ListPrograms)
		api.GET("/programs/:id", c.academic.GetProgram)
		api.GET("/courses", c.academic.ListCourses)
		api.GET("/courses/:id", c.academic.GetCourse)

		api.GET("/programs/:id/peos", c.outcome.ListPEOs)
		api.GET("/programs/:id/plos", c.outcome.ListPLOs)
		api.GET("/programs/:id/outcome-matrix", c.outcome.Matrix)
		api.GET("/courses/:id/clos", c.outcome.ListCLOs)
		api.GET("/courses/:id/contents", c.outcome.ListContents)
		api.GET("/courses/:id/lesson-plans", c.outcome.ListLessonPlans)

		api.GET("/teachers", c.people.ListTeachers)
		api.GET("/teachers/:id", c.people.GetTeacher)

		api.GET("/support/questions", middleware.TryAuthMiddleware(a.Config), c.support.List)
		api.GET("/support/questions/:id", middleware.TryAuthMiddleware(a.Config), c.support.Get)
	}
}

// Routes any authenticated user may reach.
func (a *App) registerAuthenticatedRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/profile", c.auth.GetProfile)

	group.GET("/students/:id", c.people.GetStudent)
	group.GET("/students", c.people.ListStudents)

	// student-facing course activity
	group.GET("/assignments", c.assignment.ListByCourse)
	group.GET("/assignments/pending", c.assignment.ListPending)
	group.GET("/assignments/:id", c.assignment.Get)
	group.POST("/assignments/:id/submit", c.assignment.Submit)
	group.GET("/attendance/me", c.attendance.MySummary)
	group.GET("/marks/me", c.grade.MyMarks)

	group.POST("/support/questions", c.support.Ask)
	group.POST("/support/questions/:id/answers", c.support.Answer)
	group.DELETE("/support/questions/:id", c.support.Delete)
}

// Teacher-only surface: authoring, moderation, marking. RoleMiddleware lets
// admins through every gate.
func (a *App) registerTeacherRoutes(group *gin.RouterGroup, c *controllers) {
	teacher := group.Group("/")
	teacher.Use(middleware.RoleMiddleware(model.RoleTeacher))
	{
		teacher.POST("/assignments", c.assignment.Create)
		teacher.POST("/assignments/:id/file", c.assignment.AttachFile)
		teacher.GET("/assignments/:id/submissions", c.assignment.ListSubmissions)
		teacher.POST("/assignments/:id/grade", c.assignment.Grade)

		teacher.POST("/attendance", c.attendance.Record)
		teacher.GET("/attendance", c.attendance.ListByDate)
		teacher.GET("/attendance/summary", c.attendance.Summary)

		teacher.POST("/marks", c.grade.Record)
		teacher.GET("/marks", c.grade.ListByCourse)
		teacher.GET("/marks/totals", c.grade.Totals)

		teacher.POST("/courses/:id/clos", c.outcome.CreateCLO)
		teacher.POST("/courses/:id/contents", c.outcome.CreateContent)
		teacher.POST("/courses/:id/lesson-plans", c.outcome.CreateLessonPlan)
		teacher.POST("/mappings/clo-plo", c.outcome.MapCLOToPLO)
		teacher.DELETE("/mappings/clo-plo", c.outcome.UnmapCLOFromPLO)

		// exam paper authoring
		teacher.POST("/exam-questions", c.examQuestion.Create)
		teacher.GET("/exam-questions", c.examQuestion.ListMine)
		teacher.GET("/exam-questions/:id", c.examQuestion.Get)
		teacher.PUT("/exam-questions/:id", c.examQuestion.Update)
		teacher.POST("/exam-questions/:id/items", c.examQuestion.AddItem)
		teacher.PUT("/exam-questions/:id/items/:itemId", c.examQuestion.UpdateItem)
		teacher.DELETE("/exam-questions/:id/items/:itemId", c.examQuestion.DeleteItem)
		teacher.POST("/exam-questions/:id/submit", c.examQuestion.Submit)
		teacher.POST("/exam-questions/:id/resubmit", c.examQuestion.Resubmit)

		// moderation workflow
		teacher.GET("/moderation", c.moderation.Queue)
		teacher.GET("/moderation/capabilities", c.moderation.Capabilities)
		teacher.GET("/moderation/:id", c.moderation.Detail)
		teacher.POST("/moderation/:id/pickup", c.moderation.PickUp)
		teacher.POST("/moderation/:id/revision", c.moderation.RequestRevision)
		teacher.POST("/moderation/:id/approve", c.moderation.Approve)
		teacher.PUT("/moderation/:id/items/:itemId/review", c.moderation.ReviewItem)

		teacher.POST("/moderation-committees", c.moderation.FormCommittee)
		teacher.GET("/moderation-committees", c.moderation.ListCommittees)
		teacher.GET("/moderation-committees/:id", c.moderation.GetCommittee)
		teacher.DELETE("/moderation-committees/:id", c.moderation.DisbandCommittee)
	}
}

// Administration surface: user accounts, academic structure writes, profile
// provisioning, dashboard.
func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.RoleAdmin),
	)
	{
		admin.GET("/dashboard", c.dashboard.Stats)

		admin.GET("/users", c.user.List)
		admin.GET("/users/:id", c.user.Get)
		admin.PUT("/users/:id/role", c.user.UpdateRole)
		admin.PUT("/users/:id/disabled", c.user.SetDisabled)

		admin.POST("/faculties", c.academic.CreateFaculty)
		admin.PUT("/faculties/:id", c.academic.UpdateFaculty)
		admin.DELETE("/faculties/:id", c.academic.DeleteFaculty)
		admin.POST("/departments", c.academic.CreateDepartment)
		admin.PUT("/departments/:id", c.academic.UpdateDepartment)
		admin.DELETE("/departments/:id", c.academic.DeleteDepartment)
		admin.POST("/programs", c.academic.CreateProgram)
		admin.DELETE("/programs/:id", c.academic.DeleteProgram)
		admin.POST("/courses", c.academic.CreateCourse)
		admin.PUT("/courses/:id", c.academic.UpdateCourse)
		admin.DELETE("/courses/:id", c.academic.DeleteCourse)

		admin.POST("/programs/:id/peos", c.outcome.CreatePEO)
		admin.POST("/programs/:id/plos", c.outcome.CreatePLO)
		admin.POST("/mappings/plo-peo", c.outcome.MapPLOToPEO)
		admin.DELETE("/mappings/plo-peo", c.outcome.UnmapPLOFromPEO)

		admin.POST("/teachers", c.people.CreateTeacher)
		admin.POST("/students", c.people.CreateStudent)
	}
}
