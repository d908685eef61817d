package app

import (
	"context"
	"log"
	"net/http"
	"obe_backend/internal/config"
	"obe_backend/internal/controller"
	"obe_backend/internal/repository"
	"obe_backend/internal/service"
	"obe_backend/pkg/configwatcher"
	"obe_backend/pkg/database"
	"obe_backend/pkg/logger"
	"obe_backend/pkg/monitoring"
	"obe_backend/pkg/security"
	"obe_backend/pkg/tracing"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	teacher    *repository.TeacherRepository
	student    *repository.StudentRepository
	faculty    *repository.FacultyRepository
	department *repository.DepartmentRepository
	program    *repository.ProgramRepository
	course     *repository.CourseRepository
	outcome    *repository.OutcomeRepository
	assignment *repository.AssignmentRepository
	attendance *repository.AttendanceRepository
	examMark   *repository.ExamMarkRepository
	support    *repository.SupportRepository
	examQ      *repository.ExamQuestionRepository
	moderation *repository.ModerationRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	people       *service.PeopleService
	academic     *service.AcademicService
	outcome      *service.OutcomeService
	assignment   *service.AssignmentService
	attendance   *service.AttendanceService
	examMark     *service.ExamMarkService
	support      *service.SupportService
	examQuestion *service.ExamQuestionService
	moderation   *service.ModerationService
	dashboard    *service.DashboardService
	storage      *service.StorageService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	people       *controller.PeopleController
	academic     *controller.AcademicController
	outcome      *controller.OutcomeController
	assignment   *controller.AssignmentController
	attendance   *controller.AttendanceController
	grade        *controller.GradeController
	support      *controller.SupportController
	examQuestion *controller.ExamQuestionController
	moderation   *controller.ModerationController
	dashboard    *controller.DashboardController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		teacher:    repository.NewTeacherRepository(db),
		student:    repository.NewStudentRepository(db),
		faculty:    repository.NewFacultyRepository(db),
		department: repository.NewDepartmentRepository(db),
		program:    repository.NewProgramRepository(db),
		course:     repository.NewCourseRepository(db),
		outcome:    repository.NewOutcomeRepository(db),
		assignment: repository.NewAssignmentRepository(db),
		attendance: repository.NewAttendanceRepository(db),
		examMark:   repository.NewExamMarkRepository(db),
		support:    repository.NewSupportRepository(db),
		examQ:      repository.NewExamQuestionRepository(db),
		moderation: repository.NewModerationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, logger.Log)
	s.people = service.NewPeopleService(repos.user, repos.teacher, repos.student, repos.department, repos.program)
	s.academic = service.NewAcademicService(repos.faculty, repos.department, repos.program, repos.course, repos.teacher)
	s.outcome = service.NewOutcomeService(repos.outcome, repos.program, repos.course)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.course, repos.teacher, repos.student, s.storage, logger.Log)
	s.attendance = service.NewAttendanceService(repos.attendance, repos.course, repos.student, repos.teacher, logger.Log)
	s.examMark = service.NewExamMarkService(repos.examMark, repos.course, repos.student, repos.teacher, logger.Log)
	s.support = service.NewSupportService(repos.support, repos.course)
	s.examQuestion = service.NewExamQuestionService(repos.examQ, repos.course, repos.teacher, repos.outcome)
	s.moderation = service.NewModerationService(repos.examQ, repos.moderation, repos.teacher, repos.department, repos.faculty, repos.course)
	s.dashboard = service.NewDashboardService(db, rdb, logger.Log)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		people:       controller.NewPeopleController(s.people),
		academic:     controller.NewAcademicController(s.academic),
		outcome:      controller.NewOutcomeController(s.outcome),
		assignment:   controller.NewAssignmentController(s.assignment),
		attendance:   controller.NewAttendanceController(s.attendance),
		grade:        controller.NewGradeController(s.examMark),
		support:      controller.NewSupportController(s.support),
		examQuestion: controller.NewExamQuestionController(s.examQuestion, s.moderation),
		moderation:   controller.NewModerationController(s.moderation),
		dashboard:    controller.NewDashboardController(s.dashboard),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.ForceMigrate || cfg.MigrateOnly {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to run migrations", zap.Error(err))
		}
		if cfg.MigrateOnly {
			logger.Log.Info("Migrations finished, exiting")
			os.Exit(0)
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// degrade to uncached operation instead of refusing to start
		logger.Log.Warn("Redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("obe-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		newCfg.ForceMigrate = cfg.ForceMigrate
		app.Config = newCfg
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
		logger.Log.Info("Configuration reloaded")
	})

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
