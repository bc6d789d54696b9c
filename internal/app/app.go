package app

import (
	"context"
	"couple_coach_backend/internal/config"
	"couple_coach_backend/internal/controller"
	"couple_coach_backend/internal/repository"
	"couple_coach_backend/internal/service"
	"couple_coach_backend/pkg/configwatcher"
	"couple_coach_backend/pkg/database"
	"couple_coach_backend/pkg/logger"
	"couple_coach_backend/pkg/monitoring"
	"couple_coach_backend/pkg/security"
	"couple_coach_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
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
	preference *repository.PreferenceRepository
	couple     *repository.CoupleRepository
	checkin    *repository.CheckInRepository
	assessment *repository.AssessmentRepository
	health     *repository.HealthScoreRepository
	date       *repository.DateEventRepository
	flirt      *repository.FlirtRepository
	timeline   *repository.TimelineRepository
}

type services struct {
	storage      *service.StorageService
	auth         *service.AuthService
	user         *service.UserService
	couple       *service.CoupleService
	assessment   *service.AssessmentService
	checkin      *service.CheckInService
	health       *service.HealthScoreService
	coachContext *service.CoachContextService
	ai           *service.AIService
	coach        *service.CoachService
	dashboard    *service.DashboardService
	date         *service.DateService
	flirt        *service.FlirtService
	timeline     *service.TimelineService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	couple     *controller.CoupleController
	assessment *controller.AssessmentController
	checkin    *controller.CheckInController
	coach      *controller.CoachController
	dashboard  *controller.DashboardController
	date       *controller.DateController
	flirt      *controller.FlirtController
	timeline   *controller.TimelineController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		preference: repository.NewPreferenceRepository(db),
		couple:     repository.NewCoupleRepository(db),
		checkin:    repository.NewCheckInRepository(db),
		assessment: repository.NewAssessmentRepository(db),
		health:     repository.NewHealthScoreRepository(db),
		date:       repository.NewDateEventRepository(db),
		flirt:      repository.NewFlirtRepository(db),
		timeline:   repository.NewTimelineRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.preference, s.storage)
	s.couple = service.NewCoupleService(repos.couple, repos.user)
	s.assessment = service.NewAssessmentService(repos.assessment)
	s.checkin = service.NewCheckInService(repos.checkin, repos.couple, rdb)
	s.health = service.NewHealthScoreService(repos.couple, repos.health, s.assessment, s.checkin)

	s.coachContext = service.NewCoachContextService(
		repos.user,
		repos.preference,
		repos.couple,
		repos.assessment,
		repos.checkin,
		repos.health,
		repos.date,
		repos.flirt,
		repos.timeline,
		logger.Log,
	)

	s.ai = service.NewAIService(cfg.AI)
	s.coach = service.NewCoachService(s.coachContext, s.ai)
	s.dashboard = service.NewDashboardService(s.checkin, s.health, repos.couple, repos.date, repos.flirt, repos.timeline)
	s.date = service.NewDateService(repos.date, repos.couple)
	s.flirt = service.NewFlirtService(repos.flirt, repos.couple)
	s.timeline = service.NewTimelineService(repos.timeline, repos.couple, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		user:       controller.NewUserController(s.user),
		couple:     controller.NewCoupleController(s.couple, s.health),
		assessment: controller.NewAssessmentController(s.assessment),
		checkin:    controller.NewCheckInController(s.checkin),
		coach:      controller.NewCoachController(s.coach),
		dashboard:  controller.NewDashboardController(s.dashboard),
		date:       controller.NewDateController(s.date),
		flirt:      controller.NewFlirtController(s.flirt),
		timeline:   controller.NewTimelineController(s.timeline),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
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
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("couple-coach", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// Hot-reload the AI provider settings when the config file changes, so
	// the model or API key can be rotated without a restart.
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		services.ai.UpdateConfig(newCfg.AI)
	})
	go configwatcher.WatchConfig(filepath.Join("configs", "config.yaml"), cfg, func(raw interface{}) {
		newCfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		logger.Log.Info("Configuration reloaded")
		for _, callback := range app.configCallbacks {
			callback(newCfg)
		}
	})

	return app
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

	log.Println("Server exiting")
}
