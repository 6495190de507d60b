package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/courseconnect/backend/internal/app/controllers"
	appRepos "github.com/courseconnect/backend/internal/app/repositories"
	appRoutes "github.com/courseconnect/backend/internal/app/routes"
	appServices "github.com/courseconnect/backend/internal/app/services"
	"github.com/courseconnect/backend/internal/config"
	appMiddleware "github.com/courseconnect/backend/internal/middleware"
	"github.com/courseconnect/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService    appServices.CourseService // Interface type
	HealthController *appControllers.HealthController
	CourseController *appControllers.CourseController
	PageController   *appControllers.PageController
	Repos            *appRepos.Repositories
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()

	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)

	deps.HealthController = appControllers.NewHealthController()
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.PageController = appControllers.NewPageController(deps.CourseService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	// Security headers; SSL termination is the reverse proxy's job
	router.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	router.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	// HTML templates for the landing page
	router.LoadHTMLGlob(cfg.Web.TemplatesGlob)

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.HealthController,
		deps.CourseController,
		deps.PageController,
	)

	return router
}
