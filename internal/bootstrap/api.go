package bootstrap

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"

	apihttp "ticketassign/adapter/in/http"
	"ticketassign/config"
	"ticketassign/infra/middleware"
	"ticketassign/pkg/logger"
	"ticketassign/pkg/ratelimit"
)

// NewAPI builds the fiber app: webhook ingestion (unauthenticated, HMAC
// verified, rate limited) and the JWT-guarded manual-trigger/decision-read
// routes.
func NewAPI(cfg *config.Config) (*fiber.App, func(), error) {
	logLevel := logger.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = logger.LevelDebug
	}
	logger.Init(logger.Config{Level: logLevel, Service: "ticketassign-api"})

	deps, cleanup, err := NewDependencies(cfg)
	if err != nil {
		logger.WithError(err).Error("failed to initialize dependencies")
		return nil, nil, err
	}

	middleware.InitTokenBlacklist(deps.Redis)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.IsProduction(),
		StrictRouting:         false,
		CaseSensitive:         false,
		ReadBufferSize:        16384,
		WriteBufferSize:       16384,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		BodyLimit:             10 * 1024 * 1024,
		ErrorHandler:          middleware.ErrorHandler(),
	})

	app.Use(middleware.Recover())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	healthHandler := apihttp.NewHealthHandlerWithDeps(deps.DB, deps.Redis)
	healthHandler.Register(app)

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	var limiter *ratelimit.SlidingWindowLimiter
	if deps.Redis != nil {
		limiter = ratelimit.NewSlidingWindowLimiter(deps.Redis, 20, 40)
	}
	webhookHandler := apihttp.NewWebhookHandler(cfg.ServiceNowWebhookSecret, deps.AuditStore, deps.Producer, limiter, zlog)
	webhookHandler.Register(app)

	api := app.Group("/api/v1")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))

	decisionHandler := apihttp.NewDecisionHandler(deps.AssignmentEngine, deps.DecisionRepository)
	decisionHandler.Register(api)

	logger.Info("API server initialized successfully")

	return app, cleanup, nil
}
