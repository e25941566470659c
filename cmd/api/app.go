package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"realestate-backoffice/internal/handlers"
	"realestate-backoffice/internal/middleware"
	"realestate-backoffice/internal/repositories"
	"realestate-backoffice/internal/services"
	"realestate-backoffice/internal/validators"
	"realestate-backoffice/internal/web"
	"realestate-backoffice/pkg/cache"
	"realestate-backoffice/pkg/config"
	"realestate-backoffice/pkg/database"
	"realestate-backoffice/pkg/logger"
	"realestate-backoffice/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// App holds the wired application.
type App struct {
	Config      *config.Config
	DB          *database.DB
	Cache       *cache.Cache
	Router      *gin.Engine
	RateLimiter *middleware.RateLimiter
	Server      *http.Server

	handlers struct {
		clients    *handlers.ClientHandler
		realtors   *handlers.RealtorHandler
		properties *handlers.PropertyHandler
		deals      *handlers.DealHandler
		payments   *handlers.PaymentHandler
		reference  *handlers.ReferenceHandler
		geography  *handlers.GeographyHandler
		auth       *handlers.AuthHandler
	}
	web *web.Controller

	stopCleanup context.CancelFunc
}

// NewApp connects the infrastructure and wires every layer.
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	app.initializeDependencies()

	app.initializeRouter()

	return app
}

func (a *App) initializeDatabase() {
	db, err := database.InitDB(a.Config)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	a.DB = db
}

// initializeCache connects Redis when enabled. The reference tables are
// served straight from the database without it.
func (a *App) initializeCache() {
	if !a.Config.Redis.Enabled {
		logger.GlobalLogger.Println("Redis disabled, reference data is not cached")
		return
	}
	c, err := cache.InitRedis(a.Config)
	if err != nil {
		logger.GlobalLogger.Warnf("Continuing without Redis: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cache.DropReferenceLists(ctx, c); err != nil {
		logger.GlobalLogger.Warnf("Could not drop cached reference lists: %v", err)
	}
	a.Cache = c
}

func (a *App) initializeMetrics() {
	metrics.Init()
}

func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.PerMinute(a.Config.RateLimit.RequestsPerMinute, a.Config.RateLimit.Burst)
	ctx, cancel := context.WithCancel(context.Background())
	a.stopCleanup = cancel
	go a.RateLimiter.Cleanup(ctx, time.Minute)
}

func (a *App) initializeDependencies() {
	// repositories
	clientRepo := repositories.NewClientRepository(a.DB)
	realtorRepo := repositories.NewRealtorRepository(a.DB)
	propertyRepo := repositories.NewPropertyRepository(a.DB)
	dealRepo := repositories.NewDealRepository(a.DB)
	paymentRepo := repositories.NewPaymentRepository(a.DB)
	referenceRepo := repositories.NewReferenceRepository(a.DB)
	geographyRepo := repositories.NewGeographyRepository(a.DB)
	if a.Cache != nil {
		referenceRepo = repositories.NewCachedReferenceRepository(referenceRepo, a.Cache)
		geographyRepo = repositories.NewCachedGeographyRepository(geographyRepo, a.Cache)
	}

	v := validators.NewValidator()

	// services
	clientService := services.NewClientService(clientRepo, dealRepo, a.DB, v)
	realtorService := services.NewRealtorService(realtorRepo, dealRepo, a.DB, v)
	propertyService := services.NewPropertyService(propertyRepo, dealRepo, a.DB, v)
	dealService := services.NewDealService(dealRepo, propertyRepo, realtorRepo, clientRepo, referenceRepo, v)
	paymentService := services.NewPaymentService(paymentRepo, dealRepo, v)
	referenceService := services.NewReferenceService(referenceRepo)
	geographyService := services.NewGeographyService(geographyRepo)
	authService := services.NewAuthService(a.Config.Auth.Operators, a.Config.Auth.JWTSecret, a.Config.Auth.TokenTTL, v)

	// handlers
	a.handlers.clients = handlers.NewClientHandler(clientService)
	a.handlers.realtors = handlers.NewRealtorHandler(realtorService)
	a.handlers.properties = handlers.NewPropertyHandler(propertyService)
	a.handlers.deals = handlers.NewDealHandler(dealService)
	a.handlers.payments = handlers.NewPaymentHandler(paymentService)
	a.handlers.reference = handlers.NewReferenceHandler(referenceService)
	a.handlers.geography = handlers.NewGeographyHandler(geographyService)
	a.handlers.auth = handlers.NewAuthHandler(authService)

	a.web = web.NewController(clientService, realtorService, propertyService, dealService,
		paymentService, referenceService, geographyService)
}

func (a *App) initializeRouter() {
	gin.SetMode(a.Config.Server.Mode)
	a.Router = gin.New()

	tmpl, err := web.Templates()
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to parse templates: %v", err)
		os.Exit(1)
	}
	a.Router.SetHTMLTemplate(tmpl)

	a.setupMiddleware()
	a.setupRoutes()
}

func (a *App) cleanup() {
	if a.stopCleanup != nil {
		a.stopCleanup()
	}
	a.DB.CloseDB()
	a.Cache.Close()
}
