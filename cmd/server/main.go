package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ohtu-ilmo/review-service/internal/cache"
	"github.com/ohtu-ilmo/review-service/internal/config"
	"github.com/ohtu-ilmo/review-service/internal/handlers"
	"github.com/ohtu-ilmo/review-service/internal/repositories/postgres"
	"github.com/ohtu-ilmo/review-service/internal/review"
	"github.com/ohtu-ilmo/review-service/internal/services"
	"github.com/ohtu-ilmo/review-service/internal/utils"
	"github.com/ohtu-ilmo/review-service/internal/validator"
	"github.com/ohtu-ilmo/review-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogger := utils.ToSlogLogger(logger)

	// The question template is static per deployment; refuse to start
	// without a loadable one.
	template, err := review.LoadTemplate(cfg.TemplatePath)
	if err != nil {
		log.Fatalf("failed to load question template: %v", err)
	}
	logger.Info("question template loaded",
		"path", cfg.TemplatePath,
		"version", template.Version,
		"questions", len(template.Questions))

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := postgres.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	eventCfg := config.LoadEventConfig()
	publisher, err := eventCfg.CreateEventPublisher(slogger)
	if err != nil {
		log.Fatalf("failed to create event publisher: %v", err)
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	cacheService := cache.NewRedisCache(redisClient, slogger)
	serviceManager := services.NewServiceManager(repo, cacheService, publisher, slogger, validator.New())

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(serviceManager, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("review service listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
