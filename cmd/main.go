package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	configs "github.com/rumahpeduli/cms-api/config"
	"github.com/rumahpeduli/cms-api/internal/handler"
	"github.com/rumahpeduli/cms-api/internal/middleware"
	"github.com/rumahpeduli/cms-api/internal/repository"
	"github.com/rumahpeduli/cms-api/internal/router"
	"github.com/rumahpeduli/cms-api/internal/service"
	"github.com/rumahpeduli/cms-api/pkg/database"
	"github.com/rumahpeduli/cms-api/pkg/logger"
	"github.com/rumahpeduli/cms-api/pkg/mailer"
	"github.com/rumahpeduli/cms-api/pkg/redis"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(config.App.Environment); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
	)

	db, err := database.NewPostgresDB(database.Config{
		Host:            config.Database.Host,
		Port:            config.Database.Port,
		User:            config.Database.User,
		Password:        config.Database.Password,
		Database:        config.Database.Name,
		SSLMode:         config.Database.SSLMode,
		MaxIdleConns:    config.Database.MaxIdleConns,
		MaxOpenConns:    config.Database.MaxOpenConns,
		ConnMaxLifetime: config.Database.ConnMaxLifetime,
		ConnMaxIdleTime: config.Database.ConnMaxIdleTime,
	})
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	if err := database.Seed(db); err != nil {
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
		// Don't fail - seed data may already exist
	}

	// Redis is optional at runtime: without it the partner cache and
	// OTP throttle are skipped, everything else keeps working
	var (
		cache    service.PartnerCache
		throttle service.OTPThrottle
	)
	redisClient, err := redis.NewClient(config)
	if err != nil {
		logger.GetLogger().Warn("Redis unavailable, running without cache and OTP throttle", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		cache = redisClient
		throttle = redisClient
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	programRepo := repository.NewProgramRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	workRepo := repository.NewDailyWorkRepository(db)

	// Services
	jwtService := service.NewJWTService(config.JWT.Secret, config.JWT.ExpirationTime)
	authService := service.NewAuthService(userRepo, otpRepo, jwtService, mailer.NewMailer(config), throttle, service.AuthConfig{
		OTPTTL:           config.OTP.TTL,
		OTPRequestLimit:  int64(config.OTP.RequestLimit),
		OTPRequestWindow: config.OTP.RequestWindow,
	})
	userService := service.NewUserService(userRepo)
	activityService := service.NewActivityService(activityRepo, programRepo, organizationRepo)
	partnerService := service.NewPartnerService(partnerRepo, cache)
	workService := service.NewDailyWorkService(workRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	activityHandler := handler.NewActivityHandler(activityService)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	workHandler := handler.NewDailyWorkHandler(workService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	if err := middleware.RegisterValidators(); err != nil {
		logger.GetLogger().Fatal("Failed to register validators", zap.Error(err))
	}
	jwtMiddleware := middleware.NewJWTMiddleware(jwtService, userRepo)

	r := router.NewRouter(
		authHandler,
		userHandler,
		activityHandler,
		partnerHandler,
		workHandler,
		healthHandler,

		jwtMiddleware,
		config,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
