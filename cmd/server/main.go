package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-network/config"
	"social-network/internal/handler"
	"social-network/internal/model"
	"social-network/internal/repository"
	"social-network/internal/service"
	dbPkg "social-network/pkg/db"
	"social-network/pkg/logger"
	redisPkg "social-network/pkg/redis"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize logging
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== social network starting ===")
	log.Info("server configuration",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Connect the database
	if _, err := dbPkg.InitDB(cfg.Database); err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("failed to close database connection", zap.Error(err))
		}
	}()
	log.Info("database connected")

	// 3.1 Migrate schema
	if err := dbPkg.AutoMigrate(&model.Region{}, &model.City{}, &model.User{}, &model.Friendship{}); err != nil {
		log.Fatal("auto migration failed", zap.Error(err))
	}
	log.Info("auto migration complete")

	// 3.2 Connect the cache; page caching is best-effort, so a missing
	// Redis only degrades performance.
	if err := redisPkg.InitRedis(cfg.Redis); err != nil {
		log.Warn("redis unavailable, user page caching disabled", zap.Error(err))
	} else {
		defer redisPkg.Close()
		log.Info("redis connected")
	}

	// 3.3 Wire services. Mutations go through a transaction runner that
	// rebinds the repositories to the transaction handle.
	userRepo := repository.NewUserRepository(dbPkg.GetDB())
	cityRepo := repository.NewCityRepository(dbPkg.GetDB())
	tx := service.TxRunner(func(fn func(users service.UserRepo, cities service.CityRepo) error) error {
		return dbPkg.GetDB().Transaction(func(txDB *gorm.DB) error {
			return fn(repository.NewUserRepository(txDB), repository.NewCityRepository(txDB))
		})
	})
	userSvc := service.NewUserService(userRepo, tx)
	citySvc := service.NewCityService(cityRepo)
	userHandler := handler.NewUserHandler(userSvc)
	cityHandler := handler.NewCityHandler(citySvc)

	// 4. Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. Router and middleware
	router := gin.New()
	router.Use(logger.LoggerMiddleware())
	router.Use(logger.ErrorLoggerMiddleware())

	// 6. Routes
	router.GET("/health", handler.Health)

	users := router.Group("/users")
	{
		users.POST("", userHandler.Register)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.GetPage)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
		users.GET("/:id/friends", userHandler.Friends)
		users.PUT("/:id/friends", userHandler.AddFriend)
		users.DELETE("/:id/friends", userHandler.DeleteFriend)
		users.GET("/:id/candidates", userHandler.Candidates)
	}

	cities := router.Group("/cities")
	{
		cities.GET("", cityHandler.List)
	}

	// 7. HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 8. Start serving
	go func() {
		log.Info("HTTP server listening", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", zap.Error(err))
		}
	}()

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
