package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JCH97/Catalog-APIs/internal/adapters/auth"
	"github.com/JCH97/Catalog-APIs/internal/adapters/config"
	"github.com/JCH97/Catalog-APIs/internal/adapters/http"
	"github.com/JCH97/Catalog-APIs/internal/adapters/http/controllers"
	"github.com/JCH97/Catalog-APIs/internal/adapters/mongo"
	"github.com/JCH97/Catalog-APIs/internal/adapters/mongo/repository"
	"github.com/JCH97/Catalog-APIs/internal/adapters/rabbitmq"
	"github.com/JCH97/Catalog-APIs/internal/adapters/redis"
	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/logger"
	"github.com/JCH97/Catalog-APIs/internal/core/service"
)

// @title       Catalog API
// @version     1.0
// @description Product catalog with review lifecycle and audit trail

// @host     localhost:8080
// @BasePath /

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database connection
	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	publisher, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer publisher.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// repositories
	database := mongoClient.Database(cfg.Mongo.Database)
	productRepository := repository.NewProductRepository(database)
	auditRepository := repository.NewAuditRepository(database)

	// cache and rate limiter
	productCache := redis.NewCache[domain.ProductSnapshot](redisClient, "product-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// token manager
	tokenManager := auth.NewJWTManager(cfg.Auth)

	// services
	productService := service.NewProductService(productRepository, auditRepository, publisher, productCache)
	auditService := service.NewAuditService(auditRepository)
	authService := service.NewAuthService(tokenManager)

	// controllers
	productController := controllers.NewProductController(productService)
	auditController := controllers.NewAuditController(auditService)
	authController := controllers.NewAuthController(authService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
		{Name: "rabbitmq", Check: func(ctx context.Context) error { return publisher.HealthCheck() }},
	})

	// router
	router := http.NewRouter(healthController, authController, productController, auditController, tokenManager, rateLimiter)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
