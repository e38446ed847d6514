package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/JCH97/Catalog-APIs/internal/adapters/config"
	"github.com/JCH97/Catalog-APIs/internal/adapters/http/controllers"
	"github.com/JCH97/Catalog-APIs/internal/adapters/http/middleware"
	"github.com/JCH97/Catalog-APIs/internal/core/port"
	"github.com/gin-gonic/gin"
)

type Router struct {
	healthController  *controllers.HealthController
	authController    *controllers.AuthController
	productController *controllers.ProductController
	auditController   *controllers.AuditController
	tokens            port.TokenPort
	rateLimiter       middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	productController *controllers.ProductController,
	auditController *controllers.AuditController,
	tokens port.TokenPort,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		productController: productController,
		auditController:   auditController,
		tokens:            tokens,
		rateLimiter:       rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter
	requireAuth := middleware.RequireAuth(r.tokens)

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/auth/signin", middleware.RateLimit(rl, 10, 1*time.Minute), r.authController.SignIn)

		v1Group.GET("/products", r.productController.GetAll)
		v1Group.GET("/products/:id", r.productController.GetProduct)
		v1Group.GET("/products/:id/audit", r.auditController.GetProductAudit)

		v1Group.POST("/products", requireAuth, middleware.RateLimit(rl, 20, 1*time.Minute), r.productController.CreateProduct)
		v1Group.PATCH("/products/:id", requireAuth, middleware.RateLimit(rl, 20, 1*time.Minute), r.productController.UpdateProduct)
		v1Group.POST("/products/:id/approve", requireAuth, middleware.RateLimit(rl, 20, 1*time.Minute), r.productController.ApproveProduct)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
