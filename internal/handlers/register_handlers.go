package handlers

import (
	"fmt"

	"github.com/SscSPs/restaurant_ledger/cmd/docs"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/dto"
	"github.com/SscSPs/restaurant_ledger/internal/middleware"
	"github.com/SscSPs/restaurant_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return fmt.Errorf("failed to register validators: %w", err)
		}
	}

	uploadLimiter, err := middleware.NewMemoryLimiter(cfg.UploadRateLimit)
	if err != nil {
		return fmt.Errorf("invalid UPLOAD_RATE_LIMIT %q: %w", cfg.UploadRateLimit, err)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// The dashboard is deployed behind an /api prefix; local clients call the
	// bare paths. Both share one upload limiter.
	for _, prefix := range []string{"", "/api"} {
		setupAPIRoutes(r.Group(prefix), cfg, services, uploadLimiter)
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes delegates to specific entity route registrations
func setupAPIRoutes(
	rg *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	uploadLimiter *limiter.Limiter,
) {
	registerUploadRoutes(rg, services.Ingest, cfg.UploadMaxBytes, uploadLimiter)
	registerLedgerRoutes(rg, services.Ledger)
	registerSalesRoutes(rg, services.Sales)
	registerCashRoutes(rg, services.Cash)
	registerDashboardRoutes(rg, services.Dashboard)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
