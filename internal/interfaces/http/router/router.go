package router

import (
	"github.com/gin-gonic/gin"
	"github.com/siteledger/backend/internal/infrastructure/auth"
	"github.com/siteledger/backend/internal/infrastructure/config"
	"github.com/siteledger/backend/internal/infrastructure/logger"
	"github.com/siteledger/backend/internal/interfaces/http/handler"
	"github.com/siteledger/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles the resource handlers wired into the route table
type Handlers struct {
	System   *handler.SystemHandler
	Company  *handler.CompanyHandler
	Project  *handler.ProjectHandler
	Expense  *handler.ExpenseHandler
	Payment  *handler.PaymentHandler
	Manpower *handler.ManpowerHandler
}

// New builds the gin engine with the full middleware chain and the
// versioned API route table.
func New(cfg *config.Config, jwtService *auth.JWTService, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Liveness probe stays outside the versioned, authenticated API
	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")
	api.Use(middleware.IdentityWithConfig(middleware.IdentityConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/system/info",
		},
	}))

	api.GET("/health", h.System.Health)
	api.GET("/system/info", h.System.Info)

	companies := api.Group("/companies")
	companies.GET("", h.Company.List)
	companies.POST("", h.Company.Create)
	companies.GET("/:id", h.Company.Get)
	companies.PUT("/:id", h.Company.Update)
	companies.DELETE("/:id", h.Company.Delete)

	projects := api.Group("/projects")
	projects.GET("", h.Project.List)
	projects.POST("", h.Project.Create)
	projects.GET("/company/:companyId", h.Project.ListForCompany)
	projects.GET("/:id", h.Project.Get)
	projects.PUT("/:id", h.Project.Update)
	projects.DELETE("/:id", h.Project.Delete)

	expenses := api.Group("/expenses")
	expenses.GET("", h.Expense.List)
	expenses.POST("", h.Expense.Create)
	expenses.GET("/project/:projectId", h.Expense.ListForProject)
	expenses.GET("/company/:companyId", h.Expense.ListForCompany)
	expenses.GET("/:id", h.Expense.Get)
	expenses.PUT("/:id", h.Expense.Update)
	expenses.DELETE("/:id", h.Expense.Delete)

	payments := api.Group("/payments")
	payments.GET("", h.Payment.List)
	payments.POST("", h.Payment.Create)
	payments.GET("/project/:projectId", h.Payment.ListForProject)
	payments.GET("/company/:companyId", h.Payment.ListForCompany)
	payments.GET("/:id", h.Payment.Get)
	payments.PUT("/:id", h.Payment.Update)
	payments.DELETE("/:id", h.Payment.Delete)

	manpower := api.Group("/manpower")
	manpower.GET("", h.Manpower.List)
	manpower.POST("", h.Manpower.Create)
	manpower.GET("/project/:projectId", h.Manpower.ListForProject)
	manpower.GET("/company/:companyId", h.Manpower.ListForCompany)
	manpower.GET("/:id", h.Manpower.Get)
	manpower.PUT("/:id", h.Manpower.Update)
	manpower.DELETE("/:id", h.Manpower.Delete)

	return engine
}
