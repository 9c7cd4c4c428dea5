package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/confreg-invoicing/internal/config"
	"github.com/sangkips/confreg-invoicing/internal/presentation/http/handler"
	"github.com/sangkips/confreg-invoicing/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Invoice *handler.InvoiceHandler
	Landing *handler.LandingHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   deps.Cfg.App.Name,
			"invoicing": deps.Cfg.Fira.Enabled(),
		})
	})

	router.GET("/", h.Landing.Serve)
	router.NoRoute(h.Landing.NoRoute)

	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.NewRateLimiterConfig(
			deps.Cfg.RateLimit.Requests,
			deps.Cfg.RateLimit.Duration,
		))
		v1.Use(rateLimiter.Middleware())

		registerInvoiceRoutes(v1, h)
	}

	return router
}

func registerInvoiceRoutes(rg *gin.RouterGroup, h *Handlers) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("/preview", h.Invoice.Preview)
		invoices.POST("", h.Invoice.Submit)
		invoices.GET("/:id/status", h.Invoice.Status)
	}
}
