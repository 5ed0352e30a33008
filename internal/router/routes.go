package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadfoundry/directory-api/internal/config"
	"github.com/leadfoundry/directory-api/internal/handler"
	middlewarepkg "github.com/leadfoundry/directory-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Ingest    *handler.IngestHandler
	Companies *handler.CompaniesHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy")
	})

	secured := e.Group("", middlewarepkg.Verification(cfg.VerificationCode))
	secured.POST("/scrape-website", handlers.Ingest.Ingest, middlewarepkg.IngestRateLimiter(cfg.RateLimitIngest))
	secured.POST("/get-companies", handlers.Companies.List)
	secured.POST("/get-company", handlers.Companies.Get)
}
