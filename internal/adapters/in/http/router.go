package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"dishly/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one backing service.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// RouterConfig carries the transport settings of the HTTP surface.
type RouterConfig struct {
	JWTSecret []byte
	RateLimit RateLimitConfig
}

// NewRouter assembles the echo instance: middleware chain, the contract
// routes, the health probe and the swagger UI.
func NewRouter(cfg RouterConfig, server *Server, logger *slog.Logger, checks ...HealthCheck) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	if err = registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(PrincipalMiddleware(cfg.JWTSecret))
	e.Use(RateLimiter(cfg.RateLimit))
	e.Use(validator)

	e.GET("/health", healthHandler(checks))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func healthHandler(checks []HealthCheck) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		probeCtx, cancel := context.WithTimeout(ctx.Request().Context(), healthCheckTimeout)
		defer cancel()

		for _, check := range checks {
			if err := check.Check(probeCtx); err != nil {
				return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
					Code:    http.StatusServiceUnavailable,
					Message: check.Name + " is unavailable",
				})
			}
		}

		return ctx.String(http.StatusOK, "Healthy")
	}
}

type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

var registerDocOnce sync.Once

// registerSwaggerDoc publishes the contract to swag, where echo-swagger
// reads doc.json from. swag allows one registration per name.
func registerSwaggerDoc(swagger *openapi3.T) error {
	data, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to render openapi document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: string(data)})
	})
	return nil
}
