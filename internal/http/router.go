package http

import (
	"context"
	"log/slog"
	"os"

	"github.com/geocoder89/userhub/internal/cache"
	"github.com/geocoder89/userhub/internal/config"
	"github.com/geocoder89/userhub/internal/http/handlers"
	"github.com/geocoder89/userhub/internal/http/middlewares"
	"github.com/geocoder89/userhub/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Deps carries everything the router wires into handlers. Store and Hasher
// are interfaces so tests can swap in fakes or the memory repository.
type Deps struct {
	Log      *slog.Logger
	Store    handlers.UsersStore
	Hasher   handlers.PasswordHasher
	Cache    *cache.UsersCache
	Prom     *observability.Prom
	Registry *prometheus.Registry
	Checks   map[string]func(context.Context) error
	Cfg      config.Config
}

func NewRouter(d Deps) *gin.Engine {
	if os.Getenv("APP_ENV") != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(d.Log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(d.Cfg.CORSAllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(d.Cfg.MaxBodyBytes))
	r.Use(middlewares.RequireJSON())
	r.Use(otelgin.Middleware("userhub"))

	if d.Prom != nil {
		r.Use(d.Prom.GinHandleMiddleware())
	}

	if d.Cfg.RateLimit > 0 {
		limiter := middlewares.NewRateLimiter(d.Cfg.RateLimit, d.Cfg.RateWindow)
		r.Use(limiter.Middleware(middlewares.KeyByIP))
	}

	// health + docs + metrics

	h := handlers.NewHealthHandler(d.Checks)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	r.GET("/docs", handlers.SwaggerUI)
	r.GET("/docs/openapi.yaml", handlers.OpenAPISpec)

	if d.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	// user routes

	usersHandler := handlers.NewUsersHandler(d.Store, d.Hasher, d.Cache, d.Prom, d.Log)

	r.GET("/users", usersHandler.ListUsers)
	r.GET("/users/:id", usersHandler.GetUserByID)
	r.POST("/users", usersHandler.CreateUser)
	r.PUT("/user/:id", usersHandler.UpdateUser)
	r.DELETE("/user/:id", usersHandler.DeleteUser)

	return r
}
