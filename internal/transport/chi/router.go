package chi

import (
	"net/http"
	"time"

	chiRouter "github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cookbook/internal/metrics"
)

const metricsPath = "/metrics"

// RouterConfig holds the cross-cutting HTTP settings.
type RouterConfig struct {
	AllowedOrigins    []string
	RequestsPerMinute int // 0 disables rate limiting
	AdminAPIKeys      []string
}

// NewRouter mounts the API on a chi router with the middleware chain:
// recoverer, request id, wide event, CORS, rate limit, metrics.
func NewRouter(s *Server, cfg RouterConfig, logger *zap.Logger) http.Handler {
	r := chiRouter.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}
	if cfg.RequestsPerMinute > 0 {
		r.Use(httprate.Limit(
			cfg.RequestsPerMinute,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(rateLimitExceeded),
		))
	}
	r.Use(metrics.Middleware(metricsPath))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeRouteNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	})

	r.Get("/recipes", s.ListRecipes)
	r.Get("/recipes/{id}", s.GetRecipe)
	r.Get("/tags", s.ListTags)
	r.Get("/criteria/default", s.DefaultCriteria)
	r.Get("/images/{id}", s.GetImage)
	r.Get("/health", s.HealthCheck)
	r.Get(metricsPath, s.Metrics)

	r.Route("/admin", func(r chiRouter.Router) {
		r.Use(AdminAuthMiddleware(cfg.AdminAPIKeys))
		r.Post("/reload", s.Reload)
	})

	return r
}
