package chi

import (
	"errors"
	"net/http"
	"strconv"

	chiRouter "github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cookbook/internal/domain"
	logpkg "github.com/kailas-cloud/cookbook/internal/logger"
	healthuc "github.com/kailas-cloud/cookbook/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Assets locates per-recipe images on disk.
type Assets struct {
	Dir         string
	Placeholder string
}

// Server serves the recipe HTTP API.
type Server struct {
	catalog       Catalog
	health        *healthuc.Service
	assets        Assets
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(catalog Catalog, health *healthuc.Service, assets Assets, logger *zap.Logger) *Server {
	s := &Server{
		catalog: catalog,
		health:  health,
		assets:  assets,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeRecipeNotFound),
		sentinelHandler(domain.ErrNotLoaded, http.StatusServiceUnavailable, codeNotLoaded),
		sentinelHandler(domain.ErrLoad, http.StatusBadGateway, codeLoadFailed),
	}
	return s
}

// ListRecipes handles GET /recipes.
func (s *Server) ListRecipes(w http.ResponseWriter, r *http.Request) {
	q, err := parseRecipeQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	recipes, err := s.catalog.Filter(q.criteria(s.catalog.Reset()))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]cardResponse, len(recipes))
	for i, rec := range recipes {
		items[i] = cardToResponse(rec)
	}
	writeJSON(w, http.StatusOK, recipeListResponse{Items: items, Total: len(items)})
}

// GetRecipe handles GET /recipes/{id}.
func (s *Server) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := s.catalog.Get(id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipeToResponse(rec))
}

// ListTags handles GET /tags.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.catalog.Tags()
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tagListResponse{Items: tagsToResponse(tags)})
}

// DefaultCriteria handles GET /criteria/default.
func (s *Server) DefaultCriteria(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, criteriaToResponse(s.catalog.Reset()))
}

// Reload handles POST /admin/reload.
func (s *Server) Reload(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Reload(r.Context()); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	all, err := s.catalog.All()
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	tags, err := s.catalog.Tags()
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	s.logger.Info("Catalog reloaded via API", zap.Int("recipes", len(all)))
	writeJSON(w, http.StatusOK, reloadResponse{Recipes: len(all), Tags: len(tags)})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// pathID parses the {id} URL parameter. It writes a 400 and returns false when invalid.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chiRouter.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrNotLoaded,
		domain.ErrLoad,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
}
