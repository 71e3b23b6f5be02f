package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"softwarehouse.dev/internal/config"
	"softwarehouse.dev/internal/middleware"
	"softwarehouse.dev/internal/query"
	"softwarehouse.dev/internal/services"
)

// maxRequestBodySize limits POST body sizes.
const maxRequestBodySize = 1 << 20 // 1 MB

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger *slog.Logger, projects *services.ProjectService, blog *services.BlogService, contact *services.ContactService) http.Handler {
	r := chi.NewRouter()

	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(metrics.Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.ClientOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	// Initialize handlers
	projectHandler := NewProjectHandler(projects, logger)
	blogHandler := NewBlogHandler(blog, logger)
	contactHandler := NewContactHandler(contact, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.ListProjects)
			r.Post("/", projectHandler.CreateProject)
			r.Get("/meta/categories", projectHandler.GetCategories)
			r.Get("/meta/technologies", projectHandler.GetTechnologies)
			r.Get("/{id}", projectHandler.GetProject)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", blogHandler.ListPosts)
			r.Post("/", blogHandler.CreatePost)
			r.Get("/meta/categories", blogHandler.GetCategories)
			r.Get("/meta/tags", blogHandler.GetTags)
			r.Get("/{slug}", blogHandler.GetPost)
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/", contactHandler.SubmitContact)
			r.Get("/info", contactHandler.GetInfo)
		})

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Static files for the separately built client
	fileServer := http.FileServer(http.Dir(cfg.StaticPath))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Serve index.html at root and for client-side routes; unknown API
	// paths stay JSON.
	index := func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticPath, "index.html"))
	}
	r.Get("/", index)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			respondError(w, http.StatusNotFound, "Not found")
			return
		}
		index(w, r)
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// respondError writes a {success:false, error} envelope
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

// respondData writes a {success:true, data} envelope
func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, map[string]any{
		"success": true,
		"data":    data,
	})
}

// respondCreated writes a 201 {success:true, message, data} envelope
func respondCreated(w http.ResponseWriter, message string, data any) {
	respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// parseListParams extracts pagination plus the recognized filter keys.
// String filters apply only on a non-empty value; boolean filters apply
// whenever the key is present, even with an empty or garbage value.
func parseListParams(r *http.Request, stringKeys, boolKeys []string) query.Params {
	q := r.URL.Query()
	filters := make(map[string]string)
	for _, k := range stringKeys {
		if v := q.Get(k); v != "" {
			filters[k] = v
		}
	}
	for _, k := range boolKeys {
		if q.Has(k) {
			filters[k] = q.Get(k)
		}
	}
	return query.Params{
		Filters: filters,
		Page:    parseIntParam(r, "page", 1),
		Limit:   parseIntParam(r, "limit", query.DefaultLimit),
	}
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}
