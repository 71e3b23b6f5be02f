package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"softwarehouse.dev/internal/models"
	"softwarehouse.dev/internal/services"
)

// BlogHandler handles blog-related endpoints
type BlogHandler struct {
	blogService *services.BlogService
	logger      *slog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(bs *services.BlogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{blogService: bs, logger: logger}
}

// ListPosts handles GET /api/blog
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r, []string{"category"}, []string{"featured", "published"})
	result := h.blogService.List(params)
	respondJSON(w, http.StatusOK, result)
}

// GetPost handles GET /api/blog/{slug}
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.blogService.GetBySlug(slug)
	if err != nil {
		respondError(w, http.StatusNotFound, "Blog post not found")
		return
	}

	respondData(w, http.StatusOK, post)
}

// GetCategories handles GET /api/blog/meta/categories
func (h *BlogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, h.blogService.Categories())
}

// GetTags handles GET /api/blog/meta/tags
func (h *BlogHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, h.blogService.Tags())
}

// CreatePost handles POST /api/blog
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var in models.NewBlogPost
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post := h.blogService.Create(in)
	respondCreated(w, "Blog post created successfully", post)
}
