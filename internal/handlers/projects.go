package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"softwarehouse.dev/internal/models"
	"softwarehouse.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r, []string{"category", "status"}, []string{"featured"})
	result := h.projectService.List(params)
	respondJSON(w, http.StatusOK, result)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	// A non-numeric id matches nothing, same as an unknown one.
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondData(w, http.StatusOK, project)
}

// GetCategories handles GET /api/projects/meta/categories
func (h *ProjectHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, h.projectService.Categories())
}

// GetTechnologies handles GET /api/projects/meta/technologies
func (h *ProjectHandler) GetTechnologies(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, h.projectService.Technologies())
}

// CreateProject handles POST /api/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var in models.NewProject
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project := h.projectService.Create(in)
	respondCreated(w, "Project created successfully", project)
}
