package services

import (
	"softwarehouse.dev/internal/models"
	"softwarehouse.dev/internal/query"
	"softwarehouse.dev/internal/store"
)

// projectFilters is the fixed filter order for project list queries.
var projectFilters = []query.Filter[models.Project]{
	query.EqualFold("category", func(p models.Project) string { return p.Category }),
	query.EqualFold("status", func(p models.Project) string { return p.Status }),
	query.Bool("featured", func(p models.Project) bool { return p.Featured }),
}

// ProjectService handles project-related operations
type ProjectService struct {
	store *store.Store[models.Project]
}

// NewProjectService creates a new ProjectService
func NewProjectService(s *store.Store[models.Project]) *ProjectService {
	return &ProjectService{store: s}
}

// List returns a filtered, paginated view of the projects
func (s *ProjectService) List(params query.Params) query.Result[models.Project] {
	return query.Run(s.store.List(), projectFilters, params)
}

// Get returns a specific project by id
func (s *ProjectService) Get(id int) (models.Project, error) {
	return s.store.Find(func(p models.Project) bool { return p.ID == id })
}

// Categories returns the distinct project categories in first-seen order
func (s *ProjectService) Categories() []string {
	return query.Distinct(s.store.List(), func(p models.Project) []string {
		return []string{p.Category}
	})
}

// Technologies returns the distinct technologies across all projects
func (s *ProjectService) Technologies() []string {
	return query.Distinct(s.store.List(), func(p models.Project) []string {
		return p.Technologies
	})
}

// Create appends a new project, filling defaults for omitted fields
func (s *ProjectService) Create(in models.NewProject) models.Project {
	if in.Image == "" {
		in.Image = "/images/default-project.jpg"
	}
	if in.Technologies == nil {
		in.Technologies = []string{}
	}
	if in.Status == "" {
		in.Status = "In Progress"
	}
	return s.store.Insert(func(id int) models.Project {
		return models.Project{
			ID:           id,
			Title:        in.Title,
			Description:  in.Description,
			Image:        in.Image,
			Technologies: in.Technologies,
			Category:     in.Category,
			Status:       in.Status,
			DemoURL:      in.DemoURL,
			GitHubURL:    in.GitHubURL,
			Featured:     in.Featured,
		}
	})
}
