package models

// Project represents a portfolio project
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	Status       string   `json:"status"`
	DemoURL      string   `json:"demoUrl"`
	GitHubURL    string   `json:"githubUrl"`
	Featured     bool     `json:"featured"`
}

// NewProject is the request body for POST /api/projects
type NewProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	Status       string   `json:"status"`
	DemoURL      string   `json:"demoUrl"`
	GitHubURL    string   `json:"githubUrl"`
	Featured     bool     `json:"featured"`
}
