package services

import (
	"time"

	"softwarehouse.dev/internal/models"
	"softwarehouse.dev/internal/query"
	"softwarehouse.dev/internal/store"
)

// blogFilters is the fixed filter order for blog list queries.
var blogFilters = []query.Filter[models.BlogPost]{
	query.EqualFold("category", func(p models.BlogPost) string { return p.Category }),
	query.Bool("featured", func(p models.BlogPost) bool { return p.Featured }),
	query.Bool("published", func(p models.BlogPost) bool { return p.Published }),
}

// BlogService handles blog-related operations
type BlogService struct {
	store *store.Store[models.BlogPost]
	now   func() time.Time
}

// NewBlogService creates a new BlogService
func NewBlogService(s *store.Store[models.BlogPost]) *BlogService {
	return &BlogService{store: s, now: time.Now}
}

// List returns a filtered, paginated view of the blog posts
func (s *BlogService) List(params query.Params) query.Result[models.BlogPost] {
	return query.Run(s.store.List(), blogFilters, params)
}

// GetBySlug returns a specific post by its slug
func (s *BlogService) GetBySlug(slug string) (models.BlogPost, error) {
	return s.store.Find(func(p models.BlogPost) bool { return p.Slug == slug })
}

// Categories returns the distinct post categories in first-seen order
func (s *BlogService) Categories() []string {
	return query.Distinct(s.store.List(), func(p models.BlogPost) []string {
		return []string{p.Category}
	})
}

// Tags returns the distinct tags across all posts
func (s *BlogService) Tags() []string {
	return query.Distinct(s.store.List(), func(p models.BlogPost) []string {
		return p.Tags
	})
}

// Create appends a new post, filling defaults for omitted fields.
// Slug uniqueness is not validated; the detail lookup returns the first match.
func (s *BlogService) Create(in models.NewBlogPost) models.BlogPost {
	if in.Tags == nil {
		in.Tags = []string{}
	}
	published := true
	if in.Published != nil {
		published = *in.Published
	}
	return s.store.Insert(func(id int) models.BlogPost {
		return models.BlogPost{
			ID:      id,
			Title:   in.Title,
			Slug:    in.Slug,
			Excerpt: in.Excerpt,
			Content: in.Content,
			Author: models.Author{
				Name:   "Admin",
				Avatar: "/images/admin.jpg",
				Bio:    "Administrator",
			},
			Category:    in.Category,
			Tags:        in.Tags,
			Featured:    in.Featured,
			Published:   published,
			PublishedAt: s.now().UTC().Format(time.RFC3339),
			ReadTime:    "5 min read",
			Views:       0,
		}
	})
}
