package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjects_Embedded(t *testing.T) {
	projects, err := Projects("")
	require.NoError(t, err)
	require.Len(t, projects, 4)

	assert.Equal(t, 1, projects[0].ID)
	assert.Equal(t, "E-Commerce Platform", projects[0].Title)
	assert.Equal(t, "Web Development", projects[0].Category)
	assert.True(t, projects[0].Featured)

	// The filter scenario tests rely on exactly two featured Web Development
	// projects in the seed.
	featuredWebDev := 0
	for _, p := range projects {
		if p.Featured && p.Category == "Web Development" {
			featuredWebDev++
		}
	}
	assert.Equal(t, 2, featuredWebDev)
}

func TestBlogPosts_Embedded(t *testing.T) {
	posts, err := BlogPosts("")
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, "building-scalable-react-applications", posts[0].Slug)
	assert.Equal(t, "John Doe", posts[0].Author.Name)
	for _, p := range posts {
		assert.True(t, p.Published)
	}
}

func TestProjects_DataPathOverride(t *testing.T) {
	dir := t.TempDir()
	override := `[{"id": 1, "title": "Override", "category": "Test", "technologies": []}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.json"), []byte(override), 0644))

	projects, err := Projects(dir)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Override", projects[0].Title)
}

func TestProjects_MissingOverrideFallsBack(t *testing.T) {
	projects, err := Projects(t.TempDir())
	require.NoError(t, err)
	assert.Len(t, projects, 4)
}

func TestProjects_InvalidOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.json"), []byte("not json"), 0644))

	_, err := Projects(dir)
	assert.Error(t, err)
}
