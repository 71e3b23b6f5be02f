// Package seed holds the data collections are initialized with at process
// start. The canonical copies are embedded in the binary; an operator can
// override either collection by dropping a JSON file into the data directory.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"softwarehouse.dev/internal/models"
)

//go:embed projects.json blog.json
var files embed.FS

// Projects loads the project seed data. A projects.json under dataPath takes
// precedence over the embedded copy; pass "" to always use the embedded one.
func Projects(dataPath string) ([]models.Project, error) {
	var projects []models.Project
	if err := load(dataPath, "projects.json", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// BlogPosts loads the blog post seed data, with the same override rule.
func BlogPosts(dataPath string) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := load(dataPath, "blog.json", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func load(dataPath, name string, dst any) error {
	data, err := read(dataPath, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func read(dataPath, name string) ([]byte, error) {
	if dataPath != "" {
		path := filepath.Join(dataPath, name)
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", name, err)
	}
	return data, nil
}
