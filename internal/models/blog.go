package models

// Author holds blog post author details
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

// BlogPost represents a blog article
type BlogPost struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      Author   `json:"author"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Published   bool     `json:"published"`
	PublishedAt string   `json:"publishedAt"`
	ReadTime    string   `json:"readTime"`
	// Views is stored but never incremented by any read path. Detail reads
	// stay idempotent.
	Views int `json:"views"`
}

// NewBlogPost is the request body for POST /api/blog.
// Published distinguishes "absent" from false so omitting it defaults to true.
type NewBlogPost struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Featured  bool     `json:"featured"`
	Published *bool    `json:"published"`
}
