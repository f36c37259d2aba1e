package models

import "time"

// Post is an opaque content record consumed by theme views. The theming
// engine never interprets post content beyond passing it to templates.
type Post struct {
	ID          string    `json:"id" example:"3f2c8f9a-7a1b-4d6e-9c2f-1b0a9e8d7c6b"`
	Slug        string    `json:"slug" example:"hello-world"`
	Title       string    `json:"title" example:"Hello, World"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Content     string    `json:"content"`
	Author      string    `json:"author,omitempty" example:"jane"`
	CoverImage  string    `json:"cover_image,omitempty"`
	Category    string    `json:"category,omitempty" example:"engineering"`
	Tags        []string  `json:"tags,omitempty"`
	Featured    bool      `json:"featured"`
	PublishedAt time.Time `json:"published_at"`
}

// Category is a content grouping record.
type Category struct {
	ID        string `json:"id"`
	Slug      string `json:"slug" example:"engineering"`
	Name      string `json:"name" example:"Engineering"`
	PostCount int    `json:"post_count"`
}

// Tag is a content label record.
type Tag struct {
	ID        string `json:"id"`
	Slug      string `json:"slug" example:"golang"`
	Name      string `json:"name" example:"Go"`
	PostCount int    `json:"post_count"`
}
