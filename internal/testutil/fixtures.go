// Package testutil provides shared test fixtures.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/InkwellLabs/inkwell/pkg/models"
)

// NewTenant returns a Tenant with sensible defaults, suitable for test
// fixtures. Override individual fields via options as needed.
func NewTenant(opts ...func(*models.Tenant)) models.Tenant {
	t := models.Tenant{
		ID:        uuid.New().String(),
		Slug:      "test-site",
		Name:      "Test Site",
		ThemeID:   "aurora",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// WithSlug sets the tenant slug.
func WithSlug(slug string) func(*models.Tenant) {
	return func(t *models.Tenant) { t.Slug = slug }
}

// WithTheme sets the tenant's active theme.
func WithTheme(id string) func(*models.Tenant) {
	return func(t *models.Tenant) { t.ThemeID = id }
}

// WithDarkMode sets the tenant's dark-mode flag.
func WithDarkMode(on bool) func(*models.Tenant) {
	return func(t *models.Tenant) { t.DarkMode = on }
}

// WithBrandColors sets the tenant's brand color overrides.
func WithBrandColors(c models.BrandColors) func(*models.Tenant) {
	return func(t *models.Tenant) { t.Brand.Colors = c }
}

// WithBrandFonts sets the tenant's brand font overrides.
func WithBrandFonts(f models.BrandFonts) func(*models.Tenant) {
	return func(t *models.Tenant) { t.Brand.Fonts = f }
}

// NewPost returns a Post with sensible defaults.
func NewPost(opts ...func(*models.Post)) models.Post {
	p := models.Post{
		ID:          uuid.New().String(),
		Slug:        "test-post",
		Title:       "Test Post",
		Excerpt:     "A short excerpt.",
		Content:     "<p>Body text.</p>",
		Author:      "Test Author",
		Category:    "General",
		Tags:        []string{"test"},
		PublishedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithPostSlug sets the post slug and title together.
func WithPostSlug(slug, title string) func(*models.Post) {
	return func(p *models.Post) {
		p.Slug = slug
		p.Title = title
	}
}

// WithCategory sets the post category.
func WithCategory(name string) func(*models.Post) {
	return func(p *models.Post) { p.Category = name }
}

// WithTags sets the post tags.
func WithTags(tags ...string) func(*models.Post) {
	return func(p *models.Post) { p.Tags = tags }
}

// WithFeatured marks the post featured.
func WithFeatured() func(*models.Post) {
	return func(p *models.Post) { p.Featured = true }
}

// NewDefinition returns a ThemeDefinition with sensible defaults.
func NewDefinition(id string, opts ...func(*models.ThemeDefinition)) models.ThemeDefinition {
	d := models.ThemeDefinition{
		ID:          id,
		Name:        "Test Theme",
		Description: "A theme for tests.",
		Version:     "1.0.0",
		Author:      "Inkwell",
		Category:    models.CategoryModern,
		Capabilities: models.Capabilities{
			DarkMode:     true,
			CustomColors: true,
			Responsive:   true,
		},
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// WithCategoryKind sets the theme category.
func WithCategoryKind(c models.ThemeCategory) func(*models.ThemeDefinition) {
	return func(d *models.ThemeDefinition) { d.Category = c }
}

// WithDefaultColors sets color overrides on the theme's default style.
func WithDefaultColors(c models.ColorTokens) func(*models.ThemeDefinition) {
	return func(d *models.ThemeDefinition) { d.DefaultStyle.Colors = c }
}
