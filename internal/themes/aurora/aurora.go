// Package aurora is the built-in modern theme: card-driven layouts, a
// sticky header, and full dark-mode support.
package aurora

import (
	"context"
	"embed"

	"github.com/InkwellLabs/inkwell/internal/view"
	"github.com/InkwellLabs/inkwell/pkg/models"
)

//go:embed templates/*.html
var templates embed.FS

// ID is the registry identifier for this theme.
const ID = "aurora"

// Definition returns the theme's identity and default tokens. Tokens not
// set here are filled from the registry baseline.
func Definition() models.ThemeDefinition {
	return models.ThemeDefinition{
		Name:        "Aurora",
		Description: "A modern, card-driven blog theme with first-class dark mode.",
		Version:     "1.3.0",
		Author:      "Inkwell",
		Category:    models.CategoryModern,
		Capabilities: models.Capabilities{
			DarkMode:     true,
			CustomColors: true,
			CustomFonts:  true,
			Responsive:   true,
			Animations:   true,
		},
		DefaultStyle: models.StyleTokens{
			Colors: models.ColorTokens{
				Primary:       "#6366f1",
				Secondary:     "#8b5cf6",
				Accent:        "#ec4899",
				Background:    "#0f172a",
				Surface:       "#1e293b",
				Text:          "#f1f5f9",
				TextSecondary: "#94a3b8",
				Border:        "#334155",
			},
			Typography: models.TypographyTokens{
				Families: models.FontFamilies{
					Primary: "'Inter', system-ui, sans-serif",
					Heading: "'Sora', system-ui, sans-serif",
					Code:    "'JetBrains Mono', monospace",
				},
			},
		},
	}
}

// Load builds the theme's view bundle from the embedded templates.
func Load(_ context.Context) (*view.Bundle, error) {
	return view.BuildBundle(templates, "templates/*.html", view.BundleSpec{
		Content: map[models.PageType]string{
			models.PageHomepage:   "content/homepage",
			models.PageSinglePost: "content/post",
			models.PageArchive:    "content/archive",
			models.PageAbout:      "content/page",
			models.PageContact:    "content/page",
			models.PageCategory:   "content/category",
			models.PageTag:        "content/tag",
		},
		SidebarOn: []models.PageType{
			models.PageHomepage,
			models.PageArchive,
			models.PageCategory,
			models.PageTag,
		},
		Fragments: []string{
			"post-card",
			"post-list",
			"post-grid",
			"featured-post",
			"author-card",
			"category-card",
			"tag-cloud",
			"newsletter-box",
			"search-box",
			"pagination",
			"breadcrumb",
			"social-share",
			"related-posts",
			"comments",
			"table-of-contents",
		},
	})
}
