// Package gazette is the built-in magazine theme: a dense multi-column
// front page with a featured lead story.
package gazette

import (
	"context"
	"embed"

	"github.com/InkwellLabs/inkwell/internal/view"
	"github.com/InkwellLabs/inkwell/pkg/models"
)

//go:embed templates/*.html
var templates embed.FS

// ID is the registry identifier for this theme.
const ID = "gazette"

// Definition returns the theme's identity and default tokens.
func Definition() models.ThemeDefinition {
	return models.ThemeDefinition{
		Name:        "Gazette",
		Description: "A magazine front page: lead story, section grid, dense typography.",
		Version:     "1.0.2",
		Author:      "Inkwell",
		Category:    models.CategoryMagazine,
		Capabilities: models.Capabilities{
			CustomColors:  true,
			CustomFonts:   true,
			CustomLayouts: true,
			Responsive:    true,
		},
		DefaultStyle: models.StyleTokens{
			Colors: models.ColorTokens{
				Primary:       "#b91c1c",
				Secondary:     "#1c1917",
				Accent:        "#b45309",
				Background:    "#fefce8",
				Surface:       "#ffffff",
				Text:          "#1c1917",
				TextSecondary: "#57534e",
				Border:        "#d6d3d1",
			},
			Typography: models.TypographyTokens{
				Families: models.FontFamilies{
					Primary: "'Source Serif 4', Georgia, serif",
					Heading: "'Playfair Display', Georgia, serif",
					Code:    "'IBM Plex Mono', monospace",
				},
			},
		},
		Layout: models.LayoutTokens{
			MaxWidth: "1400px",
			GridGap:  "1.25rem",
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
			models.PageSinglePost,
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
