// Package mono is the built-in minimal theme: a single text column, no
// sidebar, system fonts.
package mono

import (
	"context"
	"embed"

	"github.com/InkwellLabs/inkwell/internal/view"
	"github.com/InkwellLabs/inkwell/pkg/models"
)

//go:embed templates/*.html
var templates embed.FS

// ID is the registry identifier for this theme.
const ID = "mono"

// Definition returns the theme's identity and default tokens.
func Definition() models.ThemeDefinition {
	return models.ThemeDefinition{
		Name:        "Mono",
		Description: "A single-column, typography-first theme for people who just write.",
		Version:     "2.0.1",
		Author:      "Inkwell",
		Category:    models.CategoryMinimal,
		Capabilities: models.Capabilities{
			CustomColors: true,
			CustomFonts:  true,
			Responsive:   true,
		},
		DefaultStyle: models.StyleTokens{
			Colors: models.ColorTokens{
				Primary:       "#000000",
				Secondary:     "#404040",
				Accent:        "#0000ee",
				Background:    "#ffffff",
				Surface:       "#fafafa",
				Text:          "#171717",
				TextSecondary: "#737373",
				Border:        "#e5e5e5",
			},
			Typography: models.TypographyTokens{
				Families: models.FontFamilies{
					Primary: "Georgia, 'Times New Roman', serif",
					Heading: "Georgia, 'Times New Roman', serif",
					Code:    "ui-monospace, monospace",
				},
			},
		},
		Layout: models.LayoutTokens{
			MaxWidth:     "680px",
			SidebarWidth: "0",
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
