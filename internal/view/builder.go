package view

import (
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/InkwellLabs/inkwell/pkg/models"
)

// Funcs is the helper set available to theme templates.
var Funcs = template.FuncMap{
	"formatDate": func(t time.Time) string { return t.Format("January 2, 2006") },
	"isoDate":    func(t time.Time) string { return t.Format("2006-01-02") },
	// Post content is trusted HTML authored through the content pipeline.
	"raw": func(s string) template.HTML { return template.HTML(s) },
}

// BundleSpec declares how a theme's parsed template set maps onto a
// bundle: which template renders content for each page type, which page
// types get the sidebar, and which fragments the theme provides. Header
// and footer always come from the "header" and "footer" definitions.
type BundleSpec struct {
	Content   map[models.PageType]string
	SidebarOn []models.PageType
	Fragments []string
}

// BuildBundle parses every template matching glob from tfs into one set
// and assembles the theme's bundle from spec. Page types missing from
// spec.Content stay nil, which the renderer surfaces as not-supported.
func BuildBundle(tfs fs.FS, glob string, spec BundleSpec) (*Bundle, error) {
	tmpl, err := template.New("theme").Funcs(Funcs).ParseFS(tfs, glob)
	if err != nil {
		return nil, fmt.Errorf("parse theme templates: %w", err)
	}

	lookup := func(name string) (View, error) {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("theme template %q not defined", name)
		}
		return NewTemplateView(tmpl, name), nil
	}

	header, err := lookup("header")
	if err != nil {
		return nil, err
	}
	footer, err := lookup("footer")
	if err != nil {
		return nil, err
	}

	sidebarOn := make(map[models.PageType]bool, len(spec.SidebarOn))
	for _, pt := range spec.SidebarOn {
		sidebarOn[pt] = true
	}

	var sidebar View
	if len(spec.SidebarOn) > 0 {
		sidebar, err = lookup("sidebar")
		if err != nil {
			return nil, err
		}
	}

	b := &Bundle{Fragments: make(map[string]View, len(spec.Fragments))}

	for pt, name := range spec.Content {
		content, err := lookup(name)
		if err != nil {
			return nil, fmt.Errorf("page type %s: %w", pt, err)
		}
		asm := &Assembly{Header: header, Footer: footer, Content: content}
		if sidebarOn[pt] {
			asm.Sidebar = sidebar
		}
		switch pt {
		case models.PageHomepage:
			b.Homepage = asm
		case models.PageSinglePost:
			b.SinglePost = asm
		case models.PageArchive:
			b.Archive = asm
		case models.PageAbout:
			b.About = asm
		case models.PageContact:
			b.Contact = asm
		case models.PageCategory:
			b.Category = asm
		case models.PageTag:
			b.Tag = asm
		default:
			return nil, fmt.Errorf("unknown page type %q in bundle spec", pt)
		}
	}

	for _, name := range spec.Fragments {
		fv, err := lookup("fragment/" + name)
		if err != nil {
			return nil, err
		}
		b.Fragments[name] = fv
	}

	return b, nil
}
