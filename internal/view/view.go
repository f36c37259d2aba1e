// Package view defines the contracts between themes and the renderer: a
// view renders one region of a page, an assembly groups the regions for one
// page type, and a bundle collects every assembly plus the reusable
// fragments belonging to one theme.
package view

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/InkwellLabs/inkwell/pkg/models"
)

// Actions carry the shared navigation targets handed to every page. The
// engine passes them through untouched; only theme views interpret them.
type Actions struct {
	PostClick   string
	Search      string
	ThemeToggle string
	Back        string
}

// PageData is the content payload a view receives. Which fields are
// populated depends on the page type.
type PageData struct {
	Tenant       *models.Tenant
	Posts        []models.Post
	Post         *models.Post
	RelatedPosts []models.Post
	Categories   []models.Category
	Tags         []models.Tag
	Actions      Actions
}

// View renders one region (header, footer, content, sidebar, or a fragment)
// for the given page data.
type View interface {
	Render(ctx context.Context, w io.Writer, data *PageData) error
}

// TemplateView is a View backed by a named html/template definition.
type TemplateView struct {
	tmpl *template.Template
	name string
}

// NewTemplateView wraps the named definition of a parsed template set.
func NewTemplateView(tmpl *template.Template, name string) *TemplateView {
	return &TemplateView{tmpl: tmpl, name: name}
}

// Render executes the named template.
func (v *TemplateView) Render(_ context.Context, w io.Writer, data *PageData) error {
	if err := v.tmpl.ExecuteTemplate(w, v.name, data); err != nil {
		return fmt.Errorf("render %q: %w", v.name, err)
	}
	return nil
}

// Name returns the template definition name.
func (v *TemplateView) Name() string { return v.name }

// Assembly is the view triple for one page type, plus an optional sidebar.
type Assembly struct {
	Header  View
	Footer  View
	Content View
	Sidebar View // nil when the page type renders full-width
}

// Complete reports whether the mandatory header/footer/content triple is
// present. An incomplete assembly cannot render.
func (a *Assembly) Complete() bool {
	return a != nil && a.Header != nil && a.Footer != nil && a.Content != nil
}

// Bundle is one theme's loadable view collection: an assembly per page type
// and the shared named fragments (post card, pagination, tag cloud, ...).
// A nil assembly means the theme does not support that page type.
type Bundle struct {
	Homepage   *Assembly
	SinglePost *Assembly
	Archive    *Assembly
	About      *Assembly
	Contact    *Assembly
	Category   *Assembly
	Tag        *Assembly

	Fragments map[string]View
}

// Assembly selects the assembly for a page type. The switch is exhaustive
// over models.PageType; ok is false when the theme has no complete assembly
// for the requested type.
func (b *Bundle) Assembly(pt models.PageType) (*Assembly, bool) {
	var a *Assembly
	switch pt {
	case models.PageHomepage:
		a = b.Homepage
	case models.PageSinglePost:
		a = b.SinglePost
	case models.PageArchive:
		a = b.Archive
	case models.PageAbout:
		a = b.About
	case models.PageContact:
		a = b.Contact
	case models.PageCategory:
		a = b.Category
	case models.PageTag:
		a = b.Tag
	default:
		return nil, false
	}
	if !a.Complete() {
		return nil, false
	}
	return a, true
}

// Fragment returns a named reusable fragment view.
func (b *Bundle) Fragment(name string) (View, bool) {
	v, ok := b.Fragments[name]
	return v, ok
}
