// Package renderer orchestrates a page render for one (theme, page type)
// pair: it resolves the definition and view bundle from the registry, runs
// the customization merge, applies the result through a provider, and
// composes the selected page assembly into a full HTML document.
package renderer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/InkwellLabs/inkwell/internal/provider"
	"github.com/InkwellLabs/inkwell/internal/registry"
	"github.com/InkwellLabs/inkwell/internal/resolver"
	"github.com/InkwellLabs/inkwell/internal/view"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Render metrics.
var (
	rendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkwell_renders_total",
			Help: "Total page renders by theme and outcome.",
		},
		[]string{"theme", "status"},
	)
	renderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inkwell_render_duration_seconds",
			Help:    "Page render duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"theme"},
	)
)

func init() {
	prometheus.MustRegister(rendersTotal)
	prometheus.MustRegister(renderDuration)
}

// Status is the renderer's terminal display state for one request.
type Status string

const (
	// StatusLoading is only observable through a Session while a bundle
	// load is in flight; Render itself always waits.
	StatusLoading Status = "loading"
	// StatusReady means the page was fully composed.
	StatusReady Status = "ready"
	// StatusError covers unknown themes and bundle load failures.
	StatusError Status = "error"
	// StatusNotSupported means the theme has no assembly for the page
	// type. Distinct from StatusError.
	StatusNotSupported Status = "not_supported"
)

// ContentData is the page-type-specific content supplied by the caller.
type ContentData struct {
	Posts        []models.Post
	Post         *models.Post
	RelatedPosts []models.Post
	Categories   []models.Category
	Tags         []models.Tag
}

// Request describes one page render.
type Request struct {
	ThemeID       string
	PageType      models.PageType
	Tenant        *models.Tenant
	Customization *models.Customization
	DarkMode      bool
	Preview       bool
	Data          ContentData
	Actions       view.Actions
}

// Result is the outcome of a render. HTML is set for every status: error,
// loading, and not-supported statuses carry their minimal surfaces.
type Result struct {
	Status   Status
	ThemeID  string
	PageType models.PageType
	HTML     template.HTML
	Err      error
}

// Renderer composes tenant pages from registered themes.
type Renderer struct {
	reg    *registry.Registry
	logger *zap.Logger
}

// New creates a Renderer reading from the given registry.
func New(reg *registry.Registry, logger *zap.Logger) *Renderer {
	return &Renderer{reg: reg, logger: logger}
}

// Render resolves, merges, applies, and composes one page. Load-time
// failures never propagate as errors: they are captured in the Result so
// the HTTP layer can serve the corresponding surface. No presentation
// state is derived or applied unless both definition and bundle resolved.
func (r *Renderer) Render(ctx context.Context, req Request) Result {
	start := time.Now()
	res := r.render(ctx, req)
	rendersTotal.WithLabelValues(req.ThemeID, string(res.Status)).Inc()
	renderDuration.WithLabelValues(req.ThemeID).Observe(time.Since(start).Seconds())
	return res
}

func (r *Renderer) render(ctx context.Context, req Request) Result {
	out := Result{ThemeID: req.ThemeID, PageType: req.PageType}

	def, ok := r.reg.Definition(req.ThemeID)
	if !ok {
		out.Status = StatusError
		out.Err = fmt.Errorf("theme %q: %w", req.ThemeID, registry.ErrNotRegistered)
		out.HTML = errorSurface(fmt.Sprintf("Theme %q is not available.", req.ThemeID))
		return out
	}

	bundle, err := r.reg.Bundle(ctx, req.ThemeID)
	if err != nil {
		r.logger.Warn("render failed: bundle unavailable",
			zap.String("theme_id", req.ThemeID),
			zap.Error(err),
		)
		out.Status = StatusError
		out.Err = err
		out.HTML = errorSurface(fmt.Sprintf("Theme %q failed to load.", req.ThemeID))
		return out
	}

	asm, ok := bundle.Assembly(req.PageType)
	if !ok {
		out.Status = StatusNotSupported
		out.HTML = notSupportedSurface(def.Name, string(req.PageType))
		return out
	}

	var brand models.BrandSettings
	if req.Tenant != nil {
		brand = req.Tenant.Brand
	}
	merged := resolver.Merge(def, req.Customization, brand)

	doc := provider.NewDocument()
	prov := provider.New(doc, r.logger)
	prov.Activate(provider.Input{
		ThemeID:  req.ThemeID,
		Resolved: merged,
		DarkMode: req.DarkMode,
		Preview:  req.Preview,
	})
	defer prov.Deactivate()

	scope := &provider.Scope{
		Theme:         def,
		Customization: req.Customization,
		Tenant:        req.Tenant,
		DarkMode:      req.DarkMode,
		Preview:       req.Preview,
	}
	ctx = provider.NewContext(ctx, scope)

	data := buildPageData(req)

	html, err := composePage(ctx, doc, def, asm, data, pageTitle(req))
	if err != nil {
		r.logger.Error("page composition failed",
			zap.String("theme_id", req.ThemeID),
			zap.String("page_type", string(req.PageType)),
			zap.Error(err),
		)
		out.Status = StatusError
		out.Err = err
		out.HTML = errorSurface("This page could not be rendered.")
		return out
	}

	out.Status = StatusReady
	out.HTML = html
	return out
}

func pageTitle(req Request) string {
	site := "Inkwell"
	if req.Tenant != nil && req.Tenant.Name != "" {
		site = req.Tenant.Name
	}
	if req.PageType == models.PageSinglePost && req.Data.Post != nil {
		return req.Data.Post.Title + " — " + site
	}
	return site
}

// composePage renders each region of the assembly and stitches them into a
// complete HTML document carrying the derived presentation state.
func composePage(ctx context.Context, doc *provider.Document, def *models.ThemeDefinition, asm *view.Assembly, data *view.PageData, title string) (template.HTML, error) {
	header, err := renderRegion(ctx, asm.Header, data)
	if err != nil {
		return "", fmt.Errorf("header: %w", err)
	}
	content, err := renderRegion(ctx, asm.Content, data)
	if err != nil {
		return "", fmt.Errorf("content: %w", err)
	}
	footer, err := renderRegion(ctx, asm.Footer, data)
	if err != nil {
		return "", fmt.Errorf("footer: %w", err)
	}

	var sidebar template.HTML
	if asm.Sidebar != nil {
		sidebar, err = renderRegion(ctx, asm.Sidebar, data)
		if err != nil {
			return "", fmt.Errorf("sidebar: %w", err)
		}
	}

	var styleBlocks []template.CSS
	for _, key := range doc.StyleBlockKeys() {
		if css, ok := doc.StyleBlock(key); ok {
			styleBlocks = append(styleBlocks, template.CSS(css))
		}
	}

	var buf bytes.Buffer
	err = pageTmpl.Execute(&buf, pageTmplData{
		Title:       title,
		ThemeName:   def.Name,
		RootClasses: doc.ClassAttr(),
		VariableCSS: template.CSS(doc.VariableCSS()),
		StyleBlocks: styleBlocks,
		Header:      header,
		Content:     content,
		Sidebar:     sidebar,
		Footer:      footer,
	})
	if err != nil {
		return "", fmt.Errorf("page layout: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func renderRegion(ctx context.Context, v view.View, data *view.PageData) (template.HTML, error) {
	var buf bytes.Buffer
	if err := v.Render(ctx, &buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
