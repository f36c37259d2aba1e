// Package registry is the process-wide theme catalogue: it maps a theme id
// to its definition, its view-bundle loader, and the memoized loaded
// bundle. A single Registry instance is constructed at startup and injected
// into consumers.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/InkwellLabs/inkwell/internal/resolver"
	"github.com/InkwellLabs/inkwell/internal/view"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Bundle load metrics. Cache hits are not counted; these track loader
// invocations only.
var (
	bundleLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkwell_bundle_loads_total",
			Help: "Total theme bundle loads by theme and outcome.",
		},
		[]string{"theme", "outcome"},
	)
	bundleLoadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inkwell_bundle_load_duration_seconds",
			Help:    "Theme bundle load duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"theme"},
	)
)

func init() {
	prometheus.MustRegister(bundleLoadsTotal)
	prometheus.MustRegister(bundleLoadDuration)
}

// Sentinel errors distinguishing the bundle failure modes. The rendered
// error surface collapses them, but callers that care can errors.Is.
var (
	// ErrNotRegistered is returned when no theme entry exists for an id.
	ErrNotRegistered = errors.New("theme not registered")
	// ErrNoBundle is returned when a theme is registered without a loader.
	ErrNoBundle = errors.New("theme has no view bundle")
	// ErrLoadFailed wraps a loader error or an empty loader result.
	ErrLoadFailed = errors.New("theme bundle load failed")
)

// Loader produces a theme's view bundle. Loaders must be idempotent: the
// registry memoizes the first successful result but does not guard against
// two concurrent first-time loads both invoking the loader.
type Loader func(ctx context.Context) (*view.Bundle, error)

type entry struct {
	def    models.ThemeDefinition
	loader Loader
}

// Registry stores theme definitions and lazily loads their view bundles.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	bundles map[string]*view.Bundle // memoized, never invalidated
	logger  *zap.Logger
}

// New creates an empty theme registry.
func New(logger *zap.Logger) *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		bundles: make(map[string]*view.Bundle),
		logger:  logger,
	}
}

// Register stores a theme. Omitted style and layout tokens in the
// definition are filled from the baseline, so a registered definition is
// never partially specified. When loader is nil and bundle is non-nil the
// loader resolves immediately with the given bundle.
//
// Re-registering an id replaces the prior entry but keeps any cached
// bundle for that id; themes are registered once at startup, so the cache
// is never stale in practice (see DESIGN.md).
func (r *Registry) Register(id string, def models.ThemeDefinition, bundle *view.Bundle, loader Loader) error {
	if id == "" {
		return fmt.Errorf("theme id must not be empty")
	}

	def.ID = id
	def.DefaultStyle = resolver.OverlayStyle(Baseline().DefaultStyle, def.DefaultStyle)
	def.Layout = resolver.OverlayLayout(Baseline().Layout, def.Layout)
	if def.Name == "" {
		def.Name = id
	}

	if loader == nil && bundle != nil {
		b := bundle
		loader = func(context.Context) (*view.Bundle, error) { return b, nil }
	}

	r.mu.Lock()
	if _, exists := r.entries[id]; exists {
		r.logger.Debug("replacing registered theme", zap.String("theme_id", id))
	}
	r.entries[id] = &entry{def: def, loader: loader}
	r.mu.Unlock()

	r.logger.Info("theme registered",
		zap.String("theme_id", id),
		zap.String("name", def.Name),
		zap.String("category", string(def.Category)),
		zap.String("version", def.Version),
	)
	return nil
}

// Definition returns a theme's definition without touching the bundle
// loader. The second return is false for unknown ids.
func (r *Registry) Definition(id string) (*models.ThemeDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	def := e.def
	return &def, true
}

// Bundle returns the theme's view bundle, invoking the loader on first use
// and memoizing the result for the process lifetime. A cached bundle is
// returned as-is without re-invoking the loader.
func (r *Registry) Bundle(ctx context.Context, id string) (*view.Bundle, error) {
	r.mu.RLock()
	if b, ok := r.bundles[id]; ok {
		r.mu.RUnlock()
		return b, nil
	}
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("theme %q: %w", id, ErrNotRegistered)
	}
	if e.loader == nil {
		return nil, fmt.Errorf("theme %q: %w", id, ErrNoBundle)
	}

	// The loader runs outside the lock; two concurrent first-time calls may
	// both invoke it. Loaders are pure, so last-write-wins is harmless.
	start := time.Now()
	b, err := e.loader(ctx)
	bundleLoadDuration.WithLabelValues(id).Observe(time.Since(start).Seconds())
	if err != nil {
		bundleLoadsTotal.WithLabelValues(id, "error").Inc()
		r.logger.Error("theme bundle load failed", zap.String("theme_id", id), zap.Error(err))
		return nil, fmt.Errorf("theme %q: %w: %v", id, ErrLoadFailed, err)
	}
	if b == nil {
		bundleLoadsTotal.WithLabelValues(id, "error").Inc()
		r.logger.Error("theme bundle loader returned nil", zap.String("theme_id", id))
		return nil, fmt.Errorf("theme %q: %w: loader returned no bundle", id, ErrLoadFailed)
	}
	bundleLoadsTotal.WithLabelValues(id, "ok").Inc()

	r.mu.Lock()
	r.bundles[id] = b
	r.mu.Unlock()

	r.logger.Debug("theme bundle loaded", zap.String("theme_id", id))
	return b, nil
}

// IsRegistered reports whether a definition exists for the id.
func (r *Registry) IsRegistered(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok
}

// Unregister drops a theme's definition and any cached bundle.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	delete(r.entries, id)
	delete(r.bundles, id)
	r.mu.Unlock()
	r.logger.Info("theme unregistered", zap.String("theme_id", id))
}

// Clear drops every definition and cached bundle.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.entries = make(map[string]*entry)
	r.bundles = make(map[string]*view.Bundle)
	r.mu.Unlock()
}

// All returns every registered definition, sorted by id.
func (r *Registry) All() []models.ThemeDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]models.ThemeDefinition, 0, len(r.entries))
	for _, e := range r.entries {
		defs = append(defs, e.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// ByCategory returns the definitions in one category, sorted by id.
func (r *Registry) ByCategory(cat models.ThemeCategory) []models.ThemeDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var defs []models.ThemeDefinition
	for _, e := range r.entries {
		if e.def.Category == cat {
			defs = append(defs, e.def)
		}
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// CategoryInfo summarizes one catalogue category for listing.
type CategoryInfo struct {
	ID          string `json:"id" example:"modern"`
	DisplayName string `json:"display_name" example:"Modern"`
	Count       int    `json:"count" example:"2"`
}

// categoryDisplayNames is the fixed display-name lookup. Categories not in
// the table fall back to their raw id.
var categoryDisplayNames = map[models.ThemeCategory]string{
	models.CategoryModern:       "Modern",
	models.CategoryMinimal:      "Minimal",
	models.CategoryCreative:     "Creative",
	models.CategoryProfessional: "Professional",
	models.CategoryMagazine:     "Magazine",
}

// Categories returns every category that has at least one registered
// theme, with display name and theme count. Known categories come first in
// catalogue order, unknown ones follow sorted by id. Counts sum to the
// number of registered themes.
func (r *Registry) Categories() []CategoryInfo {
	r.mu.RLock()
	counts := make(map[models.ThemeCategory]int)
	for _, e := range r.entries {
		counts[e.def.Category]++
	}
	r.mu.RUnlock()

	catalogueOrder := []models.ThemeCategory{
		models.CategoryModern,
		models.CategoryMinimal,
		models.CategoryCreative,
		models.CategoryProfessional,
		models.CategoryMagazine,
	}

	out := make([]CategoryInfo, 0, len(counts))
	for _, cat := range catalogueOrder {
		if n, ok := counts[cat]; ok {
			out = append(out, CategoryInfo{ID: string(cat), DisplayName: categoryDisplayNames[cat], Count: n})
			delete(counts, cat)
		}
	}

	var unknown []models.ThemeCategory
	for cat := range counts {
		unknown = append(unknown, cat)
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	for _, cat := range unknown {
		out = append(out, CategoryInfo{ID: string(cat), DisplayName: string(cat), Count: counts[cat]})
	}
	return out
}
