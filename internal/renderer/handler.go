package renderer

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/InkwellLabs/inkwell/internal/content"
	"github.com/InkwellLabs/inkwell/internal/event"
	"github.com/InkwellLabs/inkwell/internal/registry"
	"github.com/InkwellLabs/inkwell/internal/tenant"
	"github.com/InkwellLabs/inkwell/internal/view"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"go.uber.org/zap"
)

// Handler serves rendered tenant pages. Each tenant gets a Session that
// prewarms bundles when the theme changes; while a switch is still
// loading, requests get the loading surface with a refresh hint instead
// of blocking on the bundle.
type Handler struct {
	renderer *Renderer
	reg      *registry.Registry
	tenants  *tenant.Store
	posts    *content.Store
	logger   *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Session // tenant slug -> session
}

// NewHandler creates a page handler and, when a bus is given, subscribes
// to theme changes so switched themes start loading before the next
// page view.
func NewHandler(r *Renderer, reg *registry.Registry, tenants *tenant.Store, posts *content.Store, bus *event.Bus, logger *zap.Logger) *Handler {
	h := &Handler{
		renderer: r,
		reg:      reg,
		tenants:  tenants,
		posts:    posts,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
	if bus != nil {
		bus.Subscribe(event.TopicThemeChanged, func(ctx context.Context, ev event.Event) {
			slug, _ := ev.Payload["slug"].(string)
			themeID, _ := ev.Payload["theme_id"].(string)
			if slug == "" || themeID == "" {
				return
			}
			h.session(slug).Switch(context.WithoutCancel(ctx), themeID)
		})
	}
	return h
}

// RegisterRoutes registers the rendered-site routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /sites/{tenant}", h.page(models.PageHomepage))
	mux.HandleFunc("GET /sites/{tenant}/{$}", h.page(models.PageHomepage))
	mux.HandleFunc("GET /sites/{tenant}/archive", h.page(models.PageArchive))
	mux.HandleFunc("GET /sites/{tenant}/about", h.page(models.PageAbout))
	mux.HandleFunc("GET /sites/{tenant}/contact", h.page(models.PageContact))
	mux.HandleFunc("GET /sites/{tenant}/posts/{slug}", h.page(models.PageSinglePost))
	mux.HandleFunc("GET /sites/{tenant}/category/{name}", h.page(models.PageCategory))
	mux.HandleFunc("GET /sites/{tenant}/tag/{name}", h.page(models.PageTag))
}

func (h *Handler) page(pt models.PageType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.servePage(w, r, pt)
	}
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, pt models.PageType) {
	ctx := r.Context()
	slug := r.PathValue("tenant")

	t, err := h.tenants.GetBySlug(ctx, slug)
	if errors.Is(err, tenant.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("failed to load tenant", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	themeID := t.ThemeID
	preview := false
	if q := r.URL.Query().Get("preview_theme"); q != "" && h.reg.IsRegistered(q) {
		themeID = q
		preview = true
	}

	// Keep the session in step with the requested theme so the bundle
	// loads off the request path on first sight of a new theme.
	sess := h.session(slug)
	if sess.ThemeID() != themeID {
		sess.Switch(ctx, themeID)
	}
	if status, _ := sess.State(); status == StatusLoading {
		w.Header().Set("Refresh", "1")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(loadingSurface()))
		return
	}

	data, err := h.loadContent(ctx, t, pt, r)
	if errors.Is(err, content.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("failed to load content",
			zap.String("slug", slug),
			zap.String("page_type", string(pt)),
			zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	base := "/sites/" + slug
	res := h.renderer.Render(ctx, Request{
		ThemeID:  themeID,
		PageType: pt,
		Tenant:   t,
		DarkMode: t.DarkMode,
		Preview:  preview,
		Data:     data,
		Actions: view.Actions{
			PostClick:   base + "/posts/",
			Search:      base + "/archive",
			ThemeToggle: base + "?toggle=dark",
			Back:        base,
		},
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	switch res.Status {
	case StatusReady:
		w.WriteHeader(http.StatusOK)
	case StatusNotSupported:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	_, _ = w.Write([]byte(res.HTML))
}

// loadContent pulls the content the page type needs from the read model.
func (h *Handler) loadContent(ctx context.Context, t *models.Tenant, pt models.PageType, r *http.Request) (ContentData, error) {
	var data ContentData
	var err error

	switch pt {
	case models.PageHomepage, models.PageArchive:
		data.Posts, err = h.posts.Posts(ctx, t.ID)
	case models.PageCategory:
		data.Posts, err = h.posts.PostsByCategory(ctx, t.ID, r.PathValue("name"))
	case models.PageTag:
		data.Posts, err = h.posts.PostsByTag(ctx, t.ID, r.PathValue("name"))
	case models.PageSinglePost:
		data.Post, err = h.posts.PostBySlug(ctx, t.ID, r.PathValue("slug"))
		if err == nil {
			data.RelatedPosts, err = h.posts.Related(ctx, t.ID, data.Post, 3)
		}
	case models.PageAbout, models.PageContact:
		// Stub pages are synthesized at render time.
	}
	if err != nil {
		return ContentData{}, err
	}

	if pt != models.PageSinglePost && pt != models.PageAbout && pt != models.PageContact {
		if data.Categories, err = h.posts.Categories(ctx, t.ID); err != nil {
			return ContentData{}, err
		}
		if data.Tags, err = h.posts.Tags(ctx, t.ID); err != nil {
			return ContentData{}, err
		}
	}
	return data, nil
}

func (h *Handler) session(slug string) *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.sessions[slug]
	if !ok {
		sess = NewSession(h.reg, h.logger)
		h.sessions[slug] = sess
	}
	return sess
}
