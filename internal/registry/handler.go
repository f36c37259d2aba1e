package registry

import (
	"encoding/json"
	"net/http"

	"github.com/InkwellLabs/inkwell/pkg/models"
	"go.uber.org/zap"
)

// ThemeProblemDetail represents an RFC 7807 error response for theme endpoints.
// @Description RFC 7807 Problem Details error response.
type ThemeProblemDetail struct {
	Type   string `json:"type" example:"https://inkwell.dev/problems/theme-error"`
	Title  string `json:"title" example:"Not Found"`
	Status int    `json:"status" example:"404"`
	Detail string `json:"detail" example:"theme not registered: sunset"`
}

// Handler provides HTTP handlers for the theme catalogue.
type Handler struct {
	registry *Registry
	logger   *zap.Logger
}

// NewHandler creates a theme catalogue Handler.
func NewHandler(reg *Registry, logger *zap.Logger) *Handler {
	return &Handler{registry: reg, logger: logger}
}

// RegisterRoutes registers theme catalogue routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/themes", h.handleList)
	mux.HandleFunc("GET /api/v1/themes/categories", h.handleCategories)
	mux.HandleFunc("GET /api/v1/themes/{id}", h.handleGet)
}

// handleList returns all registered themes, optionally filtered by category.
//
//	@Summary		List themes
//	@Description	Get all registered themes. Pass ?category= to filter.
//	@Tags			themes
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"
//	@Success		200	{array}	models.ThemeDefinition	"Registered themes"
//	@Router			/themes [get]
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var defs []models.ThemeDefinition
	if cat := r.URL.Query().Get("category"); cat != "" {
		defs = h.registry.ByCategory(models.ThemeCategory(cat))
	} else {
		defs = h.registry.All()
	}
	if defs == nil {
		defs = []models.ThemeDefinition{}
	}
	writeJSON(w, http.StatusOK, defs)
}

// handleCategories returns the theme category catalogue with counts.
//
//	@Summary		List theme categories
//	@Description	Get theme categories with display names and theme counts.
//	@Tags			themes
//	@Produce		json
//	@Success		200	{array}	CategoryInfo	"Categories"
//	@Router			/themes/categories [get]
func (h *Handler) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.Categories())
}

// handleGet returns a single theme definition.
//
//	@Summary		Get theme
//	@Description	Get one registered theme by ID.
//	@Tags			themes
//	@Produce		json
//	@Param			id	path		string					true	"Theme ID"
//	@Success		200	{object}	models.ThemeDefinition	"Theme definition"
//	@Failure		404	{object}	ThemeProblemDetail		"Theme not registered"
//	@Router			/themes/{id} [get]
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	def, ok := h.registry.Definition(id)
	if !ok {
		writeThemeError(w, http.StatusNotFound, "theme not registered: "+id)
		return
	}
	writeJSON(w, http.StatusOK, def)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeThemeError writes an RFC 7807 problem response.
func writeThemeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://inkwell.dev/problems/theme-error",
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
