package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/InkwellLabs/inkwell/internal/event"
	"github.com/InkwellLabs/inkwell/internal/registry"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CreateTenantRequest is the body for creating a tenant site.
// @Description Request body for creating a new tenant.
type CreateTenantRequest struct {
	Slug    string `json:"slug" validate:"required,hostname_rfc1123" example:"daily-brew"`
	Name    string `json:"name" validate:"required,max=120" example:"The Daily Brew"`
	ThemeID string `json:"theme_id" validate:"required" example:"aurora"`
}

// SetThemeRequest is the body for switching a tenant's active theme.
// @Description Request body for setting the active theme.
type SetThemeRequest struct {
	ThemeID  string `json:"theme_id" validate:"required" example:"mono"`
	DarkMode bool   `json:"dark_mode" example:"true"`
}

// BrandRequest is the body for replacing a tenant's brand settings.
// @Description Request body for updating brand settings. Empty fields clear the override.
type BrandRequest struct {
	Colors   models.BrandColors   `json:"colors"`
	Fonts    models.BrandFonts    `json:"fonts"`
	Branding models.Branding      `json:"branding"`
}

// TenantProblemDetail represents an RFC 7807 error response for tenant endpoints.
// @Description RFC 7807 Problem Details error response.
type TenantProblemDetail struct {
	Type   string `json:"type" example:"https://inkwell.dev/problems/tenant-error"`
	Title  string `json:"title" example:"Not Found"`
	Status int    `json:"status" example:"404"`
	Detail string `json:"detail" example:"tenant not found"`
}

// Handler provides HTTP handlers for tenant endpoints.
type Handler struct {
	store    *Store
	registry *registry.Registry
	bus      *event.Bus
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a tenant Handler.
func NewHandler(store *Store, reg *registry.Registry, bus *event.Bus, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		registry: reg,
		bus:      bus,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// RegisterRoutes registers tenant routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/tenants", h.handleList)
	mux.HandleFunc("POST /api/v1/tenants", h.handleCreate)
	mux.HandleFunc("GET /api/v1/tenants/{slug}", h.handleGet)
	mux.HandleFunc("DELETE /api/v1/tenants/{slug}", h.handleDelete)
	mux.HandleFunc("GET /api/v1/tenants/{slug}/theme", h.handleGetTheme)
	mux.HandleFunc("PUT /api/v1/tenants/{slug}/theme", h.handleSetTheme)
	mux.HandleFunc("GET /api/v1/tenants/{slug}/brand", h.handleGetBrand)
	mux.HandleFunc("PUT /api/v1/tenants/{slug}/brand", h.handleSetBrand)
}

// handleList returns all tenants.
//
//	@Summary		List tenants
//	@Description	Get all tenant sites ordered by slug.
//	@Tags			tenants
//	@Produce		json
//	@Success		200	{array}		models.Tenant		"List of tenants"
//	@Failure		500	{object}	TenantProblemDetail	"Internal server error"
//	@Router			/tenants [get]
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list tenants", zap.Error(err))
		writeTenantError(w, http.StatusInternalServerError, "failed to list tenants")
		return
	}
	if tenants == nil {
		tenants = []models.Tenant{}
	}
	writeJSON(w, http.StatusOK, tenants)
}

// handleCreate creates a new tenant site.
//
//	@Summary		Create tenant
//	@Description	Create a new tenant site with an initial theme.
//	@Tags			tenants
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateTenantRequest	true	"Tenant to create"
//	@Success		201		{object}	models.Tenant		"Created tenant"
//	@Failure		400		{object}	TenantProblemDetail	"Invalid request"
//	@Failure		500		{object}	TenantProblemDetail	"Internal server error"
//	@Router			/tenants [post]
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTenantError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeTenantError(w, http.StatusBadRequest, "invalid tenant: "+err.Error())
		return
	}
	if !h.registry.IsRegistered(req.ThemeID) {
		writeTenantError(w, http.StatusBadRequest, "unknown theme: "+req.ThemeID)
		return
	}

	t := models.Tenant{Slug: req.Slug, Name: req.Name, ThemeID: req.ThemeID}
	if err := h.store.Create(r.Context(), &t); err != nil {
		h.logger.Error("failed to create tenant", zap.String("slug", req.Slug), zap.Error(err))
		writeTenantError(w, http.StatusInternalServerError, "failed to create tenant")
		return
	}

	h.logger.Info("tenant created",
		zap.String("slug", t.Slug),
		zap.String("theme_id", t.ThemeID))
	writeJSON(w, http.StatusCreated, t)
}

// handleGet returns a single tenant by slug.
//
//	@Summary		Get tenant
//	@Description	Get a tenant site by slug.
//	@Tags			tenants
//	@Produce		json
//	@Param			slug	path		string				true	"Tenant slug"
//	@Success		200		{object}	models.Tenant		"Tenant"
//	@Failure		404		{object}	TenantProblemDetail	"Tenant not found"
//	@Router			/tenants/{slug} [get]
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// handleDelete removes a tenant site.
//
//	@Summary		Delete tenant
//	@Description	Delete a tenant site and its settings.
//	@Tags			tenants
//	@Param			slug	path	string	true	"Tenant slug"
//	@Success		204		"Tenant deleted"
//	@Failure		404		{object}	TenantProblemDetail	"Tenant not found"
//	@Failure		500		{object}	TenantProblemDetail	"Internal server error"
//	@Router			/tenants/{slug} [delete]
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := h.store.Delete(r.Context(), t.ID); err != nil {
		h.logger.Error("failed to delete tenant", zap.String("slug", t.Slug), zap.Error(err))
		writeTenantError(w, http.StatusInternalServerError, "failed to delete tenant")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetTheme returns the tenant's active theme reference.
//
//	@Summary		Get active theme
//	@Description	Get the tenant's active theme and dark-mode flag.
//	@Tags			tenants
//	@Produce		json
//	@Param			slug	path		string				true	"Tenant slug"
//	@Success		200		{object}	SetThemeRequest		"Active theme"
//	@Failure		404		{object}	TenantProblemDetail	"Tenant not found"
//	@Router			/tenants/{slug}/theme [get]
func (h *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, SetThemeRequest{ThemeID: t.ThemeID, DarkMode: t.DarkMode})
}

// handleSetTheme switches the tenant's active theme.
//
//	@Summary		Set active theme
//	@Description	Switch the tenant's active theme. The theme must be registered.
//	@Tags			tenants
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string				true	"Tenant slug"
//	@Param			request	body		SetThemeRequest		true	"Theme to activate"
//	@Success		200		{object}	SetThemeRequest		"Theme activated"
//	@Failure		400		{object}	TenantProblemDetail	"Invalid request or unknown theme"
//	@Failure		404		{object}	TenantProblemDetail	"Tenant not found"
//	@Failure		500		{object}	TenantProblemDetail	"Internal server error"
//	@Router			/tenants/{slug}/theme [put]
func (h *Handler) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req SetThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTenantError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeTenantError(w, http.StatusBadRequest, "invalid theme selection: "+err.Error())
		return
	}
	if !h.registry.IsRegistered(req.ThemeID) {
		writeTenantError(w, http.StatusBadRequest, "unknown theme: "+req.ThemeID)
		return
	}

	if err := h.store.SetTheme(r.Context(), t.ID, req.ThemeID, req.DarkMode); err != nil {
		h.logger.Error("failed to set theme",
			zap.String("slug", t.Slug),
			zap.String("theme_id", req.ThemeID),
			zap.Error(err))
		writeTenantError(w, http.StatusInternalServerError, "failed to set theme")
		return
	}

	h.publish(event.TopicThemeChanged, t, map[string]any{
		"tenant_id": t.ID,
		"slug":      t.Slug,
		"theme_id":  req.ThemeID,
		"dark_mode": req.DarkMode,
	})
	writeJSON(w, http.StatusOK, req)
}

// handleGetBrand returns the tenant's brand settings.
//
//	@Summary		Get brand settings
//	@Description	Get the tenant's brand color, font, and branding overrides.
//	@Tags			tenants
//	@Produce		json
//	@Param			slug	path		string				true	"Tenant slug"
//	@Success		200		{object}	models.BrandSettings	"Brand settings"
//	@Failure		404		{object}	TenantProblemDetail	"Tenant not found"
//	@Router			/tenants/{slug}/brand [get]
func (h *Handler) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, t.Brand)
}

// handleSetBrand replaces the tenant's brand settings.
//
//	@Summary		Update brand settings
//	@Description	Replace the tenant's brand overrides. Empty fields fall back to the theme default.
//	@Tags			tenants
//	@Accept			json
//	@Produce		json
//	@Param			slug	path		string				true	"Tenant slug"
//	@Param			request	body		BrandRequest		true	"Brand settings"
//	@Success		200		{object}	models.BrandSettings	"Updated brand settings"
//	@Failure		400		{object}	TenantProblemDetail	"Invalid request"
//	@Failure		404		{object}	TenantProblemDetail	"Tenant not found"
//	@Failure		500		{object}	TenantProblemDetail	"Internal server error"
//	@Router			/tenants/{slug}/brand [put]
func (h *Handler) handleSetBrand(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req BrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTenantError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	brand := models.BrandSettings{Colors: req.Colors, Fonts: req.Fonts, Branding: req.Branding}
	if err := h.store.UpdateBrand(r.Context(), t.ID, brand); err != nil {
		h.logger.Error("failed to update brand", zap.String("slug", t.Slug), zap.Error(err))
		writeTenantError(w, http.StatusInternalServerError, "failed to update brand settings")
		return
	}

	h.publish(event.TopicBrandUpdated, t, map[string]any{
		"tenant_id": t.ID,
		"slug":      t.Slug,
	})
	writeJSON(w, http.StatusOK, brand)
}

// lookup resolves the {slug} path value, writing a 404 on miss.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*models.Tenant, bool) {
	slug := r.PathValue("slug")
	t, err := h.store.GetBySlug(r.Context(), slug)
	if errors.Is(err, ErrNotFound) {
		writeTenantError(w, http.StatusNotFound, "tenant not found: "+slug)
		return nil, false
	}
	if err != nil {
		h.logger.Error("failed to load tenant", zap.String("slug", slug), zap.Error(err))
		writeTenantError(w, http.StatusInternalServerError, "failed to load tenant")
		return nil, false
	}
	return t, true
}

func (h *Handler) publish(topic string, t *models.Tenant, payload map[string]any) {
	if h.bus == nil {
		return
	}
	h.bus.PublishAsync(context.Background(), event.Event{
		Topic:     topic,
		Source:    "tenant",
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeTenantError writes an RFC 7807 problem response.
func writeTenantError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://inkwell.dev/problems/tenant-error",
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
