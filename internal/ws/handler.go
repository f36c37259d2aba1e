package ws

import (
	"context"
	"net/http"

	"github.com/InkwellLabs/inkwell/internal/event"
	"github.com/coder/websocket"
	"go.uber.org/zap"
)

// Handler provides the WebSocket endpoint for live-preview updates.
type Handler struct {
	hub    *Hub
	bus    *event.Bus
	logger *zap.Logger
}

// Compile-time check that Handler implements the server interface.
var _ interface {
	RegisterRoutes(mux *http.ServeMux)
} = (*Handler)(nil)

// NewHandler creates a preview handler and subscribes to tenant events.
func NewHandler(bus *event.Bus, logger *zap.Logger) *Handler {
	h := &Handler{
		hub:    NewHub(logger),
		bus:    bus,
		logger: logger,
	}
	h.subscribeToEvents()
	return h
}

// RegisterRoutes registers WebSocket routes on the server mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/ws/preview/{tenant}", h.handlePreviewStream)
}

// Hub exposes the underlying hub, mainly for tests and diagnostics.
func (h *Handler) Hub() *Hub {
	return h.hub
}

// handlePreviewStream upgrades the connection and streams preview events
// for one tenant site.
func (h *Handler) handlePreviewStream(w http.ResponseWriter, r *http.Request) {
	tenant := r.PathValue("tenant")
	if tenant == "" {
		http.Error(w, "missing tenant", http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Previews render on custom domains, so cross-origin is expected.
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Error("websocket accept failed", zap.Error(err))
		return
	}

	client := &Client{
		conn:   conn,
		tenant: tenant,
		send:   make(chan Message, 256),
		logger: h.logger,
	}

	h.hub.Register(client)

	// Run read and write pumps. When either exits, clean up.
	ctx := r.Context()
	done := make(chan struct{})
	go func() {
		client.writePump(ctx)
		close(done)
	}()

	// readPump blocks until client disconnects.
	client.readPump(ctx)

	// Client disconnected -- stop write pump and unregister.
	h.hub.Unregister(client)
	conn.Close(websocket.StatusNormalClosure, "")
	<-done
}

// subscribeToEvents forwards tenant theme and brand events to connected
// preview clients.
func (h *Handler) subscribeToEvents() {
	if h.bus == nil {
		return
	}

	h.bus.Subscribe(event.TopicThemeChanged, func(_ context.Context, ev event.Event) {
		slug, _ := ev.Payload["slug"].(string)
		themeID, _ := ev.Payload["theme_id"].(string)
		darkMode, _ := ev.Payload["dark_mode"].(bool)
		h.hub.Broadcast(slug, Message{
			Type:      MessageThemeChanged,
			Tenant:    slug,
			Timestamp: ev.Timestamp,
			Data: ThemeChangedData{
				ThemeID:  themeID,
				DarkMode: darkMode,
			},
		})
	})

	h.bus.Subscribe(event.TopicBrandUpdated, func(_ context.Context, ev event.Event) {
		slug, _ := ev.Payload["slug"].(string)
		tenantID, _ := ev.Payload["tenant_id"].(string)
		h.hub.Broadcast(slug, Message{
			Type:      MessageBrandUpdated,
			Tenant:    slug,
			Timestamp: ev.Timestamp,
			Data: BrandUpdatedData{
				TenantID: tenantID,
			},
		})
	})

	h.logger.Info("subscribed to tenant events for preview broadcasting")
}
