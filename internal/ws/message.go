package ws

import "time"

// MessageType discriminates preview stream messages.
type MessageType string

const (
	MessageThemeChanged MessageType = "preview.theme_changed"
	MessageBrandUpdated MessageType = "preview.brand_updated"
)

// Message is the envelope for all preview stream messages.
type Message struct {
	Type      MessageType `json:"type"`
	Tenant    string      `json:"tenant"`
	Timestamp time.Time   `json:"timestamp"`
	Data      any         `json:"data"`
}

// ThemeChangedData is the payload for preview.theme_changed messages.
type ThemeChangedData struct {
	ThemeID  string `json:"theme_id"`
	DarkMode bool   `json:"dark_mode"`
}

// BrandUpdatedData is the payload for preview.brand_updated messages.
type BrandUpdatedData struct {
	TenantID string `json:"tenant_id"`
}
