package models

// ThemeCategory groups themes for catalogue browsing.
type ThemeCategory string

const (
	CategoryModern       ThemeCategory = "modern"
	CategoryMinimal      ThemeCategory = "minimal"
	CategoryCreative     ThemeCategory = "creative"
	CategoryProfessional ThemeCategory = "professional"
	CategoryMagazine     ThemeCategory = "magazine"
)

// Capabilities declares what a theme supports. The flags are informational
// for catalogue display; the engine does not enforce them.
type Capabilities struct {
	DarkMode      bool `json:"dark_mode"`
	CustomColors  bool `json:"custom_colors"`
	CustomFonts   bool `json:"custom_fonts"`
	CustomLayouts bool `json:"custom_layouts"`
	Responsive    bool `json:"responsive"`
	Animations    bool `json:"animations"`
}

// ThemeDefinition describes one theme's identity, capabilities, and default
// style tokens. Definitions are created once at registration time and are
// immutable afterwards; the merge cascade copies, never mutates.
type ThemeDefinition struct {
	ID           string        `json:"id" example:"aurora"`
	Name         string        `json:"name" example:"Aurora"`
	Description  string        `json:"description,omitempty" example:"A modern dark-friendly blog theme"`
	Version      string        `json:"version" example:"1.2.0"`
	Author       string        `json:"author,omitempty" example:"Inkwell"`
	Category     ThemeCategory `json:"category" example:"modern"`
	Capabilities Capabilities  `json:"capabilities"`
	DefaultStyle StyleTokens   `json:"default_style"`
	Layout       LayoutTokens  `json:"layout"`
}
