package models

// ColorTokens names the eleven color roles every theme must define.
type ColorTokens struct {
	Primary       string `json:"primary" example:"#6366f1"`
	Secondary     string `json:"secondary" example:"#8b5cf6"`
	Accent        string `json:"accent" example:"#ec4899"`
	Background    string `json:"background" example:"#0f172a"`
	Surface       string `json:"surface" example:"#1e293b"`
	Text          string `json:"text" example:"#f1f5f9"`
	TextSecondary string `json:"text_secondary" example:"#94a3b8"`
	Border        string `json:"border" example:"#334155"`
	Success       string `json:"success" example:"#22c55e"`
	Warning       string `json:"warning" example:"#f59e0b"`
	Error         string `json:"error" example:"#ef4444"`
}

// FontFamilies names the three font-family roles.
type FontFamilies struct {
	Primary string `json:"primary" example:"'Inter', sans-serif"`
	Heading string `json:"heading" example:"'Sora', sans-serif"`
	Code    string `json:"code" example:"'JetBrains Mono', monospace"`
}

// FontSizes is the fixed eight-step size ladder.
type FontSizes struct {
	XS   string `json:"xs" example:"0.75rem"`
	SM   string `json:"sm" example:"0.875rem"`
	Base string `json:"base" example:"1rem"`
	LG   string `json:"lg" example:"1.125rem"`
	XL   string `json:"xl" example:"1.25rem"`
	XL2  string `json:"2xl" example:"1.5rem"`
	XL3  string `json:"3xl" example:"1.875rem"`
	XL4  string `json:"4xl" example:"2.25rem"`
}

// FontWeights is the fixed four-step weight ladder.
type FontWeights struct {
	Normal   string `json:"normal" example:"400"`
	Medium   string `json:"medium" example:"500"`
	Semibold string `json:"semibold" example:"600"`
	Bold     string `json:"bold" example:"700"`
}

// LineHeights is the fixed three-step line-height ladder.
type LineHeights struct {
	Tight   string `json:"tight" example:"1.25"`
	Normal  string `json:"normal" example:"1.6"`
	Relaxed string `json:"relaxed" example:"1.8"`
}

// TypographyTokens bundles the font roles and ladders.
type TypographyTokens struct {
	Families    FontFamilies `json:"families"`
	Sizes       FontSizes    `json:"sizes"`
	Weights     FontWeights  `json:"weights"`
	LineHeights LineHeights  `json:"line_heights"`
}

// SpacingScale is the seven-step spacing scale.
type SpacingScale struct {
	XS  string `json:"xs" example:"0.25rem"`
	SM  string `json:"sm" example:"0.5rem"`
	MD  string `json:"md" example:"1rem"`
	LG  string `json:"lg" example:"1.5rem"`
	XL  string `json:"xl" example:"2rem"`
	XL2 string `json:"2xl" example:"3rem"`
	XL3 string `json:"3xl" example:"4rem"`
}

// RadiusScale is the six-step border-radius scale.
type RadiusScale struct {
	None string `json:"none" example:"0"`
	SM   string `json:"sm" example:"0.125rem"`
	MD   string `json:"md" example:"0.375rem"`
	LG   string `json:"lg" example:"0.5rem"`
	XL   string `json:"xl" example:"1rem"`
	Full string `json:"full" example:"9999px"`
}

// ShadowScale is the four-step shadow scale.
type ShadowScale struct {
	SM string `json:"sm" example:"0 1px 2px rgba(0,0,0,0.05)"`
	MD string `json:"md" example:"0 4px 6px rgba(0,0,0,0.1)"`
	LG string `json:"lg" example:"0 10px 15px rgba(0,0,0,0.1)"`
	XL string `json:"xl" example:"0 20px 25px rgba(0,0,0,0.15)"`
}

// AnimationDurations is the three-step duration ladder.
type AnimationDurations struct {
	Fast   string `json:"fast" example:"150ms"`
	Normal string `json:"normal" example:"300ms"`
	Slow   string `json:"slow" example:"500ms"`
}

// AnimationEasings names the four easing curves.
type AnimationEasings struct {
	Linear    string `json:"linear" example:"linear"`
	EaseIn    string `json:"ease_in" example:"cubic-bezier(0.4, 0, 1, 1)"`
	EaseOut   string `json:"ease_out" example:"cubic-bezier(0, 0, 0.2, 1)"`
	EaseInOut string `json:"ease_in_out" example:"cubic-bezier(0.4, 0, 0.2, 1)"`
}

// AnimationTokens bundles timing durations and easing curves.
type AnimationTokens struct {
	Durations AnimationDurations `json:"durations"`
	Easings   AnimationEasings   `json:"easings"`
}

// LayoutTokens holds the page-level layout dimensions.
type LayoutTokens struct {
	MaxWidth       string `json:"max_width" example:"1200px"`
	HeaderHeight   string `json:"header_height" example:"70px"`
	FooterHeight   string `json:"footer_height" example:"auto"`
	SidebarWidth   string `json:"sidebar_width" example:"300px"`
	ContentPadding string `json:"content_padding" example:"2rem"`
	GridGap        string `json:"grid_gap" example:"2rem"`
}

// StyleTokens is a theme's complete style token set. After registration
// every field carries a concrete value; the registry's definition builder
// fills omitted fields from the baseline.
type StyleTokens struct {
	Colors       ColorTokens      `json:"colors"`
	Typography   TypographyTokens `json:"typography"`
	Spacing      SpacingScale     `json:"spacing"`
	BorderRadius RadiusScale      `json:"border_radius"`
	Shadows      ShadowScale      `json:"shadows"`
	Animations   AnimationTokens  `json:"animations"`
}

// Customization is a partial overlay over a theme's tokens. The empty
// string means "not set, keep the lower-precedence value"; a set field
// overrides only that field, never its siblings.
type Customization struct {
	Colors       ColorTokens      `json:"colors,omitempty"`
	Typography   TypographyTokens `json:"typography,omitempty"`
	Spacing      SpacingScale     `json:"spacing,omitempty"`
	BorderRadius RadiusScale      `json:"border_radius,omitempty"`
	Shadows      ShadowScale      `json:"shadows,omitempty"`
	Layout       LayoutTokens     `json:"layout,omitempty"`
	CustomCSS    string           `json:"custom_css,omitempty"`
}
