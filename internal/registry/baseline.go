package registry

import "github.com/InkwellLabs/inkwell/pkg/models"

// Baseline returns the hard-coded fallback token set. Every token a theme
// definition omits at registration time is filled from here, so no
// definition is ever partially specified.
func Baseline() models.ThemeDefinition {
	return models.ThemeDefinition{
		Version:  "1.0.0",
		Category: models.CategoryMinimal,
		DefaultStyle: models.StyleTokens{
			Colors: models.ColorTokens{
				Primary:       "#2563eb",
				Secondary:     "#7c3aed",
				Accent:        "#db2777",
				Background:    "#ffffff",
				Surface:       "#f8fafc",
				Text:          "#0f172a",
				TextSecondary: "#64748b",
				Border:        "#e2e8f0",
				Success:       "#16a34a",
				Warning:       "#d97706",
				Error:         "#dc2626",
			},
			Typography: models.TypographyTokens{
				Families: models.FontFamilies{
					Primary: "system-ui, -apple-system, sans-serif",
					Heading: "system-ui, -apple-system, sans-serif",
					Code:    "ui-monospace, 'SF Mono', monospace",
				},
				Sizes: models.FontSizes{
					XS:   "0.75rem",
					SM:   "0.875rem",
					Base: "1rem",
					LG:   "1.125rem",
					XL:   "1.25rem",
					XL2:  "1.5rem",
					XL3:  "1.875rem",
					XL4:  "2.25rem",
				},
				Weights: models.FontWeights{
					Normal:   "400",
					Medium:   "500",
					Semibold: "600",
					Bold:     "700",
				},
				LineHeights: models.LineHeights{
					Tight:   "1.25",
					Normal:  "1.6",
					Relaxed: "1.8",
				},
			},
			Spacing: models.SpacingScale{
				XS:  "0.25rem",
				SM:  "0.5rem",
				MD:  "1rem",
				LG:  "1.5rem",
				XL:  "2rem",
				XL2: "3rem",
				XL3: "4rem",
			},
			BorderRadius: models.RadiusScale{
				None: "0",
				SM:   "0.125rem",
				MD:   "0.375rem",
				LG:   "0.5rem",
				XL:   "1rem",
				Full: "9999px",
			},
			Shadows: models.ShadowScale{
				SM: "0 1px 2px rgba(0, 0, 0, 0.05)",
				MD: "0 4px 6px rgba(0, 0, 0, 0.1)",
				LG: "0 10px 15px rgba(0, 0, 0, 0.1)",
				XL: "0 20px 25px rgba(0, 0, 0, 0.15)",
			},
			Animations: models.AnimationTokens{
				Durations: models.AnimationDurations{
					Fast:   "150ms",
					Normal: "300ms",
					Slow:   "500ms",
				},
				Easings: models.AnimationEasings{
					Linear:    "linear",
					EaseIn:    "cubic-bezier(0.4, 0, 1, 1)",
					EaseOut:   "cubic-bezier(0, 0, 0.2, 1)",
					EaseInOut: "cubic-bezier(0.4, 0, 0.2, 1)",
				},
			},
		},
		Layout: models.LayoutTokens{
			MaxWidth:       "1200px",
			HeaderHeight:   "70px",
			FooterHeight:   "auto",
			SidebarWidth:   "300px",
			ContentPadding: "2rem",
			GridGap:        "2rem",
		},
	}
}
