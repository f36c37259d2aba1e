package provider

import "github.com/InkwellLabs/inkwell/internal/resolver"

// varSpec binds one presentation variable name to its source token. The
// table is the single source of truth for the variable set: the same names
// exist for every theme, only values vary.
type varSpec struct {
	name string
	get  func(*resolver.Resolved) string
}

var variableTable = []varSpec{
	{"--color-primary", func(r *resolver.Resolved) string { return r.Style.Colors.Primary }},
	{"--color-secondary", func(r *resolver.Resolved) string { return r.Style.Colors.Secondary }},
	{"--color-accent", func(r *resolver.Resolved) string { return r.Style.Colors.Accent }},
	{"--color-background", func(r *resolver.Resolved) string { return r.Style.Colors.Background }},
	{"--color-surface", func(r *resolver.Resolved) string { return r.Style.Colors.Surface }},
	{"--color-text", func(r *resolver.Resolved) string { return r.Style.Colors.Text }},
	{"--color-text-secondary", func(r *resolver.Resolved) string { return r.Style.Colors.TextSecondary }},
	{"--color-border", func(r *resolver.Resolved) string { return r.Style.Colors.Border }},
	{"--color-success", func(r *resolver.Resolved) string { return r.Style.Colors.Success }},
	{"--color-warning", func(r *resolver.Resolved) string { return r.Style.Colors.Warning }},
	{"--color-error", func(r *resolver.Resolved) string { return r.Style.Colors.Error }},

	{"--font-primary", func(r *resolver.Resolved) string { return r.Style.Typography.Families.Primary }},
	{"--font-heading", func(r *resolver.Resolved) string { return r.Style.Typography.Families.Heading }},
	{"--font-code", func(r *resolver.Resolved) string { return r.Style.Typography.Families.Code }},

	{"--text-xs", func(r *resolver.Resolved) string { return r.Style.Typography.Sizes.XS }},
	{"--text-sm", func(r *resolver.Resolved) string { return r.Style.Typography.Sizes.SM }},
	{"--text-base", func(r *resolver.Resolved) string { return r.Style.Typography.Sizes.Base }},
	{"--text-lg", func(r *resolver.Resolved) string { return r.Style.Typography.Sizes.LG }},
	{"--text-xl", func(r *resolver.Resolved) string { return r.Style.Typography.Sizes.XL }},
	{"--text-2xl", func(r *resolver.Resolved) string { return r.Style.Typography.Sizes.XL2 }},
	{"--text-3xl", func(r *resolver.Resolved) string { return r.Style.Typography.Sizes.XL3 }},
	{"--text-4xl", func(r *resolver.Resolved) string { return r.Style.Typography.Sizes.XL4 }},

	{"--font-weight-normal", func(r *resolver.Resolved) string { return r.Style.Typography.Weights.Normal }},
	{"--font-weight-medium", func(r *resolver.Resolved) string { return r.Style.Typography.Weights.Medium }},
	{"--font-weight-semibold", func(r *resolver.Resolved) string { return r.Style.Typography.Weights.Semibold }},
	{"--font-weight-bold", func(r *resolver.Resolved) string { return r.Style.Typography.Weights.Bold }},

	{"--leading-tight", func(r *resolver.Resolved) string { return r.Style.Typography.LineHeights.Tight }},
	{"--leading-normal", func(r *resolver.Resolved) string { return r.Style.Typography.LineHeights.Normal }},
	{"--leading-relaxed", func(r *resolver.Resolved) string { return r.Style.Typography.LineHeights.Relaxed }},

	{"--space-xs", func(r *resolver.Resolved) string { return r.Style.Spacing.XS }},
	{"--space-sm", func(r *resolver.Resolved) string { return r.Style.Spacing.SM }},
	{"--space-md", func(r *resolver.Resolved) string { return r.Style.Spacing.MD }},
	{"--space-lg", func(r *resolver.Resolved) string { return r.Style.Spacing.LG }},
	{"--space-xl", func(r *resolver.Resolved) string { return r.Style.Spacing.XL }},
	{"--space-2xl", func(r *resolver.Resolved) string { return r.Style.Spacing.XL2 }},
	{"--space-3xl", func(r *resolver.Resolved) string { return r.Style.Spacing.XL3 }},

	{"--radius-none", func(r *resolver.Resolved) string { return r.Style.BorderRadius.None }},
	{"--radius-sm", func(r *resolver.Resolved) string { return r.Style.BorderRadius.SM }},
	{"--radius-md", func(r *resolver.Resolved) string { return r.Style.BorderRadius.MD }},
	{"--radius-lg", func(r *resolver.Resolved) string { return r.Style.BorderRadius.LG }},
	{"--radius-xl", func(r *resolver.Resolved) string { return r.Style.BorderRadius.XL }},
	{"--radius-full", func(r *resolver.Resolved) string { return r.Style.BorderRadius.Full }},

	{"--shadow-sm", func(r *resolver.Resolved) string { return r.Style.Shadows.SM }},
	{"--shadow-md", func(r *resolver.Resolved) string { return r.Style.Shadows.MD }},
	{"--shadow-lg", func(r *resolver.Resolved) string { return r.Style.Shadows.LG }},
	{"--shadow-xl", func(r *resolver.Resolved) string { return r.Style.Shadows.XL }},

	{"--duration-fast", func(r *resolver.Resolved) string { return r.Style.Animations.Durations.Fast }},
	{"--duration-normal", func(r *resolver.Resolved) string { return r.Style.Animations.Durations.Normal }},
	{"--duration-slow", func(r *resolver.Resolved) string { return r.Style.Animations.Durations.Slow }},

	{"--ease-linear", func(r *resolver.Resolved) string { return r.Style.Animations.Easings.Linear }},
	{"--ease-in", func(r *resolver.Resolved) string { return r.Style.Animations.Easings.EaseIn }},
	{"--ease-out", func(r *resolver.Resolved) string { return r.Style.Animations.Easings.EaseOut }},
	{"--ease-in-out", func(r *resolver.Resolved) string { return r.Style.Animations.Easings.EaseInOut }},

	{"--layout-max-width", func(r *resolver.Resolved) string { return r.Layout.MaxWidth }},
	{"--layout-header-height", func(r *resolver.Resolved) string { return r.Layout.HeaderHeight }},
	{"--layout-footer-height", func(r *resolver.Resolved) string { return r.Layout.FooterHeight }},
	{"--layout-sidebar-width", func(r *resolver.Resolved) string { return r.Layout.SidebarWidth }},
	{"--layout-content-padding", func(r *resolver.Resolved) string { return r.Layout.ContentPadding }},
	{"--layout-grid-gap", func(r *resolver.Resolved) string { return r.Layout.GridGap }},
}

// VariableNames returns the fixed, closed set of presentation variable
// names in table order.
func VariableNames() []string {
	names := make([]string, len(variableTable))
	for i, s := range variableTable {
		names[i] = s.name
	}
	return names
}

// Derive flattens a merged style configuration into the variable table.
// It is a pure function of its input: the same Resolved value always
// yields the same table.
func Derive(res resolver.Resolved) map[string]string {
	out := make(map[string]string, len(variableTable))
	for _, s := range variableTable {
		out[s.name] = s.get(&res)
	}
	return out
}
