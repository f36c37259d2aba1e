// Package resolver merges the three customization sources into one concrete
// style-token set: theme defaults, an explicit customization passed by the
// caller, and the tenant's brand settings. Precedence is applied per
// individual field, highest wins: tenant brand > explicit customization >
// theme default. A partial override never erases unrelated defaults.
package resolver

import "github.com/InkwellLabs/inkwell/pkg/models"

// Resolved is the fully-merged style configuration handed to the provider.
// Every field carries a concrete value.
type Resolved struct {
	Style     models.StyleTokens
	Layout    models.LayoutTokens
	CustomCSS string
}

// Merge resolves the cascade for one render. The theme definition supplies
// the complete base; customization may be nil (no explicit overrides).
func Merge(def *models.ThemeDefinition, customization *models.Customization, brand models.BrandSettings) Resolved {
	if customization == nil {
		customization = &models.Customization{}
	}

	out := Resolved{
		Style:  def.DefaultStyle,
		Layout: def.Layout,
	}

	out.Style.Colors = mergeColors(out.Style.Colors, customization.Colors)
	out.Style.Typography = mergeTypography(out.Style.Typography, customization.Typography)
	out.Style.Spacing = mergeSpacing(out.Style.Spacing, customization.Spacing)
	out.Style.BorderRadius = mergeRadius(out.Style.BorderRadius, customization.BorderRadius)
	out.Style.Shadows = mergeShadows(out.Style.Shadows, customization.Shadows)
	out.Layout = mergeLayout(out.Layout, customization.Layout)

	applyBrand(&out, brand)

	out.CustomCSS = pick(brand.Branding.CustomCSS, customization.CustomCSS)

	return out
}

// applyBrand layers the tenant's brand settings on top of the already
// customized tokens. Tenant values strictly win.
func applyBrand(out *Resolved, brand models.BrandSettings) {
	c := &out.Style.Colors
	c.Primary = pick(brand.Colors.Primary, c.Primary)
	c.Secondary = pick(brand.Colors.Secondary, c.Secondary)
	c.Accent = pick(brand.Colors.Accent, c.Accent)
	c.Background = pick(brand.Colors.SiteBg, c.Background)
	c.Text = pick(brand.Colors.SiteText, c.Text)

	f := &out.Style.Typography.Families
	f.Primary = pick(brand.Fonts.PrimaryFont, f.Primary)
	f.Heading = pick(brand.Fonts.HeadingFont, f.Heading)
	f.Code = pick(brand.Fonts.CodeFont, f.Code)
}

// OverlayStyle layers a partial token set over a complete base, field by
// field. Used by the registry's definition builder to fill omitted tokens
// from the baseline; unlike Merge it also covers animation tokens, which
// only theme authors (not customizations) may set.
func OverlayStyle(base, over models.StyleTokens) models.StyleTokens {
	return models.StyleTokens{
		Colors:       mergeColors(base.Colors, over.Colors),
		Typography:   mergeTypography(base.Typography, over.Typography),
		Spacing:      mergeSpacing(base.Spacing, over.Spacing),
		BorderRadius: mergeRadius(base.BorderRadius, over.BorderRadius),
		Shadows:      mergeShadows(base.Shadows, over.Shadows),
		Animations:   mergeAnimations(base.Animations, over.Animations),
	}
}

// OverlayLayout layers partial layout tokens over a complete base.
func OverlayLayout(base, over models.LayoutTokens) models.LayoutTokens {
	return mergeLayout(base, over)
}

func mergeColors(base, over models.ColorTokens) models.ColorTokens {
	return models.ColorTokens{
		Primary:       pick(over.Primary, base.Primary),
		Secondary:     pick(over.Secondary, base.Secondary),
		Accent:        pick(over.Accent, base.Accent),
		Background:    pick(over.Background, base.Background),
		Surface:       pick(over.Surface, base.Surface),
		Text:          pick(over.Text, base.Text),
		TextSecondary: pick(over.TextSecondary, base.TextSecondary),
		Border:        pick(over.Border, base.Border),
		Success:       pick(over.Success, base.Success),
		Warning:       pick(over.Warning, base.Warning),
		Error:         pick(over.Error, base.Error),
	}
}

func mergeTypography(base, over models.TypographyTokens) models.TypographyTokens {
	return models.TypographyTokens{
		Families: models.FontFamilies{
			Primary: pick(over.Families.Primary, base.Families.Primary),
			Heading: pick(over.Families.Heading, base.Families.Heading),
			Code:    pick(over.Families.Code, base.Families.Code),
		},
		Sizes: models.FontSizes{
			XS:   pick(over.Sizes.XS, base.Sizes.XS),
			SM:   pick(over.Sizes.SM, base.Sizes.SM),
			Base: pick(over.Sizes.Base, base.Sizes.Base),
			LG:   pick(over.Sizes.LG, base.Sizes.LG),
			XL:   pick(over.Sizes.XL, base.Sizes.XL),
			XL2:  pick(over.Sizes.XL2, base.Sizes.XL2),
			XL3:  pick(over.Sizes.XL3, base.Sizes.XL3),
			XL4:  pick(over.Sizes.XL4, base.Sizes.XL4),
		},
		Weights: models.FontWeights{
			Normal:   pick(over.Weights.Normal, base.Weights.Normal),
			Medium:   pick(over.Weights.Medium, base.Weights.Medium),
			Semibold: pick(over.Weights.Semibold, base.Weights.Semibold),
			Bold:     pick(over.Weights.Bold, base.Weights.Bold),
		},
		LineHeights: models.LineHeights{
			Tight:   pick(over.LineHeights.Tight, base.LineHeights.Tight),
			Normal:  pick(over.LineHeights.Normal, base.LineHeights.Normal),
			Relaxed: pick(over.LineHeights.Relaxed, base.LineHeights.Relaxed),
		},
	}
}

func mergeSpacing(base, over models.SpacingScale) models.SpacingScale {
	return models.SpacingScale{
		XS:  pick(over.XS, base.XS),
		SM:  pick(over.SM, base.SM),
		MD:  pick(over.MD, base.MD),
		LG:  pick(over.LG, base.LG),
		XL:  pick(over.XL, base.XL),
		XL2: pick(over.XL2, base.XL2),
		XL3: pick(over.XL3, base.XL3),
	}
}

func mergeRadius(base, over models.RadiusScale) models.RadiusScale {
	return models.RadiusScale{
		None: pick(over.None, base.None),
		SM:   pick(over.SM, base.SM),
		MD:   pick(over.MD, base.MD),
		LG:   pick(over.LG, base.LG),
		XL:   pick(over.XL, base.XL),
		Full: pick(over.Full, base.Full),
	}
}

func mergeShadows(base, over models.ShadowScale) models.ShadowScale {
	return models.ShadowScale{
		SM: pick(over.SM, base.SM),
		MD: pick(over.MD, base.MD),
		LG: pick(over.LG, base.LG),
		XL: pick(over.XL, base.XL),
	}
}

func mergeAnimations(base, over models.AnimationTokens) models.AnimationTokens {
	return models.AnimationTokens{
		Durations: models.AnimationDurations{
			Fast:   pick(over.Durations.Fast, base.Durations.Fast),
			Normal: pick(over.Durations.Normal, base.Durations.Normal),
			Slow:   pick(over.Durations.Slow, base.Durations.Slow),
		},
		Easings: models.AnimationEasings{
			Linear:    pick(over.Easings.Linear, base.Easings.Linear),
			EaseIn:    pick(over.Easings.EaseIn, base.Easings.EaseIn),
			EaseOut:   pick(over.Easings.EaseOut, base.Easings.EaseOut),
			EaseInOut: pick(over.Easings.EaseInOut, base.Easings.EaseInOut),
		},
	}
}

func mergeLayout(base, over models.LayoutTokens) models.LayoutTokens {
	return models.LayoutTokens{
		MaxWidth:       pick(over.MaxWidth, base.MaxWidth),
		HeaderHeight:   pick(over.HeaderHeight, base.HeaderHeight),
		FooterHeight:   pick(over.FooterHeight, base.FooterHeight),
		SidebarWidth:   pick(over.SidebarWidth, base.SidebarWidth),
		ContentPadding: pick(over.ContentPadding, base.ContentPadding),
		GridGap:        pick(over.GridGap, base.GridGap),
	}
}

// pick returns the override when set, the base otherwise. The empty string
// marks an unset field in every partial overlay.
func pick(override, base string) string {
	if override != "" {
		return override
	}
	return base
}
