package models

import "time"

// BrandColors are the tenant-chosen color overrides. Only set fields
// participate in the merge cascade.
type BrandColors struct {
	Primary   string `json:"primary,omitempty" example:"#0ea5e9"`
	Secondary string `json:"secondary,omitempty" example:"#14b8a6"`
	Accent    string `json:"accent,omitempty" example:"#f97316"`
	SiteBg    string `json:"site_bg,omitempty" example:"#ffffff"`
	SiteText  string `json:"site_text,omitempty" example:"#111827"`
}

// BrandFonts are the tenant-chosen font overrides.
type BrandFonts struct {
	PrimaryFont string `json:"primary_font,omitempty" example:"'Lora', serif"`
	HeadingFont string `json:"heading_font,omitempty" example:"'Playfair Display', serif"`
	CodeFont    string `json:"code_font,omitempty" example:"'Fira Code', monospace"`
}

// Branding holds the remaining tenant presentation settings.
type Branding struct {
	CustomCSS          string `json:"custom_css,omitempty"`
	CustomLogo         string `json:"custom_logo,omitempty" example:"https://cdn.example.com/logo.svg"`
	UseGravatarInHeader bool  `json:"use_gravatar_in_header"`
	FooterText         string `json:"footer_text,omitempty" example:"© 2026 The Daily Grind"`
}

// BrandSettings is the tenant-owned customization source. It is read-only
// to the theming engine and strictly wins over explicit customization in
// the merge cascade.
type BrandSettings struct {
	Colors   BrandColors `json:"brand_colors"`
	Fonts    BrandFonts  `json:"fonts"`
	Branding Branding    `json:"branding"`
}

// Tenant is one blog/site instance hosted by the platform.
type Tenant struct {
	ID          string        `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Slug        string        `json:"slug" example:"daily-grind"`
	Name        string        `json:"name" example:"The Daily Grind"`
	ThemeID     string        `json:"theme_id" example:"aurora"`
	DarkMode    bool          `json:"dark_mode"`
	Brand       BrandSettings `json:"brand"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
