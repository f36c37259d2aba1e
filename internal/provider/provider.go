package provider

import (
	"github.com/InkwellLabs/inkwell/internal/resolver"
	"go.uber.org/zap"
)

// Input is everything an activation depends on. It is comparable, which is
// what makes the derivation memoizable: activating twice with an equal
// Input is a no-op.
type Input struct {
	ThemeID  string
	Resolved resolver.Resolved
	DarkMode bool
	Preview  bool
}

// Provider applies a merged style configuration to a Document for the
// duration of its activation. At most one configuration is live per
// Document; activating a new one first tears down the previous
// application, and Deactivate removes everything that was written.
type Provider struct {
	doc    *Document
	logger *zap.Logger

	active         bool
	last           Input
	appliedVars    []string
	appliedClasses []string
	styleKey       string
}

// New creates a Provider writing to doc.
func New(doc *Document, logger *zap.Logger) *Provider {
	return &Provider{doc: doc, logger: logger}
}

// Document returns the presentation state this provider owns.
func (p *Provider) Document() *Document { return p.doc }

// Active reports whether a configuration is currently applied.
func (p *Provider) Active() bool { return p.active }

// Activate applies the configuration to the document: the full variable
// table, the theme/dark/preview marker classes, and the custom-CSS block
// when present. A previously applied configuration is removed first, so a
// theme switch can never leave stale state behind. Re-activating with an
// unchanged input is a no-op.
func (p *Provider) Activate(in Input) {
	if p.active && in == p.last {
		return
	}
	if p.active {
		p.Deactivate()
	}

	vars := Derive(in.Resolved)
	p.appliedVars = VariableNames()
	for _, name := range p.appliedVars {
		p.doc.SetVar(name, vars[name])
	}

	// Replace any previously-added theme marker, ours or not.
	p.doc.RemoveClassesWithPrefix("theme-")
	themeClass := "theme-" + in.ThemeID
	p.doc.AddClass(themeClass)
	p.appliedClasses = []string{themeClass}

	if in.DarkMode {
		p.doc.AddClass("dark")
		p.appliedClasses = append(p.appliedClasses, "dark")
	} else {
		p.doc.RemoveClass("dark")
	}
	if in.Preview {
		p.doc.AddClass("preview-mode")
		p.appliedClasses = append(p.appliedClasses, "preview-mode")
	} else {
		p.doc.RemoveClass("preview-mode")
	}

	if in.Resolved.CustomCSS != "" {
		p.styleKey = themeClass + "-custom-css"
		p.doc.SetStyleBlock(p.styleKey, in.Resolved.CustomCSS)
	} else {
		p.styleKey = ""
	}

	p.active = true
	p.last = in

	p.logger.Debug("theme applied",
		zap.String("theme_id", in.ThemeID),
		zap.Int("variables", len(p.appliedVars)),
		zap.Bool("dark_mode", in.DarkMode),
		zap.Bool("preview", in.Preview),
		zap.Bool("custom_css", p.styleKey != ""),
	)
}

// Deactivate removes every variable, marker class, and style block the
// provider wrote. It is idempotent and safe to call when inactive.
func (p *Provider) Deactivate() {
	if !p.active {
		return
	}
	for _, name := range p.appliedVars {
		p.doc.RemoveVar(name)
	}
	for _, c := range p.appliedClasses {
		p.doc.RemoveClass(c)
	}
	if p.styleKey != "" {
		p.doc.RemoveStyleBlock(p.styleKey)
	}

	p.logger.Debug("theme removed", zap.String("theme_id", p.last.ThemeID))

	p.active = false
	p.appliedVars = nil
	p.appliedClasses = nil
	p.styleKey = ""
	p.last = Input{}
}
