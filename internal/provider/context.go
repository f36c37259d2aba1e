package provider

import (
	"context"
	"errors"

	"github.com/InkwellLabs/inkwell/pkg/models"
)

// ErrNoScope is returned when the theme scope is read outside an active
// provider. This is a programmer error: views must only run inside a
// provider's activation, never fall back to defaults.
var ErrNoScope = errors.New("theme scope accessed outside an active theme provider")

// Scope is what descendant views may read about the active theme.
type Scope struct {
	Theme         *models.ThemeDefinition
	Customization *models.Customization
	Tenant        *models.Tenant
	DarkMode      bool
	Preview       bool
}

type scopeKey struct{}

// NewContext returns a context carrying the active theme scope.
func NewContext(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// FromContext returns the active theme scope, or ErrNoScope when the
// context does not descend from an active provider.
func FromContext(ctx context.Context) (*Scope, error) {
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	if !ok || s == nil {
		return nil, ErrNoScope
	}
	return s, nil
}

// MustFromContext is FromContext for call sites that cannot recover;
// it panics on misuse.
func MustFromContext(ctx context.Context) *Scope {
	s, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}
