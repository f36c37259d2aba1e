// Package themes wires the built-in theme skins into a registry.
package themes

import (
	"fmt"

	"github.com/InkwellLabs/inkwell/internal/registry"
	"github.com/InkwellLabs/inkwell/internal/themes/aurora"
	"github.com/InkwellLabs/inkwell/internal/themes/gazette"
	"github.com/InkwellLabs/inkwell/internal/themes/mono"
	"github.com/InkwellLabs/inkwell/pkg/models"
)

// RegisterAll registers every built-in theme with its lazy bundle loader.
// Bundles are only built when a tenant first renders with the theme.
func RegisterAll(reg *registry.Registry) error {
	builtins := []struct {
		id     string
		def    func() models.ThemeDefinition
		loader registry.Loader
	}{
		{aurora.ID, aurora.Definition, aurora.Load},
		{mono.ID, mono.Definition, mono.Load},
		{gazette.ID, gazette.Definition, gazette.Load},
	}

	for _, b := range builtins {
		if err := reg.Register(b.id, b.def(), nil, b.loader); err != nil {
			return fmt.Errorf("register builtin theme %q: %w", b.id, err)
		}
	}
	return nil
}
