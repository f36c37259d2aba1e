package themes

import (
	"context"
	"testing"

	"github.com/InkwellLabs/inkwell/internal/registry"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"go.uber.org/zap"
)

func TestRegisterAll(t *testing.T) {
	reg := registry.New(zap.NewNop())
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	all := reg.All()
	if len(all) != 3 {
		t.Fatalf("registered %d themes, want 3", len(all))
	}
	for _, id := range []string{"aurora", "gazette", "mono"} {
		if !reg.IsRegistered(id) {
			t.Errorf("builtin theme %q not registered", id)
		}
	}
}

// Every builtin bundle must build from its embedded templates with a
// complete assembly for every page type.
func TestBuiltinBundlesLoad(t *testing.T) {
	reg := registry.New(zap.NewNop())
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	pageTypes := []models.PageType{
		models.PageHomepage,
		models.PageSinglePost,
		models.PageArchive,
		models.PageAbout,
		models.PageContact,
		models.PageCategory,
		models.PageTag,
	}

	for _, def := range reg.All() {
		t.Run(def.ID, func(t *testing.T) {
			bundle, err := reg.Bundle(context.Background(), def.ID)
			if err != nil {
				t.Fatalf("Bundle: %v", err)
			}
			for _, pt := range pageTypes {
				asm, ok := bundle.Assembly(pt)
				if !ok {
					t.Errorf("page type %s has no assembly", pt)
					continue
				}
				if !asm.Complete() {
					t.Errorf("page type %s assembly incomplete", pt)
				}
			}
			if _, ok := bundle.Fragment("post-card"); !ok {
				t.Error("post-card fragment missing")
			}
		})
	}
}

func TestBuiltinDefinitions(t *testing.T) {
	reg := registry.New(zap.NewNop())
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	for _, def := range reg.All() {
		if def.Name == "" || def.Version == "" || def.Description == "" {
			t.Errorf("theme %q has incomplete identity: %+v", def.ID, def)
		}
		if def.DefaultStyle.Colors.Primary == "" {
			t.Errorf("theme %q has no primary color after baseline fill", def.ID)
		}
		if def.Layout.MaxWidth == "" {
			t.Errorf("theme %q has no layout max width after baseline fill", def.ID)
		}
	}
}
