package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/InkwellLabs/inkwell/pkg/models"
)

func TestFromContext_OutsideProvider(t *testing.T) {
	_, err := FromContext(context.Background())
	if !errors.Is(err, ErrNoScope) {
		t.Fatalf("got %v, want ErrNoScope", err)
	}
}

func TestFromContext_RoundTrip(t *testing.T) {
	scope := &Scope{
		Theme:    &models.ThemeDefinition{ID: "aurora"},
		Tenant:   &models.Tenant{Slug: "demo"},
		DarkMode: true,
	}
	ctx := NewContext(context.Background(), scope)

	got, err := FromContext(ctx)
	if err != nil {
		t.Fatalf("FromContext: %v", err)
	}
	if got != scope {
		t.Error("scope identity lost through context")
	}
}

func TestMustFromContext_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic outside a provider")
		}
	}()
	MustFromContext(context.Background())
}
