package renderer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/InkwellLabs/inkwell/internal/registry"
	"github.com/InkwellLabs/inkwell/internal/view"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"go.uber.org/zap"
)

func waitForState(t *testing.T, s *Session, want Status) error {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		status, err := s.State()
		if status == want {
			return err
		}
		time.Sleep(5 * time.Millisecond)
	}
	status, _ := s.State()
	t.Fatalf("session stuck in %q, want %q", status, want)
	return nil
}

func TestSession_InitialStateIsLoading(t *testing.T) {
	reg := registry.New(zap.NewNop())
	s := NewSession(reg, zap.NewNop())

	status, err := s.State()
	if status != StatusLoading {
		t.Errorf("status = %q, want %q", status, StatusLoading)
	}
	if err != nil {
		t.Errorf("err = %v, want nil", err)
	}
	if _, _, ok := s.Current(); ok {
		t.Error("Current reported ready before any switch")
	}
}

func TestSession_SwitchUnknownTheme(t *testing.T) {
	reg := registry.New(zap.NewNop())
	s := NewSession(reg, zap.NewNop())

	s.Switch(context.Background(), "ghost")

	status, err := s.State()
	if status != StatusError {
		t.Fatalf("status = %q, want %q", status, StatusError)
	}
	if !errors.Is(err, registry.ErrNotRegistered) {
		t.Errorf("err = %v, want ErrNotRegistered", err)
	}
	if s.ThemeID() != "ghost" {
		t.Errorf("theme id = %q, want %q", s.ThemeID(), "ghost")
	}
}

func TestSession_SwitchLoadsBundle(t *testing.T) {
	reg := registry.New(zap.NewNop())
	bundle := &view.Bundle{}
	def := models.ThemeDefinition{ID: "plain", Category: models.CategoryMinimal}
	if err := reg.Register("plain", def, bundle, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}
	s := NewSession(reg, zap.NewNop())

	s.Switch(context.Background(), "plain")

	if err := waitForState(t, s, StatusReady); err != nil {
		t.Fatalf("ready with err = %v", err)
	}
	gotDef, gotBundle, ok := s.Current()
	if !ok {
		t.Fatal("Current not ready after load")
	}
	if gotDef.ID != "plain" {
		t.Errorf("definition id = %q, want %q", gotDef.ID, "plain")
	}
	if gotBundle != bundle {
		t.Error("bundle is not the registered instance")
	}
}

func TestSession_SwitchLoadError(t *testing.T) {
	reg := registry.New(zap.NewNop())
	def := models.ThemeDefinition{ID: "broken", Category: models.CategoryMinimal}
	loader := func(ctx context.Context) (*view.Bundle, error) {
		return nil, errors.New("templates missing")
	}
	if err := reg.Register("broken", def, nil, loader); err != nil {
		t.Fatalf("Register: %v", err)
	}
	s := NewSession(reg, zap.NewNop())

	s.Switch(context.Background(), "broken")

	err := waitForState(t, s, StatusError)
	if !errors.Is(err, registry.ErrLoadFailed) {
		t.Errorf("err = %v, want ErrLoadFailed", err)
	}
	if _, _, ok := s.Current(); ok {
		t.Error("Current reported ready for a failed load")
	}
}

// A load that finishes after a newer switch must be discarded. The slow
// theme's loader is held on a channel until the fast theme is already
// current, then released; the session must still report the fast theme.
func TestSession_SupersededLoadDiscarded(t *testing.T) {
	reg := registry.New(zap.NewNop())

	release := make(chan struct{})
	slowBundle := &view.Bundle{}
	slowLoader := func(ctx context.Context) (*view.Bundle, error) {
		<-release
		return slowBundle, nil
	}
	if err := reg.Register("slow", models.ThemeDefinition{ID: "slow", Category: models.CategoryMinimal}, nil, slowLoader); err != nil {
		t.Fatalf("Register slow: %v", err)
	}
	fastBundle := &view.Bundle{}
	if err := reg.Register("fast", models.ThemeDefinition{ID: "fast", Category: models.CategoryMinimal}, fastBundle, nil); err != nil {
		t.Fatalf("Register fast: %v", err)
	}

	s := NewSession(reg, zap.NewNop())
	s.Switch(context.Background(), "slow")

	if status, _ := s.State(); status != StatusLoading {
		t.Fatalf("status = %q, want %q while loader blocked", status, StatusLoading)
	}

	s.Switch(context.Background(), "fast")
	if err := waitForState(t, s, StatusReady); err != nil {
		t.Fatalf("ready with err = %v", err)
	}

	close(release)
	// Give the stale goroutine time to run into the generation check.
	time.Sleep(50 * time.Millisecond)

	def, bundle, ok := s.Current()
	if !ok {
		t.Fatal("Current not ready")
	}
	if def.ID != "fast" {
		t.Errorf("definition id = %q, want %q", def.ID, "fast")
	}
	if bundle != fastBundle {
		t.Error("stale bundle overwrote the current one")
	}
	if s.ThemeID() != "fast" {
		t.Errorf("theme id = %q, want %q", s.ThemeID(), "fast")
	}
}

func TestSession_SwitchBackRestartsLoading(t *testing.T) {
	reg := registry.New(zap.NewNop())
	if err := reg.Register("plain", models.ThemeDefinition{ID: "plain", Category: models.CategoryMinimal}, &view.Bundle{}, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}
	s := NewSession(reg, zap.NewNop())

	s.Switch(context.Background(), "plain")
	waitForState(t, s, StatusReady)

	s.Switch(context.Background(), "ghost")
	if status, _ := s.State(); status != StatusError {
		t.Fatalf("status = %q, want %q after bad switch", status, StatusError)
	}
	if _, _, ok := s.Current(); ok {
		t.Error("Current still ready after switching away")
	}

	s.Switch(context.Background(), "plain")
	if err := waitForState(t, s, StatusReady); err != nil {
		t.Fatalf("ready with err = %v", err)
	}
}
