package renderer

import (
	"context"
	"sync"

	"github.com/InkwellLabs/inkwell/internal/registry"
	"github.com/InkwellLabs/inkwell/internal/view"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"go.uber.org/zap"
)

// Session tracks the load state for one theme at a time: loading until both
// definition and bundle are available, then ready or error. Switching
// themes restarts at loading and bumps a generation token; a bundle load
// that finishes after a newer switch is discarded, so a stale bundle can
// never be observed as the current one.
//
// The live-preview path holds a Session per viewer; the server also keeps
// one to prewarm bundles when a tenant switches themes.
type Session struct {
	reg    *registry.Registry
	logger *zap.Logger

	mu      sync.Mutex
	themeID string
	gen     uint64
	status  Status
	def     *models.ThemeDefinition
	bundle  *view.Bundle
	err     error
}

// NewSession creates an idle session; its status is loading until the
// first Switch completes.
func NewSession(reg *registry.Registry, logger *zap.Logger) *Session {
	return &Session{reg: reg, logger: logger, status: StatusLoading}
}

// Switch requests themeID. The definition is checked synchronously; the
// bundle loads in the background. Any in-flight load for a previous switch
// is superseded, not cancelled: its result is discarded on arrival.
func (s *Session) Switch(ctx context.Context, themeID string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.themeID = themeID
	s.status = StatusLoading
	s.def = nil
	s.bundle = nil
	s.err = nil

	def, ok := s.reg.Definition(themeID)
	if !ok {
		s.status = StatusError
		s.err = registry.ErrNotRegistered
		s.mu.Unlock()
		return
	}
	s.def = def
	s.mu.Unlock()

	go s.load(ctx, themeID, gen)
}

func (s *Session) load(ctx context.Context, themeID string, gen uint64) {
	bundle, err := s.reg.Bundle(ctx, themeID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.logger.Debug("discarding superseded bundle load",
			zap.String("theme_id", themeID),
			zap.Uint64("generation", gen),
		)
		return
	}

	if err != nil {
		s.status = StatusError
		s.err = err
		return
	}
	s.bundle = bundle
	s.status = StatusReady
}

// State returns the current status and, for StatusError, its cause.
func (s *Session) State() (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.err
}

// ThemeID returns the most recently requested theme id.
func (s *Session) ThemeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.themeID
}

// Current returns the resolved definition and bundle once ready.
func (s *Session) Current() (*models.ThemeDefinition, *view.Bundle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusReady {
		return nil, nil, false
	}
	return s.def, s.bundle, true
}
