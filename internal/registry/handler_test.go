package registry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/InkwellLabs/inkwell/internal/view"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"go.uber.org/zap"
)

func newTestMux(t *testing.T) (*Registry, *http.ServeMux) {
	t.Helper()
	reg := New(zap.NewNop())
	mux := http.NewServeMux()
	NewHandler(reg, zap.NewNop()).RegisterRoutes(mux)
	return reg, mux
}

func catalogueGet(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleList_All(t *testing.T) {
	reg, mux := newTestMux(t)
	_ = reg.Register("mono", testDef("mono", models.CategoryMinimal), &view.Bundle{}, nil)
	_ = reg.Register("aurora", testDef("aurora", models.CategoryModern), &view.Bundle{}, nil)

	rec := catalogueGet(t, mux, "/api/v1/themes")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var defs []models.ThemeDefinition
	if err := json.NewDecoder(rec.Body).Decode(&defs); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 themes, got %d", len(defs))
	}
	if defs[0].ID != "aurora" || defs[1].ID != "mono" {
		t.Errorf("expected themes sorted by id, got %q, %q", defs[0].ID, defs[1].ID)
	}
}

func TestHandleList_Empty(t *testing.T) {
	_, mux := newTestMux(t)

	rec := catalogueGet(t, mux, "/api/v1/themes")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}

func TestHandleList_CategoryFilter(t *testing.T) {
	reg, mux := newTestMux(t)
	_ = reg.Register("mono", testDef("mono", models.CategoryMinimal), &view.Bundle{}, nil)
	_ = reg.Register("aurora", testDef("aurora", models.CategoryModern), &view.Bundle{}, nil)

	rec := catalogueGet(t, mux, "/api/v1/themes?category=minimal")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var defs []models.ThemeDefinition
	if err := json.NewDecoder(rec.Body).Decode(&defs); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(defs) != 1 || defs[0].ID != "mono" {
		t.Errorf("expected only mono, got %+v", defs)
	}

	rec = catalogueGet(t, mux, "/api/v1/themes?category=magazine")
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("expected empty array for unmatched category, got %q", got)
	}
}

func TestHandleCategories(t *testing.T) {
	reg, mux := newTestMux(t)
	_ = reg.Register("mono", testDef("mono", models.CategoryMinimal), &view.Bundle{}, nil)
	_ = reg.Register("stark", testDef("stark", models.CategoryMinimal), &view.Bundle{}, nil)
	_ = reg.Register("aurora", testDef("aurora", models.CategoryModern), &view.Bundle{}, nil)

	rec := catalogueGet(t, mux, "/api/v1/themes/categories")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var cats []CategoryInfo
	if err := json.NewDecoder(rec.Body).Decode(&cats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []CategoryInfo{
		{ID: "modern", DisplayName: "Modern", Count: 1},
		{ID: "minimal", DisplayName: "Minimal", Count: 2},
	}
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d: %+v", len(want), len(cats), cats)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("categories[%d] = %+v, want %+v", i, cats[i], want[i])
		}
	}
}

func TestHandleGet(t *testing.T) {
	reg, mux := newTestMux(t)
	_ = reg.Register("aurora", testDef("aurora", models.CategoryModern), &view.Bundle{}, nil)

	rec := catalogueGet(t, mux, "/api/v1/themes/aurora")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var def models.ThemeDefinition
	if err := json.NewDecoder(rec.Body).Decode(&def); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if def.ID != "aurora" {
		t.Errorf("expected id aurora, got %q", def.ID)
	}
	if def.DefaultStyle.Colors.Primary == "" {
		t.Error("expected baseline-filled primary color in response")
	}
}

func TestHandleGet_NotFound(t *testing.T) {
	_, mux := newTestMux(t)

	rec := catalogueGet(t, mux, "/api/v1/themes/sunset")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %q", ct)
	}

	var problem ThemeProblemDetail
	if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
		t.Fatalf("failed to decode problem response: %v", err)
	}
	if problem.Status != http.StatusNotFound {
		t.Errorf("expected problem status 404, got %d", problem.Status)
	}
	if problem.Title != "Not Found" {
		t.Errorf("expected title %q, got %q", "Not Found", problem.Title)
	}
	if problem.Detail != "theme not registered: sunset" {
		t.Errorf("unexpected detail %q", problem.Detail)
	}
}
