// Package tenant owns tenant records: slug, display name, active theme,
// and the brand settings that participate in the customization merge.
package tenant

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/InkwellLabs/inkwell/internal/store"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no tenant matches the lookup.
var ErrNotFound = errors.New("tenant not found")

// Store persists tenants in the shared SQLite database.
type Store struct {
	db *store.SQLiteStore
}

// NewStore creates the tenant store and applies its migrations.
func NewStore(ctx context.Context, db *store.SQLiteStore) (*Store, error) {
	if err := db.Migrate(ctx, "tenant", migrations()); err != nil {
		return nil, fmt.Errorf("tenant migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Create inserts a tenant. A missing ID is generated; timestamps are set.
func (s *Store) Create(ctx context.Context, t *models.Tenant) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Slug == "" {
		return fmt.Errorf("tenant slug must not be empty")
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	brand, err := json.Marshal(t.Brand)
	if err != nil {
		return fmt.Errorf("marshal brand settings: %w", err)
	}

	_, err = s.db.DB().ExecContext(ctx, `
		INSERT INTO tenants (id, slug, name, theme_id, dark_mode, brand, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Slug, t.Name, t.ThemeID, boolToInt(t.DarkMode), string(brand), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tenant %q: %w", t.Slug, err)
	}
	return nil
}

// GetBySlug returns the tenant with the given slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	row := s.db.DB().QueryRowContext(ctx, `
		SELECT id, slug, name, theme_id, dark_mode, brand, created_at, updated_at
		FROM tenants WHERE slug = ?`, slug)
	return scanTenant(row)
}

// GetByID returns the tenant with the given id.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	row := s.db.DB().QueryRowContext(ctx, `
		SELECT id, slug, name, theme_id, dark_mode, brand, created_at, updated_at
		FROM tenants WHERE id = ?`, id)
	return scanTenant(row)
}

// List returns all tenants ordered by slug.
func (s *Store) List(ctx context.Context) ([]models.Tenant, error) {
	rows, err := s.db.DB().QueryContext(ctx, `
		SELECT id, slug, name, theme_id, dark_mode, brand, created_at, updated_at
		FROM tenants ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var out []models.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// SetTheme updates the tenant's active theme and dark-mode flag.
func (s *Store) SetTheme(ctx context.Context, id, themeID string, darkMode bool) error {
	res, err := s.db.DB().ExecContext(ctx, `
		UPDATE tenants SET theme_id = ?, dark_mode = ?, updated_at = ? WHERE id = ?`,
		themeID, boolToInt(darkMode), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("set theme for tenant %q: %w", id, err)
	}
	return checkAffected(res, id)
}

// UpdateBrand replaces the tenant's brand settings.
func (s *Store) UpdateBrand(ctx context.Context, id string, brand models.BrandSettings) error {
	blob, err := json.Marshal(brand)
	if err != nil {
		return fmt.Errorf("marshal brand settings: %w", err)
	}
	res, err := s.db.DB().ExecContext(ctx, `
		UPDATE tenants SET brand = ?, updated_at = ? WHERE id = ?`,
		string(blob), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("update brand for tenant %q: %w", id, err)
	}
	return checkAffected(res, id)
}

// Delete removes a tenant.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.DB().ExecContext(ctx, `DELETE FROM tenants WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete tenant %q: %w", id, err)
	}
	return checkAffected(res, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenant(row rowScanner) (*models.Tenant, error) {
	var t models.Tenant
	var dark int
	var brand string
	err := row.Scan(&t.ID, &t.Slug, &t.Name, &t.ThemeID, &dark, &brand, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan tenant: %w", err)
	}
	t.DarkMode = dark != 0
	if brand != "" {
		if err := json.Unmarshal([]byte(brand), &t.Brand); err != nil {
			return nil, fmt.Errorf("unmarshal brand settings for %q: %w", t.Slug, err)
		}
	}
	return &t, nil
}

func checkAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("tenant %q: %w", id, ErrNotFound)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
