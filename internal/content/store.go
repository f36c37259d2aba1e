// Package content is the read model the renderer pulls page data from:
// published posts, categories, and tags, scoped per tenant.
package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/InkwellLabs/inkwell/internal/store"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no post matches the lookup.
var ErrNotFound = errors.New("post not found")

// Store reads and writes tenant content in the shared SQLite database.
type Store struct {
	db *store.SQLiteStore
}

// NewStore creates the content store and applies its migrations.
func NewStore(ctx context.Context, db *store.SQLiteStore) (*Store, error) {
	if err := db.Migrate(ctx, "content", migrations()); err != nil {
		return nil, fmt.Errorf("content migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// CreatePost inserts a post for a tenant. A missing ID is generated.
func (s *Store) CreatePost(ctx context.Context, tenantID string, p *models.Post) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Now().UTC()
	}
	_, err := s.db.DB().ExecContext(ctx, `
		INSERT INTO posts (id, tenant_id, slug, title, excerpt, content, author, cover_image, category, tags, featured, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, tenantID, p.Slug, p.Title, p.Excerpt, p.Content, p.Author, p.CoverImage,
		p.Category, strings.Join(p.Tags, ","), boolToInt(p.Featured), p.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert post %q: %w", p.Slug, err)
	}
	return nil
}

// PostBySlug returns one published post.
func (s *Store) PostBySlug(ctx context.Context, tenantID, slug string) (*models.Post, error) {
	row := s.db.DB().QueryRowContext(ctx, postColumns+` WHERE tenant_id = ? AND slug = ?`, tenantID, slug)
	return scanPost(row)
}

// Posts returns all posts for a tenant, newest first.
func (s *Store) Posts(ctx context.Context, tenantID string) ([]models.Post, error) {
	return s.queryPosts(ctx, postColumns+` WHERE tenant_id = ? ORDER BY published_at DESC`, tenantID)
}

// PostsByCategory returns a tenant's posts within one category, newest first.
func (s *Store) PostsByCategory(ctx context.Context, tenantID, category string) ([]models.Post, error) {
	return s.queryPosts(ctx,
		postColumns+` WHERE tenant_id = ? AND category = ? ORDER BY published_at DESC`,
		tenantID, category)
}

// PostsByTag returns a tenant's posts carrying the given tag, newest first.
// Tags are stored comma-joined, so the match happens after the scan.
func (s *Store) PostsByTag(ctx context.Context, tenantID, tag string) ([]models.Post, error) {
	posts, err := s.Posts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var out []models.Post
	for _, p := range posts {
		for _, t := range p.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

// Related returns up to limit other posts sharing the post's category.
func (s *Store) Related(ctx context.Context, tenantID string, p *models.Post, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.queryPosts(ctx,
		postColumns+` WHERE tenant_id = ? AND category = ? AND id != ? ORDER BY published_at DESC LIMIT ?`,
		tenantID, p.Category, p.ID, limit)
}

// Categories returns the tenant's categories with post counts, by count descending.
func (s *Store) Categories(ctx context.Context, tenantID string) ([]models.Category, error) {
	rows, err := s.db.DB().QueryContext(ctx, `
		SELECT category, COUNT(*) FROM posts
		WHERE tenant_id = ? AND category != ''
		GROUP BY category ORDER BY COUNT(*) DESC, category`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Name, &c.PostCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Slug = slugify(c.Name)
		out = append(out, c)
	}
	return out, rows.Err()
}

// Tags returns the tenant's tags with usage counts, by count descending.
func (s *Store) Tags(ctx context.Context, tenantID string) ([]models.Tag, error) {
	posts, err := s.Posts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, p := range posts {
		for _, t := range p.Tags {
			counts[t]++
		}
	}
	out := make([]models.Tag, 0, len(counts))
	for name, n := range counts {
		out = append(out, models.Tag{Name: name, Slug: slugify(name), PostCount: n})
	}
	sortTags(out)
	return out, nil
}

// DeleteForTenant removes all content belonging to a tenant.
func (s *Store) DeleteForTenant(ctx context.Context, tenantID string) error {
	_, err := s.db.DB().ExecContext(ctx, `DELETE FROM posts WHERE tenant_id = ?`, tenantID)
	if err != nil {
		return fmt.Errorf("delete posts for tenant %q: %w", tenantID, err)
	}
	return nil
}

const postColumns = `
	SELECT id, slug, title, excerpt, content, author, cover_image, category, tags, featured, published_at
	FROM posts`

func (s *Store) queryPosts(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := s.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var p models.Post
	var tags string
	var featured int
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.Author,
		&p.CoverImage, &p.Category, &tags, &featured, &p.PublishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan post: %w", err)
	}
	p.Featured = featured != 0
	if tags != "" {
		p.Tags = strings.Split(tags, ",")
	}
	return &p, nil
}

func sortTags(tags []models.Tag) {
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].PostCount != tags[j].PostCount {
			return tags[i].PostCount > tags[j].PostCount
		}
		return tags[i].Name < tags[j].Name
	})
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
