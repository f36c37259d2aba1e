package content

import (
	"database/sql"

	"github.com/InkwellLabs/inkwell/internal/store"
)

func migrations() []store.Migration {
	return []store.Migration{
		{
			Version:     1,
			Description: "create posts table",
			Up: func(tx *sql.Tx) error {
				_, err := tx.Exec(`
					CREATE TABLE IF NOT EXISTS posts (
						id           TEXT PRIMARY KEY,
						tenant_id    TEXT NOT NULL,
						slug         TEXT NOT NULL,
						title        TEXT NOT NULL,
						excerpt      TEXT NOT NULL DEFAULT '',
						content      TEXT NOT NULL DEFAULT '',
						author       TEXT NOT NULL DEFAULT '',
						cover_image  TEXT NOT NULL DEFAULT '',
						category     TEXT NOT NULL DEFAULT '',
						tags         TEXT NOT NULL DEFAULT '',
						featured     INTEGER NOT NULL DEFAULT 0,
						published_at TIMESTAMP NOT NULL,
						UNIQUE(tenant_id, slug)
					)`)
				return err
			},
		},
		{
			Version:     2,
			Description: "index posts by tenant and category",
			Up: func(tx *sql.Tx) error {
				if _, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_posts_tenant ON posts(tenant_id, published_at DESC)`); err != nil {
					return err
				}
				_, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_posts_category ON posts(tenant_id, category)`)
				return err
			},
		},
	}
}
