package tenant

import (
	"database/sql"

	"github.com/InkwellLabs/inkwell/internal/store"
)

func migrations() []store.Migration {
	return []store.Migration{
		{
			Version:     1,
			Description: "create tenants table",
			Up: func(tx *sql.Tx) error {
				_, err := tx.Exec(`
					CREATE TABLE IF NOT EXISTS tenants (
						id         TEXT PRIMARY KEY,
						slug       TEXT NOT NULL UNIQUE,
						name       TEXT NOT NULL,
						theme_id   TEXT NOT NULL,
						dark_mode  INTEGER NOT NULL DEFAULT 0,
						brand      TEXT NOT NULL DEFAULT '{}',
						created_at TIMESTAMP NOT NULL,
						updated_at TIMESTAMP NOT NULL
					)`)
				return err
			},
		},
		{
			Version:     2,
			Description: "index tenants by theme",
			Up: func(tx *sql.Tx) error {
				_, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_tenants_theme ON tenants(theme_id)`)
				return err
			},
		},
	}
}
