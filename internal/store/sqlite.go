// Package store persists normalized address datasets to SQLite so a
// cleaned vintage can be reused without re-parsing the raw export.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/civicgis/addrmatch/internal/source"
)

// SQLite wraps a modernc.org/sqlite database holding saved datasets.
type SQLite struct {
	db *sql.DB
}

// New opens (or creates) the database at path and configures WAL mode.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "store: open sqlite")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "store: exec %s", pragma)
		}
	}
	return &SQLite{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS datasets (
	id          TEXT PRIMARY KEY,
	source_type TEXT NOT NULL,
	source_path TEXT NOT NULL,
	count       INTEGER NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS addresses (
	dataset_id       TEXT NOT NULL REFERENCES datasets(id),
	object_id        INTEGER NOT NULL,
	number           INTEGER NOT NULL,
	number_suffix    TEXT,
	pre_directional  TEXT,
	street_name      TEXT NOT NULL,
	post_type        TEXT NOT NULL,
	subaddress_type  TEXT,
	subaddress_id    TEXT,
	floor            INTEGER,
	building         TEXT,
	zip              INTEGER NOT NULL,
	postal_community TEXT NOT NULL,
	state            TEXT NOT NULL,
	status           TEXT NOT NULL,
	x                REAL,
	y                REAL
);

CREATE INDEX IF NOT EXISTS idx_addresses_dataset_id ON addresses(dataset_id);
CREATE INDEX IF NOT EXISTS idx_addresses_street ON addresses(street_name, post_type);
`

// Migrate creates the schema. Idempotent.
func (s *SQLite) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "store: migrate")
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// SaveDataset records one normalized dataset pass and all of its
// addresses in a single transaction, returning the dataset id.
func (s *SQLite) SaveDataset(ctx context.Context, sourceType, sourcePath string, addrs []source.GeoAddress) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", eris.Wrap(err, "store: begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx,
		`INSERT INTO datasets (id, source_type, source_path, count, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, sourceType, sourcePath, len(addrs), time.Now().UTC(),
	)
	if err != nil {
		return "", eris.Wrap(err, "store: insert dataset")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO addresses (
			dataset_id, object_id, number, number_suffix, pre_directional,
			street_name, post_type, subaddress_type, subaddress_id, floor,
			building, zip, postal_community, state, status, x, y
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", eris.Wrap(err, "store: prepare insert")
	}
	defer stmt.Close()

	for _, a := range addrs {
		var floor any
		if a.Floor != nil {
			floor = *a.Floor
		}
		_, err = stmt.ExecContext(ctx,
			id, a.ObjectID, a.Number, nullable(a.NumberSuffix),
			nullable(string(a.PreDirectional)), a.StreetName, string(a.PostType),
			nullable(string(a.SubaddressType)), nullable(a.SubaddressID), floor,
			nullable(a.Building), a.ZIP, a.PostalCommunity, a.State,
			string(a.Status), a.X, a.Y,
		)
		if err != nil {
			return "", eris.Wrapf(err, "store: insert address %d", a.ObjectID)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", eris.Wrap(err, "store: commit")
	}
	return id, nil
}

// CountAddresses returns the number of addresses saved under a dataset.
func (s *SQLite) CountAddresses(ctx context.Context, datasetID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM addresses WHERE dataset_id = ?`, datasetID,
	).Scan(&n)
	if err != nil {
		return 0, eris.Wrap(err, "store: count addresses")
	}
	return n, nil
}

// nullable maps empty strings to SQL NULL so absent optional fields
// stay distinguishable from real empty values.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
