package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
//
// Products carry a TEXT id (generated by the store) alongside an integer
// seq; seq exists only to give the collection a stable newest-first order
// even when two products are created within the same clock tick.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    seq          INTEGER PRIMARY KEY,
    id           TEXT NOT NULL UNIQUE,
    name         TEXT NOT NULL,
    vehicle_name TEXT NOT NULL,
    image        BLOB,
    image_mime   TEXT,
    created_at   DATETIME NOT NULL,
    updated_at   DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS checklist_items (
    product_id  TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
    position    INTEGER NOT NULL,
    part_name   TEXT NOT NULL,
    present     INTEGER NOT NULL DEFAULT 1,
    is_damaged  INTEGER NOT NULL DEFAULT 0,
    damage_note TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (product_id, position)
);

CREATE TABLE IF NOT EXISTS activities (
    seq          INTEGER PRIMARY KEY,
    id           TEXT NOT NULL UNIQUE,
    type         TEXT NOT NULL CHECK (type IN ('created', 'edited', 'deleted')),
    product_name TEXT NOT NULL,
    created_at   DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
