// Package postgres implements the stores on PostgreSQL through pgx.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the stores use.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Schema creates every table the stores need. It is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS counters (
	name TEXT PRIMARY KEY,
	seq  BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS catalog_entries (
	id       UUID PRIMARY KEY,
	name     TEXT NOT NULL UNIQUE,
	category TEXT NOT NULL,
	price    NUMERIC NOT NULL CHECK (price >= 0)
);

CREATE TABLE IF NOT EXISTS work_orders (
	service_id          BIGINT PRIMARY KEY,
	id                  UUID NOT NULL UNIQUE,
	vehicle_name        TEXT NOT NULL,
	vehicle_plate       TEXT NOT NULL DEFAULT '',
	customer_name       TEXT NOT NULL,
	customer_contact    TEXT NOT NULL DEFAULT '',
	items               JSONB NOT NULL DEFAULT '[]',
	notes               TEXT NOT NULL DEFAULT '',
	status              TEXT NOT NULL,
	created_at          TIMESTAMPTZ NOT NULL,
	parts_cost          NUMERIC NOT NULL DEFAULT 0,
	labor_cost          NUMERIC NOT NULL DEFAULT 0,
	discount            NUMERIC NOT NULL DEFAULT 0,
	extra_service_cost  NUMERIC NOT NULL DEFAULT 0,
	extra_service_notes TEXT NOT NULL DEFAULT '',
	payment_status      TEXT NOT NULL DEFAULT 'Unpaid',
	billed_at           TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS work_orders_created_at_idx ON work_orders (created_at DESC);
`

// Migrate applies Schema.
func Migrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return storeErr(err, "migrate")
	}
	return nil
}
