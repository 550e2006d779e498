// Package postgres owns the relational schema for user submissions: two
// append-mostly tables behind the write endpoints.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The unique index on lower(label) backs the duplicate-name check: two
// near-simultaneous submissions can both pass the read-time check, but the
// second insert then fails with a unique violation instead of slipping
// through.
const schema = `
create table if not exists user_nodes (
    id text primary key,
    label text not null,
    role text not null default '',
    "group" text not null default 'associate',
    gender text not null default 'male',
    image text not null default '',
    created_at timestamptz not null default now(),
    ip_address text not null default ''
);

create unique index if not exists user_nodes_label_lower_idx
    on user_nodes (lower(label));

create table if not exists user_edges (
    id text primary key,
    source text not null,
    target text not null,
    connection_type text not null default 'other',
    doj_link text not null default '',
    document_title text not null default '',
    quote_snippet text not null default '',
    created_at timestamptz not null default now(),
    ip_address text not null default ''
);

create index if not exists user_edges_source_idx on user_edges (source);
create index if not exists user_edges_target_idx on user_edges (target);
`

// Migrate applies the schema. Statements are idempotent, so running at
// every startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
