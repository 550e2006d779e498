package edges

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/epstein-graph/graph-backend/internal/graph"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Insert appends one user-submitted edge.
func (r *Repo) Insert(ctx context.Context, e graph.Edge, ipAddress string) error {
	const q = `
insert into user_edges (id, source, target, connection_type, doj_link, document_title, quote_snippet, ip_address)
values ($1, $2, $3, $4, $5, $6, $7, $8);
`
	_, err := r.db.Exec(ctx, q,
		e.ID, e.Source, e.Target, string(e.ConnectionType),
		e.DOJLink, e.DocumentTitle, e.QuoteSnippet, ipAddress)
	return err
}

// List returns all user-submitted edges in insertion order.
func (r *Repo) List(ctx context.Context) ([]graph.Edge, error) {
	const q = `
select id, source, target, connection_type, doj_link, document_title, quote_snippet
from user_edges
order by created_at asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]graph.Edge, 0, 16)
	for rows.Next() {
		var e graph.Edge
		var ct string
		if err := rows.Scan(&e.ID, &e.Source, &e.Target, &ct, &e.DOJLink, &e.DocumentTitle, &e.QuoteSnippet); err != nil {
			return nil, err
		}
		e.ConnectionType = graph.ConnectionType(ct)
		out = append(out, e)
	}
	return out, rows.Err()
}
