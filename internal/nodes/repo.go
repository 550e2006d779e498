package nodes

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/epstein-graph/graph-backend/internal/graph"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Insert appends one user-submitted node. A unique violation on the
// lowercased label surfaces as graph.ErrDuplicateLabel, which closes the
// read-then-write race on the duplicate check.
func (r *Repo) Insert(ctx context.Context, n graph.Node, ipAddress string) error {
	const q = `
insert into user_nodes (id, label, role, "group", gender, image, ip_address)
values ($1, $2, $3, $4, $5, $6, $7);
`
	_, err := r.db.Exec(ctx, q, n.ID, n.Label, n.Role, string(n.Group), n.Gender, n.Image, ipAddress)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return graph.ErrDuplicateLabel
		}
		return err
	}
	return nil
}

// List returns all user-submitted nodes in insertion order.
func (r *Repo) List(ctx context.Context) ([]graph.Node, error) {
	const q = `
select id, label, role, "group", gender, image
from user_nodes
order by created_at asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]graph.Node, 0, 16)
	for rows.Next() {
		var n graph.Node
		var group string
		if err := rows.Scan(&n.ID, &n.Label, &n.Role, &group, &n.Gender, &n.Image); err != nil {
			return nil, err
		}
		n.Group = graph.Group(group)
		out = append(out, n)
	}
	return out, rows.Err()
}

// LabelExists reports whether a user-submitted node already uses the
// label, case-insensitively.
func (r *Repo) LabelExists(ctx context.Context, label string) (bool, error) {
	const q = `select exists (select 1 from user_nodes where lower(label) = lower($1));`
	var exists bool
	err := r.db.QueryRow(ctx, q, label).Scan(&exists)
	return exists, err
}

// HasID reports whether a user-submitted node with the id exists. The
// edges endpoint checks endpoints against the seed/user union with this.
func (r *Repo) HasID(ctx context.Context, id string) (bool, error) {
	const q = `select exists (select 1 from user_nodes where id = $1);`
	var exists bool
	err := r.db.QueryRow(ctx, q, id).Scan(&exists)
	return exists, err
}
