// Package repo provides postgres access for role keyword sets
package repo

import (
	"context"

	"interviewcoach/internal/modkit/repokit"
)

// Repo is the persistence surface for role keywords
type Repo interface {
	// All returns every role with its keywords in position order
	All(ctx context.Context) (map[string][]string, error)
	// Replace swaps the stored keyword list of one role
	Replace(ctx context.Context, role string, keywords []string) error
}

type (
	// PG binds the repo to a Queryer
	PG struct{}
	// queries implements Repo
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the postgres repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) All(ctx context.Context) (map[string][]string, error) {
	const sql = `
select role, keyword
from role_keywords
order by role asc, position asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string][]string{}
	for rows.Next() {
		var role, kw string
		if err := rows.Scan(&role, &kw); err != nil {
			return nil, err
		}
		out[role] = append(out[role], kw)
	}
	return out, rows.Err()
}

func (r *queries) Replace(ctx context.Context, role string, keywords []string) error {
	if _, err := r.q.Exec(ctx, `delete from role_keywords where role = $1`, role); err != nil {
		return err
	}
	for i, kw := range keywords {
		if _, err := r.q.Exec(ctx,
			`insert into role_keywords (role, keyword, position) values ($1, $2, $3)`,
			role, kw, i,
		); err != nil {
			return err
		}
	}
	return nil
}
