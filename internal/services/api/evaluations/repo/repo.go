// Package repo persists evaluations to postgres and appends analytics events to clickhouse
package repo

import (
	"context"
	"time"

	"interviewcoach/internal/modkit/repokit"
	"interviewcoach/internal/platform/store"
	"interviewcoach/internal/services/api/evaluations/domain"
)

// Repo is the postgres surface for evaluation records
type Repo interface {
	Insert(ctx context.Context, rec domain.Record) error
	// Get returns ok=false when no record has id
	Get(ctx context.Context, id string) (domain.Record, bool, error)
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

func (r *queries) Insert(ctx context.Context, rec domain.Record) error {
	const sql = `
insert into evaluations (id, kind, job_role, overall_score, payload, created_at)
values ($1::uuid, $2, nullif($3, ''), $4, $5::jsonb, $6)
`
	_, err := r.q.Exec(ctx, sql, rec.ID, rec.Kind, rec.JobRole, rec.OverallScore, string(rec.Payload), rec.CreatedAt)
	return err
}

func (r *queries) Get(ctx context.Context, id string) (domain.Record, bool, error) {
	const sql = `
select id::text, kind, coalesce(job_role, ''), overall_score, payload::text, created_at
from evaluations
where id = $1::uuid
`
	rows, err := r.q.Query(ctx, sql, id)
	if err != nil {
		return domain.Record{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return domain.Record{}, false, rows.Err()
	}
	var (
		rec     domain.Record
		payload string
	)
	if err := rows.Scan(&rec.ID, &rec.Kind, &rec.JobRole, &rec.OverallScore, &payload, &rec.CreatedAt); err != nil {
		return domain.Record{}, false, err
	}
	rec.Payload = []byte(payload)
	return rec, true, rows.Err()
}

// EventsTable is the clickhouse table evaluation events land in
const EventsTable = "evaluation_events"

// Events appends and aggregates analytics rows
type Events interface {
	Append(ctx context.Context, evs ...domain.Event) error
	Summary(ctx context.Context, since time.Time) ([]domain.KindStat, error)
}

// CHEvents writes events through the store clickhouse seam
type CHEvents struct{ CH store.Clickhouse }

// Append inserts events as one batch in table column order
func (e CHEvents) Append(ctx context.Context, evs ...domain.Event) error {
	if e.CH == nil || len(evs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(evs))
	for _, ev := range evs {
		rows = append(rows, []any{
			ev.ID, ev.Kind, ev.JobRole, ev.OverallScore, uint32(max(ev.WordCount, 0)), ev.CreatedAt.UTC().Truncate(time.Millisecond),
		})
	}
	return e.CH.Insert(ctx, EventsTable, rows)
}

// Summary aggregates events per kind since the given time
func (e CHEvents) Summary(ctx context.Context, since time.Time) ([]domain.KindStat, error) {
	const sql = `
SELECT kind, count() AS evaluations, avg(overall_score) AS avg_score, avg(word_count) AS avg_words
FROM evaluation_events
WHERE created_at >= ?
GROUP BY kind
ORDER BY kind
`
	rows, err := e.CH.Query(ctx, sql, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.KindStat{}
	for rows.Next() {
		var st domain.KindStat
		if err := rows.Scan(&st.Kind, &st.Evaluations, &st.AverageScore, &st.AverageWords); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
