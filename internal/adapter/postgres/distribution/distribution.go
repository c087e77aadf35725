package distribution

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domaindist "github.com/teamdesk/teamdesk/internal/domain/distribution"
	portdist "github.com/teamdesk/teamdesk/internal/port/distribution"
)

var _ portdist.Repository = (*Repository)(nil)

// Repository stores distribution records document-style: the line and
// assignment sequences live in JSONB columns and are decoded back into the
// domain shapes at this boundary, so no storage ambiguity leaks upward.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const recordColumns = `id, team_id, title, lines_jsonb, assignments_jsonb, recipient_ids_jsonb,
	lines_per_member, interval_seconds, created_at`

func (r *Repository) Create(ctx context.Context, rec domaindist.Record) (domaindist.Record, error) {
	linesJSON, err := json.Marshal(rec.Lines)
	if err != nil {
		return domaindist.Record{}, fmt.Errorf("marshal lines: %w", err)
	}
	assignmentsJSON, err := json.Marshal(rec.Assignments)
	if err != nil {
		return domaindist.Record{}, fmt.Errorf("marshal assignments: %w", err)
	}
	recipientsJSON, err := json.Marshal(rec.RecipientIDs)
	if err != nil {
		return domaindist.Record{}, fmt.Errorf("marshal recipients: %w", err)
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO distributions (`+recordColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+recordColumns,
		rec.ID, rec.TeamID, rec.Title, linesJSON, assignmentsJSON, recipientsJSON,
		rec.LinesPerMember, rec.IntervalSeconds, rec.CreatedAt,
	)

	out, err := scanRecord(row)
	if err != nil {
		return domaindist.Record{}, fmt.Errorf("insert distribution: %w", err)
	}
	return out, nil
}

func (r *Repository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]domaindist.Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordColumns+` FROM distributions WHERE team_id = $1 ORDER BY created_at DESC`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("list distributions by team: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func (r *Repository) ListAll(ctx context.Context) ([]domaindist.Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordColumns+` FROM distributions ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list all distributions: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]domaindist.Record, error) {
	var out []domaindist.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distributions: %w", err)
	}
	return out, nil
}

func scanRecord(row pgx.Row) (domaindist.Record, error) {
	var rec domaindist.Record
	var linesJSON, assignmentsJSON, recipientsJSON []byte

	if err := row.Scan(
		&rec.ID, &rec.TeamID, &rec.Title, &linesJSON, &assignmentsJSON, &recipientsJSON,
		&rec.LinesPerMember, &rec.IntervalSeconds, &rec.CreatedAt,
	); err != nil {
		return domaindist.Record{}, err
	}

	if err := json.Unmarshal(linesJSON, &rec.Lines); err != nil {
		return domaindist.Record{}, fmt.Errorf("unmarshal lines: %w", err)
	}
	if err := json.Unmarshal(assignmentsJSON, &rec.Assignments); err != nil {
		return domaindist.Record{}, fmt.Errorf("unmarshal assignments: %w", err)
	}
	if err := json.Unmarshal(recipientsJSON, &rec.RecipientIDs); err != nil {
		return domaindist.Record{}, fmt.Errorf("unmarshal recipients: %w", err)
	}
	return rec, nil
}
