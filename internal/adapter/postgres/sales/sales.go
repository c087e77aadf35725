package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainsales "github.com/teamdesk/teamdesk/internal/domain/sales"
	portsales "github.com/teamdesk/teamdesk/internal/port/sales"
)

var _ portsales.Repository = (*Repository)(nil)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const salesColumns = `member_id, today, weekly, monthly, tier, created_at, updated_at`

func (r *Repository) Upsert(ctx context.Context, s domainsales.Summary) (domainsales.Summary, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO sales (`+salesColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (member_id) DO UPDATE SET
		   today = EXCLUDED.today,
		   weekly = EXCLUDED.weekly,
		   monthly = EXCLUDED.monthly,
		   tier = EXCLUDED.tier,
		   updated_at = EXCLUDED.updated_at
		 RETURNING `+salesColumns,
		s.MemberID, s.Today, s.Weekly, s.Monthly, s.Tier, s.CreatedAt, s.UpdatedAt,
	)

	out, err := scanSummary(row)
	if err != nil {
		return domainsales.Summary{}, fmt.Errorf("upsert sales: %w", err)
	}
	return out, nil
}

func (r *Repository) GetByMember(ctx context.Context, memberID uuid.UUID) (domainsales.Summary, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+salesColumns+` FROM sales WHERE member_id = $1`, memberID,
	)

	out, err := scanSummary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainsales.Summary{}, portsales.ErrNotFound
		}
		return domainsales.Summary{}, fmt.Errorf("get sales: %w", err)
	}
	return out, nil
}

func (r *Repository) List(ctx context.Context) ([]domainsales.Summary, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+salesColumns+` FROM sales ORDER BY member_id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []domainsales.Summary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales rows: %w", err)
	}
	return out, nil
}

func scanSummary(row pgx.Row) (domainsales.Summary, error) {
	var s domainsales.Summary
	if err := row.Scan(&s.MemberID, &s.Today, &s.Weekly, &s.Monthly, &s.Tier, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return domainsales.Summary{}, err
	}
	return s, nil
}
