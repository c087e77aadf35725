package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
	portmember "github.com/teamdesk/teamdesk/internal/port/member"
)

var _ portmember.Repository = (*Repository)(nil)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const memberColumns = `id, team_id, name, email, role, status, avatar_url, location, password_hash, created_at`

func (r *Repository) Create(ctx context.Context, m domainmember.Member) (domainmember.Member, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO members (`+memberColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+memberColumns,
		m.ID, m.TeamID, m.Name, m.Email, m.Role, m.Status, m.AvatarURL, m.Location, m.PasswordHash, m.CreatedAt,
	)

	out, err := scanMember(row)
	if err != nil {
		return domainmember.Member{}, fmt.Errorf("insert member: %w", err)
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainmember.Member, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM members WHERE id = $1`, id,
	)

	out, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainmember.Member{}, portmember.ErrNotFound
		}
		return domainmember.Member{}, fmt.Errorf("get member: %w", err)
	}
	return out, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (domainmember.Member, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM members WHERE lower(email) = lower($1)`, email,
	)

	out, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainmember.Member{}, portmember.ErrNotFound
		}
		return domainmember.Member{}, fmt.Errorf("get member by email: %w", err)
	}
	return out, nil
}

func (r *Repository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]domainmember.Member, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+memberColumns+` FROM members WHERE team_id = $1 ORDER BY created_at DESC`, teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var out []domainmember.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return out, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

func scanMember(row pgx.Row) (domainmember.Member, error) {
	var m domainmember.Member
	if err := row.Scan(
		&m.ID, &m.TeamID, &m.Name, &m.Email, &m.Role, &m.Status,
		&m.AvatarURL, &m.Location, &m.PasswordHash, &m.CreatedAt,
	); err != nil {
		return domainmember.Member{}, err
	}
	return m, nil
}
