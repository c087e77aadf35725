package member

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
)

// ErrNotFound is returned by lookups for members that do not exist. Adapters
// translate their storage-level miss (pgx.ErrNoRows, missing map key) to this
// so services can branch on it with errors.Is.
var ErrNotFound = errors.New("member not found")

// Repository manages the team directory.
type Repository interface {
	Create(ctx context.Context, m domainmember.Member) (domainmember.Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainmember.Member, error)
	GetByEmail(ctx context.Context, email string) (domainmember.Member, error)
	// ListByTeam returns a team's members newest-first.
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]domainmember.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
