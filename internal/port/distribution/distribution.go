package distribution

import (
	"context"

	"github.com/google/uuid"

	domaindist "github.com/teamdesk/teamdesk/internal/domain/distribution"
)

// Repository persists distribution records. Records are create-only: there is
// no update or delete — a distribution is immutable once written.
// [DIP] service/distribution depends on this interface, not on a concrete storage.
type Repository interface {
	Create(ctx context.Context, rec domaindist.Record) (domaindist.Record, error)
	// ListByTeam returns a team's records newest-first by creation time.
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]domaindist.Record, error)
	// ListAll returns every team's records newest-first. Super-admin only path.
	ListAll(ctx context.Context) ([]domaindist.Record, error)
}
