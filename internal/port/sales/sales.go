package sales

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainsales "github.com/teamdesk/teamdesk/internal/domain/sales"
)

var ErrNotFound = errors.New("sales summary not found")

type Repository interface {
	// Upsert writes the full summary for a member, inserting on first write.
	Upsert(ctx context.Context, s domainsales.Summary) (domainsales.Summary, error)
	GetByMember(ctx context.Context, memberID uuid.UUID) (domainsales.Summary, error)
	List(ctx context.Context) ([]domainsales.Summary, error)
}
