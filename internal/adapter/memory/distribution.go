// Package memory holds map-backed implementations of the persistence ports.
// They are the storage for tests and for running the server without a
// database (DATABASE_URL unset).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	domaindist "github.com/teamdesk/teamdesk/internal/domain/distribution"
	portdist "github.com/teamdesk/teamdesk/internal/port/distribution"
)

var _ portdist.Repository = (*DistributionRepo)(nil)

type DistributionRepo struct {
	mu      sync.RWMutex
	records []domaindist.Record
}

func NewDistributionRepo() *DistributionRepo {
	return &DistributionRepo{}
}

func (r *DistributionRepo) Create(_ context.Context, rec domaindist.Record) (domaindist.Record, error) {
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
	return rec, nil
}

func (r *DistributionRepo) ListByTeam(_ context.Context, teamID uuid.UUID) ([]domaindist.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domaindist.Record
	for _, rec := range r.records {
		if rec.TeamID == teamID {
			out = append(out, rec)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *DistributionRepo) ListAll(_ context.Context) ([]domaindist.Record, error) {
	r.mu.RLock()
	out := make([]domaindist.Record, len(r.records))
	copy(out, r.records)
	r.mu.RUnlock()

	sortNewestFirst(out)
	return out, nil
}

// Count reports the number of stored records; tests use it to assert that a
// rejected create wrote nothing.
func (r *DistributionRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func sortNewestFirst(recs []domaindist.Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
}
