package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	domainsales "github.com/teamdesk/teamdesk/internal/domain/sales"
	portsales "github.com/teamdesk/teamdesk/internal/port/sales"
)

var _ portsales.Repository = (*SalesRepo)(nil)

type SalesRepo struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]domainsales.Summary
}

func NewSalesRepo() *SalesRepo {
	return &SalesRepo{rows: make(map[uuid.UUID]domainsales.Summary)}
}

func (r *SalesRepo) Upsert(_ context.Context, s domainsales.Summary) (domainsales.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.rows[s.MemberID]; ok {
		s.CreatedAt = existing.CreatedAt
	}
	r.rows[s.MemberID] = s
	return s, nil
}

func (r *SalesRepo) GetByMember(_ context.Context, memberID uuid.UUID) (domainsales.Summary, error) {
	r.mu.RLock()
	s, ok := r.rows[memberID]
	r.mu.RUnlock()

	if !ok {
		return domainsales.Summary{}, portsales.ErrNotFound
	}
	return s, nil
}

func (r *SalesRepo) List(_ context.Context) ([]domainsales.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domainsales.Summary, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MemberID.String() < out[j].MemberID.String()
	})
	return out, nil
}
