package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
	portmember "github.com/teamdesk/teamdesk/internal/port/member"
)

var _ portmember.Repository = (*MemberRepo)(nil)

type MemberRepo struct {
	mu      sync.RWMutex
	members map[uuid.UUID]domainmember.Member
}

func NewMemberRepo() *MemberRepo {
	return &MemberRepo{members: make(map[uuid.UUID]domainmember.Member)}
}

func (r *MemberRepo) Create(_ context.Context, m domainmember.Member) (domainmember.Member, error) {
	r.mu.Lock()
	r.members[m.ID] = m
	r.mu.Unlock()
	return m, nil
}

func (r *MemberRepo) GetByID(_ context.Context, id uuid.UUID) (domainmember.Member, error) {
	r.mu.RLock()
	m, ok := r.members[id]
	r.mu.RUnlock()

	if !ok {
		return domainmember.Member{}, portmember.ErrNotFound
	}
	return m, nil
}

func (r *MemberRepo) GetByEmail(_ context.Context, email string) (domainmember.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if strings.EqualFold(m.Email, email) {
			return m, nil
		}
	}
	return domainmember.Member{}, portmember.ErrNotFound
}

func (r *MemberRepo) ListByTeam(_ context.Context, teamID uuid.UUID) ([]domainmember.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domainmember.Member
	for _, m := range r.members {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemberRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	delete(r.members, id)
	r.mu.Unlock()
	return nil
}
