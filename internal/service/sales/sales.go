package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainsales "github.com/teamdesk/teamdesk/internal/domain/sales"
	portmember "github.com/teamdesk/teamdesk/internal/port/member"
	portsales "github.com/teamdesk/teamdesk/internal/port/sales"
)

var ErrForbidden = errors.New("admin role required")

type Service struct {
	repo    portsales.Repository
	members portmember.Repository
}

func NewService(repo portsales.Repository, members portmember.Repository) *Service {
	return &Service{repo: repo, members: members}
}

func (s *Service) List(ctx context.Context) ([]domainsales.Summary, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return rows, nil
}

// GetForMember returns the stored summary, or zeroed defaults for members who
// have no row yet — absence is not an error on the read side.
func (s *Service) GetForMember(ctx context.Context, memberID uuid.UUID) (domainsales.Summary, error) {
	row, err := s.repo.GetByMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, portsales.ErrNotFound) {
			return domainsales.Defaults(memberID), nil
		}
		return domainsales.Summary{}, fmt.Errorf("get sales: %w", err)
	}
	return row, nil
}

type UpsertInput struct {
	Today   int
	Weekly  int
	Monthly int
	Tier    domainsales.Tier
}

// Upsert writes a member's counters in place. Admin-gated.
func (s *Service) Upsert(ctx context.Context, requesterID, memberID uuid.UUID, in UpsertInput) (domainsales.Summary, error) {
	requester, err := s.members.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, portmember.ErrNotFound) {
			return domainsales.Summary{}, ErrForbidden
		}
		return domainsales.Summary{}, fmt.Errorf("load requester: %w", err)
	}
	if !requester.Role.Elevated() {
		return domainsales.Summary{}, ErrForbidden
	}

	tier := in.Tier
	if tier == "" {
		tier = domainsales.TierSilver
	}

	now := time.Now().UTC()
	row := domainsales.Summary{
		MemberID:  memberID,
		Today:     in.Today,
		Weekly:    in.Weekly,
		Monthly:   in.Monthly,
		Tier:      tier,
		CreatedAt: now,
		UpdatedAt: now,
	}

	stored, err := s.repo.Upsert(ctx, row)
	if err != nil {
		return domainsales.Summary{}, fmt.Errorf("upsert sales: %w", err)
	}
	return stored, nil
}
