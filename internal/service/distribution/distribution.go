package distribution

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	domaindist "github.com/teamdesk/teamdesk/internal/domain/distribution"
	portdist "github.com/teamdesk/teamdesk/internal/port/distribution"
	portmember "github.com/teamdesk/teamdesk/internal/port/member"
)

var (
	ErrForbidden       = errors.New("requester may not create distributions")
	ErrTitleRequired   = errors.New("title required")
	ErrNoLines         = errors.New("no lines to distribute")
	ErrNoAssignees     = errors.New("no assignees on the requester's team")
	ErrInvalidChunk    = errors.New("lines per member must be positive")
	ErrInvalidInterval = errors.New("interval seconds must be positive")
)

// Service owns the create/list lifecycle of distribution records. Creation is
// gated on an elevated role; reads are scoped to the requester's team with a
// super-admin bypass.
type Service struct {
	records portdist.Repository
	members portmember.Repository
}

func NewService(records portdist.Repository, members portmember.Repository) *Service {
	return &Service{records: records, members: members}
}

type CreateInput struct {
	Title           string
	Items           []string
	LinesPerMember  int
	IntervalSeconds int
	AssigneeIDs     []uuid.UUID
}

// Create validates, normalizes, partitions and persists one distribution.
// All validation happens before the single repository write, so a rejected
// request leaves no partial record behind.
//
// Items are re-normalized server-side with the same rules the composer uses
// for its live preview, so the stored lines match the preview bit-for-bit.
func (s *Service) Create(ctx context.Context, requesterID uuid.UUID, in CreateInput) (domaindist.Record, error) {
	requester, err := s.members.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, portmember.ErrNotFound) {
			return domaindist.Record{}, ErrForbidden
		}
		return domaindist.Record{}, fmt.Errorf("load requester: %w", err)
	}
	if !requester.Role.Elevated() {
		return domaindist.Record{}, ErrForbidden
	}

	if strings.TrimSpace(in.Title) == "" {
		return domaindist.Record{}, ErrTitleRequired
	}
	// The pure partitioner treats non-positive settings as a no-op; at the API
	// boundary they are rejected instead of silently producing an empty record.
	if in.LinesPerMember <= 0 {
		return domaindist.Record{}, ErrInvalidChunk
	}
	if in.IntervalSeconds <= 0 {
		return domaindist.Record{}, ErrInvalidInterval
	}

	lines := domaindist.Normalize(strings.Join(in.Items, "\n"))
	if len(lines) == 0 {
		return domaindist.Record{}, ErrNoLines
	}

	assignees, err := s.teamAssignees(ctx, requester.TeamID, in.AssigneeIDs)
	if err != nil {
		return domaindist.Record{}, err
	}
	if len(assignees) == 0 {
		return domaindist.Record{}, ErrNoAssignees
	}

	rec := domaindist.New(requester.TeamID, in.Title, lines, in.LinesPerMember, in.IntervalSeconds, assignees)

	created, err := s.records.Create(ctx, rec)
	if err != nil {
		return domaindist.Record{}, fmt.Errorf("create distribution: %w", err)
	}
	return created, nil
}

// teamAssignees keeps only assignees that exist and belong to the team,
// preserving the order they were selected in. Unknown or foreign ids are
// silently dropped, matching the composer's optimistic member list.
func (s *Service) teamAssignees(ctx context.Context, teamID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	valid := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		m, err := s.members.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, portmember.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("resolve assignee %s: %w", id, err)
		}
		if m.TeamID == teamID {
			valid = append(valid, id)
		}
	}
	return valid, nil
}

// ListForMember returns the requester's team history newest-first. A
// super-admin sees every team's records.
func (s *Service) ListForMember(ctx context.Context, requesterID uuid.UUID) ([]domaindist.Record, error) {
	requester, err := s.members.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("load requester: %w", err)
	}

	if requester.Role.Super() {
		recs, err := s.records.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list distributions: %w", err)
		}
		return recs, nil
	}

	recs, err := s.records.ListByTeam(ctx, requester.TeamID)
	if err != nil {
		return nil, fmt.Errorf("list distributions: %w", err)
	}
	return recs, nil
}
