package history

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	domaindist "github.com/teamdesk/teamdesk/internal/domain/distribution"
	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
	portmember "github.com/teamdesk/teamdesk/internal/port/member"
	distsvc "github.com/teamdesk/teamdesk/internal/service/distribution"
)

// PlanEntry is one teammate's slot in a record's delivery plan. Teammates who
// ended up with zero lines still get an entry, flagged Unassigned, so the plan
// always shows every selected recipient.
type PlanEntry struct {
	MemberID   uuid.UUID         `json:"member_id"`
	Name       string            `json:"name"`
	Role       string            `json:"role,omitempty"`
	Lines      []domaindist.Line `json:"lines"`
	Unassigned bool              `json:"unassigned"`
}

// Entry is one past distribution prepared for display.
type Entry struct {
	RecordID        uuid.UUID         `json:"record_id"`
	Title           string            `json:"title"`
	Sequence        int               `json:"sequence"`
	ScheduledLabel  string            `json:"scheduled_label"`
	TeammateCount   int               `json:"teammate_count"`
	LineCount       int               `json:"line_count"`
	LinesPerMember  int               `json:"lines_per_member"`
	IntervalSeconds int               `json:"interval_seconds"`
	Lines           []domaindist.Line `json:"lines"`
	Plan            []PlanEntry       `json:"plan"`
}

type Service struct {
	dists   *distsvc.Service
	members portmember.Repository
}

func NewService(dists *distsvc.Service, members portmember.Repository) *Service {
	return &Service{dists: dists, members: members}
}

// ForMember assembles the history view for the requester's visible records.
func (s *Service) ForMember(ctx context.Context, requesterID uuid.UUID) ([]Entry, error) {
	records, err := s.dists.ListForMember(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	requester, err := s.members.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("load requester: %w", err)
	}
	team, err := s.members.ListByTeam(ctx, requester.TeamID)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}

	byID := make(map[uuid.UUID]domainmember.Member, len(team))
	for _, m := range team {
		byID[m.ID] = m
	}

	return Build(records, byID), nil
}

// Build turns stored records (newest-first) into display entries. Sequence
// labels count down from the total so the oldest record reads #1. An empty
// records slice builds to an empty slice — the empty state belongs to the
// caller, not here.
func Build(records []domaindist.Record, membersByID map[uuid.UUID]domainmember.Member) []Entry {
	entries := make([]Entry, 0, len(records))

	for i, rec := range records {
		label := "just now"
		if !rec.CreatedAt.IsZero() {
			label = "scheduled " + humanize.Time(rec.CreatedAt)
		}

		entries = append(entries, Entry{
			RecordID:        rec.ID,
			Title:           rec.Title,
			Sequence:        len(records) - i,
			ScheduledLabel:  label,
			TeammateCount:   len(rec.RecipientIDs),
			LineCount:       len(rec.Lines),
			LinesPerMember:  rec.LinesPerMember,
			IntervalSeconds: rec.IntervalSeconds,
			Lines:           rec.Lines,
			Plan:            buildPlan(rec, membersByID),
		})
	}

	return entries
}

// buildPlan walks RecipientIDs in their stored selection order — not
// assignment order — so the plan mirrors what the sender picked.
func buildPlan(rec domaindist.Record, membersByID map[uuid.UUID]domainmember.Member) []PlanEntry {
	linesByMember := make(map[uuid.UUID][]domaindist.Line, len(rec.Assignments))
	for _, a := range rec.Assignments {
		linesByMember[a.MemberID] = append(linesByMember[a.MemberID], a.Lines...)
	}

	plan := make([]PlanEntry, 0, len(rec.RecipientIDs))
	for _, id := range rec.RecipientIDs {
		entry := PlanEntry{MemberID: id, Name: "Unnamed teammate"}
		if m, ok := membersByID[id]; ok {
			entry.Name = m.Name
			entry.Role = string(m.Role)
		}
		entry.Lines = linesByMember[id]
		entry.Unassigned = len(entry.Lines) == 0
		plan = append(plan, entry)
	}
	return plan
}
