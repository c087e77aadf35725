package inbox

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	domaindist "github.com/teamdesk/teamdesk/internal/domain/distribution"
	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
	portmember "github.com/teamdesk/teamdesk/internal/port/member"
	distsvc "github.com/teamdesk/teamdesk/internal/service/distribution"
)

// QueueLine is one assigned line with its illustrative send offset: the
// zero-based position within the assignment times the record's interval.
// Nothing fires on the offset — it is display math only.
type QueueLine struct {
	ID                string `json:"id"`
	Text              string `json:"text"`
	Preview           string `json:"preview"`
	WordCount         int    `json:"word_count"`
	SendOffsetSeconds int    `json:"send_offset_seconds"`
}

// QueueItem is one {record, assignment} pair in a member's queue.
type QueueItem struct {
	RecordID        uuid.UUID   `json:"record_id"`
	Title           string      `json:"title"`
	CreatedAt       time.Time   `json:"created_at"`
	IntervalSeconds int         `json:"interval_seconds"`
	Lines           []QueueLine `json:"lines"`
}

// MemberQueue is everything addressed to one member across all records.
type MemberQueue struct {
	MemberID   uuid.UUID           `json:"member_id"`
	Name       string              `json:"name"`
	Role       string              `json:"role,omitempty"`
	Status     domainmember.Status `json:"status,omitempty"`
	TotalLines int                 `json:"total_lines"`
	Items      []QueueItem         `json:"items"`
}

type Service struct {
	dists   *distsvc.Service
	members portmember.Repository
}

func NewService(dists *distsvc.Service, members portmember.Repository) *Service {
	return &Service{dists: dists, members: members}
}

// ForMember assembles the inbox view over the requester's visible records.
func (s *Service) ForMember(ctx context.Context, requesterID uuid.UUID) ([]MemberQueue, error) {
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

// Build inverts records into per-recipient queues. Each member's items are
// ordered newest distribution first; the outer list sorts alphabetically by
// display name, with unknown members keying on the empty string (so first).
// Zero queues means nothing has been distributed — the caller renders the
// empty state.
func Build(records []domaindist.Record, membersByID map[uuid.UUID]domainmember.Member) []MemberQueue {
	queues := make(map[uuid.UUID]*MemberQueue)

	for _, rec := range records {
		for _, a := range rec.Assignments {
			if len(a.Lines) == 0 {
				continue
			}

			q, ok := queues[a.MemberID]
			if !ok {
				q = &MemberQueue{MemberID: a.MemberID}
				if m, found := membersByID[a.MemberID]; found {
					q.Name = m.Name
					q.Role = string(m.Role)
					q.Status = m.Status
				}
				queues[a.MemberID] = q
			}

			lines := make([]QueueLine, len(a.Lines))
			for i, l := range a.Lines {
				lines[i] = QueueLine{
					ID:                l.ID,
					Text:              l.Text,
					Preview:           l.Preview,
					WordCount:         l.WordCount,
					SendOffsetSeconds: i * rec.IntervalSeconds,
				}
			}

			q.Items = append(q.Items, QueueItem{
				RecordID:        rec.ID,
				Title:           rec.Title,
				CreatedAt:       rec.CreatedAt,
				IntervalSeconds: rec.IntervalSeconds,
				Lines:           lines,
			})
			q.TotalLines += len(lines)
		}
	}

	out := make([]MemberQueue, 0, len(queues))
	for _, q := range queues {
		sort.SliceStable(q.Items, func(i, j int) bool {
			return q.Items[i].CreatedAt.After(q.Items[j].CreatedAt)
		})
		out = append(out, *q)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		// Tie-break on id so output order is deterministic.
		return out[i].MemberID.String() < out[j].MemberID.String()
	})

	return out
}
