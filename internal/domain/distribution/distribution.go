package distribution

import (
	"time"

	"github.com/google/uuid"
)

// Record is one distribution: a deduplicated line batch split across a chosen
// set of teammates. Records are immutable once created — there is no edit or
// delete lifecycle, only create and read.
type Record struct {
	ID              uuid.UUID    `json:"id"`
	TeamID          uuid.UUID    `json:"team_id"`
	Title           string       `json:"title"`
	Lines           []Line       `json:"lines"`
	LinesPerMember  int          `json:"lines_per_member"`
	IntervalSeconds int          `json:"interval_seconds"`
	RecipientIDs    []uuid.UUID  `json:"recipient_ids"`
	Assignments     []Assignment `json:"assignments"`
	CreatedAt       time.Time    `json:"created_at"`
}

// New builds a record from already-normalized lines, computing the round-robin
// assignments as part of construction so a record is never persisted without
// them. IntervalSeconds is display metadata only — nothing in the server fires
// on it.
func New(teamID uuid.UUID, title string, lines []Line, linesPerMember, intervalSeconds int, recipientIDs []uuid.UUID) Record {
	return Record{
		ID:              uuid.New(),
		TeamID:          teamID,
		Title:           title,
		Lines:           lines,
		LinesPerMember:  linesPerMember,
		IntervalSeconds: intervalSeconds,
		RecipientIDs:    recipientIDs,
		Assignments:     PartitionLines(lines, recipientIDs, linesPerMember),
		CreatedAt:       time.Now().UTC(),
	}
}
