package distribution

import "github.com/google/uuid"

// Assignment is one recipient's share of a distribution. Lines keep the order
// they had in the parent record.
type Assignment struct {
	MemberID uuid.UUID `json:"member_id"`
	Lines    []Line    `json:"lines"`
}

// PartitionLines splits lines across memberIDs in chunked round-robin order:
// each pass over memberIDs hands the next linesPerMember lines to each member
// in turn, and passes repeat until every line is placed. The final chunk may
// be short when the line count does not divide evenly; no line is ever dropped
// or handed out twice.
//
// Degenerate input (no lines, no members, non-positive chunk size) is a
// deliberate no-op, not an error. Members left with zero lines — possible only
// when there are more members than lines — are filtered from the result.
func PartitionLines(lines []Line, memberIDs []uuid.UUID, linesPerMember int) []Assignment {
	if len(lines) == 0 || len(memberIDs) == 0 || linesPerMember <= 0 {
		return nil
	}

	assignments := make([]Assignment, len(memberIDs))
	for i, id := range memberIDs {
		assignments[i] = Assignment{MemberID: id}
	}

	ptr := 0
	for ptr < len(lines) {
		for i := range assignments {
			if ptr >= len(lines) {
				break
			}
			end := ptr + linesPerMember
			if end > len(lines) {
				end = len(lines)
			}
			assignments[i].Lines = append(assignments[i].Lines, lines[ptr:end]...)
			ptr = end
		}
	}

	out := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if len(a.Lines) > 0 {
			out = append(out, a)
		}
	}
	return out
}
