package distribution

import (
	"fmt"
	"strings"
)

// PreviewWordLimit is the number of words kept in a line's preview string.
const PreviewWordLimit = 15

type Line struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Preview   string `json:"preview"`
	WordCount int    `json:"word_count"`
}

// Normalize turns raw multi-line input into the deduplicated line set a
// distribution is built from. Each row has its whitespace runs collapsed to a
// single space and is trimmed; blank rows are dropped without consuming an id
// slot. Duplicates are detected case-insensitively and the first occurrence
// wins, so output order is first-seen order. Ids are positional within this
// call (line-0, line-1, …) — not stable across different inputs.
//
// Normalize never fails: empty input yields an empty slice. It is pure, so the
// composer may run it on every keystroke and the server re-runs it on submit
// with identical results.
func Normalize(raw string) []Line {
	seen := make(map[string]struct{})
	var out []Line

	for _, row := range strings.Split(raw, "\n") {
		condensed := strings.Join(strings.Fields(row), " ")
		if condensed == "" {
			continue
		}

		key := strings.ToLower(condensed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, Line{
			ID:        fmt.Sprintf("line-%d", len(out)),
			Text:      condensed,
			Preview:   preview(condensed, PreviewWordLimit),
			WordCount: len(strings.Fields(condensed)),
		})
	}

	return out
}

// preview keeps the first wordLimit words and appends an ellipsis when the
// text was actually truncated. A line at or under the limit previews as-is.
func preview(text string, wordLimit int) string {
	words := strings.Fields(text)
	if len(words) <= wordLimit {
		return text
	}
	return strings.Join(words[:wordLimit], " ") + "…"
}
