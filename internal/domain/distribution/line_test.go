package distribution_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamdesk/teamdesk/internal/domain/distribution"
)

func texts(lines []distribution.Line) []string {
	var out []string
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty input yields no lines",
			raw:  "",
			want: nil,
		},
		{
			name: "blank rows are dropped",
			raw:  "\n\n   \n\t\n",
			want: nil,
		},
		{
			name: "whitespace runs collapse and edges trim",
			raw:  "  hello    world  ",
			want: []string{"hello world"},
		},
		{
			name: "crlf line endings split like lf",
			raw:  "first\r\nsecond\r\nthird",
			want: []string{"first", "second", "third"},
		},
		{
			name: "case-insensitive dedup keeps first occurrence",
			raw:  "Buy milk\nbuy milk\nBUY MILK",
			want: []string{"Buy milk"},
		},
		{
			name: "dedup preserves first-seen order",
			raw:  "beta\nalpha\nbeta\ngamma\nalpha",
			want: []string{"beta", "alpha", "gamma"},
		},
		{
			name: "rows differing only in inner whitespace are duplicates",
			raw:  "one  two\none two",
			want: []string{"one two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distribution.Normalize(tt.raw)
			assert.Equal(t, tt.want, texts(got))
		})
	}
}

func TestNormalize_IDsArePositional(t *testing.T) {
	got := distribution.Normalize("a\nb\n\nc")
	require.Len(t, got, 3)
	assert.Equal(t, "line-0", got[0].ID)
	assert.Equal(t, "line-1", got[1].ID)
	// The blank row does not consume an id slot.
	assert.Equal(t, "line-2", got[2].ID)
}

func TestNormalize_WordCount(t *testing.T) {
	got := distribution.Normalize("one\ntwo  words here")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].WordCount)
	assert.Equal(t, 3, got[1].WordCount)
}

func TestNormalize_PreviewTruncationBoundary(t *testing.T) {
	word := func(n int) string {
		parts := make([]string, n)
		for i := range parts {
			parts[i] = "w"
		}
		return strings.Join(parts, " ")
	}

	t.Run("exactly 15 words previews in full", func(t *testing.T) {
		got := distribution.Normalize(word(15))
		require.Len(t, got, 1)
		assert.Equal(t, got[0].Text, got[0].Preview)
	})

	t.Run("16 words truncates with ellipsis", func(t *testing.T) {
		got := distribution.Normalize(word(16))
		require.Len(t, got, 1)
		assert.NotEqual(t, got[0].Text, got[0].Preview)
		assert.Equal(t, word(15)+"…", got[0].Preview)
		assert.True(t, strings.HasPrefix(got[0].Text, word(15)))
	})
}

// Already-normalized text is a fixed point: re-running Normalize over the
// joined output reproduces the same texts.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Alpha\nBeta\n\nAlpha\n  Gamma  ",
		"  spaced   out   line \nsecond",
		"Buy milk\nbuy MILK\ncall Dana",
	}

	for _, raw := range inputs {
		first := distribution.Normalize(raw)
		again := distribution.Normalize(strings.Join(texts(first), "\n"))
		assert.Equal(t, texts(first), texts(again), "input %q", raw)
	}
}
