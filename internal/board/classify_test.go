package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	// Shorthand: a=absent, p=present, c=correct.
	tests := []struct {
		name   string
		guess  string
		answer string
		want   string
	}{
		{"all correct", "heart", "heart", "ccccc"},
		{"all absent", "sound", "heart", "aaaaa"},
		{"all present", "earth", "heart", "ppppp"},
		{"exact beats non-exact", "gucci", "cacti", "aacpc"},
		{"left-to-right tie-break", "bocce", "coast", "acpaa"},
		{"duplicate guess single answer", "geese", "crane", "aaaac"},
		{"duplicate both", "abbey", "babes", "ppcca"},
		{"triple letter", "mamma", "madam", "ccpap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tt.guess, tt.answer)
			assert.Equal(t, tt.want, statesString(got), "guess %q vs answer %q", tt.guess, tt.answer)
		})
	}
}

// TestClassifyNeverOvercounts checks that Correct+Present for any letter
// never exceeds that letter's count in the answer.
func TestClassifyNeverOvercounts(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"gucci", "cacti"},
		{"bocce", "coast"},
		{"eerie", "tepee"},
		{"llama", "label"},
		{"added", "daddy"},
		{"aaaaa", "abaca"},
	}
	for _, pair := range pairs {
		guess, answer := pair[0], pair[1]
		states := Classify(guess, answer)
		for letter := byte('a'); letter <= 'z'; letter++ {
			marked := 0
			for i := 0; i < len(guess); i++ {
				if guess[i] == letter && states[i] != CellAbsent {
					marked++
				}
			}
			assert.LessOrEqual(t, marked, strings.Count(answer, string(letter)),
				"letter %q overcounted for guess %q vs answer %q", letter, guess, answer)
		}
	}
}

func TestFinalizePanicsOnPartialRow(t *testing.T) {
	t.Parallel()

	var r Row
	r.cursor = 0
	require.True(t, r.acceptLetter('A'))
	require.True(t, r.acceptLetter('B'))

	assert.Panics(t, func() { r.finalize("about") })
}

// statesString renders classification states as a/p/c for compact expectations.
func statesString(states [Cols]CellState) string {
	var sb strings.Builder
	for _, s := range states {
		switch s {
		case CellAbsent:
			sb.WriteByte('a')
		case CellPresent:
			sb.WriteByte('p')
		case CellCorrect:
			sb.WriteByte('c')
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}
