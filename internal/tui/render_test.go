package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpatters/wordgrid/internal/board"
	"github.com/mpatters/wordgrid/internal/words"
)

func testGame(t *testing.T) *board.Game {
	t.Helper()
	bank, err := words.NewBank([]string{"heart"}, []string{"crane"}, words.WithIntN(func(int) int { return 0 }))
	require.NoError(t, err)
	return board.New(bank)
}

func TestCenteredTopLeft(t *testing.T) {
	t.Parallel()

	x, y := centeredTopLeft(10, 10, 8, 8)
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)

	// Inner rectangle too large pins to 1.
	x, y = centeredTopLeft(5, 5, 8, 8)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

func TestWrapText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"wraps on word boundary", "hello brave new world", 11, []string{"hello brave", "new world"}},
		{"newline splits", "You win!\nESC: quit", 25, []string{"You win!", "ESC: quit"}},
		{"empty line kept", "a\n\nb", 10, []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}

func TestFrameDrawsTypedLetters(t *testing.T) {
	t.Parallel()

	g := testGame(t)
	g.AcceptLetter('c')
	g.AcceptLetter('r')

	var buf bytes.Buffer
	NewRenderer(&buf, DarkTheme).Frame(g, 80, 24)

	out := buf.String()
	assert.Contains(t, out, ClearScreen)
	assert.Contains(t, out, "C", "typed letters render uppercase")
	assert.Contains(t, out, "R")
	assert.Contains(t, out, "▄▄▄")
	assert.Contains(t, out, "▀▀▀")
}

func TestFrameDrawsMessage(t *testing.T) {
	t.Parallel()

	g := testGame(t)
	g.SetMessage("'zzzzz' is not a valid word!")

	var buf bytes.Buffer
	NewRenderer(&buf, DarkTheme).Frame(g, 80, 24)
	assert.Contains(t, buf.String(), "'zzzzz' is not a valid word!")
}

func TestFrameTooSmall(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewRenderer(&buf, DarkTheme).Frame(testGame(t), 20, 10)

	out := buf.String()
	assert.Contains(t, out, "too small")
	assert.NotContains(t, out, "▄▄▄", "board must not draw when it cannot fit")
}

func TestFrameMarksFinalizedCells(t *testing.T) {
	t.Parallel()

	g := testGame(t)
	for _, r := range "crane" {
		g.AcceptLetter(r)
	}
	require.True(t, g.SubmitGuess())

	var buf bytes.Buffer
	NewRenderer(&buf, DarkTheme).Frame(g, 80, 24)

	out := buf.String()
	// crane vs heart: the A is correct, R and E are present elsewhere.
	assert.Contains(t, out, DarkTheme.CellPresent.Bg())
	assert.Contains(t, out, DarkTheme.CellCorrect.Bg())
}
