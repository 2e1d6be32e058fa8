package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpatters/wordgrid/internal/words"
)

// testBank returns a bank whose SelectAnswer always yields the first
// answer in the pool.
func testBank(t *testing.T, answers ...string) *words.Bank {
	t.Helper()
	bank, err := words.NewBank(answers,
		[]string{"gucci", "bocce", "earth", "sound", "crane"},
		words.WithIntN(func(int) int { return 0 }),
	)
	require.NoError(t, err)
	return bank
}

// typeWord feeds a word into the active row one letter at a time.
func typeWord(t *testing.T, g *Game, word string) {
	t.Helper()
	for _, r := range word {
		require.True(t, g.AcceptLetter(r), "letter %q rejected", r)
	}
}

func TestAcceptLetter(t *testing.T) {
	t.Parallel()
	g := New(testBank(t, "heart"))

	assert.False(t, g.AcceptLetter('1'), "digits are not letters")
	assert.False(t, g.AcceptLetter(' '))

	assert.True(t, g.AcceptLetter('c'))
	assert.Equal(t, 1, g.Cursor())
	assert.Equal(t, Cell{State: CellPending, Letter: 'C'}, g.Row(0).Cells()[0], "letters are stored uppercase")

	typeWord(t, g, "rane")
	assert.Equal(t, Cols, g.Cursor())
	assert.False(t, g.AcceptLetter('x'), "row full; no repaint")
	assert.Equal(t, Cols, g.Cursor())
}

func TestDeleteLetter(t *testing.T) {
	t.Parallel()
	g := New(testBank(t, "heart"))

	assert.False(t, g.DeleteLetter(), "nothing to delete on an empty row")

	typeWord(t, g, "cr")
	assert.True(t, g.DeleteLetter())
	assert.Equal(t, 1, g.Cursor())
	assert.Equal(t, CellEmpty, g.Row(0).Cells()[1].State)

	assert.True(t, g.DeleteLetter())
	assert.False(t, g.DeleteLetter())
}

func TestSubmitGuessRequiresFullRow(t *testing.T) {
	t.Parallel()
	g := New(testBank(t, "heart"))

	assert.False(t, g.SubmitGuess(), "empty row")
	typeWord(t, g, "hea")
	assert.False(t, g.SubmitGuess(), "partial row")
	assert.Equal(t, 0, g.ActiveRow())
}

func TestSubmitGuessRejectsUnknownWord(t *testing.T) {
	t.Parallel()
	g := New(testBank(t, "heart"))

	typeWord(t, g, "zzzzz")
	assert.True(t, g.SubmitGuess(), "rejection repaints to show the message")

	assert.Equal(t, "'zzzzz' is not a valid word!", g.Message())
	assert.Equal(t, 0, g.ActiveRow(), "turn not consumed")
	assert.Equal(t, Cols, g.Cursor(), "row still editable")
	for _, c := range g.Row(0).Cells() {
		assert.Equal(t, CellPending, c.State, "cells stay pending")
	}

	// The next edit clears the advisory message.
	assert.True(t, g.DeleteLetter())
	assert.Empty(t, g.Message())
}

func TestSubmitGuessAdvancesRow(t *testing.T) {
	t.Parallel()
	g := New(testBank(t, "heart"))

	typeWord(t, g, "crane")
	require.True(t, g.SubmitGuess())

	assert.Equal(t, Playing, g.Outcome())
	assert.Equal(t, 1, g.ActiveRow())
	assert.Equal(t, 0, g.Cursor())
	assert.Equal(t, -1, g.Row(0).Cursor(), "submitted row is no longer active")

	// crane vs heart: r and e present, a correct, c and n absent.
	cells := g.Row(0).Cells()
	assert.Equal(t, CellAbsent, cells[0].State)
	assert.Equal(t, CellPresent, cells[1].State)
	assert.Equal(t, CellCorrect, cells[2].State)
	assert.Equal(t, CellAbsent, cells[3].State)
	assert.Equal(t, CellPresent, cells[4].State)
}

func TestWin(t *testing.T) {
	t.Parallel()
	g := New(testBank(t, "heart"))

	typeWord(t, g, "heart")
	require.True(t, g.SubmitGuess())

	assert.Equal(t, Won, g.Outcome())
	for _, c := range g.Row(0).Cells() {
		assert.Equal(t, CellCorrect, c.State)
	}

	// Terminal state: edits are silent no-ops.
	assert.False(t, g.AcceptLetter('a'))
	assert.False(t, g.DeleteLetter())
	assert.False(t, g.SubmitGuess())
}

func TestLossAfterSixGuesses(t *testing.T) {
	t.Parallel()
	g := New(testBank(t, "heart", "sound", "crane", "earth"))

	for i := 0; i < Rows; i++ {
		typeWord(t, g, "sound")
		require.True(t, g.SubmitGuess())
	}

	assert.Equal(t, Lost, g.Outcome())
	assert.Equal(t, Rows-1, g.ActiveRow())
	assert.False(t, g.AcceptLetter('a'))
}

func TestWinOnLastRow(t *testing.T) {
	t.Parallel()
	g := New(testBank(t, "heart"))

	for i := 0; i < Rows-1; i++ {
		typeWord(t, g, "sound")
		require.True(t, g.SubmitGuess())
	}
	typeWord(t, g, "heart")
	require.True(t, g.SubmitGuess())

	assert.Equal(t, Won, g.Outcome())
}

func TestRestart(t *testing.T) {
	t.Parallel()
	answers := []string{"heart", "crane"}
	pick := 0
	bank, err := words.NewBank(answers, nil, words.WithIntN(func(n int) int {
		pick++
		return pick % n
	}))
	require.NoError(t, err)

	g := New(bank)
	typeWord(t, g, g.Answer())
	require.True(t, g.SubmitGuess())
	require.Equal(t, Won, g.Outcome())

	assert.True(t, g.Restart())
	assert.Equal(t, Playing, g.Outcome())
	assert.Equal(t, 0, g.ActiveRow())
	assert.Equal(t, 0, g.Cursor())
	assert.Empty(t, g.Message())
	for i := 0; i < Rows; i++ {
		for _, c := range g.Row(i).Cells() {
			assert.Equal(t, CellEmpty, c.State)
		}
	}
}

func TestNewWithAnswer(t *testing.T) {
	t.Parallel()
	bank := testBank(t, "heart")

	g, err := NewWithAnswer(bank, " CRANE ")
	require.NoError(t, err)
	assert.Equal(t, "crane", g.Answer())

	_, err = NewWithAnswer(bank, "abc")
	assert.Error(t, err)
	_, err = NewWithAnswer(bank, "ab1de")
	assert.Error(t, err)
}
