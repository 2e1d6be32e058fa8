// internal/board/board.go
//
// Board state machine for a single game session.
// Responsibilities:
//   - Model the 6x5 grid of letter cells and the edit cursor.
//   - Apply edit events (letter, backspace, submit, restart) and report
//     whether the change warrants a repaint.
//   - Track the game outcome: playing, won, or lost.
//
// Notes:
//   - The engine performs no I/O. A presentation layer feeds it events and
//     reads its state back through the query surface.
//   - Guess classification lives in classify.go.
//   - A rejected (non-dictionary) submission never consumes a turn; it only
//     sets an advisory message on the board.

package board

import (
	"fmt"
	"strings"

	"github.com/mpatters/wordgrid/internal/words"
)

// Board dimensions: six guesses of five letters each.
const (
	Rows = 6
	Cols = words.WordLength
)

// CellState is the lifecycle of a single letter slot.
type CellState int

const (
	CellEmpty   CellState = iota // no letter typed yet
	CellPending                  // letter typed, row not submitted
	CellAbsent                   // submitted; letter not in the answer (or over its count)
	CellPresent                  // submitted; letter elsewhere in the answer
	CellCorrect                  // submitted; letter in this exact position
)

// Cell is a single letter slot. Letter is uppercase, or 0 while Empty.
type Cell struct {
	State  CellState
	Letter rune
}

// Rune returns the letter to display, or ' ' for an empty cell.
func (c Cell) Rune() rune {
	if c.State == CellEmpty {
		return ' '
	}
	return c.Letter
}

// Row is one line of the board: five cells plus an edit cursor.
// The cursor is -1 while the row is not active, otherwise 0..5
// (5 means the row is full and awaiting submission).
type Row struct {
	cells  [Cols]Cell
	cursor int
}

// Cells returns a copy of the row's cells.
func (r *Row) Cells() [Cols]Cell { return r.cells }

// Cursor returns the edit cursor, or -1 if the row is not active.
func (r *Row) Cursor() int { return r.cursor }

// acceptLetter writes an uppercase letter at the cursor if there is room.
func (r *Row) acceptLetter(letter rune) bool {
	if r.cursor < 0 || r.cursor >= Cols {
		return false
	}
	r.cells[r.cursor] = Cell{State: CellPending, Letter: letter}
	r.cursor++
	return true
}

// deleteLetter clears the cell before the cursor if there is one.
func (r *Row) deleteLetter() bool {
	if r.cursor <= 0 {
		return false
	}
	r.cursor--
	r.cells[r.cursor] = Cell{}
	return true
}

// word returns the lowercase word formed by the row, or "" if any cell
// is still empty.
func (r *Row) word() string {
	var sb strings.Builder
	for _, c := range r.cells {
		if c.State == CellEmpty {
			return ""
		}
		sb.WriteRune(c.Letter)
	}
	return strings.ToLower(sb.String())
}

// Outcome is the coarse game state.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

// String reports the outcome the way the HTTP API spells it.
func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Game holds the full state of one session: six rows, the active row
// index, the secret answer, and an advisory message for the player.
type Game struct {
	rows    [Rows]Row
	current int
	answer  string // lowercase, fixed for the life of the game
	bank    *words.Bank
	message string
	outcome Outcome
}

// New creates a game with a random answer drawn from the bank.
func New(bank *words.Bank) *Game {
	g := &Game{bank: bank}
	g.reset(bank.SelectAnswer())
	return g
}

// NewWithAnswer creates a game with a fixed answer. Used for the daily
// challenge and for test games; the answer must be five ASCII letters.
func NewWithAnswer(bank *words.Bank, answer string) (*Game, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if len(answer) != Cols {
		return nil, fmt.Errorf("board: answer must be %d letters, got %q", Cols, answer)
	}
	for _, r := range answer {
		if r < 'a' || r > 'z' {
			return nil, fmt.Errorf("board: answer must be alphabetic, got %q", answer)
		}
	}
	g := &Game{bank: bank}
	g.reset(answer)
	return g, nil
}

// reset reinitializes every row and pairs the board with answer.
func (g *Game) reset(answer string) {
	g.rows = [Rows]Row{}
	for i := range g.rows {
		g.rows[i].cursor = -1
	}
	g.rows[0].cursor = 0
	g.current = 0
	g.answer = answer
	g.message = ""
	g.outcome = Playing
}

// Answer returns the secret word (lowercase).
func (g *Game) Answer() string { return g.answer }

// Outcome returns the current game outcome.
func (g *Game) Outcome() Outcome { return g.outcome }

// ActiveRow returns the index of the row currently accepting edits.
func (g *Game) ActiveRow() int { return g.current }

// Row returns the row at index i for rendering.
func (g *Game) Row(i int) *Row { return &g.rows[i] }

// Cursor returns the active row's edit cursor.
func (g *Game) Cursor() int { return g.rows[g.current].cursor }

// Message returns the advisory message, or "" if none is set.
func (g *Game) Message() string { return g.message }

// SetMessage attaches an advisory message to the board. The presentation
// layer uses this for win/loss notices.
func (g *Game) SetMessage(msg string) { g.message = msg }

// AcceptLetter handles a letter key. The letter must be ASCII alphabetic
// and the active row must have room; otherwise nothing changes.
// Returns true when a repaint is warranted.
func (g *Game) AcceptLetter(letter rune) bool {
	if g.outcome != Playing || !isASCIILetter(letter) {
		return false
	}
	if !g.rows[g.current].acceptLetter(toUpper(letter)) {
		return false
	}
	g.message = ""
	return true
}

// DeleteLetter handles backspace. A no-op on an empty row or after the
// game has ended. Returns true when a repaint is warranted.
func (g *Game) DeleteLetter() bool {
	if g.outcome != Playing {
		return false
	}
	if !g.rows[g.current].deleteLetter() {
		return false
	}
	g.message = ""
	return true
}

// SubmitGuess handles the enter key. A no-op unless the active row is
// full. A word outside the dictionary does not consume a turn: the row
// stays editable and an advisory message is set. A valid word finalizes
// the row and either ends the game or advances to the next row.
// Returns true when a repaint is warranted.
func (g *Game) SubmitGuess() bool {
	if g.outcome != Playing {
		return false
	}
	row := &g.rows[g.current]
	guess := row.word()
	if guess == "" {
		return false
	}

	if !g.bank.IsValidGuess(guess) {
		g.message = fmt.Sprintf("'%s' is not a valid word!", guess)
		return true
	}

	g.message = ""
	row.finalize(g.answer)
	row.cursor = -1

	switch {
	case guess == g.answer:
		g.outcome = Won
	case g.current == Rows-1:
		g.outcome = Lost
	default:
		g.current++
		g.rows[g.current].cursor = 0
	}
	return true
}

// Restart reconstructs the board from scratch with a freshly chosen
// answer. The new answer is not guaranteed to differ from the old one.
func (g *Game) Restart() bool {
	g.reset(g.bank.SelectAnswer())
	return true
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
