// Terminal session plumbing for the interactive board.
//
// Responsibilities:
//   - Raw mode enter/exit via golang.org/x/term, restoring the previous
//     state on the way out.
//   - Alternate screen handling so the player's scrollback survives a
//     game session.
//   - ANSI escape helpers (cursor movement, truecolor fg/bg) used by the
//     renderer.
package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal owns the controlling tty: raw mode state plus the writer the
// renderer paints into.
type Terminal struct {
	in       *os.File
	out      io.Writer
	oldState *term.State
	isRaw    bool
}

// NewTerminal creates a Terminal reading from stdin and writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{in: os.Stdin, out: out}
}

// EnterRaw puts the terminal into raw mode.
func (t *Terminal) EnterRaw() error {
	if t.isRaw {
		return fmt.Errorf("terminal already in raw mode")
	}
	oldState, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.oldState = oldState
	t.isRaw = true
	return nil
}

// ExitRaw restores the terminal. Safe to call when not in raw mode.
func (t *Terminal) ExitRaw() error {
	if !t.isRaw || t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	t.isRaw = false
	t.oldState = nil
	return nil
}

// Size returns the current terminal width and height.
func (t *Terminal) Size() (width, height int, err error) {
	width, height, err = term.GetSize(int(t.in.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("get terminal size: %w", err)
	}
	return width, height, nil
}

// Read reads raw input bytes; used to feed the KeyReader.
func (t *Terminal) Read(p []byte) (n int, err error) {
	return t.in.Read(p)
}

// Write writes the given string to the terminal output.
func (t *Terminal) Write(s string) {
	fmt.Fprint(t.out, s)
}

/* ------------------------------ ANSI escapes ------------------------------ */

const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	CursorHide  = "\033[?25l"
	CursorShow  = "\033[?25h"

	// Alternate screen buffer; the main screen is restored on leave.
	EnterAltScreen = "\033[?1049h"
	LeaveAltScreen = "\033[?1049l"

	Reset = "\033[0m"
)

// CursorTo returns the escape sequence moving the cursor to (row, col),
// 1-indexed.
func CursorTo(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// EnterAlt switches to the alternate screen and hides the cursor.
func (t *Terminal) EnterAlt() {
	t.Write(EnterAltScreen + CursorHide)
}

// LeaveAlt shows the cursor and switches back to the main screen.
func (t *Terminal) LeaveAlt() {
	t.Write(Reset + CursorShow + LeaveAltScreen)
}
