// Interactive game loop.
//
// Responsibilities:
//   - Own the terminal session: raw mode, alternate screen, cursor
//     visibility, restored on exit no matter how the loop ends.
//   - Pump key events and window resizes into the board and repaint
//     only when an event changed it.
//   - After a finished game, hold the result on screen until the player
//     restarts with ENTER or quits with ESC.
package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/mpatters/wordgrid/internal/board"
	"github.com/mpatters/wordgrid/internal/words"
)

// App runs one interactive session on the controlling terminal.
type App struct {
	term *Terminal
	rnd  *Renderer
	game *board.Game
}

// NewApp wires a game to the terminal with the given theme.
func NewApp(bank *words.Bank, theme Theme) *App {
	term := NewTerminal(os.Stdout)
	return &App{
		term: term,
		rnd:  NewRenderer(os.Stdout, theme),
		game: board.New(bank),
	}
}

// Run drives the session until the player quits or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	if err := a.term.EnterRaw(); err != nil {
		return err
	}
	defer func() {
		if err := a.term.ExitRaw(); err != nil {
			log.Error().Err(err).Msg("restore terminal")
		}
	}()

	a.term.EnterAlt()
	defer a.term.LeaveAlt()

	resized := make(chan os.Signal, 1)
	signal.Notify(resized, syscall.SIGWINCH)
	defer signal.Stop(resized)

	keys := make(chan KeyEvent)
	go func() {
		kr := NewKeyReader(a.term)
		for {
			ev, err := kr.ReadKey()
			if err != nil {
				close(keys)
				return
			}
			keys <- ev
		}
	}()

	a.repaint()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-resized:
			a.repaint()
		case ev, ok := <-keys:
			if !ok {
				return nil
			}
			if ev.Key == KeyEscape || ev.Key == KeyCtrlC {
				return nil
			}
			if a.handleKey(ev) {
				a.repaint()
			}
		}
	}
}

// handleKey applies one key event to the board and reports whether the
// screen needs repainting.
func (a *App) handleKey(ev KeyEvent) bool {
	// A finished game only accepts ENTER, which starts a fresh one.
	if a.game.Outcome() != board.Playing {
		if ev.Key == KeyEnter {
			return a.game.Restart()
		}
		return false
	}

	var changed bool
	switch ev.Key {
	case KeyEnter:
		changed = a.game.SubmitGuess()
	case KeyBackspace:
		changed = a.game.DeleteLetter()
	case KeyRune:
		changed = a.game.AcceptLetter(ev.Rune)
	}

	if changed && a.game.Outcome() != board.Playing {
		a.game.SetMessage(resultMessage(a.game))
	}
	return changed
}

// resultMessage builds the end-of-game banner.
func resultMessage(g *board.Game) string {
	if g.Outcome() == board.Won {
		return "You win!\nESC: quit, ENTER: new"
	}
	return "The word was '" + g.Answer() + "'.\nESC: quit, ENTER: new"
}

func (a *App) repaint() {
	w, h, err := a.term.Size()
	if err != nil {
		// Without a size we cannot center anything; assume a sane
		// default so the frame still draws.
		w, h = 80, 24
	}
	a.rnd.Frame(a.game, w, h)
}
