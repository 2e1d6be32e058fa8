// Keyboard decoding for raw terminal input.
//
// Responsibilities:
//   - Turn the raw byte stream of a terminal in raw mode into discrete
//     KeyEvents (letters, ENTER, BACKSPACE, ESC, Ctrl+C).
//   - Swallow escape sequences (arrow keys and friends) the game does
//     not use, so they never leak into the board as letters.
package tui

import (
	"bufio"
	"io"
)

// Key identifies a decoded keyboard input.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyCtrlC
	KeyRune // regular character, see KeyEvent.Rune
)

// KeyEvent is one decoded key press.
type KeyEvent struct {
	Key  Key
	Rune rune // only valid when Key == KeyRune
}

// KeyReader decodes key events from a raw terminal input stream.
type KeyReader struct {
	reader *bufio.Reader
}

// NewKeyReader wraps r, which should be a terminal already in raw mode.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{reader: bufio.NewReaderSize(r, 64)}
}

// ReadKey blocks until a key is pressed and returns the decoded event.
func (k *KeyReader) ReadKey() (KeyEvent, error) {
	b, err := k.reader.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	switch b {
	case 0x03:
		return KeyEvent{Key: KeyCtrlC}, nil
	case 0x0D, 0x0A:
		return KeyEvent{Key: KeyEnter}, nil
	case 0x7F, 0x08:
		return KeyEvent{Key: KeyBackspace}, nil
	case 0x1B:
		return k.readEscape()
	default:
		if b >= 0x20 && b < 0x7F {
			return KeyEvent{Key: KeyRune, Rune: rune(b)}, nil
		}
		return KeyEvent{Key: KeyUnknown}, nil
	}
}

// readEscape distinguishes a bare ESC press from the start of a CSI/SS3
// sequence. Sequences are consumed and reported as KeyUnknown since the
// game binds nothing to them.
func (k *KeyReader) readEscape() (KeyEvent, error) {
	if k.reader.Buffered() == 0 {
		return KeyEvent{Key: KeyEscape}, nil
	}
	b, err := k.reader.ReadByte()
	if err != nil {
		return KeyEvent{Key: KeyEscape}, nil
	}
	if b != '[' && b != 'O' {
		_ = k.reader.UnreadByte()
		return KeyEvent{Key: KeyEscape}, nil
	}
	// Consume the rest of the sequence up to its final byte.
	for {
		next, err := k.reader.ReadByte()
		if err != nil {
			break
		}
		if (next >= 'A' && next <= 'Z') || next == '~' {
			break
		}
		if k.reader.Buffered() == 0 {
			break
		}
	}
	return KeyEvent{Key: KeyUnknown}, nil
}
