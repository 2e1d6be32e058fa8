// internal/words/words.go
//
// Word list management for the game engine.
// Responsibilities:
//   - Load the answer pool and extended guess list from configured files,
//     falling back to the embedded defaults in the assets package.
//   - Maintain an immutable Bank: answer slice plus a lookup set that is
//     the union of answers and extended guesses.
//   - Supply SelectAnswer, IsValidGuess, IsAnswer, and Stats.
//
// Word Lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters). Only
//     these can be drawn as the secret word.
//   - "allowed": valid guesses. The Bank always unions answers into the
//     allowed set, so an answers-only configuration still works.
//
// Constraints:
//   - Words must be 5 alphabetic letters (a-z); everything else is dropped.
//   - Lists are normalized to lowercase.
//   - A Bank is never mutated after construction and is safe for
//     concurrent readers.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/mpatters/wordgrid/assets"
)

// WordLength is the fixed word size for the whole game.
const WordLength = 5

// ErrEmptyAnswers indicates the answer pool ended up empty after loading
// and filtering. The game cannot start without answers.
var ErrEmptyAnswers = errors.New("words: answer pool is empty")

// Bank holds one game's dictionary: the answer pool and the valid-guess set.
// Immutable after construction.
type Bank struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ extended guesses
	intN       func(n int) int
}

// Option configures a Bank at construction time.
type Option func(*Bank)

// WithIntN injects the random source used by SelectAnswer. The function
// must return a value in [0, n). Used by tests to pin the chosen answer.
func WithIntN(intN func(n int) int) Option {
	return func(b *Bank) { b.intN = intN }
}

// NewBank builds a Bank from an answer pool and an extended guess list.
// Both inputs are filtered to valid 5-letter words and lowercased.
// Returns ErrEmptyAnswers if no usable answer survives filtering.
func NewBank(answers, allowed []string, opts ...Option) (*Bank, error) {
	b := &Bank{
		answersSet: make(map[string]struct{}),
		allowedSet: make(map[string]struct{}),
		intN:       rand.IntN,
	}
	for _, w := range answers {
		w = normalize(w)
		if w == "" {
			continue
		}
		if _, dup := b.answersSet[w]; dup {
			continue
		}
		b.answers = append(b.answers, w)
		b.answersSet[w] = struct{}{}
		b.allowedSet[w] = struct{}{}
	}
	for _, w := range allowed {
		if w = normalize(w); w != "" {
			b.allowedSet[w] = struct{}{}
		}
	}
	if len(b.answers) == 0 {
		return nil, ErrEmptyAnswers
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Load builds a Bank from the given file paths. An empty path falls back
// to the corresponding embedded default list.
func Load(answersPath, allowedPath string, opts ...Option) (*Bank, error) {
	var (
		ansList, allowList []string
		err                error
	)

	if answersPath != "" {
		ansList, err = readWordFile(answersPath)
	} else {
		ansList, err = assets.AnswerList()
	}
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	if allowedPath != "" {
		allowList, err = readWordFile(allowedPath)
	} else {
		allowList, err = assets.AllowedList()
	}
	if err != nil {
		return nil, fmt.Errorf("load allowed guesses: %w", err)
	}

	return NewBank(ansList, allowList, opts...)
}

// SelectAnswer draws a uniformly random word from the answer pool.
func (b *Bank) SelectAnswer() string {
	return b.answers[b.intN(len(b.answers))]
}

// IsValidGuess reports whether w is a legal guess (case-insensitive).
func (b *Bank) IsValidGuess(w string) bool {
	_, ok := b.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is in the answer pool.
func (b *Bank) IsAnswer(w string) bool {
	_, ok := b.answersSet[strings.ToLower(w)]
	return ok
}

// Answers returns the answer pool. Callers must not modify the slice.
func (b *Bank) Answers() []string { return b.answers }

// Stats returns counts of loaded words: (answers, allowed).
func (b *Bank) Stats() (answersCount, allowedCount int) {
	return len(b.answers), len(b.allowedSet)
}

// readWordFile loads one word per line from a file. Filtering happens
// in NewBank; this only trims and skips comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// normalize lowercases w and returns "" unless it is exactly 5 ASCII letters.
func normalize(w string) string {
	w = strings.ToLower(strings.TrimSpace(w))
	if len(w) != WordLength || !isAlpha(w) {
		return ""
	}
	return w
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
