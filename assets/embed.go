// Package assets embeds the default word lists shipped with the game.
//
// Two newline-delimited lists:
//   - answers.txt: the answer pool (candidates for the secret word).
//   - allowed.txt: extra words accepted as guesses but never chosen
//     as the answer.
//
// Lines starting with '#' and blank lines are skipped; everything else is
// lowercased. Validation of word shape (exactly five ASCII letters) is the
// caller's job; see internal/words.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed answers.txt allowed.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswerList returns the embedded answer pool.
func AnswerList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the embedded extended guess list.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}
