package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBankFiltersAndNormalizes(t *testing.T) {
	t.Parallel()

	bank, err := NewBank(
		[]string{"HEART", "crane", "toolong", "abc", "ab1de", "heart"},
		[]string{"Gucci", "bocce", ""},
	)
	require.NoError(t, err)

	answers, allowed := bank.Stats()
	assert.Equal(t, 2, answers, "invalid and duplicate words dropped")
	assert.Equal(t, 4, allowed)

	assert.True(t, bank.IsAnswer("heart"))
	assert.True(t, bank.IsAnswer("HEART"), "case-insensitive")
	assert.False(t, bank.IsAnswer("gucci"), "extended words are never answers")
}

func TestNewBankEmptyAnswers(t *testing.T) {
	t.Parallel()

	_, err := NewBank(nil, []string{"crane"})
	assert.ErrorIs(t, err, ErrEmptyAnswers)

	_, err = NewBank([]string{"notfiveletters"}, nil)
	assert.ErrorIs(t, err, ErrEmptyAnswers)
}

func TestIsValidGuessUnion(t *testing.T) {
	t.Parallel()

	bank, err := NewBank([]string{"heart"}, []string{"gucci"})
	require.NoError(t, err)

	assert.True(t, bank.IsValidGuess("heart"), "answers are always guessable")
	assert.True(t, bank.IsValidGuess("gucci"))
	assert.True(t, bank.IsValidGuess("GUCCI"))
	assert.False(t, bank.IsValidGuess("zzzzz"))
}

func TestSelectAnswerUsesInjectedSource(t *testing.T) {
	t.Parallel()

	bank, err := NewBank([]string{"heart", "crane", "sound"}, nil,
		WithIntN(func(int) int { return 2 }))
	require.NoError(t, err)

	assert.Equal(t, "sound", bank.SelectAnswer())
	assert.Equal(t, "sound", bank.SelectAnswer(), "deterministic under a fixed source")
}

func TestSelectAnswerUniformDomain(t *testing.T) {
	t.Parallel()

	var seen []int
	bank, err := NewBank([]string{"heart", "crane"}, nil,
		WithIntN(func(n int) int {
			seen = append(seen, n)
			return 0
		}))
	require.NoError(t, err)

	bank.SelectAnswer()
	require.Len(t, seen, 1)
	assert.Equal(t, 2, seen[0], "random draw spans the whole answer pool")
}

func TestLoadFromFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	answersPath := filepath.Join(dir, "answers.txt")
	allowedPath := filepath.Join(dir, "allowed.txt")
	require.NoError(t, os.WriteFile(answersPath, []byte("heart\ncrane\n# comment\n\n"), 0o644))
	require.NoError(t, os.WriteFile(allowedPath, []byte("gucci\nbocce\n"), 0o644))

	bank, err := Load(answersPath, allowedPath)
	require.NoError(t, err)

	answers, allowed := bank.Stats()
	assert.Equal(t, 2, answers)
	assert.Equal(t, 4, allowed)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), "")
	assert.Error(t, err)
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Parallel()

	bank, err := Load("", "")
	require.NoError(t, err)

	answers, allowed := bank.Stats()
	assert.Greater(t, answers, 100)
	assert.Greater(t, allowed, answers, "extended list adds guess-only words")
	assert.True(t, bank.IsValidGuess("gucci"))
	assert.False(t, bank.IsAnswer("gucci"))
	assert.True(t, bank.IsAnswer("heart"))
}
