package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpatters/wordgrid/internal/config"
)

func TestWordsCommand(t *testing.T) {
	cfg = &config.Config{} // embedded default lists

	var out bytes.Buffer
	cmd := wordsCmd
	cmd.SetOut(&out)
	require.NoError(t, runWords(cmd, nil))

	assert.Contains(t, out.String(), "answers: ")
	assert.Contains(t, out.String(), "allowed guesses: ")
}
