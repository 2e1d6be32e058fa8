package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpatters/wordgrid/internal/board"
	"github.com/mpatters/wordgrid/internal/words"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	bank, err := words.NewBank([]string{"heart"}, nil)
	require.NoError(t, err)

	st := NewMemory()
	ctx := context.Background()

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	sess := &Session{ID: NewSessionID(), Game: board.New(bank)}
	require.NoError(t, st.Save(ctx, sess))

	got, err := st.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestNewSessionID(t *testing.T) {
	t.Parallel()

	a, b := NewSessionID(), NewSessionID()
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}
