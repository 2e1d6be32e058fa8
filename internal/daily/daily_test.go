package daily

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpatters/wordgrid/internal/storage"
)

func TestDateKey(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+9", 9*3600)
	ts := time.Date(2024, 3, 1, 2, 30, 0, 0, loc) // still Feb 29 in UTC
	assert.Equal(t, "2024-02-29", DateKey(ts))
}

func TestWordIndex(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	a := WordIndex(date, "salt", 500)
	assert.Equal(t, a, WordIndex(date, "salt", 500), "deterministic")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 500)

	sameDay := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, a, WordIndex(sameDay, "salt", 500), "stable across the day")

	nextDay := date.AddDate(0, 0, 1)
	differs := WordIndex(nextDay, "salt", 500) != a ||
		WordIndex(date, "other", 500) != a
	assert.True(t, differs, "date or salt changes the schedule")

	assert.Equal(t, 0, WordIndex(date, "salt", 0), "empty pool degrades to 0")
}

func TestStore(t *testing.T) {
	t.Parallel()

	db, err := storage.Open(t.TempDir() + "/daily.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	st := NewStore(db.SQL())
	ctx := context.Background()

	played, err := st.AlreadyPlayed(ctx, "u1", "2024-06-15")
	require.NoError(t, err)
	assert.False(t, played)

	require.NoError(t, st.InsertResult(ctx, Result{
		UserID: "u1", Date: "2024-06-15", WordIndex: 7, Guesses: 4, ElapsedMs: 90_000,
	}))
	require.NoError(t, st.InsertResult(ctx, Result{
		UserID: "u2", Date: "2024-06-15", WordIndex: 7, Guesses: 3, ElapsedMs: 45_000,
	}))
	// Duplicate for u1 is ignored, not an error.
	require.NoError(t, st.InsertResult(ctx, Result{
		UserID: "u1", Date: "2024-06-15", WordIndex: 7, Guesses: 2, ElapsedMs: 10_000,
	}))

	played, err = st.AlreadyPlayed(ctx, "u1", "2024-06-15")
	require.NoError(t, err)
	assert.True(t, played)

	lb, err := st.Leaderboard(ctx, "2024-06-15", 0)
	require.NoError(t, err)
	require.Len(t, lb, 2)
	assert.Equal(t, "u2", lb[0].UserID, "fastest first")
	assert.Equal(t, 90_000, lb[1].ElapsedMs, "first u1 result kept")
}
