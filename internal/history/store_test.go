package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)

	e := &Entry{Database: "orders", Query: "match $x isa order;", DurationMillis: 12}
	require.NoError(t, s.Append(e))

	assert.NotEmpty(t, e.ID)
	assert.False(t, e.ExecutedAt.IsZero())
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Append(&Entry{
			Database:   "orders",
			Query:      "match $x isa order;",
			ExecutedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := s.Recent(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].ExecutedAt.After(entries[1].ExecutedAt))
	assert.True(t, entries[1].ExecutedAt.After(entries[2].ExecutedAt))
}

func TestRecentDefaultsLimit(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(&Entry{Database: "orders", Query: "match $x isa order;"}))

	entries, err := s.Recent(0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFailedQueryKeepsError(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(&Entry{
		Database: "orders",
		Query:    "match $x isa nonsense;",
		Error:    "[CLI06] the database does not exist",
	}))

	entries, err := s.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Error, "CLI06")
}
