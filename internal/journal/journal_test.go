package journal

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)
	sid := uuid.NewString()

	require.NoError(t, j.Record(sid, "labpod", "create+env", "image=labpod:cuda"))
	require.NoError(t, j.Record(sid, "labpod", "stop", ""))
	require.NoError(t, j.Record(sid, "labpod", "remove", ""))

	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, "remove", entries[0].Action)
	assert.Equal(t, "stop", entries[1].Action)
	assert.Equal(t, "create+env", entries[2].Action)
	for _, e := range entries {
		assert.Equal(t, sid, e.SessionID)
		assert.Equal(t, "labpod", e.Container)
		assert.False(t, e.CreatedAt.IsZero())
	}
}

func TestRecentLimit(t *testing.T) {
	j := openTestJournal(t)
	sid := uuid.NewString()
	for i := 0; i < 5; i++ {
		require.NoError(t, j.Record(sid, "labpod", "attach", ""))
	}

	entries, err := j.Recent(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRecentEmpty(t *testing.T) {
	j := openTestJournal(t)

	entries, err := j.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
