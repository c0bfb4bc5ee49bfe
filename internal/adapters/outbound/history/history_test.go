package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abdidvp/appatch/internal/adapters/outbound/history"
	"github.com/abdidvp/appatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.RunEntry{
		Timestamp:  "2026-03-01T10:00:00Z",
		CommitHash: "abc1234",
		State:      domain.StateDone,
		Fixes:      7,
		Verified:   true,
	}

	require.NoError(t, h.Save(dir, entry))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t1", State: domain.StateFailed}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t2", State: domain.StateDone, Fixes: 9}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.StateFailed, entries[0].State)
	assert.Equal(t, 9, entries[1].Fixes)
}

func TestHistory_LimitDropsOldest(t *testing.T) {
	dir := t.TempDir()
	h := history.NewWithLimit(2)

	for _, ts := range []string{"t1", "t2", "t3"} {
		require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: ts}))
	}

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "t2", entries[0].Timestamp)
	assert.Equal(t, "t3", entries[1].Timestamp)
}

func TestHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestHistory_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".appatch", "history", "runs.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("{not json"), 0644))

	_, err := history.New().Load(dir)
	assert.Error(t, err)
}
