package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndHas(t *testing.T) {
	cache := NewSeenCache(filepath.Join(t.TempDir(), "seen.json"))

	assert.False(t, cache.Has("https://example.com/posts/1"))

	cache.Add([]string{"https://example.com/posts/1", "https://example.com/posts/2"})

	assert.True(t, cache.Has("https://example.com/posts/1"))
	assert.True(t, cache.Has("https://example.com/posts/2"))
	assert.False(t, cache.Has("https://example.com/posts/3"))
}

func TestPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")

	first := NewSeenCache(path)
	first.Add([]string{"https://example.com/posts/1"})

	second := NewSeenCache(path)
	assert.True(t, second.Has("https://example.com/posts/1"))
}

func TestExpiredEntriesDroppedOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	now := time.Now().UnixMilli()
	entries := []seenEntry{
		{URL: "https://example.com/posts/fresh", Timestamp: now - int64(24*time.Hour/time.Millisecond)},
		{URL: "https://example.com/posts/stale", Timestamp: now - retentionMs - 1000},
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cache := NewSeenCache(path)

	assert.True(t, cache.Has("https://example.com/posts/fresh"))
	assert.False(t, cache.Has("https://example.com/posts/stale"))

	//the next save leaves the expired entry behind for good
	cache.Add([]string{"https://example.com/posts/new"})
	reloaded := NewSeenCache(path)
	assert.False(t, reloaded.Has("https://example.com/posts/stale"))
	assert.True(t, reloaded.Has("https://example.com/posts/new"))
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	require.NoError(t, os.WriteFile(path, []byte("{definitely not json"), 0644))

	cache := NewSeenCache(path)

	assert.False(t, cache.Has("https://example.com/posts/1"))
	cache.Add([]string{"https://example.com/posts/1"})
	assert.True(t, cache.Has("https://example.com/posts/1"))
}

func TestAddDuplicateDoesNotChurn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	cache := NewSeenCache(path)
	cache.Add([]string{"https://example.com/posts/1"})

	info, err := os.Stat(path)
	require.NoError(t, err)
	before := info.ModTime()

	//idempotent: re-adding a known URL skips the disk write
	time.Sleep(10 * time.Millisecond)
	cache.Add([]string{"https://example.com/posts/1"})

	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before, info.ModTime())
}
