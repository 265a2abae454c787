package dedup

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type seenEntry struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}

// RetentionDays is how long a delivered lead keeps suppressing repeats.
// Content search rarely resurfaces posts older than this anyway.
const RetentionDays = 30

const retentionMs = int64(RetentionDays * 24 * 60 * 60 * 1000)

// SeenCache remembers which lead URLs were already delivered, persisted as
// JSON so the memory survives between runs.
type SeenCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
}

// NewSeenCache creates or loads the cache stored at path.
func NewSeenCache(path string) *SeenCache {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	cache := &SeenCache{
		filePath: path,
		seen:     make(map[string]int64),
	}
	cache.load()
	return cache
}

// Has reports whether a URL was delivered within the retention window.
// Mutex is required because Go maps are NOT thread-safe.
func (sc *SeenCache) Has(url string) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	_, exists := sc.seen[url]
	return exists
}

// Add records delivered URLs and persists the cache when anything new came in.
func (sc *SeenCache) Add(urls []string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, url := range urls {
		if _, exists := sc.seen[url]; !exists {
			sc.seen[url] = now
			changed = true
		}
	}

	if changed {
		sc.save()
	}
}

// load reads the cache from disk, dropping entries older than the
// retention window so the file cannot grow without bound.
func (sc *SeenCache) load() {
	data, err := os.ReadFile(sc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen cache: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen cache: %v", err)
		return
	}

	cutoff := time.Now().UnixMilli() - retentionMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			sc.seen[e.URL] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously seen leads (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk
func (sc *SeenCache) save() {
	entries := make([]seenEntry, 0, len(sc.seen))
	for url, ts := range sc.seen {
		entries = append(entries, seenEntry{URL: url, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen leads: %v", err)
		return
	}
	if err := os.WriteFile(sc.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen cache: %v", err)
	}
	log.Printf("💾 Saved %d seen leads to cache", len(entries))
}
