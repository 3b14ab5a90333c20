package sqlgen

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type HistoryEntry struct {
	ID        uuid.UUID
	Question  string
	Result    Result
	CreatedAt time.Time
}

func NewHistoryEntry(question string, result Result) HistoryEntry {
	return HistoryEntry{
		ID:        uuid.New(),
		Question:  question,
		Result:    result,
		CreatedAt: time.Now(),
	}
}

// History is an append-only, ordered record of past results. Entries are never
// removed or modified once appended.
type History struct {
	mu      sync.RWMutex
	entries []HistoryEntry
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Append(entry HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, entry)
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)

	return out
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}
