package responderService

import (
	"ResponderBot/internal/entity"
	"sync"
)

const maxHistoryEntries = 100

// historyTable keeps a bounded FIFO message log per conversation id.
// Entries live only in process memory.
type historyTable struct {
	mu      sync.Mutex
	entries map[string][]entity.ConversationEntry
}

func newHistoryTable() *historyTable {
	return &historyTable{
		entries: make(map[string][]entity.ConversationEntry),
	}
}

func (h *historyTable) Append(conversationID, text string, timestampMillis int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	list := append(h.entries[conversationID], entity.ConversationEntry{
		Text:            text,
		TimestampMillis: timestampMillis,
	})
	if len(list) > maxHistoryEntries {
		list = list[len(list)-maxHistoryEntries:]
	}
	h.entries[conversationID] = list
}

func (h *historyTable) Entries(conversationID string) []entity.ConversationEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	list := h.entries[conversationID]
	out := make([]entity.ConversationEntry, len(list))
	copy(out, list)
	return out
}
