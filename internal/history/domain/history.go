package domain

import "time"

// HistoryType identifies which feature produced a history entry.
type HistoryType string

const (
	HistoryCompose  HistoryType = "compose"
	HistoryRephrase HistoryType = "rephrase"
)

// MaxEntries caps the log. Appending beyond the cap drops the oldest
// entries (FIFO eviction).
const MaxEntries = 100

// HistoryMessage is the role/content pair snapshotted with an entry so
// a past result can be reloaded into the composer.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// APIHistoryItem records one call to the generative service. For
// compose entries CurrentDraft holds the generated email; for rephrase
// entries it holds the rephrased result and InputText the original.
type APIHistoryItem struct {
	ID           string           `json:"id"`
	Type         HistoryType      `json:"type"`
	Timestamp    time.Time        `json:"timestamp"`
	Model        string           `json:"model,omitempty"`
	InputText    string           `json:"inputText,omitempty"`
	CurrentDraft string           `json:"currentDraft,omitempty"`
	Conversation []HistoryMessage `json:"conversation,omitempty"`
}

// HandoffPayload is the single-use packet passed from the history view
// into the composer. Setting it overwrites any unread payload;
// consuming it clears the slot.
type HandoffPayload struct {
	CurrentDraft string           `json:"currentDraft,omitempty"`
	Conversation []HistoryMessage `json:"conversation,omitempty"`
}
