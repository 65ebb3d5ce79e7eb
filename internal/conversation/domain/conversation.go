package domain

import (
	"sort"
	"time"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// DefaultSubject is the placeholder a conversation carries until a
// subject is set explicitly or derived from generated text.
const DefaultSubject = "New Email Conversation"

// EmailMessage is a single entry in a conversation thread. Messages are
// append-only; content never changes after creation.
type EmailMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// EmailConversation is one email draft's threaded history.
type EmailConversation struct {
	ID        string         `json:"id"`
	Subject   string         `json:"subject"`
	Messages  []EmailMessage `json:"messages"`
	Pinned    bool           `json:"pinned"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CurrentDraft returns the content of the last AI-authored message in
// the thread, the text the composer shows when this conversation is
// activated. Empty when no AI message exists. Derived on every call,
// never cached.
func (c *EmailConversation) CurrentDraft() string {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleAI {
			return c.Messages[i].Content
		}
	}
	return ""
}

// Clone returns a deep copy so callers can mutate the result without
// touching stored state.
func (c *EmailConversation) Clone() *EmailConversation {
	out := *c
	out.Messages = append([]EmailMessage(nil), c.Messages...)
	return &out
}

// SortForDisplay orders conversations for the sidebar: pinned first,
// then by UpdatedAt descending within each group. The sort is stable so
// equal timestamps keep their stored order.
func SortForDisplay(convs []*EmailConversation) {
	sort.SliceStable(convs, func(i, j int) bool {
		if convs[i].Pinned != convs[j].Pinned {
			return convs[i].Pinned
		}
		return convs[i].UpdatedAt.After(convs[j].UpdatedAt)
	})
}
