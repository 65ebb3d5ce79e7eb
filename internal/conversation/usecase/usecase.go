package usecase

import (
	convdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/domain"
)

// ConversationUsecase defines the conversation store operations.
//
// Mutations against an unknown ID are silent no-ops at this layer; the
// returned conversation pointer is nil in that case so the delivery
// layer can decide how to report it.
type ConversationUsecase interface {
	// List returns conversations in display order: pinned first, then
	// by UpdatedAt descending.
	List() ([]*convdomain.EmailConversation, error)

	// Create allocates an empty conversation with the default subject,
	// inserts it at the head of the collection and marks it active.
	Create() (*convdomain.EmailConversation, error)

	// Get returns the conversation or (nil, nil) when absent.
	Get(id string) (*convdomain.EmailConversation, error)

	// Update replaces the stored conversation wholesale, except that
	// CreatedAt is kept from the stored copy and UpdatedAt is always
	// set server-side.
	Update(conv *convdomain.EmailConversation) (*convdomain.EmailConversation, error)

	// AppendMessage appends one message with a fresh ID and timestamp
	// and refreshes UpdatedAt. When an AI message lands in a
	// conversation still carrying the default subject, the subject is
	// derived from the message text.
	AppendMessage(conversationID string, role convdomain.Role, content string) (*convdomain.EmailConversation, error)

	// Delete removes the conversation. If it was active, the active
	// pointer is cleared; no other conversation is promoted.
	Delete(id string) error

	// Rename sets the subject and refreshes UpdatedAt.
	Rename(id, subject string) (*convdomain.EmailConversation, error)

	// TogglePinned flips the pinned flag and refreshes UpdatedAt.
	TogglePinned(id string) (*convdomain.EmailConversation, error)

	// SetActive points the session at the given conversation. The
	// pointer is in-memory only; nothing is pre-selected after restart.
	SetActive(id string) (*convdomain.EmailConversation, error)

	// Active returns the active conversation or (nil, nil) when none.
	Active() (*convdomain.EmailConversation, error)

	// EnsureActive returns the active conversation, activating the
	// first stored one when none is selected, or creating one when the
	// store is empty.
	EnsureActive() (*convdomain.EmailConversation, error)
}
