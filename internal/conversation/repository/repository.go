package repository

import (
	convdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/domain"
)

// ConversationRepository defines the interface for conversation
// persistence. The collection round-trips as one snapshot: every
// mutation flushes the whole list.
type ConversationRepository interface {
	// List returns all conversations in storage order (newest created
	// first).
	List() ([]*convdomain.EmailConversation, error)

	// FindByID returns the conversation or (nil, nil) when absent.
	FindByID(id string) (*convdomain.EmailConversation, error)

	// Insert adds a conversation at the head of the collection.
	Insert(conv *convdomain.EmailConversation) error

	// Update replaces the stored conversation with the same ID. Unknown
	// IDs are a silent no-op.
	Update(conv *convdomain.EmailConversation) error

	// Delete removes the conversation. Unknown IDs are a silent no-op.
	Delete(id string) error
}
