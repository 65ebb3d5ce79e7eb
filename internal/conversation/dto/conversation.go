package dto

import (
	convdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/domain"
)

type ConversationsResponse struct {
	Conversations []*convdomain.EmailConversation `json:"conversations"`
}

// ActiveConversationResponse carries the active conversation and the
// draft derived from it. Conversation is null when nothing is selected.
type ActiveConversationResponse struct {
	Conversation *convdomain.EmailConversation `json:"conversation"`
	CurrentDraft string                        `json:"currentDraft"`
}

type UpdateConversationRequest struct {
	Subject  string                    `json:"subject"`
	Messages []convdomain.EmailMessage `json:"messages"`
	Pinned   bool                      `json:"pinned"`
}

type RenameConversationRequest struct {
	Subject string `json:"subject" binding:"required"`
}

type AppendMessageRequest struct {
	Role    convdomain.Role `json:"role" binding:"required,oneof=user ai"`
	Content string          `json:"content" binding:"required"`
}

type SetActiveRequest struct {
	ID string `json:"id" binding:"required"`
}
