package dto

import (
	convdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/domain"
)

type RephraseRequest struct {
	Text string `json:"text"`
}

type RephraseResponse struct {
	RephrasedText string `json:"rephrasedText"`
}

type ComposeEmailRequest struct {
	Conversation []convdomain.EmailMessage `json:"conversation"`
	CurrentDraft string                    `json:"currentDraft"`
}

type ComposeEmailResponse struct {
	GeneratedEmail string `json:"generatedEmail"`
}
