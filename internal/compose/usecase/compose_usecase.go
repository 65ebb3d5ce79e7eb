package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	convdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/domain"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/internal/metrics"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/ai"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/apperr"
)

// ComposeUsecase is the stateless gateway to the generative-language
// service. It assembles prompts and unwraps results; it never touches
// conversation or history state.
type ComposeUsecase interface {
	// Rephrase rewrites text into a professional tone.
	Rephrase(ctx context.Context, text string) (string, error)

	// Compose generates or modifies an email from the conversation
	// history plus the current draft or instruction.
	Compose(ctx context.Context, conversation []convdomain.EmailMessage, currentDraft string) (string, error)
}

const rephrasePrompt = `Rephrase the following text to a professional tone, providing only the rephrased text without any additional suggestions or options:

%s`

const composePrompt = `You are an AI assistant that helps compose and modify professional emails.
Based on the following conversation history and the current draft, generate or modify the email to be professional and coherent.
If the user provides a new instruction, incorporate it into the email.
If the user is continuing a thread, ensure the tone and context are maintained.
Provide only the complete, polished email without any additional suggestions or options.

Conversation history:
%s

Current draft/instruction:
%s

Please provide the complete, polished email.`

type composeUsecase struct {
	generator ai.TextGenerator
}

// NewComposeUsecase creates a ComposeUsecase over generator.
func NewComposeUsecase(generator ai.TextGenerator) ComposeUsecase {
	return &composeUsecase{generator: generator}
}

func (u *composeUsecase) Rephrase(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperr.Validationf("Input text cannot be empty")
	}
	return u.generate(ctx, "rephrase", fmt.Sprintf(rephrasePrompt, text))
}

func (u *composeUsecase) Compose(ctx context.Context, conversation []convdomain.EmailMessage, currentDraft string) (string, error) {
	if strings.TrimSpace(currentDraft) == "" && len(conversation) == 0 {
		return "", apperr.Validationf("Input text or conversation cannot be empty")
	}

	// The transcript embeds the full history plus the draft as the
	// latest user turn.
	var transcript strings.Builder
	for _, msg := range conversation {
		fmt.Fprintf(&transcript, "%s: %s\n", msg.Role, msg.Content)
	}
	fmt.Fprintf(&transcript, "%s: %s", convdomain.RoleUser, currentDraft)

	return u.generate(ctx, "compose", fmt.Sprintf(composePrompt, transcript.String(), currentDraft))
}

// generate issues the single upstream call and classifies failures.
func (u *composeUsecase) generate(ctx context.Context, operation, prompt string) (string, error) {
	start := time.Now()
	text, err := u.generator.GenerateText(ctx, prompt)
	metrics.UpstreamDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(operation, "error").Inc()
		var ce *apperr.ConfigurationError
		if errors.As(err, &ce) {
			return "", err
		}
		return "", apperr.Upstream("generative service call failed", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		metrics.UpstreamRequests.WithLabelValues(operation, "error").Inc()
		return "", apperr.Upstream("generative service returned no usable text", nil)
	}
	metrics.UpstreamRequests.WithLabelValues(operation, "ok").Inc()
	return text, nil
}
