package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/apperr"
)

// DefaultApiURL is the generateContent endpoint used when the caller
// has not configured one.
const DefaultApiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// Generation parameters sent with every request. The upstream contract
// takes a single prompt plus these sampling knobs.
const (
	maxOutputTokens = 2048
	temperature     = 0.7
	topP            = 0.95
	topK            = 40
)

// GeminiService calls the generative-language API over plain HTTP. Key
// and endpoint are read through getters so runtime settings updates
// take effect without restarting.
type GeminiService struct {
	getApiKey func() string
	getApiURL func() string
	client    *http.Client
}

// NewGeminiService creates a service with a fixed key and endpoint.
func NewGeminiService(apiKey, apiURL string) *GeminiService {
	if apiURL == "" {
		apiURL = DefaultApiURL
	}
	return &GeminiService{
		getApiKey: func() string { return apiKey },
		getApiURL: func() string { return apiURL },
		client:    &http.Client{},
	}
}

// NewGeminiServiceWithGetters creates a service whose key and endpoint
// are resolved on every call.
func NewGeminiServiceWithGetters(getApiKey, getApiURL func() string) *GeminiService {
	return &GeminiService{
		getApiKey: getApiKey,
		getApiURL: getApiURL,
		client:    &http.Client{},
	}
}

// GenerateText sends the prompt to the generateContent endpoint and
// returns the text of the first candidate.
func (g *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	apiKey := g.getApiKey()
	if apiKey == "" {
		return "", apperr.Configurationf("Gemini API key is missing")
	}
	apiURL := g.getApiURL()
	if apiURL == "" {
		apiURL = DefaultApiURL
	}
	url := apiURL + "?key=" + apiKey

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]interface{}{
			"maxOutputTokens": maxOutputTokens,
			"temperature":     temperature,
			"topP":            topP,
			"topK":            topK,
		},
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	// Candidate text may arrive split across multiple parts.
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
