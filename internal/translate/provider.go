// internal/translate/provider.go
//
// HTTP provider speaking the chat-completions wire shape used by most
// hosted LLM gateways.
//
// Notes
// -----
// • One attempt per request; the caller's degrade-to-original policy
//   makes retries pointless for an advisory feature.
// • languageName feeds the prompt with full names, since short codes
//   steer some models toward the wrong variant.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nessdigital/webcore/internal/locale"
)

const (
	defaultModel       = "mistral-small-latest"
	completionsPath    = "/v1/chat/completions"
	defaultHTTPTimeout = 30 * time.Second
)

// Provider is a Translator backed by a chat-completions endpoint.
type Provider struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewProvider builds a Provider.  baseURL and apiKey are required;
// model and timeout fall back to defaults when zero.
func NewProvider(baseURL, apiKey, model string, timeout time.Duration) (*Provider, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("translate: base URL required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("translate: API key required")
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &Provider{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Translate sends one completion request and returns the model's text.
func (p *Provider) Translate(ctx context.Context, text string, from, to locale.Language) (string, error) {
	payload := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: fmt.Sprintf(
					"You translate marketing copy from %s to %s.  Preserve HTML tags and placeholders.  Reply with the translation only.",
					languageName(from), languageName(to),
				),
			},
			{Role: "user", Content: text},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+completionsPath, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("translate: provider status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("translate: empty response")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func languageName(l locale.Language) string {
	switch l {
	case locale.Portuguese:
		return "European Portuguese"
	case locale.Spanish:
		return "Spanish"
	default:
		return "English"
	}
}
