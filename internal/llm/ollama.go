package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Message is the wire shape a provider receives; the service layer maps
// the chat log into this before calling GenerateReply.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ReplyGenerator is the contract for the external reply-generation
// collaborator: given the full conversation history, produce the
// assistant's next message. Implementations must honor the context
// deadline; the caller bounds every call.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, history []Message) (string, error)
}

type ollamaProvider struct {
	client *http.Client
	url    string
	model  string
}

func NewOllamaProvider(url, model string) ReplyGenerator {
	return &ollamaProvider{
		client: &http.Client{},
		url:    url,
		model:  model,
	}
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type chatResponse struct {
	Model   string  `json:"model"`
	Message Message `json:"message"`
	Done    bool    `json:"done"`
}

func (p *ollamaProvider) GenerateReply(ctx context.Context, history []Message) (string, error) {
	body, err := json.Marshal(&chatRequest{Model: p.model, Messages: history, Stream: false})
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/api/chat", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	return strings.TrimSpace(chatResp.Message.Content), nil
}
