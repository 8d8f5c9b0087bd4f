// Package gemini is the completion-service collaborator. It sends the built
// prompt plus bounded history to Gemini and always hands back some reply
// text: on terminal failure the fixed localized apology is returned so the
// conversation advances instead of stalling.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

// FallbackReply is returned whenever the completion service cannot produce
// an answer.
const FallbackReply = "দুঃখিত, এই মুহূর্তে উত্তর দিতে পারছি না। একটু পরে আবার চেষ্টা করুন। 🙏"

// HistoryLimit bounds how many prior turns are sent with each request.
const HistoryLimit = 10

// CompletionClient produces a reply for the given instruction, history and
// latest customer message. Implementations must not return an empty string.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, history []*models.ConversationMessage, userText string) string
	Close() error
}

// Client wraps the Gemini API client.
type Client struct {
	client     *genai.Client
	logger     *zap.Logger
	modelName  string
	maxRetries int
	retryDelay time.Duration
	timeout    time.Duration
}

// Config for the Gemini client.
type Config struct {
	APIKey     string
	ModelName  string // Default: "gemini-2.0-flash-exp"
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// NewClient creates a new Gemini client.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	if cfg.ModelName == "" {
		cfg.ModelName = "gemini-2.0-flash-exp"
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	logger.Info("Gemini client initialized",
		zap.String("model", cfg.ModelName),
		zap.Int("max_retries", cfg.MaxRetries))

	return &Client{
		client:     client,
		logger:     logger,
		modelName:  cfg.ModelName,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		timeout:    cfg.Timeout,
	}, nil
}

// Close closes the Gemini client.
func (c *Client) Close() error {
	return c.client.Close()
}

// Complete sends the prompt and the most recent history turns and returns
// the reply text, or FallbackReply after the last failed attempt.
func (c *Client) Complete(ctx context.Context, systemPrompt string, history []*models.ConversationMessage, userText string) string {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopP:            genai.Ptr[float32](0.9),
		MaxOutputTokens: genai.Ptr[int32](300),
	}

	session := model.StartChat()
	session.History = buildHistory(history)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("Retrying Gemini request",
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", c.maxRetries))
			select {
			case <-ctx.Done():
				c.logger.Error("Gemini call abandoned", zap.Error(ctx.Err()))
				return FallbackReply
			case <-time.After(c.retryDelay):
			}
		}

		resp, err := session.SendMessage(ctx, genai.Text(userText))
		if err != nil {
			lastErr = fmt.Errorf("gemini API error: %w", err)
			c.logger.Error("Gemini API error", zap.Error(err), zap.Int("attempt", attempt+1))
			continue
		}

		reply := extractText(resp)
		if reply == "" {
			lastErr = fmt.Errorf("empty response from gemini")
			c.logger.Error("Empty response from Gemini", zap.Int("attempt", attempt+1))
			continue
		}

		return reply
	}

	c.logger.Error("Gemini completion failed; using fallback reply",
		zap.Int("attempts", c.maxRetries),
		zap.Error(lastErr))
	return FallbackReply
}

// buildHistory converts stored turns into the chat history the API expects,
// keeping only the most recent HistoryLimit entries.
func buildHistory(history []*models.ConversationMessage) []*genai.Content {
	if len(history) > HistoryLimit {
		history = history[len(history)-HistoryLimit:]
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == models.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String())
}
