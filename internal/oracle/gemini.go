package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiClient Gemini text-generation client
type GeminiClient struct {
	apiKey string
	model  string
	logger *zap.Logger
}

// NewGeminiClient creates a Gemini oracle client.
func NewGeminiClient(apiKey, model string, logger *zap.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
		logger: logger,
	}
}

// Complete sends a single-turn prompt and returns the concatenated text parts.
func (c *GeminiClient) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("gemini: api key is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(c.model)
	temp := float32(temperature)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32Ptr(int32(maxTokens)),
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	if sb.Len() == 0 {
		return "", errors.New("gemini: no text parts in response")
	}

	return sb.String(), nil
}

func int32Ptr(v int32) *int32 { return &v }
