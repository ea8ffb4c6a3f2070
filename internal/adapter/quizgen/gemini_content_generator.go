// Package quizgen holds the model-backed implementations of port.ContentGenerator.
package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"edugenie/internal/logger"
	"edugenie/internal/port"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const jsonMIMEType = "application/json"

// contentModel is the part of *genai.GenerativeModel the generator needs.
type contentModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiContentGenerator calls a Gemini model through one long-lived client.
type GeminiContentGenerator struct {
	client    *genai.Client
	model     contentModel
	modelName string
}

// NewGeminiContentGenerator opens a Gemini client for modelName. The model is asked to
// reply with application/json.
func NewGeminiContentGenerator(ctx context.Context, apiKey, modelName string) (*GeminiContentGenerator, error) {
	apiKey = strings.TrimSpace(apiKey)
	modelName = strings.TrimSpace(modelName)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = jsonMIMEType

	logger.Get().Info("Initialized Gemini content generator", zap.String("model", modelName))
	return &GeminiContentGenerator{client: client, model: model, modelName: modelName}, nil
}

// Generate sends prompt as a single text part and returns the text of the first candidate.
func (g *GeminiContentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := firstText(resp)
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}

// Close releases the underlying client.
func (g *GeminiContentGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// firstText concatenates the text parts of the first candidate that has content.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

var _ port.ContentGenerator = (*GeminiContentGenerator)(nil)
