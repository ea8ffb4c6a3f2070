package quizgen

import (
	"context"
	"fmt"

	"edugenie/internal/logger"
	"edugenie/internal/port"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// LangchainContentGenerator drives any langchaingo model in JSON mode.
type LangchainContentGenerator struct {
	llm llms.Model
}

// NewLangchainContentGenerator wraps an already constructed langchaingo model.
func NewLangchainContentGenerator(llm llms.Model) *LangchainContentGenerator {
	return &LangchainContentGenerator{llm: llm}
}

// NewOllamaContentGenerator connects to an Ollama server.
func NewOllamaContentGenerator(serverURL, modelName string) (*LangchainContentGenerator, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	llm, err := ollama.New(
		ollama.WithModel(modelName),
		ollama.WithServerURL(serverURL),
		ollama.WithFormat("json"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama LLM client: %w", err)
	}
	logger.Get().Info("Initialized Ollama content generator", zap.String("model", modelName), zap.String("server", serverURL))
	return NewLangchainContentGenerator(llm), nil
}

// NewOpenAIContentGenerator builds an OpenAI chat model client.
func NewOpenAIContentGenerator(apiKey, modelName string) (*LangchainContentGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("openai model name cannot be empty")
	}

	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI LLM client: %w", err)
	}
	logger.Get().Info("Initialized OpenAI content generator", zap.String("model", modelName))
	return NewLangchainContentGenerator(llm), nil
}

// Generate sends prompt as a single human message.
func (g *LangchainContentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithJSONMode())
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return completion, nil
}

var _ port.ContentGenerator = (*LangchainContentGenerator)(nil)
