package service

import (
	"context"
	"strings"

	"edugenie/internal/domain"
	"edugenie/internal/extract"
	"edugenie/internal/logger"
	"edugenie/internal/port"
	"edugenie/internal/prompt"
	"edugenie/internal/util"

	"go.uber.org/zap"
)

// GenerationService turns a topic or an uploaded document into quiz questions or flashcards.
type GenerationService interface {
	Generate(ctx context.Context, req *domain.GenerationRequest) (domain.GenerationResult, error)
}

type generationServiceImpl struct {
	generator port.ContentGenerator
}

// NewGenerationService creates a GenerationService backed by generator.
func NewGenerationService(generator port.ContentGenerator) GenerationService {
	return &generationServiceImpl{generator: generator}
}

// Generate runs intake, truncation, prompting, the model call and response parsing.
// Every failure after intake is reported as a generation error; no step is retried.
func (s *generationServiceImpl) Generate(ctx context.Context, req *domain.GenerationRequest) (domain.GenerationResult, error) {
	if req == nil {
		return nil, domain.NewMissingInputError()
	}

	source, err := s.intake(req)
	if err != nil {
		return nil, err
	}
	source = source.Truncate()

	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = domain.DefaultNumQuestions
	}

	text := prompt.Build(prompt.Input{
		Mode:         req.Mode,
		SourceName:   source.SourceName,
		Context:      source.Text,
		NumQuestions: numQuestions,
		Difficulty:   req.Difficulty,
		FromDocument: source.FromDocument,
	})

	l := logger.Get().With(
		zap.String("mode", req.Mode.String()),
		zap.String("source_name", source.SourceName),
		zap.Int("num_questions", numQuestions))
	l.Debug("Requesting content from model", zap.Int("context_length", len(source.Text)))

	raw, err := s.generator.Generate(ctx, text)
	if err != nil {
		l.Error("Model invocation failed", zap.Error(err))
		return nil, domain.NewGenerationError(domain.CodeModelInvocationFailure, err)
	}

	result, err := util.DecodeJSONObject(util.StripCodeFences(raw))
	if err != nil {
		l.Error("Failed to parse model response", zap.Error(err), zap.String("raw_response", util.CompactJSON(raw)))
		return nil, domain.NewGenerationError(domain.CodeResponseParseFailure, err)
	}

	result["source_name"] = source.SourceName
	result["mode"] = req.Mode.String()
	l.Info("Generated content")
	return domain.GenerationResult(result), nil
}

// intake picks the material to prompt with. An uploaded file wins over a topic.
func (s *generationServiceImpl) intake(req *domain.GenerationRequest) (domain.ExtractedContext, error) {
	if req.File != nil {
		kind := domain.FileKindFromName(req.File.Filename)
		if kind == domain.FileKindUnsupported {
			logger.Get().Warn("Rejected upload with unsupported file type", zap.String("filename", req.File.Filename))
			return domain.ExtractedContext{}, domain.NewUnsupportedFileTypeError(req.File.Filename)
		}
		text, err := extract.Extract(kind, req.File.Data)
		if err != nil {
			logger.Get().Error("Failed to extract document text",
				zap.String("filename", req.File.Filename),
				zap.String("kind", kind.String()),
				zap.Error(err))
			return domain.ExtractedContext{}, domain.NewGenerationError(domain.CodeMalformedDocument, err)
		}
		return domain.ExtractedContext{Text: text, SourceName: req.File.Filename, FromDocument: true}, nil
	}

	if strings.TrimSpace(req.Topic) != "" {
		return domain.ExtractedContext{Text: req.Topic, SourceName: req.Topic}, nil
	}
	return domain.ExtractedContext{}, domain.NewMissingInputError()
}
