package advisory

import (
	"context"
	"errors"
	"fmt"

	"bell24h_negotiation/internal/infrastructure/logging"
	"bell24h_negotiation/internal/usecase/interfaces"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

// generateFunc sends a single prompt and returns the raw model text.
type generateFunc func(ctx context.Context, prompt string) (string, error)

type GeminiAdvisor struct {
	generate generateFunc
	model    string
	logger   *zap.Logger
}

var _ interfaces.INegotiationAdvisor = (*GeminiAdvisor)(nil)

func NewGeminiAdvisor(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiAdvisor, error) {
	logger = logging.OrNop(logger)
	if apiKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	logger.Info("[advisory][gemini] client initialized", zap.String("model", model))

	temp := float32(0.3)
	cfg := &genai.GenerateContentConfig{
		Temperature:      &temp,
		MaxOutputTokens:  1024,
		ResponseMIMEType: "application/json",
	}

	generate := func(ctx context.Context, prompt string) (string, error) {
		res, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
		if err != nil {
			return "", fmt.Errorf("gemini generate content: %w", err)
		}
		return res.Text(), nil
	}

	return &GeminiAdvisor{generate: generate, model: model, logger: logger}, nil
}

func (a *GeminiAdvisor) Suggest(ctx context.Context, req interfaces.AdvisoryRequest) (interfaces.AdvisorySuggestion, error) {
	text, err := a.generate(ctx, buildPrompt(req))
	if err != nil {
		a.logger.Warn("[advisory][gemini] generate failed", zap.String("negotiation_id", req.Negotiation.ID), zap.Error(err))
		return interfaces.AdvisorySuggestion{}, err
	}

	s, err := parseAdvice(text)
	if err != nil {
		a.logger.Warn("[advisory][gemini] unusable response",
			zap.String("negotiation_id", req.Negotiation.ID),
			zap.Int("response_len", len(text)),
			zap.Error(err),
		)
		return interfaces.AdvisorySuggestion{}, err
	}
	a.logger.Debug("[advisory][gemini] suggestion ready", zap.String("negotiation_id", req.Negotiation.ID), zap.Float64("confidence", s.Confidence))
	return s, nil
}
