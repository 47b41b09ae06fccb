package assistant

import (
	"context"
	"errors"
	"fmt"

	"cardcompare/pkg/logger"
	"cardcompare/pkg/utils"
)

// ErrGenerationDisabled is returned when no text-generation provider is
// configured. Callers treat it like any other generation failure.
var ErrGenerationDisabled = errors.New("text generation disabled")

// Generator produces free text from a system and a user prompt.
type Generator interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
	Name() string
}

type disabled struct{}

func (disabled) GenerateText(context.Context, string, string) (string, error) {
	return "", ErrGenerationDisabled
}

func (disabled) Name() string { return "none" }

// Disabled returns a Generator that always fails with ErrGenerationDisabled.
func Disabled() Generator { return disabled{} }

// NewGenerator picks a provider from cfg. A missing key never fails startup:
// the result is the disabled generator and every answer uses the fallback.
func NewGenerator(ctx context.Context, cfg utils.GenerationConfig, log *logger.Logger) (Generator, error) {
	log = logger.OrNop(log)

	switch cfg.Provider {
	case "none", "off":
		return Disabled(), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			log.Warn("openai selected but OPENAI_API_KEY is empty, generation disabled")
			return Disabled(), nil
		}
		return NewOpenAI(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, nil), nil
	case "gemini":
		if cfg.GeminiKey == "" {
			log.Warn("gemini selected but GEMINI_API_KEY is empty, generation disabled")
			return Disabled(), nil
		}
		return NewGemini(ctx, cfg.GeminiKey, cfg.GeminiModel)
	case "", "auto":
		switch {
		case cfg.OpenAIKey != "":
			return NewOpenAI(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, nil), nil
		case cfg.GeminiKey != "":
			return NewGemini(ctx, cfg.GeminiKey, cfg.GeminiModel)
		}
		log.Info("no generation credentials found, using deterministic fallbacks")
		return Disabled(), nil
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.Provider)
	}
}
