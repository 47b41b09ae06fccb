package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"cardcompare/internal/cards"
	"cardcompare/pkg/logger"
	"cardcompare/pkg/models"
)

const (
	DefaultTimeout = 5 * time.Second

	// chatContextCards bounds how many search matches are sent as prompt context.
	chatContextCards = 10
)

var tracer = otel.Tracer("cardcompare/internal/assistant")

// Service wraps a Generator with a time box and deterministic fallbacks.
// Every method returns usable text; generation errors are logged and
// replaced, never returned.
type Service struct {
	Gen     Generator
	Cache   Cache // optional
	Timeout time.Duration
	Log     *logger.Logger
}

func NewService(gen Generator, cache Cache, timeout time.Duration, log *logger.Logger) *Service {
	if gen == nil {
		gen = Disabled()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{Gen: gen, Cache: cache, Timeout: timeout, Log: logger.OrNop(log)}
}

// Summary returns a narrative for card: cached or generated text when
// available, RenderSummary otherwise.
func (s *Service) Summary(ctx context.Context, card models.Card) string {
	key, keyErr := SummaryKey(card)
	if s.Cache != nil && keyErr == nil {
		if v, ok, err := s.Cache.Get(ctx, key); err != nil {
			s.Log.Warn("summary cache get failed", "op", "summary", "error", err)
		} else if ok {
			return v
		}
	}

	text, err := s.generate(ctx, "summary", summarySystemPrompt, summaryPrompt(card))
	if err != nil {
		return RenderSummary(card)
	}

	if s.Cache != nil && keyErr == nil {
		if err := s.Cache.Set(ctx, key, text); err != nil {
			s.Log.Warn("summary cache set failed", "op", "summary", "error", err)
		}
	}
	return text
}

// ChatAnswer returns the advisor text for message given the search matches.
func (s *Service) ChatAnswer(ctx context.Context, message string, matches []models.Card) string {
	ctxCards := matches
	if len(ctxCards) > chatContextCards {
		ctxCards = ctxCards[:chatContextCards]
	}
	system, err := chatSystemPrompt(ctxCards)
	if err != nil {
		s.Log.Warn("chat prompt build failed", "op", "chat", "error", err)
		return ChatFallbackText(message, len(matches))
	}

	text, err := s.generate(ctx, "chat", system, chatPrompt(message))
	if err != nil {
		return ChatFallbackText(message, len(matches))
	}
	return text
}

// PriceTrend analyses the card's fee history. Fewer than two entries yield
// InsufficientHistory without calling the generator.
func (s *Service) PriceTrend(ctx context.Context, card models.Card) string {
	if len(card.PriceHistory) < 2 {
		return InsufficientHistory
	}
	text, err := s.generate(ctx, "price_trend", trendSystemPrompt, trendPrompt(card))
	if err != nil {
		if fallback := cards.DescribeTrend(card.PriceHistory); fallback != "" {
			return fallback
		}
		return TrendUnavailable
	}
	return text
}

// generate makes one time-boxed attempt. There is no retry.
func (s *Service) generate(ctx context.Context, op, system, user string) (string, error) {
	ctx, span := tracer.Start(ctx, "assistant."+op)
	defer span.End()
	span.SetAttributes(attribute.String("generation.provider", s.Gen.Name()))

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	start := time.Now()
	text, err := s.Gen.GenerateText(ctx, system, user)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("empty generation")
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		if errors.Is(err, ErrGenerationDisabled) {
			s.Log.Debug("generation disabled, using fallback", "op", op)
		} else {
			s.Log.Warn("generation failed, using fallback",
				"op", op,
				"provider", s.Gen.Name(),
				"duration_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
		}
		return "", err
	}
	return strings.TrimSpace(text), nil
}

const summarySystemPrompt = "You are a credit card expert specializing in Indian banking products. Generate comprehensive, helpful summaries that highlight key benefits, ideal user profiles, and unique selling points."

func summaryPrompt(card models.Card) string {
	changes := "No recent changes"
	if n := len(card.PriceHistory); n > 0 {
		changes = fmt.Sprintf("Annual fee was %s and is now %s", card.PriceHistory[n-1].AnnualFee, card.AnnualFee)
	}
	var b strings.Builder
	b.WriteString("Generate a detailed 3-4 sentence summary for this Indian credit card:\n\n")
	fmt.Fprintf(&b, "Card: %s by %s\n", card.Name, card.Bank)
	fmt.Fprintf(&b, "Annual Fee: %s\n", card.AnnualFee)
	fmt.Fprintf(&b, "Rewards: %s\n", card.RewardsRate)
	fmt.Fprintf(&b, "Welcome Bonus: %s\n", card.WelcomeBonus)
	fmt.Fprintf(&b, "Key Benefits: %s\n", strings.Join(card.Benefits, ", "))
	fmt.Fprintf(&b, "Tags: %s\n", strings.Join(card.Tags, ", "))
	fmt.Fprintf(&b, "Bank-Specific Benefits: %s\n\n", strings.Join(card.BankSpecificBenefits, ", "))
	fmt.Fprintf(&b, "Recent Price Changes: %s\n\n", changes)
	b.WriteString("Focus on who this card is best suited for, its standout benefits, its value against competitors, recent changes and bank ecosystem benefits.")
	return b.String()
}

func chatSystemPrompt(ctxCards []models.Card) (string, error) {
	data, err := json.MarshalIndent(ctxCards, "", "  ")
	if err != nil {
		return "", err
	}
	return "You are a helpful credit card advisor for Indian banks. You help users find the best credit cards based on their needs.\n\n" +
		"Available credit cards data:\n" + string(data) + "\n\n" +
		"Guidelines:\n" +
		"- Provide accurate information and explain benefits clearly\n" +
		"- Recommend specific cards by name when appropriate\n" +
		"- Consider the user's spending patterns and preferences\n" +
		"- Be concise and focus on the Indian credit card market\n" +
		"If the user asks for comparisons, provide detailed comparisons.", nil
}

func chatPrompt(message string) string {
	return fmt.Sprintf("User query: %q\n\nPlease provide a helpful response about credit cards. If specific cards match the user's requirements, mention them by name.", message)
}

const trendSystemPrompt = "You are a financial analyst specializing in credit card pricing trends. Analyze price history data and provide insights."

func trendPrompt(card models.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the price history for %s and provide insights:\n\nPrice History:\n", card.Name)
	for _, h := range card.PriceHistory {
		fmt.Fprintf(&b, "%s: %s, Welcome Bonus: %s, Changes: %s\n", h.Date, h.AnnualFee, h.WelcomeBonus, strings.Join(h.Changes, ", "))
	}
	b.WriteString("\nProvide a 2-3 sentence analysis covering the overall pricing trend, value proposition changes and timing advice for applicants. Be concise and actionable.")
	return b.String()
}
