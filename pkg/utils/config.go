package utils

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig is the display/metadata surface plus feature toggles. None of it
// changes query or fallback behavior.
type AppConfig struct {
	Name        string
	Description string
	URL         string
	Features    Features
}

type Features struct {
	AIChat         bool `json:"aiChat"`
	CardComparison bool `json:"cardComparison"`
	PriceHistory   bool `json:"priceHistory"`
	UserReviews    bool `json:"userReviews"`
}

// AllFeatures has every toggle on.
func AllFeatures() Features {
	return Features{AIChat: true, CardComparison: true, PriceHistory: true, UserReviews: true}
}

func LoadAppConfig() AppConfig {
	return AppConfig{
		Name:        envString("CARDCOMPARE_APP_NAME", "CardCompare"),
		Description: envString("CARDCOMPARE_APP_DESCRIPTION", "Find and compare the best credit cards across major Indian banks"),
		URL:         envString("CARDCOMPARE_APP_URL", "http://localhost:3000"),
		Features: Features{
			AIChat:         envBool("CARDCOMPARE_FEATURE_AI_CHAT", true),
			CardComparison: envBool("CARDCOMPARE_FEATURE_COMPARISON", true),
			PriceHistory:   envBool("CARDCOMPARE_FEATURE_PRICE_HISTORY", true),
			UserReviews:    envBool("CARDCOMPARE_FEATURE_USER_REVIEWS", true),
		},
	}
}

type ServerConfig struct {
	HTTPAddr string
	GRPCAddr string // empty disables the embedded gRPC listener
	Catalog  string // catalog source, embedded data when empty
	LogMode  string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		HTTPAddr: envString("CARDCOMPARE_HTTP_ADDR", ":8080"),
		GRPCAddr: LoadGrpcConfig().Addr,
		Catalog:  strings.TrimSpace(os.Getenv("CARDCOMPARE_CATALOG")),
		LogMode:  envString("CARDCOMPARE_LOG_MODE", "dev"),
	}
}

type GrpcConfig struct {
	Addr string
}

func LoadGrpcConfig() GrpcConfig {
	addr := envString("CARDCOMPARE_GRPC_ADDR", ":9090")
	if strings.EqualFold(addr, "off") {
		addr = ""
	}
	return GrpcConfig{Addr: addr}
}

// GenerationConfig selects and configures the external text-generation
// provider. Keys come only from the environment; an empty key disables
// that provider.
type GenerationConfig struct {
	Provider string // openai, gemini, none, auto
	Timeout  time.Duration

	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string

	GeminiKey   string
	GeminiModel string
}

func LoadGenerationConfig() GenerationConfig {
	secs := envInt("CARDCOMPARE_GENERATION_TIMEOUT_SECONDS", 5)
	if secs <= 0 {
		secs = 5
	}
	return GenerationConfig{
		Provider:      strings.ToLower(envString("CARDCOMPARE_LLM_PROVIDER", "auto")),
		Timeout:       time.Duration(secs) * time.Second,
		OpenAIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: envString("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIModel:   envString("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   envString("GEMINI_MODEL", "gemini-2.0-flash"),
	}
}

type CacheConfig struct {
	RedisAddr string // empty disables the summary cache
	TTL       time.Duration
}

func LoadCacheConfig() CacheConfig {
	mins := envInt("CARDCOMPARE_REDIS_TTL_MINUTES", 1440)
	if mins <= 0 {
		mins = 1440
	}
	return CacheConfig{
		RedisAddr: strings.TrimSpace(os.Getenv("CARDCOMPARE_REDIS_ADDR")),
		TTL:       time.Duration(mins) * time.Minute,
	}
}

func envString(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func envBool(name string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
