// Package config provides configuration management for Asisten.
// It loads settings from environment variables with the ASISTEN_ prefix
// and provides sensible defaults for all configuration options.
//
// The similarity thresholds are empirical constants carried over from the
// tuned deployment; they are exposed as configuration rather than re-derived.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration settings for the Asisten engine.
type Config struct {
	LLM        LLMConfig
	Embedding  EmbeddingConfig
	Classifier ClassifierConfig
	Session    SessionConfig
	Search     SearchConfig
	Translate  TranslateConfig
	Retrieval  RetrievalConfig
	Profile    ProfileConfig
	BanksPath  string // Optional YAML file overriding the compiled-in phrase banks
}

// LLMConfig contains completion-service provider configuration.
type LLMConfig struct {
	Provider    string  // LLM provider: ollama, openai (default: ollama)
	OllamaURL   string  // Ollama API URL (default: http://localhost:11434)
	OllamaModel string  // Ollama model name (default: llama3:8b)
	OpenAIKey   string  // OpenAI-compatible API key
	OpenAIModel string  // Model name (default: llama3-8b-8192)
	OpenAIBase  string  // Base URL override, e.g. https://api.groq.com/openai/v1
	Temperature float64 // Sampling temperature (default: 0.3)
}

// EmbeddingConfig contains embedding-model configuration.
type EmbeddingConfig struct {
	// Provider selects the embedder: "ollama" or "lexical". The lexical
	// embedder is a deterministic offline fallback (default: lexical).
	Provider string
	URL      string // Ollama API URL (default: http://localhost:11434)
	Model    string // Embedding model name (default: paraphrase-multilingual)
}

// ClassifierConfig carries the similarity thresholds and boosts used by the
// classification stack. Defaults mirror the tuned production values.
type ClassifierConfig struct {
	IntentThreshold    float64 // Minimum intent similarity (default: 0.55)
	DomainThreshold    float64 // Minimum top-k vote similarity (default: 0.6)
	DomainTopK         int     // Nearest phrases considered in the vote (default: 3)
	DomainBoost        float64 // Affinity boost for the dominant domain (default: 0.05)
	FollowupThreshold  float64 // Follow-up phrase similarity (default: 0.70)
	ResetThreshold     float64 // Reset phrase similarity (default: 0.75)
	FoodGateThreshold  float64 // "Is food-like" vocabulary gate (default: 0.55)
	DefaultLanguage    string  // Language used when detection fails (default: en)
	NormalizeLanguage  string  // Pivot language for classifier input (default: id)
}

// SessionConfig contains session store settings.
type SessionConfig struct {
	TTL time.Duration // Idle time before a record expires (default: 30m)
}

// SearchConfig contains external search provider credentials. An empty key
// disables that provider; both empty disables enrichment entirely.
type SearchConfig struct {
	TavilyAPIKey  string
	SerpAPIKey    string
	MaxResults    int     // Results requested per query (default: 3)
	RatePerSecond float64 // Request rate limit per provider (default: 1)
}

// TranslateConfig contains the translation service endpoint. An empty URL
// disables translation; the original text is then always used.
type TranslateConfig struct {
	URL    string
	APIKey string
}

// RetrievalConfig contains the reference-snippet retrieval backend settings.
type RetrievalConfig struct {
	Backend     string // "memory" or "postgres" (default: memory)
	PostgresDSN string // DSN for the pgvector-backed backend
	TopK        int    // Snippets retrieved per query (default: 5)
}

// ProfileConfig contains the user preference store settings.
type ProfileConfig struct {
	Path string // SQLite database path (default: ./data/profile.db)
}

// LoadConfig loads configuration from environment variables with sensible
// defaults. All environment variables use the ASISTEN_ prefix.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		LLM: LLMConfig{
			Provider:    getEnv("ASISTEN_LLM_PROVIDER", "ollama"),
			OllamaURL:   getEnv("ASISTEN_OLLAMA_URL", "http://localhost:11434"),
			OllamaModel: getEnv("ASISTEN_OLLAMA_MODEL", "llama3:8b"),
			OpenAIKey:   getEnv("ASISTEN_OPENAI_API_KEY", ""),
			OpenAIModel: getEnv("ASISTEN_OPENAI_MODEL", "llama3-8b-8192"),
			OpenAIBase:  getEnv("ASISTEN_OPENAI_BASE_URL", ""),
			Temperature: getEnvFloat("ASISTEN_LLM_TEMPERATURE", 0.3),
		},
		Embedding: EmbeddingConfig{
			Provider: getEnv("ASISTEN_EMBEDDING_PROVIDER", "lexical"),
			URL:      getEnv("ASISTEN_EMBEDDING_URL", "http://localhost:11434"),
			Model:    getEnv("ASISTEN_EMBEDDING_MODEL", "paraphrase-multilingual"),
		},
		Classifier: ClassifierConfig{
			IntentThreshold:   getEnvFloat("ASISTEN_INTENT_THRESHOLD", 0.55),
			DomainThreshold:   getEnvFloat("ASISTEN_DOMAIN_THRESHOLD", 0.6),
			DomainTopK:        getEnvInt("ASISTEN_DOMAIN_TOP_K", 3),
			DomainBoost:       getEnvFloat("ASISTEN_DOMAIN_BOOST", 0.05),
			FollowupThreshold: getEnvFloat("ASISTEN_FOLLOWUP_THRESHOLD", 0.70),
			ResetThreshold:    getEnvFloat("ASISTEN_RESET_THRESHOLD", 0.75),
			FoodGateThreshold: getEnvFloat("ASISTEN_FOOD_GATE_THRESHOLD", 0.55),
			DefaultLanguage:   getEnv("ASISTEN_DEFAULT_LANGUAGE", "en"),
			NormalizeLanguage: getEnv("ASISTEN_NORMALIZE_LANGUAGE", "id"),
		},
		Session: SessionConfig{
			TTL: getEnvDuration("ASISTEN_SESSION_TTL", 30*time.Minute),
		},
		Search: SearchConfig{
			TavilyAPIKey:  getEnv("TAVILY_API_KEY", ""),
			SerpAPIKey:    getEnv("SERP_API_KEY", ""),
			MaxResults:    getEnvInt("ASISTEN_SEARCH_MAX_RESULTS", 3),
			RatePerSecond: getEnvFloat("ASISTEN_SEARCH_RATE", 1),
		},
		Translate: TranslateConfig{
			URL:    getEnv("ASISTEN_TRANSLATE_URL", ""),
			APIKey: getEnv("ASISTEN_TRANSLATE_API_KEY", ""),
		},
		Retrieval: RetrievalConfig{
			Backend:     getEnv("ASISTEN_RETRIEVAL_BACKEND", "memory"),
			PostgresDSN: getEnv("ASISTEN_RETRIEVAL_DSN", ""),
			TopK:        getEnvInt("ASISTEN_RETRIEVAL_TOP_K", 5),
		},
		Profile: ProfileConfig{
			Path: getEnv("ASISTEN_PROFILE_PATH", "./data/profile.db"),
		},
		BanksPath: getEnv("ASISTEN_BANKS_PATH", ""),
	}

	if cfg.Classifier.DomainTopK < 1 {
		return nil, fmt.Errorf("config: domain top-k must be at least 1, got %d", cfg.Classifier.DomainTopK)
	}
	return cfg, nil
}

// getEnv retrieves a string environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default
// value when unset or unparseable.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable. Non-numeric input is
// coerced to the default rather than treated as an error, so a misconfigured
// threshold can never take a turn down.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable ("30m", "1h") or
// returns a default value when unset or unparseable.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
