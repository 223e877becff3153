package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// OpenRouter
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string

	// Chat sampling — low temperature and a short token ceiling keep the
	// persona's answers consistent and concise.
	ChatTemperature float64
	ChatMaxTokens   int

	// Upstream call deadline in seconds.
	UpstreamTimeout int

	// Persona
	KnowledgePath   string
	RefusalSentence string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  getEnvOrDefault("ENV", "development"),

		// The API key is deliberately NOT required at startup: its absence
		// is reported as a 500 on every chat request until fixed.
		OpenRouterAPIKey:  getEnvOrDefault("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL: getEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:   getEnvOrDefault("OPENROUTER_MODEL", "mistralai/mistral-7b-instruct"),

		ChatTemperature: getEnvAsFloatOrDefault("CHAT_TEMPERATURE", 0.3),
		ChatMaxTokens:   getEnvAsIntOrDefault("CHAT_MAX_TOKENS", 220),

		UpstreamTimeout: getEnvAsIntOrDefault("UPSTREAM_TIMEOUT_SECONDS", 30),

		KnowledgePath:   getEnvOrDefault("KNOWLEDGE_PATH", ""),
		RefusalSentence: getEnvOrDefault("REFUSAL_SENTENCE", ""),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
