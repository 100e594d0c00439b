package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	LogMode string

	// Which engine serves generation requests: "gemini" (default) or "openai".
	LLMName string

	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	// Generation client resilience knobs.
	MaxRetries int
	RetryDelay time.Duration
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// Load reads configuration from the environment (with .env support).
// API keys are optional here: a missing key makes the generation client
// report service-unavailable instead of aborting startup.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:    getEnv("PORT", "8000"),
		LogMode: getEnv("LOG_MODE", "dev"),

		LLMName: getEnv("COACH_LLM", "gemini"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		MaxRetries: getEnvInt("GEN_MAX_RETRIES", 3),
		RetryDelay: time.Duration(getEnvInt("GEN_RETRY_DELAY_MS", 1000)) * time.Millisecond,
	}
}
