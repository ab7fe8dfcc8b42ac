package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

type Config struct {
	CompletionsAPIURL string
	CompletionsAPIKey string
	CompletionsModel  string
	RephraseModel     string

	RedisAddr string
	DBPath    string

	RetrievalURL     string
	RetrievalTopK    int
	RetrievalTimeout time.Duration

	GenerationTimeout time.Duration

	ContextTTL            time.Duration
	MaxHistory            int
	HistoryCharCap        int
	AdditionKeywordMinLen int

	HTTPPort string
	NatsPort int
}

func getEnv(key, defaultValue string, printEnv bool) string {
	logger := log.Default()
	value := os.Getenv(key)
	if printEnv {
		logger.Info("Env", "key", key, "value", value)
	}
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int, printEnv bool) int {
	raw := getEnv(key, "", printEnv)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Default().Warn("Invalid integer env, using default", "key", key, "value", raw)
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration, printEnv bool) time.Duration {
	raw := getEnv(key, "", printEnv)
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Default().Warn("Invalid duration env, using default", "key", key, "value", raw)
		return defaultValue
	}
	return value
}

func LoadConfig(printEnv bool) (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{
		CompletionsAPIURL: getEnv("COMPLETIONS_API_URL", "https://api.openai.com/v1", printEnv),
		CompletionsAPIKey: getEnv("COMPLETIONS_API_KEY", "", printEnv),
		CompletionsModel:  getEnv("COMPLETIONS_MODEL", "gpt-4o-mini", printEnv),
		RephraseModel:     getEnv("REPHRASE_MODEL", "gpt-4o-mini", printEnv),

		RedisAddr: getEnv("REDIS_ADDR", "", printEnv),
		DBPath:    getEnv("DB_PATH", "./output/sqlite/servvia.db", printEnv),

		RetrievalURL:     getEnv("RETRIEVAL_URL", "", printEnv),
		RetrievalTopK:    getEnvInt("RETRIEVAL_TOP_K", 10, printEnv),
		RetrievalTimeout: getEnvDuration("RETRIEVAL_TIMEOUT", 15*time.Second, printEnv),

		GenerationTimeout: getEnvDuration("GENERATION_TIMEOUT", 60*time.Second, printEnv),

		ContextTTL:            getEnvDuration("CONTEXT_TTL", 2*time.Hour, printEnv),
		MaxHistory:            getEnvInt("MAX_HISTORY", 20, printEnv),
		HistoryCharCap:        getEnvInt("HISTORY_CHAR_CAP", 500, printEnv),
		AdditionKeywordMinLen: getEnvInt("ADDITION_KEYWORD_MIN_LEN", 3, printEnv),

		HTTPPort: getEnv("HTTP_PORT", "8080", printEnv),
		NatsPort: getEnvInt("NATS_PORT", 4222, printEnv),
	}

	return conf, nil
}
