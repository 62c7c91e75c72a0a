package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lojasmm/rowkit/internal/discord"
)

type Config struct {
	PublicKey string
	AppID     string
	BotToken  string
	APIBase   string

	Port       string
	DataDir    string
	DraftsFile string
	LogLevel   string
	RatePerMin int
}

func Load() (*Config, error) {
	// .env is optional; in production the vars are already set
	_ = godotenv.Load()

	cfg := &Config{
		PublicKey:  os.Getenv("DISCORD_PUBLIC_KEY"),
		AppID:      os.Getenv("DISCORD_APP_ID"),
		BotToken:   os.Getenv("DISCORD_BOT_TOKEN"),
		APIBase:    os.Getenv("DISCORD_API_BASE"),
		Port:       os.Getenv("PORT"),
		DataDir:    os.Getenv("DATA_DIR"),
		DraftsFile: os.Getenv("DRAFTS_FILE"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}

	if cfg.APIBase == "" {
		cfg.APIBase = discord.DefaultAPIBase
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}

	rate, err := parseIntEnv("RATE_LIMIT_PER_MINUTE", 120)
	if err != nil {
		return nil, err
	}
	if rate <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", rate)
	}
	cfg.RatePerMin = rate

	for _, req := range []struct {
		name, val string
	}{
		{"DISCORD_PUBLIC_KEY", cfg.PublicKey},
		{"DISCORD_APP_ID", cfg.AppID},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("required env var %s is not set", req.name)
		}
	}

	return cfg, nil
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("env var %s: %w", key, err)
	}
	return v, nil
}
