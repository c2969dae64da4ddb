package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DataBackend string
	SupabaseURL string
	SupabaseKey string
	SQLitePath  string
	HTTPTimeout time.Duration
	LogLevel    slog.Level
}

func FromEnv() Config {
	// .env is optional; deployments usually set the environment directly.
	_ = godotenv.Load()

	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	return Config{
		Port:        envOr("PORT", "10000"),
		DataBackend: envOr("DATA_BACKEND", "postgrest"),
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
		SQLitePath:  envOr("SQLITE_DB_PATH", "./data/influence.db"),
		HTTPTimeout: to,
		LogLevel:    lvl,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
