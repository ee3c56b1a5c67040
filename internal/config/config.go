// README: Config loader with env defaults for the store, logger, and Gemini gateway.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DB struct {
		Path string
	}
	Log struct {
		Path string
	}
	AI struct {
		GeminiKey string
		Model     string
	}
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}
	var cfg Config
	cfg.DB.Path = envOrDefault("RAILMADAD_DB_PATH", "railmadad_grievances.db")
	cfg.Log.Path = envOrDefault("RAILMADAD_LOG_PATH", "railmadad.log")
	cfg.AI.Model = envOrDefault("RAILMADAD_GEMINI_MODEL", "gemini-2.0-flash")
	// Validated where the gateway is constructed; list-only runs don't need it.
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
