package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	DBPath     string // SQLite database file
	Port       string // HTTP listen port
	UploadsDir string // attachment storage root
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using environment variables")
	}
	return &Config{
		DBPath:     getenv("PULSEHIRE_DB", "pulsehire.db"),
		Port:       getenv("PORT", "8080"),
		UploadsDir: getenv("UPLOADS_DIR", "./uploads"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
