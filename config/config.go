package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	CORS_ORIGIN string
	JWT_SECRET  string
	UPLOAD_DIR  string

	ADMIN_EMAIL         string
	ADMIN_PASSWORD_HASH string
)

// UploadConfig carries the image upload limits so they travel with the
// handler and the store instead of being read from the environment at
// the point of use.
type UploadConfig struct {
	Dir           string
	MaxImageBytes int64
	AllowedExts   []string
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	JWT_SECRET = getEnv("JWT_SECRET", "")
	UPLOAD_DIR = getEnv("UPLOAD_DIR", "public/uploads/blogs")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD_HASH = getEnv("ADMIN_PASSWORD_HASH", "")
}

// Upload returns the active upload limits: 2MB max, the usual web image types.
func Upload() UploadConfig {
	return UploadConfig{
		Dir:           UPLOAD_DIR,
		MaxImageBytes: 2 << 20,
		AllowedExts:   []string{"jpeg", "png", "jpg", "gif"},
	}
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
