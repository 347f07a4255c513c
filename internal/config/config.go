package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup. It is built once in
// main and passed down explicitly instead of being read from the environment
// all over the place.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	AppPort string

	// UploadDir is where image files live on disk; PublicBaseURL is the
	// URL prefix clients use to fetch them (e.g. http://host/uploads/images).
	UploadDir     string
	PublicBaseURL string
}

// Load reads .env (from the current dir and a couple of parents, so running
// from cmd/server also works) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	cfg := Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getenvDefault("DB_PORT", "5432"),
		AppPort:       getenvDefault("APP_PORT", "3013"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
	}

	for _, kv := range []struct{ key, val string }{
		{"DB_HOST", cfg.DBHost},
		{"DB_USER", cfg.DBUser},
		{"DB_PASSWORD", cfg.DBPassword},
		{"DB_NAME", cfg.DBName},
		{"UPLOAD_DIR", cfg.UploadDir},
		{"PUBLIC_BASE_URL", cfg.PublicBaseURL},
	} {
		if kv.val == "" {
			return Config{}, fmt.Errorf("config: %s is empty (check your .env)", kv.key)
		}
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
