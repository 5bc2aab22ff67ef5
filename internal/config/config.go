package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI     string
	DBName       string
	APIVersion   string
	BackendToken string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
	SessionTTL        time.Duration

	ImportBaseURL string
}

// Load reads .env (if present) and fills AppEnv. The backend client values
// and the login gate values are required; a missing one aborts startup.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:     mustEnv("MONGO_URI"),
		DBName:       mustEnv("DB_NAME"),
		APIVersion:   mustEnv("API_VERSION"),
		BackendToken: mustEnv("BACKEND_TOKEN"),

		JWTSecret:         mustEnv("JWT_SECRET"),
		AdminUsername:     mustEnv("ADMIN_USERNAME"),
		AdminPasswordHash: mustEnv("ADMIN_PASSWORD_HASH"),
		SessionTTL:        getDurationEnv("SESSION_TTL", 87600, time.Hour),

		ImportBaseURL: getEnvOrDefault("IMPORT_BASE_URL", "https://sanity-nextjs-rouge.vercel.app"),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		log.Fatalf("ENV %s is required", key)
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
