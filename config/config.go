package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	// Server
	ServerPort string
	ClientUrl  string

	// Content store (GitHub repository holding the study files)
	GithubToken  string
	GithubOwner  string
	GithubRepo   string
	GithubBranch string

	// Identity provider (OAuth). Access tokens are HS256 JWTs signed with this secret.
	AuthJwtSecret string

	// Postgres
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// Optional redis cache backend. Empty means in-memory cache.
	RedisAddr     string
	RedisPassword string
)

// Load reads the .env file if present and populates the config variables
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:5173")

	GithubToken = os.Getenv("GITHUB_PAT")
	GithubOwner = getEnv("GITHUB_OWNER", "TWLS151")
	GithubRepo = getEnv("GITHUB_REPO", "Sootudy")
	GithubBranch = getEnv("GITHUB_BRANCH", "main")

	AuthJwtSecret = os.Getenv("AUTH_JWT_SECRET")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "sootudy")

	RedisAddr = os.Getenv("REDIS_ADDR")
	RedisPassword = os.Getenv("REDIS_PASSWORD")
}

// MutationConfigured reports whether the secrets required for content-store
// mutations are present
func MutationConfigured() bool {
	return GithubToken != "" && AuthJwtSecret != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
