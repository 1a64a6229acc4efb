package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds environment-driven configuration.
type Config struct {
	GitHub struct {
		Token      string
		ProjectID  string
		GraphQLURL string // default: https://api.github.com/graphql
	}
	Chart struct {
		Dir string // default: burndown_charts
	}
	MySQL struct {
		DSN string // optional; enables the card snapshot sink
	}
	HTTP struct {
		Addr string // default: :8080 (serve mode only)
	}
}

// Load reads configuration from environment variables. A .env file in the
// working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config

	cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	if cfg.GitHub.Token == "" {
		return cfg, errors.New("GITHUB_TOKEN is required")
	}
	cfg.GitHub.ProjectID = os.Getenv("PROJECT_ID")
	if cfg.GitHub.ProjectID == "" {
		return cfg, errors.New("PROJECT_ID is required")
	}
	cfg.GitHub.GraphQLURL = os.Getenv("GITHUB_GRAPHQL_URL")
	if cfg.GitHub.GraphQLURL == "" {
		cfg.GitHub.GraphQLURL = "https://api.github.com/graphql"
	}

	cfg.Chart.Dir = os.Getenv("CHART_DIR")
	if cfg.Chart.Dir == "" {
		cfg.Chart.Dir = "burndown_charts"
	}

	cfg.MySQL.DSN = os.Getenv("MYSQL_DSN")

	cfg.HTTP.Addr = os.Getenv("HTTP_ADDR")
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}

	return cfg, nil
}
