package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("PROJECT_ID", "PVT_kwTEST")
	t.Setenv("GITHUB_GRAPHQL_URL", "")
	t.Setenv("CHART_DIR", "")
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("HTTP_ADDR", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ghp_test", cfg.GitHub.Token)
	assert.Equal(t, "PVT_kwTEST", cfg.GitHub.ProjectID)
	assert.Equal(t, "https://api.github.com/graphql", cfg.GitHub.GraphQLURL)
	assert.Equal(t, "burndown_charts", cfg.Chart.Dir)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Empty(t, cfg.MySQL.DSN)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("GITHUB_GRAPHQL_URL", "https://ghe.example.com/api/graphql")
	t.Setenv("CHART_DIR", "/tmp/charts")
	t.Setenv("MYSQL_DSN", "user:pass@tcp(db:3306)/reports?parseTime=true")
	t.Setenv("HTTP_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/graphql", cfg.GitHub.GraphQLURL)
	assert.Equal(t, "/tmp/charts", cfg.Chart.Dir)
	assert.Equal(t, "user:pass@tcp(db:3306)/reports?parseTime=true", cfg.MySQL.DSN)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
}

func TestLoad_MissingToken(t *testing.T) {
	setRequired(t)
	t.Setenv("GITHUB_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
}

func TestLoad_MissingProjectID(t *testing.T) {
	setRequired(t)
	t.Setenv("PROJECT_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROJECT_ID")
}
