package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: "9090"
database:
  driver: postgres
  host: db
  port: "5432"
  user: quiz
  password: quiz
  dbname: mathquiz
quiz:
  min_grade: 1
  max_grade: 12
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "mathquiz", cfg.Database.Name)
	assert.Equal(t, 12, cfg.Quiz.MaxGrade)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server: {}\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./data/mathquiz.db", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Quiz.MinGrade)
	assert.Equal(t, 12, cfg.Quiz.MaxGrade)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
