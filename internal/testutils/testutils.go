package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/nfrund/goby-db/internal/config"
)

// ConfigForTests loads the .env.test file, when present, and returns a
// config.Provider for integration tests. It skips the test in short mode
// or when no SurrealDB instance is configured.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	if env, err := godotenv.Read(filepath.Join(ProjectRoot(t), ".env.test")); err == nil {
		for key, value := range env {
			t.Setenv(key, value)
		}
	}

	cfg := config.FromEnv()
	if err := cfg.RequireDB(); err != nil {
		t.Skipf("no test database configured: %v", err)
	}
	return cfg
}

// ProjectRoot walks up from the working directory to the directory holding go.mod.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}
}
