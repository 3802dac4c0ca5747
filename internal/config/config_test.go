package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_HISTORY_SIZE", "25", 50, 25},
		{"uses default for empty", "TEST_HISTORY_TTL", "", 3600, 3600},
		{"uses default for non-numeric", "TEST_BAD_INT", "lots", 50, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required env var")
		}
	}()

	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")
	mustGetEnv("NONEXISTENT_REQUIRED_VAR")
}

func TestLoad_MissingAPIKeyIsAllowed(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost/minichat_test")
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	os.Unsetenv("GOOGLE_API_KEY")
	defer os.Unsetenv("DATABASE_URL")
	defer os.Unsetenv("REDIS_URL")

	cfg := Load()
	if cfg.GoogleAPIKey != "" {
		t.Errorf("Expected empty API key, got %q", cfg.GoogleAPIKey)
	}
	if cfg.Port != "8000" {
		t.Errorf("Expected default port 8000, got %q", cfg.Port)
	}
}
