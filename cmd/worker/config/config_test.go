package config

import (
	"os"
	"testing"
)

func TestDefaultWorkerID(t *testing.T) {
	id := defaultWorkerID()
	if id == "" {
		t.Error("defaultWorkerID() returned empty string")
	}

	if host, err := os.Hostname(); err == nil && host != "" {
		if id != host {
			t.Errorf("defaultWorkerID() = %q, want hostname %q", id, host)
		}
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		envValue     string
		setEnv       bool
		defaultValue string
		expected     string
	}{
		{
			name:         "environment variable set",
			key:          "TEST_WORKER_VAR",
			envValue:     "agent-1",
			setEnv:       true,
			defaultValue: "default",
			expected:     "agent-1",
		},
		{
			name:         "environment variable not set",
			key:          "TEST_WORKER_VAR_UNSET",
			setEnv:       false,
			defaultValue: "default",
			expected:     "default",
		},
		{
			name:         "environment variable empty",
			key:          "TEST_WORKER_VAR_EMPTY",
			envValue:     "",
			setEnv:       true,
			defaultValue: "default",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			if result != tt.expected {
				t.Errorf("getEnv(%q, %q) = %q, want %q", tt.key, tt.defaultValue, result, tt.expected)
			}
		})
	}
}
