package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_scorer binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_scorer"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// envWithoutAPIKey returns the current environment with GEMINI_API_KEY
// removed, so commands under test deterministically take the rule-based
// fallback paths.
func envWithoutAPIKey() []string {
	var env []string
	for _, e := range os.Environ() {
		if len(e) >= len("GEMINI_API_KEY=") && e[:len("GEMINI_API_KEY=")] == "GEMINI_API_KEY=" {
			continue
		}
		env = append(env, e)
	}
	return env
}
