// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume   string `json:"resume,omitempty"`    // Path to resume text file
	Job      string `json:"job,omitempty"`       // Path to job posting text file
	JobURL   string `json:"job_url,omitempty"`   // URL to fetch job posting from
	JobsFile string `json:"jobs_file,omitempty"` // Path to JSON file with multiple jobs for batch matching

	// Matching
	TargetLevel string  `json:"target_level,omitempty"` // Experience level override (entry, mid, senior)
	ATSScore    float64 `json:"ats_score,omitempty"`    // Precomputed ATS score (0-100); zero means compute it

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key for embeddings
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information

	// Server
	Port int `json:"port,omitempty"` // HTTP server port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	if c.Job != "" && c.JobsFile != "" {
		return fmt.Errorf("config error: 'job' and 'jobs_file' are mutually exclusive")
	}
	if c.JobURL != "" && c.JobsFile != "" {
		return fmt.Errorf("config error: 'job_url' and 'jobs_file' are mutually exclusive")
	}

	// Validate enumerations
	if c.TargetLevel != "" {
		switch c.TargetLevel {
		case "entry", "mid", "senior":
		default:
			return fmt.Errorf("config error: 'target_level' must be one of entry, mid, senior")
		}
	}

	// Validate numeric ranges
	if c.ATSScore < 0 || c.ATSScore > 100 {
		return fmt.Errorf("config error: 'ats_score' must be between 0 and 100")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	if c.JobsFile != "" {
		if _, err := os.Stat(c.JobsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.JobsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.JobsFile == "" {
		result.JobsFile = defaults.JobsFile
	}
	if result.TargetLevel == "" {
		result.TargetLevel = defaults.TargetLevel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Numeric fields: use default if zero
	if result.ATSScore == 0 {
		result.ATSScore = defaults.ATSScore
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
