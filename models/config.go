package models

import (
	"net/url"
	"os"
	"time"

	"github.com/rohanthewiz/serr"
)

// ============================================================================
// Signup Configuration
//
// Loads the signup endpoint settings from environment variables once at
// startup. The resulting Config is injected into the Submitter at
// construction — submit-time code never reads the environment, which
// keeps the submitter testable against a stub URL.
// ============================================================================

// Config holds the settings for the signup submitter.
type Config struct {
	BaseURL string        // Base URL of the signup service (SIGNUPFORM_BASE_URL)
	Timeout time.Duration // HTTP timeout per submit attempt (SIGNUPFORM_HTTP_TIMEOUT)
}

// defaultTimeout is used when SIGNUPFORM_HTTP_TIMEOUT is not set.
// 15 seconds is generous for a single small POST while still bounding
// how long the form can sit in the submitting state.
const defaultTimeout = 15 * time.Second

// LoadConfig reads signup configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Timeout: defaultTimeout,
	}

	cfg.BaseURL = os.Getenv("SIGNUPFORM_BASE_URL")

	if timeoutStr := os.Getenv("SIGNUPFORM_HTTP_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, serr.Wrap(err, "invalid SIGNUPFORM_HTTP_TIMEOUT value, expected duration like '15s' or '1m'")
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// Validate checks that the configuration is usable. Called before the
// form starts to fail fast on misconfiguration rather than discovering
// a bad URL on the first submit.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return serr.New("SIGNUPFORM_BASE_URL is required")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return serr.Wrap(err, "SIGNUPFORM_BASE_URL is not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return serr.New("SIGNUPFORM_BASE_URL must use http or https")
	}

	if c.Timeout <= 0 {
		return serr.New("SIGNUPFORM_HTTP_TIMEOUT must be positive")
	}

	return nil
}
