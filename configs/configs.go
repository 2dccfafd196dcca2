package configs

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kohaku-dl/fantia-novel-dl/constants"
	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
)

const (
	cookiePlaceholder = "Please paste the Cookie string copied from your browser here"
	csrfPlaceholder   = "Please paste the X-Csrf-Token copied from your browser here"
)

// AuthConfig holds the session credentials obtained
// externally from a logged-in browser session.
type AuthConfig struct {
	UserAgent string `yaml:"user_agent"`
	Cookie    string `yaml:"cookie"`
	CsrfToken string `yaml:"x_csrf_token"`
}

// SettingsConfig holds the run-level download settings.
type SettingsConfig struct {
	// DownloadScope filters posts by their paid/free
	// classification. One of "all", "paid" or "free".
	DownloadScope string `yaml:"download_scope"`

	// RootOutputDir is the base directory for all saved posts.
	RootOutputDir string `yaml:"root_output_dir"`

	// RequestDelay is the spacing in seconds between consecutive network calls.
	RequestDelay float64 `yaml:"request_delay"`
}

type Config struct {
	Authentication AuthConfig     `yaml:"authentication"`
	Settings       SettingsConfig `yaml:"settings"`
}

func DefaultConfig() *Config {
	return &Config{
		Authentication: AuthConfig{
			UserAgent: constants.DEFAULT_USER_AGENT,
			Cookie:    cookiePlaceholder,
			CsrfToken: csrfPlaceholder,
		},
		Settings: SettingsConfig{
			DownloadScope: constants.SCOPE_ALL,
			RootOutputDir: constants.DEFAULT_OUTPUT_DIR,
			RequestDelay:  constants.DEFAULT_REQUEST_DELAY,
		},
	}
}

// CreateDefaultConfigFile writes a config template to the given
// path for the user to fill in their session credentials.
func CreateDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to marshal default config, more info => %w",
			fnderrors.UNEXPECTED_ERROR,
			err,
		)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf(
			"error %d: failed to write config template to %s, more info => %w",
			fnderrors.OS_ERROR,
			path,
			err,
		)
	}
	return nil
}

// LoadConfigFile reads and parses the config file at the given path.
//
// If the file does not exist, a template is written to the path and
// os.ErrNotExist is returned so that the caller can instruct
// the user to fill it in and rerun.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if writeErr := CreateDefaultConfigFile(path); writeErr != nil {
				return nil, writeErr
			}
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf(
			"error %d: failed to read config file at %s, more info => %w",
			fnderrors.OS_ERROR,
			path,
			err,
		)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to parse config file at %s, more info => %w",
			fnderrors.INPUT_ERROR,
			path,
			err,
		)
	}

	config.loadFromEnv()
	return config, nil
}

// loadFromEnv overrides the session credentials with environment
// variables, loading a .env file first if one is present.
func (c *Config) loadFromEnv() {
	godotenv.Load()

	if cookie := os.Getenv("FANTIA_DL_COOKIE"); cookie != "" {
		c.Authentication.Cookie = cookie
	}
	if csrfToken := os.Getenv("FANTIA_DL_CSRF_TOKEN"); csrfToken != "" {
		c.Authentication.CsrfToken = csrfToken
	}
	if userAgent := os.Getenv("FANTIA_DL_USER_AGENT"); userAgent != "" {
		c.Authentication.UserAgent = userAgent
	}
}

func isPlaceholder(value string) bool {
	return value == "" || strings.HasPrefix(value, "Please paste")
}

// Validate checks the loaded config before any network activity.
func (c *Config) Validate() error {
	if isPlaceholder(c.Authentication.Cookie) || isPlaceholder(c.Authentication.CsrfToken) {
		return fmt.Errorf(
			"error %d: cookie or x_csrf_token is not set in %s",
			fnderrors.INPUT_ERROR,
			constants.CONFIG_FILE_NAME,
		)
	}

	c.Settings.DownloadScope = strings.ToLower(c.Settings.DownloadScope)
	switch c.Settings.DownloadScope {
	case constants.SCOPE_ALL, constants.SCOPE_PAID, constants.SCOPE_FREE:
	default:
		return fmt.Errorf(
			"error %d: invalid download_scope %q, must be one of %q, %q or %q",
			fnderrors.INPUT_ERROR,
			c.Settings.DownloadScope,
			constants.SCOPE_ALL,
			constants.SCOPE_PAID,
			constants.SCOPE_FREE,
		)
	}

	if c.Authentication.UserAgent == "" {
		c.Authentication.UserAgent = constants.DEFAULT_USER_AGENT
	}
	if c.Settings.RootOutputDir == "" {
		c.Settings.RootOutputDir = constants.DEFAULT_OUTPUT_DIR
	}
	if c.Settings.RequestDelay <= 0 {
		c.Settings.RequestDelay = constants.DEFAULT_REQUEST_DELAY
	}
	return nil
}
