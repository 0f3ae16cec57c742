// Package config provides configuration types, defaults and validation for signup.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/tracing"
)

// DefaultEndpoint is the collaborator that stores registrations.
const DefaultEndpoint = "https://react-form-validation-database.onrender.com/usersDetails"

// hexColor matches #RGB and #RRGGBB.
var hexColor = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// minWidth is the narrowest form that still fits labels, icons and hints.
const minWidth = 40

// Config holds all configuration options for signup.
type Config struct {
	Submit  SubmitConfig   `mapstructure:"submit" yaml:"submit"`
	UI      UIConfig       `mapstructure:"ui" yaml:"ui"`
	Log     LogConfig      `mapstructure:"log" yaml:"log"`
	Tracing tracing.Config `mapstructure:"tracing" yaml:"tracing"`
}

// SubmitConfig controls the registration request.
type SubmitConfig struct {
	Endpoint string        `mapstructure:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"` // 0 disables the timeout
}

// UIConfig holds user interface options.
type UIConfig struct {
	ToastDuration time.Duration `mapstructure:"toast_duration" yaml:"toast_duration"` // 0 keeps toasts until a key dismisses them
	Width         int           `mapstructure:"width" yaml:"width"`
	MarkdownStyle string        `mapstructure:"markdown_style" yaml:"markdown_style"` // "dark" (default) or "light"
	Accent        string        `mapstructure:"accent" yaml:"accent,omitempty"`       // Hex focus color, empty keeps the default
}

// LogConfig controls the debug log.
type LogConfig struct {
	Debug bool   `mapstructure:"debug" yaml:"debug"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Submit: SubmitConfig{
			Endpoint: DefaultEndpoint,
		},
		UI: UIConfig{
			Width:         60,
			MarkdownStyle: "dark",
		},
		Log: LogConfig{
			File: "debug.log",
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// RegisterDefaults seeds v with every default so env vars and flags can
// override individual keys.
func RegisterDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("submit.endpoint", d.Submit.Endpoint)
	v.SetDefault("submit.timeout", d.Submit.Timeout)
	v.SetDefault("ui.toast_duration", d.UI.ToastDuration)
	v.SetDefault("ui.width", d.UI.Width)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.accent", d.UI.Accent)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Tracing.Enabled && cfg.Tracing.Exporter == "file" && cfg.Tracing.FilePath == "" {
		cfg.Tracing.FilePath = DefaultTracesFilePath()
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg for errors.
func Validate(cfg Config) error {
	if err := ValidateSubmit(cfg.Submit); err != nil {
		return err
	}
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateSubmit requires an absolute http(s) endpoint and a non-negative timeout.
func ValidateSubmit(s SubmitConfig) error {
	if s.Endpoint == "" {
		return fmt.Errorf("submit.endpoint is required")
	}
	u, err := url.Parse(s.Endpoint)
	if err != nil {
		return fmt.Errorf("submit.endpoint is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("submit.endpoint must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("submit.endpoint must include a host")
	}
	if s.Timeout < 0 {
		return fmt.Errorf("submit.timeout must not be negative, got %s", s.Timeout)
	}
	return nil
}

// ValidateUI checks user interface options.
func ValidateUI(ui UIConfig) error {
	if ui.ToastDuration < 0 {
		return fmt.Errorf("ui.toast_duration must not be negative, got %s", ui.ToastDuration)
	}
	if ui.Width < minWidth {
		return fmt.Errorf("ui.width must be at least %d, got %d", minWidth, ui.Width)
	}
	switch ui.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
	if ui.Accent != "" && !hexColor.MatchString(ui.Accent) {
		return fmt.Errorf("ui.accent must be a hex color like #3498DB, got %q", ui.Accent)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	switch t.Exporter {
	case "", "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
	}

	if t.Enabled {
		if t.Exporter == "file" && t.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if t.Exporter == "otlp" && t.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}
	return nil
}

// ValidateInteractive rejects settings that would write over the form while
// it owns the terminal.
func ValidateInteractive(cfg Config) error {
	if cfg.Tracing.Enabled && cfg.Tracing.Exporter == "stdout" {
		return fmt.Errorf("tracing.exporter \"stdout\" writes over the form; use \"file\" or \"otlp\"")
	}
	return nil
}

// DefaultTracesFilePath returns ~/.config/signup/traces/traces.jsonl.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".signup", "traces", "traces.jsonl")
	}
	return filepath.Join(home, ".config", "signup", "traces", "traces.jsonl")
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Signup Configuration

# Registration request
submit:
  # Collaborator that stores registrations (POST, JSON body)
  endpoint: ` + DefaultEndpoint + `
  # Request timeout, 0s waits indefinitely
  timeout: 0s

# UI settings
ui:
  toast_duration: 0s    # Auto-dismiss notifications after this long, 0s waits for a key
  width: 60             # Form width in columns (minimum 40)
  markdown_style: dark  # Help screen style: "dark" (default) or "light"
  # accent: "#3498DB"   # Focus color for inputs and the SEND button

# Debug logging (also enabled by --debug or SIGNUP_DEBUG=1)
log:
  debug: false
  file: debug.log

# Distributed tracing for registration requests
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, otlp (default: file); stdout only for config show
#   file_path: ~/.config/signup/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0, 0 records nothing (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
