package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// loadConfigFromYAML is a helper to load config from YAML string over the defaults.
func loadConfigFromYAML(t *testing.T, content string) (Config, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	v := viper.New()
	RegisterDefaults(v)
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())

	return Load(v)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, DefaultEndpoint, cfg.Submit.Endpoint)
	require.Zero(t, cfg.Submit.Timeout, "requests wait indefinitely by default")
	require.Zero(t, cfg.UI.ToastDuration)
	require.Equal(t, 60, cfg.UI.Width)
	require.False(t, cfg.Log.Debug)
	require.False(t, cfg.Tracing.Enabled)
	require.NoError(t, Validate(cfg))
}

func TestLoad_DefaultsOnly(t *testing.T) {
	v := viper.New()
	RegisterDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_FromYAML(t *testing.T) {
	cfg, err := loadConfigFromYAML(t, `
submit:
  endpoint: http://localhost:8080/users
  timeout: 5s
ui:
  toast_duration: 3s
  width: 72
log:
  debug: true
`)
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8080/users", cfg.Submit.Endpoint)
	require.Equal(t, 5*time.Second, cfg.Submit.Timeout)
	require.Equal(t, 3*time.Second, cfg.UI.ToastDuration)
	require.Equal(t, 72, cfg.UI.Width)
	require.Equal(t, "dark", cfg.UI.MarkdownStyle, "unset keys keep defaults")
	require.True(t, cfg.Log.Debug)
}

func TestLoad_DefaultTemplateParses(t *testing.T) {
	cfg, err := loadConfigFromYAML(t, DefaultConfigTemplate())
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_TracingFileDefaultsPath(t *testing.T) {
	cfg, err := loadConfigFromYAML(t, `
tracing:
  enabled: true
  exporter: file
`)
	require.NoError(t, err)
	require.Equal(t, DefaultTracesFilePath(), cfg.Tracing.FilePath)
}

func TestLoad_InvalidEndpoint(t *testing.T) {
	_, err := loadConfigFromYAML(t, `
submit:
  endpoint: ftp://example.com/users
`)
	require.ErrorContains(t, err, "submit.endpoint must use http or https")
}

func TestValidateSubmit(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SubmitConfig
		wantErr string
	}{
		{"valid https", SubmitConfig{Endpoint: "https://example.com/users"}, ""},
		{"valid http with timeout", SubmitConfig{Endpoint: "http://127.0.0.1:9000", Timeout: time.Second}, ""},
		{"empty", SubmitConfig{}, "submit.endpoint is required"},
		{"relative", SubmitConfig{Endpoint: "/users"}, "must use http or https"},
		{"no host", SubmitConfig{Endpoint: "https:///users"}, "must include a host"},
		{"bad url", SubmitConfig{Endpoint: "http://[::1"}, "not a valid URL"},
		{"negative timeout", SubmitConfig{Endpoint: "https://example.com", Timeout: -time.Second}, "submit.timeout must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmit(tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateUI(t *testing.T) {
	require.NoError(t, ValidateUI(UIConfig{Width: 40}))
	require.ErrorContains(t, ValidateUI(UIConfig{Width: 39}), "ui.width must be at least 40")
	require.ErrorContains(t, ValidateUI(UIConfig{Width: 60, ToastDuration: -1}), "ui.toast_duration")
	require.ErrorContains(t, ValidateUI(UIConfig{Width: 60, MarkdownStyle: "neon"}), "ui.markdown_style")
	require.NoError(t, ValidateUI(UIConfig{Width: 60, Accent: "#3498DB"}))
	require.NoError(t, ValidateUI(UIConfig{Width: 60, Accent: "#fff"}))
	require.ErrorContains(t, ValidateUI(UIConfig{Width: 60, Accent: "blue"}), "ui.accent")
}

func TestValidateTracing(t *testing.T) {
	cfg := Defaults().Tracing
	require.NoError(t, ValidateTracing(cfg))

	cfg.SampleRate = 1.5
	require.ErrorContains(t, ValidateTracing(cfg), "sample_rate")

	cfg = Defaults().Tracing
	cfg.Exporter = "zipkin"
	require.ErrorContains(t, ValidateTracing(cfg), "tracing.exporter")

	cfg = Defaults().Tracing
	cfg.Enabled = true
	cfg.Exporter = "file"
	require.ErrorContains(t, ValidateTracing(cfg), "tracing.file_path is required")

	cfg.Exporter = "otlp"
	cfg.OTLPEndpoint = ""
	require.ErrorContains(t, ValidateTracing(cfg), "tracing.otlp_endpoint is required")
}

func TestValidateInteractive(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, ValidateInteractive(cfg))

	cfg.Tracing.Exporter = "stdout"
	require.NoError(t, ValidateInteractive(cfg), "disabled tracing never writes")

	cfg.Tracing.Enabled = true
	require.ErrorContains(t, ValidateInteractive(cfg), "writes over the form")

	cfg.Tracing.Exporter = "otlp"
	require.NoError(t, ValidateInteractive(cfg))
}

func TestMarshal_RoundTripsThroughYAML(t *testing.T) {
	cfg := Defaults()
	cfg.Submit.Timeout = 10 * time.Second

	out, err := Marshal(cfg)
	require.NoError(t, err)
	require.Contains(t, string(out), "endpoint: "+DefaultEndpoint)
	require.Contains(t, string(out), "timeout: 10s")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	require.Contains(t, doc, "tracing")
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".signup", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "# Signup Configuration"))
}
