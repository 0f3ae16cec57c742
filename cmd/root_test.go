package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/signup/internal/config"
)

// isolate runs the test in an empty working directory and home, with fresh
// viper and flag state.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", filepath.Join(dir, "home"))

	viper.Reset()
	cfgFile = ""
	t.Cleanup(func() {
		viper.Reset()
		cfgFile = ""
		_ = configInitCmd.Flags().Set("force", "false")
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestInitConfig_WritesDefaultWhenMissing(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, initConfig(true))

	require.FileExists(t, filepath.Join(dir, localConfigPath))
	cfg, err := config.Load(viper.GetViper())
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), cfg)
}

func TestInitConfig_NoWriteWhenDisabled(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, initConfig(false))

	require.NoFileExists(t, filepath.Join(dir, localConfigPath))
	require.Empty(t, viper.ConfigFileUsed())
}

func TestInitConfig_PrefersLocalFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "home", ".config", "signup", "config.yaml"), "ui:\n  width: 70\n")
	writeFile(t, filepath.Join(dir, localConfigPath), "ui:\n  width: 50\n")

	require.NoError(t, initConfig(true))

	cfg, err := config.Load(viper.GetViper())
	require.NoError(t, err)
	require.Equal(t, 50, cfg.UI.Width)
}

func TestInitConfig_FallsBackToUserConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "home", ".config", "signup", "config.yaml"), "ui:\n  width: 70\n")

	require.NoError(t, initConfig(true))

	cfg, err := config.Load(viper.GetViper())
	require.NoError(t, err)
	require.Equal(t, 70, cfg.UI.Width)
	require.NoFileExists(t, filepath.Join(dir, localConfigPath))
}

func TestInitConfig_ExplicitMissingFileFails(t *testing.T) {
	dir := isolate(t)
	cfgFile = filepath.Join(dir, "nope.yaml")

	err := initConfig(true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestInitConfig_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SIGNUP_SUBMIT_ENDPOINT", "http://localhost:8080/users")
	t.Setenv("SIGNUP_SUBMIT_TIMEOUT", "15s")

	require.NoError(t, initConfig(false))

	cfg, err := config.Load(viper.GetViper())
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/users", cfg.Submit.Endpoint)
	require.Equal(t, "15s", cfg.Submit.Timeout.String())
}

func TestInitConfig_DebugEnvironment(t *testing.T) {
	for _, name := range []string{"SIGNUP_DEBUG", "SIGNUP_LOG_DEBUG"} {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			t.Setenv(name, "1")

			require.NoError(t, initConfig(false))

			cfg, err := config.Load(viper.GetViper())
			require.NoError(t, err)
			require.True(t, cfg.Log.Debug)
		})
	}
}

func TestConfigShow_PrintsEffectiveYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "submit:\n  endpoint: https://example.com/register\n")

	out, err := execute(t, "config", "show", "--config", path)
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	require.Equal(t, "https://example.com/register", shown.Submit.Endpoint)
	require.Equal(t, 60, shown.UI.Width)
	require.NoFileExists(t, filepath.Join(dir, localConfigPath), "config show never writes a file")
}

func TestConfigShow_RejectsInvalidConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "ui:\n  width: 10\n")

	_, err := execute(t, "config", "show", "--config", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ui.width")
}

func TestConfigInit(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "out", "config.yaml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	require.Contains(t, out, "wrote default config to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfigTemplate(), string(data))

	_, err = execute(t, "config", "init", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--force", path)
	require.NoError(t, err)
}
