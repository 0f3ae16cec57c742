package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/signup/internal/app"
	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/submit"
	"github.com/zjrosen/signup/internal/tracing"
	"github.com/zjrosen/signup/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	envPrefix       = "SIGNUP"
	localConfigPath = ".signup/config.yaml"
	shutdownTimeout = 5 * time.Second
)

var (
	version = "dev"
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "signup",
	Short: "A terminal registration form",
	Long: `signup collects a username, email address and password, validates every
field as you type and posts the registration as JSON to a collaborator.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Only the form itself creates a default config file.
		return initConfig(cmd == cmd.Root())
	},
	RunE: runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .signup/config.yaml, then ~/.config/signup/config.yaml)")
	rootCmd.Flags().String("endpoint", "",
		"URL registrations are posted to")
	rootCmd.Flags().Bool("debug", false,
		"write a debug log")
	rootCmd.Flags().String("log-file", "",
		"debug log path (default: debug.log)")

	// Bind flags to viper
	_ = viper.BindPFlag("submit.endpoint", rootCmd.Flags().Lookup("endpoint"))
	_ = viper.BindPFlag("log.debug", rootCmd.Flags().Lookup("debug"))
	_ = viper.BindPFlag("log.file", rootCmd.Flags().Lookup("log-file"))
}

// initConfig registers defaults and environment overrides and reads the
// config file. When no file exists anywhere and writeDefault is set, a
// commented default config is written to .signup/config.yaml.
func initConfig(writeDefault bool) error {
	config.RegisterDefaults(viper.GetViper())
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("log.debug", envPrefix+"_DEBUG", envPrefix+"_LOG_DEBUG")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .signup/config.yaml (current directory)
		// 2. ~/.config/signup/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "signup"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	// An explicit --config must exist.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile != "" || !errors.As(err, &notFound) {
		return fmt.Errorf("reading config: %w", err)
	}
	if writeDefault {
		if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
			viper.SetConfigFile(localConfigPath)
			_ = viper.ReadInConfig()
		}
		// If write fails, just continue with defaults (no config file)
	}
	return nil
}

func runApp(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.ValidateInteractive(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Log.Debug {
		cleanup, err := log.Init(cfg.Log.File)
		if err != nil {
			return err
		}
		defer cleanup()
	}
	log.Info(log.CatConfig, "Starting signup",
		"version", version,
		"config", viper.ConfigFileUsed(),
		"endpoint", cfg.Submit.Endpoint,
		"tracing", cfg.Tracing.Enabled)

	styles.ApplyAccent(cfg.UI.Accent)

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}()

	submitter := submit.New(
		submit.Config{Endpoint: cfg.Submit.Endpoint, Timeout: cfg.Submit.Timeout},
		submit.WithTracer(provider.Tracer()),
	)

	zone.NewGlobal()
	model := app.New(app.Options{
		Submitter:     submitter,
		FormWidth:     cfg.UI.Width,
		ToastDuration: cfg.UI.ToastDuration,
		MarkdownStyle: cfg.UI.MarkdownStyle,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
