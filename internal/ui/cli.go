// Package ui provides the alertkit command line.
package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/alertkit/internal/config"
	"github.com/javiermolinar/alertkit/internal/logging"
	"github.com/javiermolinar/alertkit/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// errNoTerminal is returned when the demo is started without a TTY.
var errNoTerminal = errors.New("alertkit needs an interactive terminal")

// App holds the CLI application state.
type App struct {
	config     *config.Config
	root       *cobra.Command
	configPath string
	debug      bool // Enable debug logging

	// runTUI starts the demo; replaced in tests.
	runTUI func(*config.Config) error
}

// NewApp creates a new CLI application. Configuration is loaded before any
// command runs, from --config or the default path.
func NewApp() *App {
	a := &App{runTUI: tui.Run}

	a.root = &cobra.Command{
		Use:   "alertkit",
		Short: "An animated modal alert for the terminal",
		Long: `alertkit shows a custom alert over a small list screen.

The alert fades in over the screen, slides up into place and only
accepts input once the animation has finished.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logging.Shutdown()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if !isTerminal() {
				return errNoTerminal
			}
			return a.runTUI(a.config)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default "+config.DefaultConfigPath()+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.themesCmd())

	return a
}

// setup loads the configuration and starts logging.
func (a *App) setup(_ *cobra.Command, _ []string) error {
	path := a.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.config = cfg

	logCfg := logging.Config{
		Dir:    cfg.Log.Dir,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Debug:  a.debug,
	}
	if a.debug && logCfg.Dir == "" {
		logCfg.Dir = config.DefaultLogDir()
	}
	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	logging.ForComponent(logging.CompCLI).Debug("config loaded",
		slog.String("path", path),
		slog.String("theme", cfg.UI.Theme),
		slog.String("log_file", logging.Path()))
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "alertkit %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command line arguments.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
