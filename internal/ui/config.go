package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/alertkit/internal/config"
	"github.com/javiermolinar/alertkit/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after defaults, the config file and
ALERTKIT_* environment variables have been applied.

Example:
  alertkit config
  alertkit config --write`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			path := a.resolvedConfigPath()
			fmt.Fprintf(out, "Config file: %s\n\n", path)

			if write {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file already exists: %s", path)
				}
				// Environment overrides are not written to the file.
				if err := config.Default().SaveTo(path); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Fprintf(out, "Created %s\n\n", path)
			}

			printConfig(out, a.config)
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Write the default configuration to the config file if it does not exist")
	return cmd
}

func (a *App) themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, name := range theme.Available() {
				if name == a.config.UI.Theme {
					fmt.Fprintf(out, "* %s\n", formatActive(name))
					continue
				}
				fmt.Fprintf(out, "  %s\n", name)
			}
		},
	}
}

func (a *App) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.DefaultConfigPath()
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, formatHeader("Current configuration:"))
	fmt.Fprintln(out, formatMuted("──────────────────────"))
	fmt.Fprintln(out, formatSection("[ui]"))
	fmt.Fprintf(out, "  theme               = %s\n", cfg.UI.Theme)
	fmt.Fprintln(out, formatSection("\n[animation]"))
	fmt.Fprintf(out, "  delay_ms            = %d\n", cfg.Animation.DelayMS)
	fmt.Fprintf(out, "  duration_ms         = %d\n", cfg.Animation.DurationMS)
	fmt.Fprintf(out, "  frame_rate          = %d\n", cfg.Animation.FrameRate)
	fmt.Fprintln(out, formatSection("\n[overlay]"))
	fmt.Fprintf(out, "  strategy            = %s\n", cfg.Overlay.Strategy)
	fmt.Fprintf(out, "  dismiss_on_backdrop = %t\n", cfg.Overlay.DismissOnBackdrop)
	fmt.Fprintln(out, formatSection("\n[log]"))
	fmt.Fprintf(out, "  level               = %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "  dir                 = %s\n", cfg.Log.Dir)
	fmt.Fprintf(out, "  format              = %s\n", cfg.Log.Format)
}
