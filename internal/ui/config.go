package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/daygrid/internal/config"
	"github.com/javiermolinar/daygrid/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  daygrid config
  daygrid config show`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runConfigInteractive()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintf(a.out, "Config file: %s\n\n", a.configPath)
			printConfig(a.out, a.config)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
			}
			if err := config.Default().SaveTo(a.configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(a.out, "Created %s\n", a.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}

func (a *App) runConfigInteractive() error {
	fmt.Fprintf(a.out, "Config file: %s\n\n", a.configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(a.configPath)
	if errors.Is(fileErr, fs.ErrNotExist) {
		fmt.Fprintln(a.out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(a.configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(a.out, "Created %s\n\n", a.configPath)
	}

	printConfig(a.out, cfg)

	p := &prompter{in: bufio.NewReader(a.in), out: a.out}
	if !p.yesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Grid.StartHour = p.number("Grid start hour", cfg.Grid.StartHour)
	cfg.Grid.EndHour = p.number("Grid end hour", cfg.Grid.EndHour)
	cfg.Clock.TickSeconds = p.number("Day check interval in seconds (1-60)", cfg.Clock.TickSeconds)
	cfg.Storage.DBPath = p.value("Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = p.theme(cfg.UI.Theme)
	cfg.Log.Dir = p.value("Log directory", cfg.Log.Dir)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(a.out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[grid]")
	fmt.Fprintf(w, "  start_hour   = %d\n", cfg.Grid.StartHour)
	fmt.Fprintf(w, "  end_hour     = %d\n", cfg.Grid.EndHour)
	fmt.Fprintln(w, "\n[clock]")
	fmt.Fprintf(w, "  tick_seconds = %d\n", cfg.Clock.TickSeconds)
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path      = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme        = %s\n", cfg.UI.Theme)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  dir          = %s\n", cfg.Log.Dir)
	fmt.Fprintf(w, "  debug        = %t\n", cfg.Log.Debug)
}

// prompter reads answers line by line. An empty answer keeps the current
// value.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func (p *prompter) readLine() string {
	input, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
	}
	return strings.TrimSpace(input)
}

func (p *prompter) yesNo(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	input := strings.ToLower(p.readLine())
	return input == "y" || input == "yes"
}

func (p *prompter) value(label, current string) string {
	if current == "" {
		fmt.Fprintf(p.out, "  %s: ", label)
	} else {
		fmt.Fprintf(p.out, "  %s [%s]: ", label, current)
	}
	input := p.readLine()
	if input == "" {
		return current
	}
	return input
}

func (p *prompter) number(label string, current int) int {
	for {
		value := p.value(label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		if p.eof {
			return current
		}
		fmt.Fprintf(p.out, "  Invalid number %q\n", value)
	}
}

func (p *prompter) theme(current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(p.value(label, current))
		if theme.IsAvailable(value) || p.eof {
			return value
		}
		fmt.Fprintf(p.out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
