// Package ui implements the daygrid command line.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/daygrid/internal/config"
	"github.com/javiermolinar/daygrid/internal/dateutil"
	"github.com/javiermolinar/daygrid/internal/day"
	"github.com/javiermolinar/daygrid/internal/db"
	"github.com/javiermolinar/daygrid/internal/logger"
	"github.com/javiermolinar/daygrid/internal/planner"
	"github.com/javiermolinar/daygrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// ErrNotSaved is returned when a change could not be written to storage.
var ErrNotSaved = errors.New("change was not saved, see the log for details")

// App holds the CLI application state.
type App struct {
	store      day.Store
	owned      bool // store was opened by the App and is closed by it
	config     *config.Config
	configPath string
	root       *cobra.Command
	debug      bool

	in  io.Reader
	out io.Writer
	now func() time.Time
}

// Option configures an App.
type Option func(*App)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
	}
}

// WithConfigPath replaces the config file used by the config commands.
func WithConfigPath(path string) Option {
	return func(a *App) {
		a.configPath = path
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// NewApp creates a new CLI application. When store is nil the SQLite database
// named in the config is opened on first use.
func NewApp(store day.Store, cfg *config.Config, opts ...Option) *App {
	a := &App{
		store:      store,
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		in:         os.Stdin,
		out:        os.Stdout,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "daygrid",
		Short: "A single-page daily planner for the terminal",
		Long: `daygrid keeps today's goals and a half-hour time-block grid.

Drag across the grid to place a block, name it, and it is saved for the day.
Run without arguments to open the planner.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.initLogging()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ctrl, err := a.controller(context.Background(), "")
			if err != nil {
				return err
			}
			return tui.Run(ctrl, a.config)
		},
	}
	a.root.SetOut(a.out)
	a.root.SetErr(a.out)

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.historyCmd())
	a.root.AddCommand(a.blockCmd())
	a.root.AddCommand(a.goalCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "daygrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ExecuteArgs runs the CLI with args instead of os.Args.
func (a *App) ExecuteArgs(args ...string) error {
	a.root.SetArgs(args)
	return a.root.Execute()
}

// Close releases the store if the App opened it.
func (a *App) Close() error {
	if a.owned && a.store != nil {
		return a.store.Close()
	}
	return nil
}

func (a *App) initLogging() error {
	if a.debug {
		a.config.Log.Debug = true
	}
	if err := logger.Init(logger.Config{Debug: a.config.Log.Debug, Dir: a.config.Log.Dir}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	return nil
}

// ensureStore opens the configured database unless a store was injected.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}
	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	s, err := db.New(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.store = s
	a.owned = true
	return nil
}

// controller loads the planner for the date named by the --date flag value.
func (a *App) controller(ctx context.Context, date string) (*planner.Controller, error) {
	if err := a.ensureStore(); err != nil {
		return nil, err
	}
	now := a.now()
	if date != "" {
		d, err := dateutil.ParseRelativeDate(date, now)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", date, err)
		}
		now = d
	}
	return planner.New(ctx, a.config.SlotGrid(), day.NewSnapshots(a.store), now), nil
}

// checkSaved turns a failed write-through into an error for the user.
func checkSaved(ctrl *planner.Controller) error {
	if !ctrl.LastSaveOK() {
		return ErrNotSaved
	}
	return nil
}
