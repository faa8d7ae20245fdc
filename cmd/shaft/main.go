// shaft is NS-Shaft in the terminal: keep a falling climber alive while the
// shaft scrolls up under a ceiling of spikes.
//
// Usage:
//
//	shaft                    - Start the difficulty menu
//	shaft play               - Play a run directly
//	shaft scores             - Show the deepest runs
//	shaft config             - Print the effective config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.shaft/scores.db, "" disables)
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Write session logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shaft/internal/core"
	"github.com/vovakirdan/tui-shaft/internal/storage"

	// Register the game
	_ "github.com/vovakirdan/tui-shaft/internal/games/shaft"
)

const gameID = "shaft"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shaft",
	Short: "NS-Shaft - fall, land, survive",
	Long: `NS-Shaft is a terminal take on the falling-platform classic.
Platforms scroll up toward a row of spikes. Keep landing on them, avoid
the spiked ones and see how deep you can get.

Available commands:
  menu     - Pick a difficulty interactively (default)
  play     - Start a run directly
  scores   - View the deepest runs
  config   - Print the effective configuration

Examples:
  shaft
  shaft play --difficulty hard
  shaft play --seed 42 --log-file ./shaft.log
  shaft scores --mode easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shaft/scores.db", "Path to scores database (empty disables scores)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newConsoleLogger logs to stderr for messages shown outside the TUI.
func newConsoleLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: gameID,
		Level:  log.WarnLevel,
	})
}

// newSessionLogger returns the logger used while the TUI owns the terminal.
// Without --log-file the output is discarded. The returned func closes the file.
func newSessionLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		if dir := filepath.Dir(flagLogFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          gameID,
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the score database. Scores are optional, so failures
// are logged and the game runs without them.
func openStore(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
