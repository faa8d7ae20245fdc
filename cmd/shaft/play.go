package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shaft/internal/config"
	"github.com/vovakirdan/tui-shaft/internal/core"
	"github.com/vovakirdan/tui-shaft/internal/platform/tui"
	"github.com/vovakirdan/tui-shaft/internal/registry"
	"github.com/vovakirdan/tui-shaft/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run directly, skipping the menu.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump off a platform
  Enter            - Start
  P/Esc            - Pause
  R                - Restart
  B                - Back to menu (when not running)
  Q/Ctrl+C         - Quit

Mouse: click and hold the on-screen arrow buttons to move.

Difficulty options:
  easy   - More lives, slower shaft
  normal - Default tuning
  hard   - Fewer lives, shaft speeds up faster
  fixed  - Shaft speed never changes

Examples:
  shaft play
  shaft play --difficulty easy
  shaft play --config ./my-shaft.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	logger, closeLog, err := newSessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(newConsoleLogger())
	if store != nil {
		defer store.Close()
	}

	_, err = playSession(preset, runtimeConfig(), store, logger)
	return err
}

// playSession creates a game for the preset and runs it until the player
// quits or goes back.
func playSession(preset config.DifficultyPreset, cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) (backToMenu bool, err error) {
	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: string(preset),
	})
	if err != nil {
		return false, err
	}

	logger.Info("session", "mode", preset, "fps", cfg.TickRate, "seed", cfg.Seed)
	backToMenu, err = tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: logger,
		Mode:   string(preset),
	})
	if err != nil {
		return false, fmt.Errorf("error running game: %w", err)
	}
	return backToMenu, nil
}
