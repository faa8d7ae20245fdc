package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shaft/internal/config"
	"github.com/vovakirdan/tui-shaft/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from the menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play and Tab for
the scoreboard. Pressing B after a run returns here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Scoreboard
  Q/Esc        - Quit

Examples:
  shaft menu
  shaft menu --fps 30
  shaft menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newSessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(newConsoleLogger())
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	mode := config.DifficultyNormal

	// Menu loop
	for {
		result, err := tui.RunMenu(gameID, store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(gameID, store, mode, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		mode = result.Preset
		backToMenu, err := playSession(result.Preset, cfg, store, logger)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
