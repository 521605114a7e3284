package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-gunner/internal/config"
	"github.com/vovakirdan/retro-gunner/internal/core"
	"github.com/vovakirdan/retro-gunner/internal/platform/audio"
	"github.com/vovakirdan/retro-gunner/internal/platform/tui"
	"github.com/vovakirdan/retro-gunner/internal/registry"
	"github.com/vovakirdan/retro-gunner/internal/storage"
)

var (
	flagFPS        int
	flagDifficulty string
	flagSound      bool
	flagNoColor    bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal.

Controls:
  A/D, Left/Right  - Move
  Space/K          - Jump
  J/X              - Shoot
  1/2/3            - Basic gun, machine gun, spread gun
  Enter            - Start / next level
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  gunner play
  gunner play gunner_hard
  gunner play --difficulty easy --sound
  gunner play --config ./my-gunner.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Render without colors")
}

// variantID resolves the variant from an explicit id or a difficulty preset.
func variantID(args []string, difficulty string) (string, error) {
	if len(args) > 0 {
		if difficulty != "" {
			return "", errors.New("give either a variant or --difficulty, not both")
		}
		return args[0], nil
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return "", err
	}
	if preset == config.DifficultyNormal {
		return "gunner", nil
	}
	return "gunner_" + string(preset), nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantID(args, flagDifficulty)
	if err != nil {
		return fmt.Errorf("gunner: play: %w", err)
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("gunner: play: stdout is not a terminal, try 'gunner sim'")
	}
	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("gunner: play: %w (run 'gunner list')", err)
	}

	opts := tui.Options{
		Logger:  logger,
		NoColor: flagNoColor,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still runs, it just isn't recorded
		logger.Warn("could not open scores database", "err", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if flagSound {
		sm := audio.NewSoundManager(audio.DefaultConfig(), logger)
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sm.Close()
			opts.Sink = sm
		}
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return tui.Run(game, cfg, opts)
}
