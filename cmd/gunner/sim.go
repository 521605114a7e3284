package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-gunner/internal/config"
	"github.com/vovakirdan/retro-gunner/internal/games/gunner"
	"github.com/vovakirdan/retro-gunner/internal/platform/tui"
	"github.com/vovakirdan/retro-gunner/internal/storage"
)

var (
	flagTicks     int
	flagSimFPS    int
	flagSimPreset string
	flagRecord    bool
	flagHashEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot session",
	Long: `Run the simulation without a terminal, driven by the built-in autopilot.
Levels advance automatically; the run stops at game over, victory, or after
--ticks ticks. Invariants are checked after every tick.

The same --seed and flags always produce the same run, so the printed hash
can be compared across builds.

Examples:
  gunner sim
  gunner sim --seed 7 --ticks 100000
  gunner sim --difficulty hard --record
  gunner sim --hash-every 600`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagSimFPS, "fps", 60, "Ticks per simulated second")
	simCmd.Flags().StringVar(&flagSimPreset, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run to the scores database")
	simCmd.Flags().IntVar(&flagHashEvery, "hash-every", 0, "Print the snapshot hash every N ticks (0 = only at the end)")
}

// simResult is the outcome of a headless session.
type simResult struct {
	Summary gunner.Summary
	Hash    uint64
}

// simulate runs a fresh world under the autopilot. onHash, when set, is
// called every hashEvery ticks.
func simulate(cfg config.GunnerConfig, seed int64, maxTicks int, dt float64, hashEvery int, onHash func(tick int, hash uint64)) (simResult, error) {
	w := gunner.NewWorld(cfg, seed, gunner.WithLogger(logger.WithPrefix("sim")))
	pilot := gunner.NewAutopilot()
	w.StartGame()

loop:
	for i := 1; i <= maxTicks; i++ {
		w.Tick(pilot.Next(w.Snapshot()), dt)
		if err := w.Validate(); err != nil {
			return simResult{}, fmt.Errorf("gunner: sim: tick %d: %w", i, err)
		}

		if hashEvery > 0 && onHash != nil && i%hashEvery == 0 {
			snap := w.Snapshot()
			onHash(i, snap.Hash())
		}

		switch w.State() {
		case gunner.StateLevelComplete:
			w.NextLevel()
		case gunner.StateGameOver, gunner.StateVictory:
			break loop
		}
	}

	snap := w.Snapshot()
	return simResult{Summary: w.Summary(), Hash: snap.Hash()}, nil
}

func runSim(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagSimPreset)
	if err != nil {
		return fmt.Errorf("gunner: sim: %w", err)
	}
	cfg, err := config.LoadGunner(flagConfig)
	if err != nil {
		return fmt.Errorf("gunner: sim: %w", err)
	}
	config.ApplyGunnerPreset(&cfg, preset)

	if flagTicks <= 0 || flagSimFPS <= 0 {
		return fmt.Errorf("gunner: sim: --ticks and --fps must be positive")
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	res, err := simulate(cfg, seed, flagTicks, 1/float64(flagSimFPS), flagHashEvery, func(tick int, hash uint64) {
		fmt.Printf("tick %-8d hash %016x\n", tick, hash)
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	s := res.Summary
	fmt.Printf("seed     %d\n", s.Seed)
	fmt.Printf("outcome  %s\n", s.State)
	fmt.Printf("score    %d\n", s.Score)
	fmt.Printf("level    %d\n", s.Level)
	fmt.Printf("kills    %d\n", s.Kills)
	fmt.Printf("ticks    %d (%.1fs simulated, %s wall)\n", s.Ticks, float64(s.Ticks)/float64(flagSimFPS), elapsed.Round(time.Millisecond))
	fmt.Printf("hash     %016x\n", res.Hash)

	if !flagRecord {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("gunner: sim: %w", err)
	}
	defer store.Close()

	gameID, err := variantID(nil, flagSimPreset)
	if err != nil {
		return fmt.Errorf("gunner: sim: %w", err)
	}
	id, err := tui.RecordRun(store, tui.NewRunRecord(gameID, tui.SourceSim, s, elapsed))
	if err != nil {
		return fmt.Errorf("gunner: sim: %w", err)
	}
	fmt.Printf("run      %s\n", id)
	return nil
}
