package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/loop"
)

var (
	flagTicks    int
	flagRealtime bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run a headless session with an autopilot",
	Long: `Play a session without any display. The autopilot sweeps the ship from
side to side while firing. The session ends on game over (after the hold),
after --ticks ticks, or on Ctrl+C. Without --ticks or --realtime, a run
stops after ten minutes of game time so a ship that never dies cannot
spin forever.

Without --realtime, ticks run back to back and the game-over hold is
counted in ticks, so a seeded run is reproducible.

Examples:
  shooter simulate --seed 42
  shooter simulate arcade --ticks 3600
  shooter simulate --realtime --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until game over, capped at ten minutes of game time without --realtime)")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks in real time")
}

func runSimulate(cmd *cobra.Command, args []string) {
	variant := variantArg(args)

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, source, err := loadConfig(variant)
	if err != nil {
		closeLog()
		fail("%v", err)
	}
	logger.Debug("configuration loaded", "source", source, "variant", cfg.Variant)

	var wall core.Clock = core.NewStepClock(cfg.TickRate)
	if flagRealtime {
		wall = core.NewWallClock()
	}

	session, err := newSession(cfg, wall, logger)
	if err != nil {
		closeLog()
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pilot := loop.NewAutopilot(tickLimit(flagTicks, flagRealtime, cfg.TickRate))
	if err := session.Run(ctx, pilot, flagRealtime); err != nil && !errors.Is(err, context.Canceled) {
		closeLog()
		fail("%v", err)
	}

	s := pilot.Last()
	fmt.Printf("variant=%s score=%d high_score=%d ticks=%d game_over=%t\n",
		cfg.Variant, s.Score, s.HighScore, s.Tick, s.GameOver)
}

// simulateCapSeconds bounds a back-to-back run that asked for no tick limit.
const simulateCapSeconds = 600

// tickLimit returns the autopilot's tick budget. Zero means no limit.
func tickLimit(ticks int, realtime bool, tickRate int) int {
	if ticks > 0 || realtime {
		return ticks
	}
	return tickRate * simulateCapSeconds
}
