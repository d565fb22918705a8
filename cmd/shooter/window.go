package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/platform/window"
)

var flagShowTPS bool

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window at the configured screen size and play.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  R            - Restart (arcade, after game over)
  Esc/Q        - Quit (closing the window also quits)

Examples:
  shooter window
  shooter window arcade --show-tps`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagShowTPS, "show-tps", false, "Show the measured tick rate")
}

func runWindow(cmd *cobra.Command, args []string) {
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
	logger.Info("configuration loaded", "source", source, "variant", cfg.Variant)

	session, err := newSession(cfg, core.NewWallClock(), logger)
	if err != nil {
		closeLog()
		fail("%v", err)
	}

	opts := window.Options{
		Title:   "Space Shooter (" + cfg.Variant + ")",
		ShowTPS: flagShowTPS,
	}
	if err := window.Run(session, opts); err != nil {
		logger.Error("window failed", "err", err)
		closeLog()
		fail("%v", err)
	}
}
