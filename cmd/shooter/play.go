package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The variant defaults to the one named
in the configuration file, or classic.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  R            - Restart (arcade, after game over)
  Q/Esc        - Quit

Logs are discarded unless --log-file is set, since the game owns the screen.

Examples:
  shooter play
  shooter play arcade
  shooter play --config ./my-shooter.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	playTerminal(variantArg(args))
}

// terminalSize returns the terminal dimensions, or 80x24 if unknown.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// playTerminal runs one terminal session of the given variant.
func playTerminal(variant string) {
	logger, closeLog, err := newLogger(io.Discard)
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

	width, height := terminalSize()
	if err := tui.Run(session, width, height); err != nil {
		logger.Error("terminal failed", "err", err)
		closeLog()
		fail("running game: %v", err)
	}
}
