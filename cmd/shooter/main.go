// shooter is a small arcade space shooter for the terminal and the desktop.
//
// Usage:
//
//	shooter variants            - List available variants
//	shooter play [variant]      - Play in the terminal
//	shooter menu                - Pick a variant interactively
//	shooter window [variant]    - Play in a desktop window
//	shooter simulate [variant]  - Run headless with an autopilot
//	shooter config [variant]    - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Configuration file (default: ~/.shooter/shooter.yaml)
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/loop"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - dodge and blast descending enemies",
	Long: `Space Shooter is a minimal arcade shooter. Move your ship, fire upward
and avoid the enemies falling from the top of the screen.

Available commands:
  variants  - Show the available variants
  play      - Play in the terminal
  menu      - Interactive variant picker
  window    - Play in a desktop window
  simulate  - Run headless with an autopilot
  config    - Print the effective configuration

Examples:
  shooter play
  shooter play arcade --seed 42
  shooter window classic
  shooter simulate arcade --ticks 3600`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a configuration YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use configuration)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return logger, closer, nil
}

// variantArg returns the optional variant argument, checking that it exists.
func variantArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	id := args[0]
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'shooter variants' to see available variants.")
		os.Exit(1)
	}
	return id
}

// loadConfig resolves the configuration for a variant and applies flag overrides.
func loadConfig(variant string) (config.ShooterConfig, string, error) {
	cfg, source, err := config.Load(flagConfig, variant, registry.Defaults)
	if err != nil {
		return config.ShooterConfig{}, "", err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, source, nil
}

// newSession builds a loop for cfg timed by wall.
func newSession(cfg config.ShooterConfig, wall core.Clock, logger *log.Logger) (*loop.Loop, error) {
	game, err := shooter.New(cfg)
	if err != nil {
		return nil, err
	}
	rt := core.RuntimeConfig{TickRate: cfg.TickRate, Seed: flagSeed}.ResolveSeed()
	return loop.New(game, wall, logger, rt), nil
}
