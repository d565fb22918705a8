package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a session ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q            - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	for {
		width, height := terminalSize()
		variant, err := tui.RunMenu(width, height)
		if err != nil {
			fail("%v", err)
		}
		if variant == "" {
			return
		}
		playTerminal(variant)
	}
}
