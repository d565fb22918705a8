package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:     "variants",
	Aliases: []string{"list"},
	Short:   "List all available variants",
	Long:    `Shows the configuration presets the game ships with.`,
	Run:     runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, v := range variants {
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, v.Description)
	}

	fmt.Println()
	fmt.Println("Run 'shooter play <id>' to play a variant.")
}
