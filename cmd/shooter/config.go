package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/config"
)

var flagTemplate bool

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would use, after applying the
configuration file and flags, as YAML.

With --template, print the commented default file instead. Save it as
~/.shooter/shooter.yaml or ./configs/shooter.yaml to customise the game.

Examples:
  shooter config arcade
  shooter config --template > ~/.shooter/shooter.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagTemplate, "template", false, "Print the commented default configuration")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagTemplate {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := loadConfig(variantArg(args))
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
