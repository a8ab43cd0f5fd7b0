package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/planetwars/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rules",
	Long: `Print the rules a game would use as YAML, after applying the config
search order:

  1. --config <path>
  2. ~/.planetwars/configs/planetwars.yaml
  3. ./configs/planetwars.yaml
  4. built-in defaults

The output is a valid rules file and can be edited and passed back with
--config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
