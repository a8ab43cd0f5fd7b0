package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/planetwars/internal/games/planetwars/maps"
)

const userMapsDir = "~/.planetwars/maps"

var flagMap string

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List available maps",
	Long: `List the hand-made maps that --map accepts.

Maps are YAML files. They are looked up by ID in ~/.planetwars/maps and
then among the built-in maps. --map also accepts a path to a map file.

Examples:
  planetwars maps
  planetwars play --map duel
  planetwars simulate --map ./my-map.yaml`,
	Args: cobra.NoArgs,
	RunE: runMaps,
}

func init() {
	playCmd.Flags().StringVar(&flagMap, "map", "", "Map ID or file (default: random layout)")
	simulateCmd.Flags().StringVar(&flagMap, "map", "", "Map ID or file (default: random layout)")
	rootCmd.AddCommand(mapsCmd)
}

func mapLoaders() []*maps.Loader {
	return []*maps.Loader{maps.NewLoader(userMapsDir), maps.Builtin()}
}

// resolveMap returns the map named by --map, or nil when none was asked for.
func resolveMap() (*maps.Map, error) {
	if flagMap == "" {
		return nil, nil
	}
	m, err := maps.Resolve(flagMap, mapLoaders()...)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func runMaps(cmd *cobra.Command, _ []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPLANETS\tSOURCE")

	seen := make(map[string]bool)
	for _, l := range mapLoaders() {
		// A missing user directory just has no maps.
		all, _ := l.LoadAll()
		for _, m := range all {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", m.ID, m.Name, len(m.Planets), m.FilePath)
		}
	}
	return tw.Flush()
}
