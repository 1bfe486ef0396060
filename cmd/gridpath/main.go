// Command gridpath finds cheapest paths on weighted grid maps.
//
// Three subcommands cover the workflow end to end:
//
//	gridpath generate  — write a random map file
//	gridpath solve     — search a map once and print (or render) the path
//	gridpath sim       — animate re-planning against a wandering goal
//
// Map files are CSV: one row per line, integer cell costs, -1 for
// obstacles. See the mapfile package for the exact format.
package main

import (
	"fmt"
	"os"

	"github.com/AndKlet/gridpath/astar"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridpath",
	Short: "Weighted grid pathfinding with A*",
	Long: `gridpath loads weighted grid maps, finds cheapest 4-connected paths
with A*, and can animate continuous re-planning against a goal that
wanders toward a destination of its own.`,
	SilenceUsage: true,
}

// parseHeuristic maps a CLI flag value onto a heuristic mode. Accepted
// names mirror astar.HeuristicMode.String.
func parseHeuristic(name string) (astar.HeuristicMode, error) {
	switch name {
	case "manhattan":
		return astar.Manhattan, nil
	case "euclidean2":
		return astar.SquaredEuclidean, nil
	default:
		return 0, fmt.Errorf("unknown heuristic %q (want manhattan or euclidean2)", name)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
