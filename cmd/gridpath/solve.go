package main

import (
	"fmt"

	"github.com/AndKlet/gridpath/astar"
	"github.com/AndKlet/gridpath/gridmap"
	"github.com/AndKlet/gridpath/mapfile"
	"github.com/AndKlet/gridpath/render"
	"github.com/spf13/cobra"
)

// Command-line flags for solve.
var (
	solveMapPath   string
	solveStartRow  int
	solveStartCol  int
	solveGoalRow   int
	solveGoalCol   int
	solveHeuristic string
	solvePNGPath   string
	solveScale     int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Search a map file once and print the cheapest path",
	Long: `solve loads a CSV map, runs a single A* search from start to goal,
and prints the marked map plus cost, step and expansion counts.
An unreachable goal is a result, not an error: solve reports it and
exits zero.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveMapPath, "map", "", "Path to the CSV map file.")
	solveCmd.Flags().IntVar(&solveStartRow, "start-row", 0, "Start row.")
	solveCmd.Flags().IntVar(&solveStartCol, "start-col", 0, "Start column.")
	solveCmd.Flags().IntVar(&solveGoalRow, "goal-row", -1, "Goal row. Negative means the last row.")
	solveCmd.Flags().IntVar(&solveGoalCol, "goal-col", -1, "Goal column. Negative means the last column.")
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", "manhattan", "Heuristic: manhattan or euclidean2.")
	solveCmd.Flags().StringVar(&solvePNGPath, "png", "", "Also render the marked map to this PNG file.")
	solveCmd.Flags().IntVar(&solveScale, "scale", render.DefaultScale, "PNG cell edge length in pixels.")
	_ = solveCmd.MarkFlagRequired("map")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	grid, err := mapfile.Load(solveMapPath)
	if err != nil {
		return err
	}
	heuristic, err := parseHeuristic(solveHeuristic)
	if err != nil {
		return err
	}

	start := gridmap.Pos{Row: solveStartRow, Col: solveStartCol}
	goal := resolveCorner(grid, solveGoalRow, solveGoalCol)

	m, err := gridmap.New(grid, start, goal)
	if err != nil {
		return err
	}

	res, err := astar.Search(m, m.Start(), m.Goal(),
		astar.WithHeuristic(heuristic),
		astar.WithContext(cmd.Context()),
	)
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Printf("no path from %s to %s (expanded %d nodes)\n", start, goal, res.Expanded)
		return nil
	}

	m.MarkPath(res.Path)
	fmt.Println(m.String())
	fmt.Printf("\ncost %d, steps %d, expanded %d\n", res.Cost, len(res.Path)-1, res.Expanded)

	if solvePNGPath != "" {
		if err := render.SavePNG(solvePNGPath, m.Symbols(), solveScale); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", solvePNGPath)
	}
	return nil
}

// resolveCorner substitutes the grid's last row/column for negative
// coordinates, so the default goal lands in the bottom-right corner.
func resolveCorner(grid [][]int, row, col int) gridmap.Pos {
	if row < 0 {
		row = len(grid) - 1
	}
	if col < 0 && len(grid) > 0 {
		col = len(grid[0]) - 1
	}
	return gridmap.Pos{Row: row, Col: col}
}
