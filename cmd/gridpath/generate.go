package main

import (
	"fmt"

	"github.com/AndKlet/gridpath/gridmap"
	"github.com/AndKlet/gridpath/mapfile"
	"github.com/AndKlet/gridpath/mapgen"
	"github.com/spf13/cobra"
)

// Command-line flags for generate.
var (
	genRows        int
	genCols        int
	genRatio       float64
	genMaxCost     int
	genSeed        int64
	genOut         string
	genOpenCorners bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a random map file",
	Long: `generate writes a seeded random CSV map: each cell independently
becomes an obstacle with the given probability, otherwise it gets a
uniform cost between 1 and the maximum. Equal seeds produce equal maps.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genRows, "rows", 20, "Number of rows.")
	generateCmd.Flags().IntVar(&genCols, "cols", 30, "Number of columns.")
	generateCmd.Flags().Float64Var(&genRatio, "obstacle-ratio", 0.25, "Probability a cell becomes an obstacle.")
	generateCmd.Flags().IntVar(&genMaxCost, "max-cost", 4, "Largest traversal cost a cell can get.")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "Random seed.")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Path to write the CSV map to.")
	generateCmd.Flags().BoolVar(&genOpenCorners, "open-corners", true,
		"Force the top-left and bottom-right cells walkable, so the default solve endpoints work.")
	_ = generateCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := mapgen.DefaultConfig(genRows, genCols)
	cfg.MaxCost = genMaxCost
	cfg.ObstacleRatio = genRatio
	cfg.Seed = genSeed
	if genOpenCorners {
		cfg.Open = []gridmap.Pos{
			{Row: 0, Col: 0},
			{Row: genRows - 1, Col: genCols - 1},
		}
	}

	grid, err := mapgen.Generate(cfg)
	if err != nil {
		return err
	}
	if err := mapfile.Save(genOut, grid); err != nil {
		return err
	}

	fmt.Printf("wrote %dx%d map to %s\n", genRows, genCols, genOut)
	return nil
}
