package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"edgewise/internal/parse"
	"edgewise/internal/tape"
)

var angleEdges []string

var angleCmd = &cobra.Command{
	Use:   "angle",
	Short: "Measure the angle between two edges",
	Long: `Measure the inside and outside angle between exactly two edges. Each
edge is treated as the vector from its first written endpoint to its
second, so the result follows the endpoint order you give.`,
	Example: `  edgewise angle --edge 0,0,0:1,0,0 --edge 0,0,0:0,1,0`,
	Run:     runAngle,
}

func init() {
	rootCmd.AddCommand(angleCmd)

	angleCmd.Flags().StringArrayVar(&angleEdges, "edge", nil, "selected edge as x1,y1,z1:x2,y2,z2 (repeatable)")
}

func runAngle(cmd *cobra.Command, args []string) {
	edges, err := parse.Edges(angleEdges)
	if err != nil {
		fail(err)
	}

	res, err := tape.MeasureAngle(tape.Selection{Edges: edges})
	if err != nil {
		fail(err)
	}

	fmt.Println(res.Display)
}
