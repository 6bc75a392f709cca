package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"edgewise/internal/parse"
	"edgewise/internal/tape"
	"edgewise/pkg/measure"
)

var (
	measureVerts []string
	measureEdges []string
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure a vertex pair or an edge selection",
	Long: `Measure the distance between exactly two vertices, the length of a
single edge, or the total length of a contiguous group of edges.

The selection mode follows the flags: --vert selects vertex mode and
--edge selects edge mode. Mixing both is rejected, the same way the
host's selection modes are exclusive.`,
	Example: `  edgewise measure --vert 0,0,0 --vert 3,4,0
  edgewise measure --edge 0,0,0:1,0,0
  edgewise measure --edge 0,0,0:1,0,0 --edge 1,0,0:1,1,0 --units imperial`,
	Run: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().StringArrayVar(&measureVerts, "vert", nil, "selected vertex as x,y,z (repeatable)")
	measureCmd.Flags().StringArrayVar(&measureEdges, "edge", nil, "selected edge as x1,y1,z1:x2,y2,z2 (repeatable)")
	measureCmd.MarkFlagsMutuallyExclusive("vert", "edge")
}

func runMeasure(cmd *cobra.Command, args []string) {
	system, err := displayUnits()
	if err != nil {
		fail(err)
	}

	sel := tape.Selection{Mode: tape.ModeNone, Units: system}

	switch {
	case len(measureVerts) > 0:
		sel.Mode = tape.ModeVertex
		sel.Vertices, err = parse.Vectors(measureVerts)
	case len(measureEdges) > 0:
		sel.Mode = tape.ModeEdge
		sel.Edges, err = parse.Edges(measureEdges)
	}
	if err != nil {
		fail(err)
	}

	res, err := tape.Measure(sel)
	if err != nil {
		fail(err)
	}

	fmt.Println(res.Display)
	if len(sel.Vertices) == 2 {
		fmt.Printf("  between %s and %s\n",
			measure.FormatVector(sel.Vertices[0]),
			measure.FormatVector(sel.Vertices[1]))
	} else if len(sel.Edges) > 1 {
		fmt.Printf("  %d contiguous edges\n", len(sel.Edges))
	}
}
