package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"edgewise/internal/config"
	"edgewise/internal/parse"
	"edgewise/internal/tape"
	"edgewise/pkg/geometry"
)

var (
	axisVert   string
	axisCursor string
	axisName   string
)

var axisCmd = &cobra.Command{
	Use:   "axis",
	Short: "Measure vertex distance from the cursor along one axis",
	Long: `Measure the absolute distance between exactly one selected vertex and
the reference cursor along the X, Y or Z axis.`,
	Example: `  edgewise axis --vert 5,0,0 --cursor 0,0,0 --axis x`,
	Run:     runAxis,
}

func init() {
	rootCmd.AddCommand(axisCmd)

	axisCmd.Flags().StringVar(&axisVert, "vert", "", "selected vertex as x,y,z")
	axisCmd.Flags().StringVar(&axisCursor, "cursor", "0,0,0", "cursor position as x,y,z")
	axisCmd.Flags().StringVar(&axisName, "axis", "", "axis: x, y or z (default from config)")

	axisCmd.MarkFlagRequired("vert")
}

func runAxis(cmd *cobra.Command, args []string) {
	system, err := displayUnits()
	if err != nil {
		fail(err)
	}

	axis, err := resolveAxis()
	if err != nil {
		fail(err)
	}

	vert, err := parse.Vector(axisVert)
	if err != nil {
		fail(err)
	}
	cursor, err := parse.Vector(axisCursor)
	if err != nil {
		fail(err)
	}

	sel := tape.Selection{
		Vertices: []geometry.Vector3{vert},
		Cursor:   cursor,
		Units:    system,
	}

	res, err := tape.MeasureAxisDistance(sel, axis)
	if err != nil {
		fail(err)
	}

	fmt.Println(res.Display)
}

func resolveAxis() (geometry.Axis, error) {
	if axisName != "" {
		return geometry.ParseAxis(axisName)
	}

	cfg, path, err := config.Load()
	if err != nil {
		return geometry.AxisX, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg.DefaultAxis()
}
