package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"edgewise/internal/config"
	"edgewise/pkg/units"
	"edgewise/version"
)

var unitFlag string

var rootCmd = &cobra.Command{
	Use:   "edgewise",
	Short: "A tape measure for mesh selections",
	Long: `edgewise measures distances, edge lengths, angles and cursor offsets
over selected mesh geometry. Vertices are written as x,y,z and edges as
x1,y1,z1:x2,y2,z2; within one selection, identical endpoint coordinates
name the same vertex.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&unitFlag, "units", "u", "", "display units: metric or imperial (default from config)")
}

// displayUnits resolves the unit system from the --units flag, falling
// back to the config file default.
func displayUnits() (units.System, error) {
	if unitFlag != "" {
		cfg := config.Config{Units: unitFlag}
		return cfg.UnitSystem()
	}

	cfg, path, err := config.Load()
	if err != nil {
		return units.Metric, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg.UnitSystem()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
