package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/shape"
)

var (
	flagSize     float32
	flagRadius   float32
	flagSegments int
)

var generators = map[string]func() *mesh.TriangleMesh{
	"plane":  func() *mesh.TriangleMesh { return shape.Plane(flagSize, flagSize, flagSegments, flagSegments) },
	"box":    func() *mesh.TriangleMesh { return shape.Box(flagSize, flagSize, flagSize) },
	"sphere": func() *mesh.TriangleMesh { return shape.UVSphere(flagRadius, flagSegments*2, flagSegments) },
}

// buildShape generates the named primitive from the current flag values
func buildShape(name string) (*mesh.TriangleMesh, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown shape %q (run 'gomesh shapes' for a list)", name)
	}
	return gen(), nil
}

func shapeNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().Float32Var(&flagSize, "size", 1.0, "edge length for plane and box")
	cmd.Flags().Float32Var(&flagRadius, "radius", 1.0, "radius for sphere")
	cmd.Flags().IntVar(&flagSegments, "segments", 8, "subdivision segments")
}

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List available shape generators",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range shapeNames() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(shapesCmd)
}
