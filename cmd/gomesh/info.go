package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/pkg/analysis"
)

var infoCmd = &cobra.Command{
	Use:   "info <shape>",
	Short: "Display general information about a generated mesh",
	Long:  "Show comprehensive information including dimensions, triangle count, surface area, edge statistics, attribute presence, and memory footprint.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	addShapeFlags(infoCmd)
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	m, err := buildShape(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := analysis.Analyze(m)

	fmt.Println("Mesh Information")
	fmt.Println("================")
	fmt.Printf("Shape: %s\n\n", args[0])

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n\n", result.AvgEdgeLength)

	fmt.Println("Attributes:")
	fmt.Printf("  Vertex normals: %v\n", m.HasVertexNormals())
	fmt.Printf("  Vertex colors: %v\n", m.HasVertexColors())
	fmt.Printf("  Vertex confidences: %v\n", m.HasVertexConfidences())
	fmt.Printf("  Face normals: %v\n", m.HasFaceNormals())
	fmt.Printf("  Face colors: %v\n", m.HasFaceColors())
	fmt.Printf("  Memory: %d bytes\n", m.ByteSize())
}
