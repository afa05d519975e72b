package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagRecalc bool

var normalsCmd = &cobra.Command{
	Use:   "normals <shape>",
	Short: "Compute and report normals for a generated mesh",
	Long:  "Ensure face and vertex normals are present on the generated mesh and report the result. With --recalc the normals are recomputed from scratch even if present.",
	Args:  cobra.ExactArgs(1),
	Run:   runNormals,
}

func init() {
	addShapeFlags(normalsCmd)
	normalsCmd.Flags().BoolVar(&flagRecalc, "recalc", false, "recompute normals even if already present")
	rootCmd.AddCommand(normalsCmd)
}

func runNormals(cmd *cobra.Command, args []string) {
	m, err := buildShape(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hadFace := m.HasFaceNormals()
	hadVertex := m.HasVertexNormals()

	if flagRecalc {
		m.RecalcNormals(true, true)
	} else {
		m.EnsureNormals(true, true)
	}

	fmt.Println("Normals")
	fmt.Println("=======")
	fmt.Printf("Shape: %s\n\n", args[0])
	fmt.Printf("Face normals: %d (present before: %v)\n", len(m.FaceNormals), hadFace)
	fmt.Printf("Vertex normals: %d (present before: %v)\n", len(m.VertexNormals), hadVertex)

	// a zero vertex normal means the vertex is not used by any face
	zero := 0
	for _, n := range m.VertexNormals {
		if n.LengthSquared() == 0 {
			zero++
		}
	}
	fmt.Printf("Unreferenced vertices: %d\n", zero)
	fmt.Printf("Memory: %d bytes\n", m.ByteSize())
}
