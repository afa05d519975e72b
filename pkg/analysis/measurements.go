// Package analysis provides read-only measurements over a triangle
// mesh. It never mutates the mesh it is given.
package analysis

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// EdgeInfo contains information about an edge in the mesh
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float32
	FaceID int
}

// MeasurementResult contains various measurements of a triangle mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float32
	SurfaceArea   float32
	VertexCount   int
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float32
	MaxEdgeLength float32
	AvgEdgeLength float32
	AllEdges      []EdgeInfo
}

// Analyze performs comprehensive analysis on a triangle mesh
func Analyze(m *mesh.TriangleMesh) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   BoundingBox(m),
		SurfaceArea:   SurfaceArea(m),
		VertexCount:   m.VertexCount(),
		TriangleCount: m.FaceCount(),
		AllEdges:      make([]EdgeInfo, 0, 3*m.FaceCount()),
	}

	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	minLength := float32(math32.MaxFloat32)
	maxLength := float32(0)
	totalLength := float32(0)

	for fi := 0; fi < m.FaceCount(); fi++ {
		v1 := m.Vertices[m.Faces[fi*3+0]]
		v2 := m.Vertices[m.Faces[fi*3+1]]
		v3 := m.Vertices[m.Faces[fi*3+2]]

		edges := [3][2]geometry.Vector3{
			{v1, v2},
			{v2, v3},
			{v3, v1},
		}

		for _, edge := range edges {
			length := edge[0].Distance(edge[1])

			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:  edge[0],
				End:    edge[1],
				Length: length,
				FaceID: fi,
			})

			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.EdgeCount = len(result.AllEdges)
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	if result.EdgeCount > 0 {
		result.AvgEdgeLength = totalLength / float32(result.EdgeCount)
	}

	return result
}

// BoundingBox calculates the bounding box of all mesh vertices
func BoundingBox(m *mesh.TriangleMesh) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func SurfaceArea(m *mesh.TriangleMesh) float32 {
	totalArea := float32(0)
	for fi := 0; fi < m.FaceCount(); fi++ {
		tri := geometry.NewTriangle(
			m.Vertices[m.Faces[fi*3+0]],
			m.Vertices[m.Faces[fi*3+1]],
			m.Vertices[m.Faces[fi*3+2]],
		)
		totalArea += tri.Area()
	}
	return totalArea
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindNearestVertex finds the vertex in the mesh nearest to a given
// point and returns its index and distance. The index is -1 for a mesh
// without vertices.
func FindNearestVertex(m *mesh.TriangleMesh, point geometry.Vector3) (int, float32) {
	nearest := -1
	minDistance := float32(math32.MaxFloat32)

	for i, vertex := range m.Vertices {
		distance := point.Distance(vertex)
		if distance < minDistance {
			minDistance = distance
			nearest = i
		}
	}

	return nearest, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float32, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
