package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/shape"
)

func TestAnalyzeBox(t *testing.T) {
	m := shape.Box(1, 1, 1)
	result := Analyze(m)

	assert.Equal(t, 24, result.VertexCount)
	assert.Equal(t, 12, result.TriangleCount)
	assert.Equal(t, 36, result.EdgeCount)
	assert.InDelta(t, 6.0, float64(result.SurfaceArea), 1e-5)
	assert.InDelta(t, 1.0, float64(result.Volume), 1e-5)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), result.Dimensions)
}

func TestAnalyzePlaneEdges(t *testing.T) {
	m := shape.Plane(2, 2, 1, 1)
	result := Analyze(m)

	assert.Equal(t, 2, result.TriangleCount)
	assert.Equal(t, 6, result.EdgeCount)
	assert.InDelta(t, 4.0, float64(result.SurfaceArea), 1e-5)
	assert.InDelta(t, 2.0, float64(result.MinEdgeLength), 1e-5)
	// the diagonal of the quad
	assert.InDelta(t, 2.8284271, float64(result.MaxEdgeLength), 1e-5)
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	m := shape.Plane(1, 1, 1, 1)
	m.Clear()

	result := Analyze(m)

	assert.Zero(t, result.TriangleCount)
	assert.Zero(t, result.EdgeCount)
	assert.Zero(t, result.AvgEdgeLength)
}

func TestFindLongestAndShortestEdges(t *testing.T) {
	m := shape.Plane(2, 2, 1, 1)
	result := Analyze(m)

	longest := FindLongestEdges(result, 2)
	require.Len(t, longest, 2)
	assert.InDelta(t, 2.8284271, float64(longest[0].Length), 1e-5)

	shortest := FindShortestEdges(result, 1)
	require.Len(t, shortest, 1)
	assert.InDelta(t, 2.0, float64(shortest[0].Length), 1e-5)

	// count is clamped to the number of edges
	assert.Len(t, FindLongestEdges(result, 100), result.EdgeCount)
}

func TestFindNearestVertex(t *testing.T) {
	m := shape.Box(2, 2, 2)

	idx, dist := FindNearestVertex(m, geometry.NewVector3(1.1, 1.1, 1.1))
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), m.Vertices[idx])
	assert.InDelta(t, 0.17320508, float64(dist), 1e-5)

	idx, _ = FindNearestVertex(mesh.New(), geometry.NewVector3(0, 0, 0))
	assert.Equal(t, -1, idx)
}

func TestBoundingBoxOfSphere(t *testing.T) {
	m := shape.UVSphere(1, 16, 8)
	bbox := BoundingBox(m)

	assert.InDelta(t, 1.0, float64(bbox.Max.Z), 1e-5)
	assert.InDelta(t, -1.0, float64(bbox.Min.Z), 1e-5)
}
