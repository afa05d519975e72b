package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

func singleFaceMesh() *TriangleMesh {
	m := New()
	m.Vertices = []geometry.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	m.Faces = []VertexID{0, 1, 2}
	return m
}

func TestRecalcFaceNormalWinding(t *testing.T) {
	m := singleFaceMesh()
	m.RecalcNormals(true, false)

	require.Len(t, m.FaceNormals, 1)
	assert.Equal(t, geometry.NewVector3(0, 0, 1), m.FaceNormals[0])
	assert.True(t, m.HasFaceNormals())
	assert.False(t, m.HasVertexNormals())
}

func TestRecalcVertexNormals(t *testing.T) {
	m := singleFaceMesh()
	m.RecalcNormals(true, true)

	require.Len(t, m.VertexNormals, 3)
	for _, n := range m.VertexNormals {
		assert.Equal(t, geometry.NewVector3(0, 0, 1), n)
	}
}

func TestRecalcVertexNormalUnreferencedVertex(t *testing.T) {
	m := singleFaceMesh()
	m.Vertices = append(m.Vertices, geometry.NewVector3(5, 5, 5))

	m.RecalcNormals(true, true)

	require.Len(t, m.VertexNormals, 4)
	assert.Equal(t, geometry.Vector3{}, m.VertexNormals[3])
}

func TestRecalcVertexNormalAveraging(t *testing.T) {
	// two faces folded along the Y axis: one facing +z, one facing +x
	m := New()
	m.Vertices = []geometry.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: -1},
	}
	m.Faces = []VertexID{
		0, 1, 2, // normal (0,0,1)
		0, 3, 2, // normal (1,0,0)
	}

	m.RecalcNormals(true, true)

	require.Len(t, m.FaceNormals, 2)
	assert.Equal(t, geometry.NewVector3(0, 0, 1), m.FaceNormals[0])
	assert.Equal(t, geometry.NewVector3(1, 0, 0), m.FaceNormals[1])

	// shared vertices average the two unit normals
	expected := geometry.NewVector3(1, 0, 1).Normalize()
	assert.InDelta(t, expected.X, m.VertexNormals[0].X, 1e-6)
	assert.InDelta(t, expected.Z, m.VertexNormals[0].Z, 1e-6)
	assert.Equal(t, geometry.NewVector3(0, 0, 1), m.VertexNormals[1])
	assert.Equal(t, geometry.NewVector3(1, 0, 0), m.VertexNormals[3])
}

func TestRecalcVertexFromStoredFaceNormals(t *testing.T) {
	m := singleFaceMesh()
	m.FaceNormals = []geometry.Vector3{{X: 0, Y: 0, Z: 5}}

	// vertex-only recompute must use the stored face normals as-is
	m.RecalcNormals(false, true)

	require.Len(t, m.VertexNormals, 3)
	for _, n := range m.VertexNormals {
		assert.Equal(t, geometry.NewVector3(0, 0, 1), n)
	}
	// face normals untouched
	assert.Equal(t, geometry.NewVector3(0, 0, 5), m.FaceNormals[0])
}

func TestRecalcDiscardsMismatchedOutput(t *testing.T) {
	m := singleFaceMesh()
	m.FaceNormals = make([]geometry.Vector3, 7)
	m.VertexNormals = make([]geometry.Vector3, 1)

	m.RecalcNormals(true, true)

	assert.Len(t, m.FaceNormals, 1)
	assert.Len(t, m.VertexNormals, 3)
}

func TestRecalcNoopWithoutRequest(t *testing.T) {
	m := singleFaceMesh()
	m.RecalcNormals(false, false)

	assert.Empty(t, m.FaceNormals)
	assert.Empty(t, m.VertexNormals)
}

func TestRecalcDegenerateFace(t *testing.T) {
	m := New()
	m.Vertices = []geometry.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0}, // collinear
	}
	m.Faces = []VertexID{0, 1, 2}

	m.RecalcNormals(true, true)

	assert.Equal(t, geometry.Vector3{}, m.FaceNormals[0])
	for _, n := range m.VertexNormals {
		assert.Equal(t, geometry.Vector3{}, n)
	}
}

func TestEnsureNormalsComputesOnlyMissing(t *testing.T) {
	m := singleFaceMesh()
	m.EnsureNormals(true, true)

	assert.True(t, m.HasFaceNormals())
	assert.True(t, m.HasVertexNormals())

	// plant sentinels: a second call must not recompute anything
	sentinel := geometry.NewVector3(7, 8, 9)
	m.FaceNormals[0] = sentinel
	m.VertexNormals[0] = sentinel

	m.EnsureNormals(true, true)

	assert.Equal(t, sentinel, m.FaceNormals[0])
	assert.Equal(t, sentinel, m.VertexNormals[0])
}

func TestEnsureNormalsPartial(t *testing.T) {
	m := singleFaceMesh()
	m.RecalcNormals(true, false)
	sentinel := geometry.NewVector3(0, 0, 3)
	m.FaceNormals[0] = sentinel

	// face normals present, vertex normals absent: only the latter is
	// computed, from the stored (sentinel) face normals
	m.EnsureNormals(true, true)

	assert.Equal(t, sentinel, m.FaceNormals[0])
	require.Len(t, m.VertexNormals, 3)
	assert.Equal(t, geometry.NewVector3(0, 0, 1), m.VertexNormals[0])
}
