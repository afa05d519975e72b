// Package mesh provides the triangle mesh representation shared by
// loaders, reconstruction algorithms and exporters.
//
// A TriangleMesh holds a list of vertices, optional per-vertex normals,
// colors, confidences and texture coordinates, a flat list of vertex
// indices for the faces, and optional per-face normals and colors.
// Consumers read and mutate the attribute slices directly; the mesh
// itself only provides consistency queries, normal recomputation,
// vertex deletion and memory accounting.
//
// A TriangleMesh is not safe for concurrent mutation. Share the
// *TriangleMesh pointer freely across readers, but writers need
// external locking or a single-writer discipline.
package mesh

import (
	"slices"
	"unsafe"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// VertexID indexes into the vertex list. Three consecutive entries of
// TriangleMesh.Faces form one triangle.
type VertexID = uint32

// TriangleMesh is a triangle mesh with optional per-vertex and per-face
// attributes. All attribute slices are flat and order-significant: the
// index position is the identity of the vertex or face.
//
// An optional attribute is considered present only when its length
// matches the owning entity count exactly (see the Has* methods). Any
// other length is treated as absent, even if data is still in the slice.
//
// Every value in Faces must be a valid vertex index. The mesh does not
// validate this on mutation; callers populating Faces are responsible
// for keeping indices in bounds before invoking normal recomputation.
type TriangleMesh struct {
	Vertices          []geometry.Vector3
	VertexNormals     []geometry.Vector3
	VertexColors      []geometry.Vector4
	VertexConfidences []float32
	VertexTexCoords   []geometry.Vector2

	Faces       []VertexID
	FaceNormals []geometry.Vector3
	FaceColors  []geometry.Vector4
}

// New creates a new, empty triangle mesh
func New() *TriangleMesh {
	return &TriangleMesh{}
}

// Clone creates a deep copy of the mesh. The copy shares no backing
// storage with the original.
func (m *TriangleMesh) Clone() *TriangleMesh {
	return &TriangleMesh{
		Vertices:          slices.Clone(m.Vertices),
		VertexNormals:     slices.Clone(m.VertexNormals),
		VertexColors:      slices.Clone(m.VertexColors),
		VertexConfidences: slices.Clone(m.VertexConfidences),
		VertexTexCoords:   slices.Clone(m.VertexTexCoords),
		Faces:             slices.Clone(m.Faces),
		FaceNormals:       slices.Clone(m.FaceNormals),
		FaceColors:        slices.Clone(m.FaceColors),
	}
}

// VertexCount returns the number of vertices
func (m *TriangleMesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of triangles
func (m *TriangleMesh) FaceCount() int {
	return len(m.Faces) / 3
}

// HasVertexNormals reports whether per-vertex normals are present,
// i.e. there is exactly one normal per vertex.
func (m *TriangleMesh) HasVertexNormals() bool {
	return len(m.VertexNormals) == len(m.Vertices)
}

// HasVertexColors reports whether per-vertex colors are present
func (m *TriangleMesh) HasVertexColors() bool {
	return len(m.VertexColors) == len(m.Vertices)
}

// HasVertexConfidences reports whether per-vertex confidences are present
func (m *TriangleMesh) HasVertexConfidences() bool {
	return len(m.VertexConfidences) == len(m.Vertices)
}

// HasFaceNormals reports whether per-face normals are present,
// i.e. there is exactly one normal per index triple.
func (m *TriangleMesh) HasFaceNormals() bool {
	return len(m.Faces) == 3*len(m.FaceNormals)
}

// HasFaceColors reports whether per-face colors are present
func (m *TriangleMesh) HasFaceColors() bool {
	return len(m.Faces) == 3*len(m.FaceColors)
}

// Clear resets all mesh data to empty
func (m *TriangleMesh) Clear() {
	m.Vertices = m.Vertices[:0]
	m.VertexNormals = m.VertexNormals[:0]
	m.VertexColors = m.VertexColors[:0]
	m.VertexConfidences = m.VertexConfidences[:0]
	m.VertexTexCoords = m.VertexTexCoords[:0]
	m.Faces = m.Faces[:0]
	m.FaceNormals = m.FaceNormals[:0]
	m.FaceColors = m.FaceColors[:0]
}

// ClearNormals resets the vertex and face normals to empty
func (m *TriangleMesh) ClearNormals() {
	m.VertexNormals = m.VertexNormals[:0]
	m.FaceNormals = m.FaceNormals[:0]
}

// Element byte widths, matching the float32 storage of the attribute types.
const (
	vec2Size       = int(unsafe.Sizeof(geometry.Vector2{}))
	vec3Size       = int(unsafe.Sizeof(geometry.Vector3{}))
	vec4Size       = int(unsafe.Sizeof(geometry.Vector4{}))
	confidenceSize = int(unsafe.Sizeof(float32(0)))
	vertexIDSize   = int(unsafe.Sizeof(VertexID(0)))
)

// ByteSize returns the memory consumption of the mesh in bytes: the sum
// of all attribute array footprints plus the struct header itself.
// Useful for memory-budget decisions when streaming large reconstructions.
func (m *TriangleMesh) ByteSize() int {
	return len(m.Vertices)*vec3Size +
		len(m.VertexNormals)*vec3Size +
		len(m.VertexColors)*vec4Size +
		len(m.VertexConfidences)*confidenceSize +
		len(m.VertexTexCoords)*vec2Size +
		len(m.Faces)*vertexIDSize +
		len(m.FaceNormals)*vec3Size +
		len(m.FaceColors)*vec4Size +
		int(unsafe.Sizeof(*m))
}
