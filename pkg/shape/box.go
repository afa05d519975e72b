package shape

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Box creates an axis-aligned cuboid centered on the origin. Each side
// has its own four vertices so that face normals stay sharp, giving 24
// vertices and 12 triangles.
func Box(width, height, depth float32) *mesh.TriangleMesh {
	hx, hy, hz := width/2, height/2, depth/2

	m := mesh.New()

	// Each side is a quad: origin corner plus two edge vectors whose
	// cross product points outward.
	sides := []struct {
		origin, u, v geometry.Vector3
	}{
		{geometry.NewVector3(-hx, -hy, hz), geometry.NewVector3(width, 0, 0), geometry.NewVector3(0, height, 0)},   // +z
		{geometry.NewVector3(hx, -hy, -hz), geometry.NewVector3(-width, 0, 0), geometry.NewVector3(0, height, 0)},  // -z
		{geometry.NewVector3(hx, -hy, hz), geometry.NewVector3(0, 0, -depth), geometry.NewVector3(0, height, 0)},   // +x
		{geometry.NewVector3(-hx, -hy, -hz), geometry.NewVector3(0, 0, depth), geometry.NewVector3(0, height, 0)},  // -x
		{geometry.NewVector3(-hx, hy, hz), geometry.NewVector3(width, 0, 0), geometry.NewVector3(0, 0, -depth)},    // +y
		{geometry.NewVector3(-hx, -hy, -hz), geometry.NewVector3(width, 0, 0), geometry.NewVector3(0, 0, depth)},   // -y
	}

	for _, s := range sides {
		addQuad(m, s.origin, s.u, s.v)
	}

	return m
}

// addQuad appends a quad as two CCW triangles, with the normal u x v.
func addQuad(m *mesh.TriangleMesh, origin, u, v geometry.Vector3) {
	base := mesh.VertexID(len(m.Vertices))
	normal := u.Cross(v).Normalize()

	m.Vertices = append(m.Vertices,
		origin,
		origin.Add(u),
		origin.Add(u).Add(v),
		origin.Add(v),
	)
	m.VertexNormals = append(m.VertexNormals, normal, normal, normal, normal)
	m.VertexTexCoords = append(m.VertexTexCoords,
		geometry.NewVector2(0, 0),
		geometry.NewVector2(1, 0),
		geometry.NewVector2(1, 1),
		geometry.NewVector2(0, 1),
	)
	m.Faces = append(m.Faces, base, base+1, base+2, base, base+2, base+3)
}
