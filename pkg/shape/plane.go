// Package shape provides procedural mesh generators. They are the
// in-process producers used by tools and tests to populate a
// TriangleMesh without any file input: each generator fills vertices,
// vertex normals, texture coordinates and faces.
package shape

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Plane creates a subdivided rectangle in the XY plane, centered on the
// origin and facing +Z. wsegs and dsegs are the number of segments
// along width (X) and depth (Y) and are clamped to at least 1.
func Plane(width, depth float32, wsegs, dsegs int) *mesh.TriangleMesh {
	if wsegs < 1 {
		wsegs = 1
	}
	if dsegs < 1 {
		dsegs = 1
	}

	m := mesh.New()
	normal := geometry.NewVector3(0, 0, 1)

	for yi := 0; yi <= dsegs; yi++ {
		v := float32(yi) / float32(dsegs)
		y := (v - 0.5) * depth
		for xi := 0; xi <= wsegs; xi++ {
			u := float32(xi) / float32(wsegs)
			x := (u - 0.5) * width

			m.Vertices = append(m.Vertices, geometry.NewVector3(x, y, 0))
			m.VertexNormals = append(m.VertexNormals, normal)
			m.VertexTexCoords = append(m.VertexTexCoords, geometry.NewVector2(u, v))
		}
	}

	stride := mesh.VertexID(wsegs + 1)
	for yi := 0; yi < dsegs; yi++ {
		for xi := 0; xi < wsegs; xi++ {
			a := mesh.VertexID(yi)*stride + mesh.VertexID(xi)
			b := a + 1
			c := b + stride
			d := a + stride
			m.Faces = append(m.Faces, a, b, c, a, c, d)
		}
	}

	return m
}
