package shape

import (
	"github.com/chewxy/math32"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// UVSphere creates a latitude/longitude sphere centered on the origin
// with +Z at the north pole. wsegs is the number of segments around the
// equator (minimum 3), hsegs the number of segments from pole to pole
// (minimum 2). Pole rows share positions but keep distinct texture
// coordinates, so the seam and poles stay textureable.
func UVSphere(radius float32, wsegs, hsegs int) *mesh.TriangleMesh {
	if wsegs < 3 {
		wsegs = 3
	}
	if hsegs < 2 {
		hsegs = 2
	}

	m := mesh.New()

	for yi := 0; yi <= hsegs; yi++ {
		v := float32(yi) / float32(hsegs)
		theta := v * math32.Pi
		sinTheta, cosTheta := math32.Sincos(theta)

		for xi := 0; xi <= wsegs; xi++ {
			u := float32(xi) / float32(wsegs)
			phi := u * 2 * math32.Pi
			sinPhi, cosPhi := math32.Sincos(phi)

			normal := geometry.NewVector3(sinTheta*cosPhi, sinTheta*sinPhi, cosTheta)
			m.Vertices = append(m.Vertices, normal.Mul(radius))
			m.VertexNormals = append(m.VertexNormals, normal)
			m.VertexTexCoords = append(m.VertexTexCoords, geometry.NewVector2(u, v))
		}
	}

	stride := mesh.VertexID(wsegs + 1)
	for yi := 0; yi < hsegs; yi++ {
		for xi := 0; xi < wsegs; xi++ {
			a := mesh.VertexID(yi)*stride + mesh.VertexID(xi)
			b := a + stride
			c := b + 1
			d := a + 1

			// skip the degenerate triangle at each pole
			if yi < hsegs-1 {
				m.Faces = append(m.Faces, a, b, c)
			}
			if yi > 0 {
				m.Faces = append(m.Faces, a, c, d)
			}
		}
	}

	return m
}
