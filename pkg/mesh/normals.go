package mesh

import "github.com/philipparndt/gomesh/pkg/geometry"

// RecalcNormals unconditionally recomputes face and/or vertex normals.
//
// Face normals use counter-clockwise winding: for a face (i0, i1, i2)
// the normal is (v[i1]-v[i0]) x (v[i2]-v[i0]), normalized. Degenerate
// faces produce a zero vector; no error is raised.
//
// Vertex normals are the unweighted average of the normals of all faces
// a vertex belongs to, normalized. A vertex referenced by no face keeps
// a zero normal. If face is false, the current contents of FaceNormals
// are used for the accumulation; the caller must have one face normal
// per face in that case, or the index walk will go out of range.
//
// Both outputs are resized to the exact face/vertex count, discarding
// any previous content of mismatched length.
func (m *TriangleMesh) RecalcNormals(face, vertex bool) {
	if !face && !vertex {
		return
	}

	if face {
		m.FaceNormals = resize(m.FaceNormals, m.FaceCount())
	}
	if vertex {
		m.VertexNormals = resize(m.VertexNormals, len(m.Vertices))
		for i := range m.VertexNormals {
			m.VertexNormals[i] = geometry.Vector3{}
		}
	}

	for fi := 0; fi < m.FaceCount(); fi++ {
		i0 := m.Faces[fi*3+0]
		i1 := m.Faces[fi*3+1]
		i2 := m.Faces[fi*3+2]

		var fn geometry.Vector3
		if face {
			tri := geometry.NewTriangle(m.Vertices[i0], m.Vertices[i1], m.Vertices[i2])
			fn = tri.Normal()
			m.FaceNormals[fi] = fn
		} else {
			fn = m.FaceNormals[fi]
		}

		if vertex {
			m.VertexNormals[i0] = m.VertexNormals[i0].Add(fn)
			m.VertexNormals[i1] = m.VertexNormals[i1].Add(fn)
			m.VertexNormals[i2] = m.VertexNormals[i2].Add(fn)
		}
	}

	if vertex {
		for i := range m.VertexNormals {
			m.VertexNormals[i] = m.VertexNormals[i].Normalize()
		}
	}
}

// EnsureNormals recomputes face and/or vertex normals, but only those
// that are not already present per HasFaceNormals / HasVertexNormals.
// If everything requested is present this is a no-op, so it is safe to
// call after every pipeline step without redundant recomputation.
func (m *TriangleMesh) EnsureNormals(face, vertex bool) {
	face = face && !m.HasFaceNormals()
	vertex = vertex && !m.HasVertexNormals()
	m.RecalcNormals(face, vertex)
}

// resize returns s with length n, reusing the backing array when it is
// large enough.
func resize(s []geometry.Vector3, n int) []geometry.Vector3 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]geometry.Vector3, n)
}
