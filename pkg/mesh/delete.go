package mesh

// DeleteVertices removes all vertices flagged in deleted and compacts
// the surviving entries, preserving their relative order. Per-vertex
// normals, colors and confidences are compacted in lockstep with the
// vertices, but only if they are present (exact length match) before
// the call; an attribute with a stale length is left untouched and is
// meaningless afterwards. Texture coordinates are never compacted,
// matching the attribute's lack of a presence query.
//
// A mask shorter than the vertex count is allowed: vertices beyond the
// end of the mask are kept.
//
// Faces are not modified. Any face referencing a deleted vertex holds a
// dangling index after this call; callers needing face-consistent
// deletion must filter or remap the face list themselves.
func (m *TriangleMesh) DeleteVertices(deleted []bool) {
	hasNormals := m.HasVertexNormals()
	hasColors := m.HasVertexColors()
	hasConfidences := m.HasVertexConfidences()

	keep := func(i int) bool {
		return i >= len(deleted) || !deleted[i]
	}

	next := 0
	for i := range m.Vertices {
		if !keep(i) {
			continue
		}
		if next != i {
			m.Vertices[next] = m.Vertices[i]
			if hasNormals {
				m.VertexNormals[next] = m.VertexNormals[i]
			}
			if hasColors {
				m.VertexColors[next] = m.VertexColors[i]
			}
			if hasConfidences {
				m.VertexConfidences[next] = m.VertexConfidences[i]
			}
		}
		next++
	}

	m.Vertices = m.Vertices[:next]
	if hasNormals {
		m.VertexNormals = m.VertexNormals[:next]
	}
	if hasColors {
		m.VertexColors = m.VertexColors[:next]
	}
	if hasConfidences {
		m.VertexConfidences = m.VertexConfidences[:next]
	}
}
