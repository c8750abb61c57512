package textmesh

// Mesh is triangle-list geometry: per-vertex positions, normals and UVs
// plus an index buffer. Triples of indices form triangles whose
// counter-clockwise winding faces outward.
//
// A Mesh is owned by whoever produced it; the pipeline never aliases one
// across builds.
type Mesh struct {
	Positions []Vec3
	Normals   []Vec3
	UVs       []Point
	Indices   []uint32
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int {
	return len(m.Positions)
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// addVertex appends one vertex and returns its index.
func (m *Mesh) addVertex(pos, normal Vec3, uv Point) uint32 {
	m.Positions = append(m.Positions, pos)
	m.Normals = append(m.Normals, normal)
	m.UVs = append(m.UVs, uv)
	return uint32(len(m.Positions) - 1)
}

// Translate shifts every vertex position by the given offset.
// Normals and UVs are unaffected.
func (m *Mesh) Translate(d Vec3) {
	for i := range m.Positions {
		m.Positions[i] = m.Positions[i].Add(d)
	}
}

// Append merges other into m with its positions shifted by offset.
// Indices are rebased onto m's vertex range. other is not modified.
func (m *Mesh) Append(other *Mesh, offset Vec3) {
	base := uint32(len(m.Positions))
	for _, p := range other.Positions {
		m.Positions = append(m.Positions, p.Add(offset))
	}
	m.Normals = append(m.Normals, other.Normals...)
	m.UVs = append(m.UVs, other.UVs...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// BoundingBox2D returns the bounding box of the mesh's vertex positions
// projected onto the XY plane. Returns a zero Rect for an empty mesh.
func (m *Mesh) BoundingBox2D() Rect {
	if len(m.Positions) == 0 {
		return Rect{}
	}
	first := Pt(m.Positions[0].X, m.Positions[0].Y)
	bbox := Rect{Min: first, Max: first}
	for _, v := range m.Positions[1:] {
		p := Pt(v.X, v.Y)
		bbox = bbox.Union(Rect{Min: p, Max: p})
	}
	return bbox
}
