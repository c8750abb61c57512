package textmesh

// extrude.go turns triangulated glyph contours into flat or extruded
// triangle meshes.

// contourGroup is one filled region of a glyph: an outer boundary plus the
// holes it encloses.
type contourGroup struct {
	outer Contour
	holes []Contour
}

// groupContours classifies flattened contours into filled regions and
// their holes. A contour is a hole iff it is enclosed by an odd number of
// other contours; each hole is assigned to the smallest enclosing outer.
// Winding declared by the font is not trusted: outers are normalized to
// counter-clockwise and holes to clockwise, in place.
func groupContours(contours []Contour) []contourGroup {
	n := len(contours)
	if n == 0 {
		return nil
	}

	depth := make([]int, n)
	for i := range contours {
		// A vertex of one contour never lies strictly inside another in a
		// well-formed glyph, so the first point is a safe probe.
		probe := contours[i][0]
		for j := range contours {
			if i != j && contours[j].ContainsPoint(probe) {
				depth[i]++
			}
		}
	}

	var groups []contourGroup
	for i, c := range contours {
		if depth[i]%2 == 0 {
			if !c.IsCCW() {
				c.Reverse()
			}
			groups = append(groups, contourGroup{outer: c})
		}
	}
	for i, c := range contours {
		if depth[i]%2 == 1 {
			if c.IsCCW() {
				c.Reverse()
			}
			best := -1
			bestArea := 0.0
			for gi := range groups {
				outer := groups[gi].outer
				if outer.ContainsPoint(c[0]) {
					if a := outer.Area(); best < 0 || a < bestArea {
						best = gi
						bestArea = a
					}
				}
			}
			if best >= 0 {
				groups[best].holes = append(groups[best].holes, c)
			}
		}
	}
	return groups
}

// BuildGlyphMesh builds the mesh for one glyph from its flattened contours,
// in local glyph space (origin at the baseline-left reference point).
//
// With depth 0 the result is a flat mesh carrying both a front and a back
// face (opposite winding, normals along +Z and -Z) so the glyph stays
// visible from behind. With depth > 0 the result is a closed solid: front
// cap at z=0, back cap at z=-depth, and side walls along every contour,
// holes included. UVs are the planar projection of the glyph bounds onto
// [0,1] x [0,1].
//
// Regions whose outer contour is degenerate are skipped; if every region is
// degenerate, ErrDegeneratePolygon is returned.
func BuildGlyphMesh(contours []Contour, depth float64) (*Mesh, error) {
	groups := groupContours(contours)
	if len(groups) == 0 {
		return nil, ErrDegeneratePolygon
	}

	bbox := contours[0].BoundingBox()
	for _, c := range contours[1:] {
		bbox = bbox.Union(c.BoundingBox())
	}

	mesh := &Mesh{}
	var lastErr error
	for _, g := range groups {
		capIndices, err := Triangulate(g.outer, g.holes)
		if err != nil {
			lastErr = err
			continue
		}
		appendRegion(mesh, g, capIndices, depth, bbox)
	}
	if mesh.IsEmpty() {
		if lastErr == nil {
			lastErr = ErrDegeneratePolygon
		}
		return nil, lastErr
	}
	return mesh, nil
}

// appendRegion emits caps and side walls for one filled region.
func appendRegion(mesh *Mesh, g contourGroup, capIndices []uint32, depth float64, bbox Rect) {
	points := make([]Point, 0, len(g.outer))
	points = append(points, g.outer...)
	for _, h := range g.holes {
		points = append(points, h...)
	}

	// Front cap at z=0, facing +Z. Cap triangles come out of the
	// triangulator counter-clockwise, which is outward here.
	frontBase := uint32(len(mesh.Positions))
	for _, p := range points {
		mesh.addVertex(V3(p.X, p.Y, 0), V3(0, 0, 1), planarUV(p, bbox))
	}
	for _, idx := range capIndices {
		mesh.Indices = append(mesh.Indices, frontBase+idx)
	}

	// Back cap with reversed winding, facing -Z. Flat glyphs keep it at
	// z=0 so the text is visible from both sides.
	backBase := uint32(len(mesh.Positions))
	for _, p := range points {
		mesh.addVertex(V3(p.X, p.Y, -depth), V3(0, 0, -1), planarUV(p, bbox))
	}
	for i := 0; i+2 < len(capIndices); i += 3 {
		mesh.Indices = append(mesh.Indices,
			backBase+capIndices[i+2], backBase+capIndices[i+1], backBase+capIndices[i])
	}

	if depth > 0 {
		appendSideWalls(mesh, g.outer, depth, bbox)
		for _, h := range g.holes {
			appendSideWalls(mesh, h, depth, bbox)
		}
	}
}

// appendSideWalls emits the wall quads connecting the front and back cap
// along one contour, two triangles per edge with outward face normals.
func appendSideWalls(mesh *Mesh, c Contour, depth float64, bbox Rect) {
	n := len(c)
	for i := 0; i < n; i++ {
		p0 := c[i]
		p1 := c[(i+1)%n]
		d := p1.Sub(p0)
		// Outward for CCW outers and CW holes alike: the right-hand side
		// of the direction of travel.
		normal := V3(d.Y, -d.X, 0).Normalize()
		if normal.Length() == 0 {
			continue
		}

		uv0 := planarUV(p0, bbox)
		uv1 := planarUV(p1, bbox)
		f0 := mesh.addVertex(V3(p0.X, p0.Y, 0), normal, uv0)
		f1 := mesh.addVertex(V3(p1.X, p1.Y, 0), normal, uv1)
		b0 := mesh.addVertex(V3(p0.X, p0.Y, -depth), normal, uv0)
		b1 := mesh.addVertex(V3(p1.X, p1.Y, -depth), normal, uv1)

		mesh.Indices = append(mesh.Indices, f0, b0, b1)
		mesh.Indices = append(mesh.Indices, f0, b1, f1)
	}
}

// planarUV maps a point in glyph space to [0,1] x [0,1] over the glyph
// bounding box.
func planarUV(p Point, bbox Rect) Point {
	w, h := bbox.Width(), bbox.Height()
	uv := Point{}
	if w > 0 {
		uv.X = (p.X - bbox.Min.X) / w
	}
	if h > 0 {
		uv.Y = (p.Y - bbox.Min.Y) / h
	}
	return uv
}
