package textmesh

import "math"

// triangulate.go implements ear-clipping triangulation of a polygon with
// holes, following the earcut algorithm (hole elimination via bridge edges,
// local self-intersection curing, split-and-recurse fallback).

// degenerateAreaEps is the absolute signed-area tolerance below which the
// outer contour is rejected as degenerate.
const degenerateAreaEps = 1e-12

// Triangulate triangulates the polygon bounded by the outer contour minus
// the given holes. All contours must lie in the same plane. The returned
// triangle indices refer to the combined vertex set: the outer contour's
// points first, then each hole's points in input order. Triangles wind
// counter-clockwise when the outer contour does.
//
// Any valid triangulation may be returned; the guaranteed property is that
// the triangles exactly cover the outer area minus the holes. Returns
// ErrDegeneratePolygon if the outer contour has fewer than 3 distinct
// points or zero signed area.
func Triangulate(outer Contour, holes []Contour) ([]uint32, error) {
	if countDistinct(outer) < 3 || math.Abs(outer.SignedArea()) <= degenerateAreaEps {
		return nil, ErrDegeneratePolygon
	}

	// The outer ring is traversed in CCW order, holes in CW order.
	// Traversal direction only affects node linking; emitted indices always
	// refer to the input order.
	head := linkRing(outer, 0, !outer.IsCCW())
	offset := uint32(len(outer))
	var holeHeads []*earNode
	for _, h := range holes {
		if len(h) >= 3 {
			hn := linkRing(h, offset, h.IsCCW())
			holeHeads = append(holeHeads, hn)
		}
		offset += uint32(len(h))
	}
	if len(holeHeads) > 0 {
		head = eliminateHoles(holeHeads, head)
	}

	head = filterPoints(head, nil)
	if head == nil {
		return nil, ErrDegeneratePolygon
	}

	indices := make([]uint32, 0, 3*len(outer))
	indices = earcutLinked(head, indices, 0)
	return indices, nil
}

// countDistinct returns the number of distinct points in the contour.
func countDistinct(c Contour) int {
	seen := make(map[Point]struct{}, len(c))
	for _, p := range c {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// earNode is a doubly linked vertex in the active polygon ring.
type earNode struct {
	i          uint32 // index into the combined vertex set
	p          Point
	prev, next *earNode
	steiner    bool
}

// insertNode inserts a node with the given index and point after last.
func insertNode(i uint32, p Point, last *earNode) *earNode {
	n := &earNode{i: i, p: p}
	if last == nil {
		n.prev = n
		n.next = n
	} else {
		n.next = last.next
		n.prev = last
		last.next.prev = n
		last.next = n
	}
	return n
}

func removeNode(n *earNode) {
	n.next.prev = n.prev
	n.prev.next = n.next
}

// linkRing builds a circular doubly linked list from the contour points,
// walking the contour backwards when reverse is set. Node indices are
// offset by base to address the combined vertex set.
func linkRing(c Contour, base uint32, reverse bool) *earNode {
	var last *earNode
	if reverse {
		for i := len(c) - 1; i >= 0; i-- {
			last = insertNode(base+uint32(i), c[i], last)
		}
	} else {
		for i := 0; i < len(c); i++ {
			last = insertNode(base+uint32(i), c[i], last)
		}
	}
	// Drop a duplicated closing point if present.
	if last != nil && nodesEqual(last, last.next) {
		removeNode(last)
		last = last.next
	}
	return last
}

// filterPoints removes collinear and duplicate points from the ring.
// Returns nil if the ring collapses below a triangle.
func filterPoints(start, end *earNode) *earNode {
	if start == nil {
		return nil
	}
	if end == nil {
		end = start
	}

	p := start
	for {
		again := false
		if !p.steiner && (nodesEqual(p, p.next) || triArea(p.prev.p, p.p, p.next.p) == 0) {
			removeNode(p)
			p = p.prev
			end = p
			if p == p.next {
				return nil
			}
			again = true
		} else {
			p = p.next
		}
		if !again && p == end {
			break
		}
	}
	return end
}

// earcutLinked is the main ear-clipping loop. pass tracks which fallback
// stages have already run.
func earcutLinked(ear *earNode, indices []uint32, pass int) []uint32 {
	if ear == nil {
		return indices
	}

	stop := ear
	for ear.prev != ear.next {
		prev := ear.prev
		next := ear.next

		if isEar(ear) {
			indices = append(indices, prev.i, ear.i, next.i)
			removeNode(ear)

			// Skipping the next vertex produces fewer sliver triangles.
			ear = next.next
			stop = next.next
			continue
		}

		ear = next

		// The whole remaining ring was scanned without finding an ear.
		if ear == stop {
			switch pass {
			case 0:
				ear = filterPoints(ear, nil)
				indices = earcutLinked(ear, indices, 1)
			case 1:
				ear = filterPoints(ear, nil)
				if ear != nil {
					ear = cureLocalIntersections(ear, &indices)
					indices = earcutLinked(ear, indices, 2)
				}
			case 2:
				indices = splitEarcut(ear, indices)
			}
			return indices
		}
	}
	return indices
}

// isEar reports whether the ear formed by (ear.prev, ear, ear.next) is a
// valid ear: convex and containing no other ring vertex.
func isEar(ear *earNode) bool {
	a, b, c := ear.prev, ear, ear.next
	if triArea(a.p, b.p, c.p) >= 0 {
		return false // reflex or collinear
	}

	p := ear.next.next
	for p != ear.prev {
		if pointInTriangle(a.p, b.p, c.p, p.p) && triArea(p.prev.p, p.p, p.next.p) >= 0 {
			return false
		}
		p = p.next
	}
	return true
}

// cureLocalIntersections walks the ring and clips pairs of edges that
// intersect locally, which repairs small self-intersections left by
// nearly-degenerate input.
func cureLocalIntersections(start *earNode, indices *[]uint32) *earNode {
	p := start
	for {
		a, b := p.prev, p.next.next
		if !nodesEqual(a, b) && segmentsIntersect(a.p, p.p, p.next.p, b.p) &&
			locallyInside(a, b) && locallyInside(b, a) {
			*indices = append(*indices, a.i, p.i, b.i)
			removeNode(p)
			removeNode(p.next)
			p = b
			start = b
		}
		p = p.next
		if p == start {
			break
		}
	}
	return filterPoints(p, nil)
}

// splitEarcut is the last-resort fallback: split the remaining ring into
// two by a valid diagonal and triangulate each half independently.
func splitEarcut(start *earNode, indices []uint32) []uint32 {
	a := start
	for {
		b := a.next.next
		for b != a.prev {
			if a.i != b.i && isValidDiagonal(a, b) {
				c := splitRing(a, b)
				a = filterPoints(a, a.next)
				c = filterPoints(c, c.next)
				indices = earcutLinked(a, indices, 0)
				return earcutLinked(c, indices, 0)
			}
			b = b.next
		}
		a = a.next
		if a == start {
			break
		}
	}
	return indices
}

// eliminateHoles connects every hole ring to the outer ring with bridge
// edges, producing a single ring that ear clipping can consume. Holes are
// processed left to right.
func eliminateHoles(holeHeads []*earNode, outer *earNode) *earNode {
	queue := make([]*earNode, 0, len(holeHeads))
	for _, h := range holeHeads {
		if h == h.next {
			h.steiner = true
		}
		queue = append(queue, leftmostNode(h))
	}
	// Sort by x, leftmost hole first.
	for i := 1; i < len(queue); i++ {
		for j := i; j > 0 && queue[j].p.X < queue[j-1].p.X; j-- {
			queue[j], queue[j-1] = queue[j-1], queue[j]
		}
	}
	for _, h := range queue {
		outer = eliminateHole(h, outer)
		if outer == nil {
			break
		}
		outer = filterPoints(outer, outer.next)
		if outer == nil {
			break
		}
	}
	return outer
}

// eliminateHole finds a bridge from the hole's leftmost vertex to the outer
// ring and joins the two rings through it.
func eliminateHole(hole, outer *earNode) *earNode {
	bridge := findHoleBridge(hole, outer)
	if bridge == nil {
		return outer
	}
	bridgeReverse := splitRing(bridge, hole)
	filterPoints(bridgeReverse, bridgeReverse.next)
	return filterPoints(bridge, bridge.next)
}

// findHoleBridge locates an outer-ring vertex visible from the hole's
// leftmost vertex using David Eberly's horizontal-ray strategy.
func findHoleBridge(hole, outer *earNode) *earNode {
	p := outer
	hx, hy := hole.p.X, hole.p.Y
	qx := math.Inf(-1)
	var m *earNode

	// Find the edge intersected by a leftward ray from the hole vertex;
	// the intersection point with the largest x below hx is the candidate
	// connection segment.
	for {
		if hy <= p.p.Y && hy >= p.next.p.Y && p.next.p.Y != p.p.Y {
			x := p.p.X + (hy-p.p.Y)*(p.next.p.X-p.p.X)/(p.next.p.Y-p.p.Y)
			if x <= hx && x > qx {
				qx = x
				// Keep the edge endpoint with the smaller x.
				m = p
				if p.p.X >= p.next.p.X {
					m = p.next
				}
				if x == hx {
					return m // hole touches the outer ring
				}
			}
		}
		p = p.next
		if p == outer {
			break
		}
	}

	if m == nil {
		return nil
	}

	// Check candidate points inside the triangle (hole point, intersection,
	// endpoint); pick the reflex one with the minimum angle to the ray.
	stop := m
	mp := m.p
	tanMin := math.Inf(1)

	p = m
	for {
		if hx >= p.p.X && p.p.X >= mp.X && hx != p.p.X &&
			pointInTriangle(Point{X: terX(hy < mp.Y, hx, qx), Y: hy}, mp, Point{X: terX(hy >= mp.Y, hx, qx), Y: hy}, p.p) {
			tan := math.Abs(hy-p.p.Y) / (hx - p.p.X)
			if locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (p.p.X > m.p.X || (p.p.X == m.p.X && sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}
		p = p.next
		if p == stop {
			break
		}
	}
	return m
}

func terX(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// leftmostNode returns the ring node with the smallest x (then y).
func leftmostNode(start *earNode) *earNode {
	p := start
	leftmost := start
	for {
		if p.p.X < leftmost.p.X || (p.p.X == leftmost.p.X && p.p.Y < leftmost.p.Y) {
			leftmost = p
		}
		p = p.next
		if p == start {
			break
		}
	}
	return leftmost
}

// splitRing splits the ring through the diagonal a-b, duplicating the two
// endpoints, and returns the node starting the second ring.
func splitRing(a, b *earNode) *earNode {
	a2 := &earNode{i: a.i, p: a.p}
	b2 := &earNode{i: b.i, p: b.p}
	an, bp := a.next, b.prev

	a.next = b
	b.prev = a

	a2.next = an
	an.prev = a2

	b2.next = a2
	a2.prev = b2

	bp.next = b2
	b2.prev = bp

	return b2
}

// isValidDiagonal reports whether a-b is a diagonal lying inside the
// polygon and crossing no edges.
func isValidDiagonal(a, b *earNode) bool {
	return a.next.i != b.i && a.prev.i != b.i &&
		!intersectsPolygon(a, b) &&
		(locallyInside(a, b) && locallyInside(b, a) && middleInside(a, b) &&
			(triArea(a.prev.p, a.p, b.prev.p) != 0 || triArea(a.p, b.prev.p, b.p) != 0) ||
			nodesEqual(a, b) && triArea(a.prev.p, a.p, a.next.p) > 0 && triArea(b.prev.p, b.p, b.next.p) > 0)
}

// triArea returns twice the signed area of the triangle (p, q, r).
// Negative for counter-clockwise order in Y-up space as linked here.
func triArea(p, q, r Point) float64 {
	return (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
}

func nodesEqual(a, b *earNode) bool {
	return a.p.X == b.p.X && a.p.Y == b.p.Y
}

// pointInTriangle reports whether p lies inside or on the triangle (a, b, c).
func pointInTriangle(a, b, c, p Point) bool {
	return (c.X-p.X)*(a.Y-p.Y) >= (a.X-p.X)*(c.Y-p.Y) &&
		(a.X-p.X)*(b.Y-p.Y) >= (b.X-p.X)*(a.Y-p.Y) &&
		(b.X-p.X)*(c.Y-p.Y) >= (c.X-p.X)*(b.Y-p.Y)
}

// segmentsIntersect reports whether segments p1-q1 and p2-q2 intersect.
func segmentsIntersect(p1, q1, p2, q2 Point) bool {
	o1 := sign(triArea(p1, q1, p2))
	o2 := sign(triArea(p1, q1, q2))
	o3 := sign(triArea(p2, q2, p1))
	o4 := sign(triArea(p2, q2, q1))

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// onSegment reports whether q lies on segment p-r, assuming collinearity.
func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// intersectsPolygon reports whether the segment a-b crosses any ring edge.
func intersectsPolygon(a, b *earNode) bool {
	p := a
	for {
		if p.i != a.i && p.next.i != a.i && p.i != b.i && p.next.i != b.i &&
			segmentsIntersect(p.p, p.next.p, a.p, b.p) {
			return true
		}
		p = p.next
		if p == a {
			break
		}
	}
	return false
}

// locallyInside reports whether the segment a-b lies inside the polygon in
// the neighborhood of a.
func locallyInside(a, b *earNode) bool {
	if triArea(a.prev.p, a.p, a.next.p) < 0 {
		return triArea(a.p, b.p, a.next.p) >= 0 && triArea(a.p, a.prev.p, b.p) >= 0
	}
	return triArea(a.p, b.p, a.prev.p) < 0 || triArea(a.p, a.next.p, b.p) < 0
}

// middleInside reports whether the midpoint of a-b is inside the polygon.
func middleInside(a, b *earNode) bool {
	mid := Point{X: (a.p.X + b.p.X) / 2, Y: (a.p.Y + b.p.Y) / 2}
	inside := false
	p := a
	for {
		pi, pn := p.p, p.next.p
		if (pi.Y > mid.Y) != (pn.Y > mid.Y) && pn.Y != pi.Y &&
			mid.X < (pn.X-pi.X)*(mid.Y-pi.Y)/(pn.Y-pi.Y)+pi.X {
			inside = !inside
		}
		p = p.next
		if p == a {
			break
		}
	}
	return inside
}

// sectorContainsSector reports whether the angular sector at m contains the
// sector at p; used as a tie-break when choosing hole bridge endpoints.
func sectorContainsSector(m, p *earNode) bool {
	return triArea(m.prev.p, m.p, p.prev.p) < 0 && triArea(p.next.p, m.p, m.next.p) < 0
}
