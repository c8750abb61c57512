package textmesh

// Curve types for 2D outline geometry.
// Based on kurbo patterns, adapted for Go idioms.

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Eval evaluates the line at parameter t (0 to 1).
// t=0 returns P0, t=1 returns P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// CubicBez represents a cubic Bezier curve with control points P0..P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^3 * P0 + 3(1-t)^2 t * P1 + 3(1-t) t^2 * P2 + t^3 * P3
	return Point{
		X: mt*mt*mt*c.P0.X + 3*mt*mt*t*c.P1.X + 3*mt*t*t*c.P2.X + t*t*t*c.P3.X,
		Y: mt*mt*mt*c.P0.Y + 3*mt*mt*t*c.P1.Y + 3*mt*t*t*c.P2.Y + t*t*t*c.P3.Y,
	}
}
