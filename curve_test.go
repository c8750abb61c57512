package textmesh

import "testing"

// -------------------------------------------------------------------
// Curve Tests
// -------------------------------------------------------------------

func TestLine_Eval(t *testing.T) {
	l := Line{P0: Pt(0, 0), P1: Pt(10, 20)}

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"start", 0, Pt(0, 0)},
		{"end", 1, Pt(10, 20)},
		{"midpoint", 0.5, Pt(5, 10)},
		{"quarter", 0.25, Pt(2.5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Eval(tt.t)
			if !pointsEqual(got, tt.expect) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}
}

func TestQuadBez_Eval(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(5, 10), P2: Pt(10, 0)}

	if got := q.Eval(0); !pointsEqual(got, q.P0) {
		t.Errorf("Eval(0) = %v, want %v", got, q.P0)
	}
	if got := q.Eval(1); !pointsEqual(got, q.P2) {
		t.Errorf("Eval(1) = %v, want %v", got, q.P2)
	}
	// Midpoint of a symmetric quadratic sits halfway between the chord
	// midpoint and the control point.
	if got := q.Eval(0.5); !pointsEqual(got, Pt(5, 5)) {
		t.Errorf("Eval(0.5) = %v, want (5, 5)", got)
	}
}

func TestQuadBez_EvalDegenerate(t *testing.T) {
	// All control points coincident: the curve is a single point.
	p := Pt(3, 4)
	q := QuadBez{P0: p, P1: p, P2: p}
	for _, tv := range []float64{0, 0.3, 0.5, 1} {
		if got := q.Eval(tv); !pointsEqual(got, p) {
			t.Errorf("Eval(%v) = %v, want %v", tv, got, p)
		}
	}
}

func TestCubicBez_Eval(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}

	if got := c.Eval(0); !pointsEqual(got, c.P0) {
		t.Errorf("Eval(0) = %v, want %v", got, c.P0)
	}
	if got := c.Eval(1); !pointsEqual(got, c.P3) {
		t.Errorf("Eval(1) = %v, want %v", got, c.P3)
	}
	// 1/8 P0 + 3/8 P1 + 3/8 P2 + 1/8 P3.
	if got := c.Eval(0.5); !pointsEqual(got, Pt(5, 7.5)) {
		t.Errorf("Eval(0.5) = %v, want (5, 7.5)", got)
	}
}

func TestCubicBez_EvalLinear(t *testing.T) {
	// Control points on the chord: the cubic degenerates to a line.
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 1), P2: Pt(2, 2), P3: Pt(3, 3)}
	for _, tv := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := c.Eval(tv)
		if !almostEqual(got.X, got.Y) {
			t.Errorf("Eval(%v) = %v, want a point on y=x", tv, got)
		}
	}
}

// -------------------------------------------------------------------
// Rect Tests
// -------------------------------------------------------------------

func TestRect_NewRect(t *testing.T) {
	tests := []struct {
		name      string
		p1, p2    Point
		expectMin Point
		expectMax Point
	}{
		{
			name: "normal order",
			p1:   Pt(0, 0), p2: Pt(10, 10),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "reversed order",
			p1:   Pt(10, 10), p2: Pt(0, 0),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "mixed",
			p1:   Pt(5, 0), p2: Pt(0, 5),
			expectMin: Pt(0, 0), expectMax: Pt(5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.p1, tt.p2)
			if !pointsEqual(r.Min, tt.expectMin) {
				t.Errorf("Min = %v, want %v", r.Min, tt.expectMin)
			}
			if !pointsEqual(r.Max, tt.expectMax) {
				t.Errorf("Max = %v, want %v", r.Max, tt.expectMax)
			}
		})
	}
}

func TestRect_WidthHeight(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(10, 5))
	if r.Width() != 10 {
		t.Errorf("Width() = %v, want 10", r.Width())
	}
	if r.Height() != 5 {
		t.Errorf("Height() = %v, want 5", r.Height())
	}
}

func TestRect_Union(t *testing.T) {
	r1 := NewRect(Pt(0, 0), Pt(5, 5))
	r2 := NewRect(Pt(3, 3), Pt(10, 10))
	u := r1.Union(r2)

	if !pointsEqual(u.Min, Pt(0, 0)) {
		t.Errorf("Union Min = %v, want (0, 0)", u.Min)
	}
	if !pointsEqual(u.Max, Pt(10, 10)) {
		t.Errorf("Union Max = %v, want (10, 10)", u.Max)
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(Pt(1, 2), Pt(3, 4)).Translate(Pt(-1, 1))
	if !pointsEqual(r.Min, Pt(0, 3)) || !pointsEqual(r.Max, Pt(2, 5)) {
		t.Errorf("Translate = %+v, want (0,3)-(2,5)", r)
	}
}

func TestRect_IsEmpty(t *testing.T) {
	if NewRect(Pt(0, 0), Pt(1, 1)).IsEmpty() {
		t.Error("unit rect should not be empty")
	}
	if !(Rect{}).IsEmpty() {
		t.Error("zero rect should be empty")
	}
	if !NewRect(Pt(2, 2), Pt(2, 5)).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
}
