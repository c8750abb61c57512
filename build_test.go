package textmesh

import (
	"errors"
	"reflect"
	"testing"
)

// stubSource is an in-memory OutlineSource for tests.
type stubSource struct {
	glyphs  map[rune]Glyph
	metrics Metrics
}

func (s *stubSource) Glyph(r rune) (Glyph, bool) {
	g, ok := s.glyphs[r]
	return g, ok
}

func (s *stubSource) Metrics() Metrics {
	return s.metrics
}

// testSource covers a handful of characters: solid squares, a ring with a
// hole, and a space with advance only.
func testSource() *stubSource {
	return &stubSource{
		glyphs: map[rune]Glyph{
			'A': squareGlyph(),
			'B': squareGlyph(),
			'O': ringGlyph(),
			'é': squareGlyph(),
			' ': {Advance: 0.5},
		},
		// LineHeight() == 2.
		metrics: Metrics{Ascent: 1.5, Descent: 0.5, LineGap: 0},
	}
}

func flatStyle() Style {
	return Style{
		Depth:       0,
		Subdivision: 4,
		Anchor:      AnchorBottomLeft,
		Justify:     JustifyLeft,
	}
}

func TestBuild_EmptyText(t *testing.T) {
	result, err := Build(testSource(), "", DefaultStyle())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result.Mesh.NumTriangles() != 0 {
		t.Errorf("triangles = %d, want 0", result.Mesh.NumTriangles())
	}
	if !result.Bounds.IsEmpty() {
		t.Errorf("bounds = %+v, want zero-area", result.Bounds)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", result.Warnings)
	}
}

func TestBuild_NilSource(t *testing.T) {
	_, err := Build(nil, "A", DefaultStyle())
	if !errors.Is(err, ErrNilSource) {
		t.Errorf("error = %v, want ErrNilSource", err)
	}
}

func TestBuild_InvalidSubdivision(t *testing.T) {
	style := flatStyle()
	style.Subdivision = 0
	_, err := Build(testSource(), "A", style)
	if !errors.Is(err, ErrInvalidSubdivision) {
		t.Errorf("error = %v, want ErrInvalidSubdivision", err)
	}
}

func TestBuild_SingleGlyph(t *testing.T) {
	result, err := Build(testSource(), "A", flatStyle())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Flat square: front and back face, 2 triangles each.
	if result.Mesh.NumTriangles() != 4 {
		t.Errorf("triangles = %d, want 4", result.Mesh.NumTriangles())
	}
	want := NewRect(Pt(0, 0), Pt(1, 1))
	if !pointsEqual(result.Bounds.Min, want.Min) || !pointsEqual(result.Bounds.Max, want.Max) {
		t.Errorf("bounds = %+v, want %+v", result.Bounds, want)
	}
}

func TestBuild_MissingGlyphSkipped(t *testing.T) {
	result, err := Build(testSource(), "AzB", flatStyle())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(result.Warnings))
	}
	w := result.Warnings[0]
	if w.Rune != 'z' || w.Index != 1 || !errors.Is(w, ErrMissingGlyph) {
		t.Errorf("warning = %+v, want missing glyph 'z' at index 1", w)
	}
	// The skipped character takes no horizontal space.
	if len(result.Placements) != 2 {
		t.Fatalf("placements = %d, want 2", len(result.Placements))
	}
	if !almostEqual(result.Placements[1].Offset.X, squareGlyph().Advance) {
		t.Errorf("B at x=%v, want %v", result.Placements[1].Offset.X, squareGlyph().Advance)
	}
}

func TestBuild_FallbackGlyph(t *testing.T) {
	result, err := Build(testSource(), "z", flatStyle(), WithFallbackGlyph('A'))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none with fallback", result.Warnings)
	}
	if result.Mesh.NumTriangles() != 4 {
		t.Errorf("triangles = %d, want the fallback square's 4", result.Mesh.NumTriangles())
	}
}

func TestBuild_FallbackAlsoMissing(t *testing.T) {
	result, err := Build(testSource(), "z", flatStyle(), WithFallbackGlyph('y'))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(result.Warnings))
	}
	if result.Mesh.NumTriangles() != 0 {
		t.Errorf("triangles = %d, want 0", result.Mesh.NumTriangles())
	}
}

func TestBuild_WhitespaceAdvances(t *testing.T) {
	result, err := Build(testSource(), "A A", flatStyle())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(result.Placements) != 3 {
		t.Fatalf("placements = %d, want 3", len(result.Placements))
	}
	wantX := squareGlyph().Advance + 0.5
	if !almostEqual(result.Placements[2].Offset.X, wantX) {
		t.Errorf("second A at x=%v, want %v", result.Placements[2].Offset.X, wantX)
	}
	// The space itself contributes no triangles: same as two squares.
	if result.Mesh.NumTriangles() != 8 {
		t.Errorf("triangles = %d, want 8", result.Mesh.NumTriangles())
	}
}

func TestBuild_MultilineOffset(t *testing.T) {
	for _, justify := range []Justify{JustifyLeft, JustifyCenter, JustifyRight} {
		t.Run(justify.String(), func(t *testing.T) {
			style := flatStyle()
			style.Justify = justify
			result, err := Build(testSource(), "A\nB", style)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if len(result.Placements) != 2 {
				t.Fatalf("placements = %d, want 2", len(result.Placements))
			}
			dy := result.Placements[1].Offset.Y - result.Placements[0].Offset.Y
			if !almostEqual(dy, -2) {
				t.Errorf("line offset = %v, want -2 (line height 2)", dy)
			}
		})
	}
}

func TestBuild_LineSpacing(t *testing.T) {
	style := flatStyle()
	style.LineSpacing = 1.5
	result, err := Build(testSource(), "A\nB", style)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dy := result.Placements[1].Offset.Y - result.Placements[0].Offset.Y
	if !almostEqual(dy, -3) {
		t.Errorf("line offset = %v, want -3 with spacing 1.5", dy)
	}
}

func TestBuild_AnchorCenterShift(t *testing.T) {
	style := flatStyle()
	style.Anchor = AnchorCenter
	result, err := Build(testSource(), "A", style)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Unit square bounds centered: (-0.5,-0.5)-(0.5,0.5).
	if !pointsEqual(result.Bounds.Min, Pt(-0.5, -0.5)) || !pointsEqual(result.Bounds.Max, Pt(0.5, 0.5)) {
		t.Errorf("bounds = %+v, want centered unit square", result.Bounds)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	style := DefaultStyle()
	style.Depth = 0.3
	first, err := Build(testSource(), "AO\nB O", style)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := Build(testSource(), "AO\nB O", style)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !reflect.DeepEqual(first.Mesh, second.Mesh) {
		t.Error("rebuild produced different geometry")
	}
	if !reflect.DeepEqual(first.Placements, second.Placements) {
		t.Error("rebuild produced different placements")
	}
}

func TestBuild_NFCNormalization(t *testing.T) {
	// Decomposed "e" + combining acute normalizes to the composed rune the
	// source covers.
	result, err := Build(testSource(), "é", flatStyle())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none after NFC", result.Warnings)
	}
	if result.Mesh.NumTriangles() != 4 {
		t.Errorf("triangles = %d, want 4", result.Mesh.NumTriangles())
	}
}

func TestBuildGlyphs_MatchesMerged(t *testing.T) {
	style := flatStyle()
	style.Depth = 0.2
	merged, err := Build(testSource(), "AOB", style)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	perChar, err := BuildGlyphs(testSource(), "AOB", style)
	if err != nil {
		t.Fatalf("BuildGlyphs: %v", err)
	}

	if len(perChar.Glyphs) != 3 {
		t.Fatalf("glyphs = %d, want 3", len(perChar.Glyphs))
	}
	total := 0
	for _, g := range perChar.Glyphs {
		total += g.Mesh.NumTriangles()
	}
	if total != merged.Mesh.NumTriangles() {
		t.Errorf("per-char triangles = %d, merged = %d", total, merged.Mesh.NumTriangles())
	}
	if !reflect.DeepEqual(perChar.Bounds, merged.Bounds) {
		t.Errorf("per-char bounds = %+v, merged = %+v", perChar.Bounds, merged.Bounds)
	}

	// Re-merging the per-character meshes reproduces the merged mesh.
	remerged := &Mesh{}
	for _, g := range perChar.Glyphs {
		remerged.Append(g.Mesh, V3(g.Placement.Offset.X, g.Placement.Offset.Y, 0))
	}
	if !reflect.DeepEqual(remerged, merged.Mesh) {
		t.Error("re-merged per-character meshes differ from merged build")
	}
}

func TestBuild_CRLF(t *testing.T) {
	result, err := Build(testSource(), "A\r\nB", flatStyle())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(result.Placements) != 2 {
		t.Fatalf("placements = %d, want 2", len(result.Placements))
	}
	dy := result.Placements[1].Offset.Y - result.Placements[0].Offset.Y
	if !almostEqual(dy, -2) {
		t.Errorf("line offset = %v, want -2", dy)
	}
}
