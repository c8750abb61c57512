// Package textmesh converts font glyph outlines into 3D triangle meshes.
//
// # Overview
//
// textmesh is a pure Go geometry library: it turns text strings into flat or
// extruded mesh geometry (positions, normals, UVs, triangle indices) suitable
// for any 3D renderer. It deliberately stops at geometry. Materials,
// transforms, lighting, scene graphs, and the render loop belong to the host
// engine.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/textmesh"
//		"github.com/gogpu/textmesh/font"
//	)
//
//	face, err := font.Parse(ttfBytes)
//	if err != nil {
//		// handle error
//	}
//
//	result, err := textmesh.Build(face, "Hello!", textmesh.DefaultStyle())
//	if err != nil {
//		// handle error
//	}
//	// result.Mesh holds positions, normals, UVs and triangle indices.
//
// # Pipeline
//
// A build runs each character through the same stages: outline lookup, curve
// flattening at the configured subdivision, triangulation of the outline
// (holes included), optional extrusion into a closed solid, then line layout,
// justification and anchoring. Build is a pure function of (source, text,
// style); rebuilding with identical inputs yields identical geometry. The
// host decides when inputs changed and calls Build again.
//
// # Coordinate System
//
// Glyph and layout space is Y-up with the first line's baseline at y=0 and
// lines stacking downward. Extruded geometry spans z in [-depth, 0] with the
// front face at z=0 facing +Z. All coordinates are in em units scaled by the
// face size (size 1 means one em is one world unit).
package textmesh
