// Package annotate is an in-memory annotation engine for raster images.
//
// # Overview
//
// A Document holds a base image and a history of annotation records drawn
// over it: freehand and highlighter strokes, lines and arrows, rectangles
// and ellipses, blur and pixelate redactions, text and numbered badges.
// Rotations, scales and crops of the canvas are recorded in the same
// history, so everything can be undone and redone.
//
// # Quick Start
//
//	import "github.com/gogpu/annotate"
//
//	doc := annotate.NewDocument()
//	doc.SetBaseImage(img, 1)
//
//	doc.Tool().SetType(annotate.RectangleTool)
//	doc.BeginItem(annotate.Pt(10, 10))
//	doc.ContinueItem(annotate.Pt(120, 80), 0)
//	doc.FinishItem()
//
//	out := doc.RenderToImage()
//
// # Records and Traits
//
// Each record carries a fixed set of optional traits. Geometry is the
// source of truth; the hit-test path, the visual bounds, stroke outlines,
// text outlines and shadows are derived from it by InitTraits. Committed
// records never change. Editing a selected record works on a copy that
// CommitChanges pushes as a new record replacing the old one.
//
// # Rendering
//
// AnnotationsImage repaints only the region invalidated since the last
// call. Blur and pixelate records filter everything painted below them,
// using the stack blur algorithm for blurring.
//
// # Coordinate System
//
// Document coordinates are logical units of the untransformed base image:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Output images have ImageSize pixels, the canvas size times the device
// pixel ratio.
package annotate

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the pre-release identifier
	VersionPrerelease = ""
)
