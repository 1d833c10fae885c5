// Package stroke converts stroked polylines into fillable outlines.
//
// A stroke is decomposed into a union of small convex pieces:
//   - one quadrilateral per segment, offset by half the width on both sides
//   - one join piece per interior vertex
//   - one cap piece per open end
//
// Every piece is emitted with positive orientation, so the union renders
// correctly under the non-zero fill rule and hit-tests with a plain
// winding-number test. Self-overlapping freehand strokes therefore never
// leave holes.
//
// # Line Caps
//
//   - CapButt: flat cap ending exactly at the endpoint
//   - CapRound: semicircular cap with radius = width/2
//   - CapSquare: square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - JoinMiter: sharp corner, falling back to bevel past the miter limit
//   - JoinRound: circular piece at corners
//   - JoinBevel: straight line across the corner
//
// # Usage
//
//	style := stroke.Style{Width: 4, Cap: stroke.CapRound, Join: stroke.JoinRound}
//	pieces := stroke.Outline([]stroke.Polyline{{Points: pts}}, style, 0.1)
//
// The approach follows the tiny-skia and kurbo stroke expanders, with the
// offset curves split into independent pieces.
package stroke
