// Package stackblur implements the stack blur algorithm on premultiplied
// RGBA images.
//
// Stack blur approximates a Gaussian blur with two separable passes of a
// triangular moving window. Each pass keeps a circular stack of 2r+1 pixels
// and three running sums per channel, so the cost per pixel is constant
// regardless of the radius. Normalization avoids division by looking up a
// multiplier and a shift for the radius:
//
//	value = (sum * mulTable[r]) >> shgTable[r]
//
// Samples outside the image replicate the nearest edge pixel.
//
// # Backends
//
// Software is the reference implementation. Parallel runs the same passes
// with rows and columns fanned out over goroutines and produces identical
// output. Both satisfy Backend, so callers can swap execution strategies
// without changing results:
//
//	stackblur.Software{}.Blur(img, 4, 4)
//	stackblur.Parallel{Workers: 8}.Blur(img, 4, 4)
//
// The algorithm was invented by Mario Klingemann. The lookup tables are the
// ones from Anti-Grain Geometry 2.4.
package stackblur
