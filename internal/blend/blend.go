// Package blend implements the composition modes used by the annotation
// compositor.
//
// All blend operations work with premultiplied alpha values in the range 0-255,
// matching the layout of image.RGBA.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a composition mode.
type Mode uint8

const (
	// SourceOver composites source over destination: S + D*(1-Sa).
	SourceOver Mode = iota
	// Clear erases the destination: 0.
	Clear
	// Source replaces the destination: S.
	Source
	// Darken keeps the darker of source and destination per channel.
	// Highlighter strokes are composed with this mode.
	Darken
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "SourceOver"
	case Clear:
		return "Clear"
	case Source:
		return "Source"
	case Darken:
		return "Darken"
	}
	return "Unknown"
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Lookup returns the blend function for the given mode.
// Returns the SourceOver function for unknown modes.
func Lookup(mode Mode) Func {
	switch mode {
	case Clear:
		return blendClear
	case Source:
		return blendSource
	case Darken:
		return blendDarken
	default:
		return blendSourceOver
	}
}

// blendClear clears the destination.
func blendClear(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

// blendSource replaces destination with source.
func blendSource(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// blendSourceOver composites source over destination (default blend mode).
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendDarken selects the darker of source and destination.
// Formula on premultiplied channels:
//
//	min(Sc*Da, Dc*Sa) + Sc*(1-Da) + Dc*(1-Sa)
func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	ch := func(s, d byte) byte {
		m := min(uint32(s)*uint32(da), uint32(d)*uint32(sa))
		v := m + uint32(s)*uint32(255-da) + uint32(d)*uint32(255-sa)
		return byte(min(div255(v), 255))
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db),
		addClamp(sa, mulDiv255(da, 255-sa))
}
