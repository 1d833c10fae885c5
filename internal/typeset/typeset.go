// Package typeset lays out short annotation labels into glyph outlines.
//
// Text is normalized to NFC, split into lines, ordered with the Unicode
// bidirectional algorithm and shaped with the go-text HarfBuzz port. The
// resulting glyphs are converted to outlines with golang.org/x/image/font/sfnt
// so the caller can fill them like any other path.
package typeset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// ErrNoFont is returned when a required style has no font data.
var ErrNoFont = errors.New("typeset: missing font data")

// Style selects one of the four faces of a FontSet.
type Style struct {
	Bold   bool
	Italic bool
}

func (s Style) index() int {
	i := 0
	if s.Bold {
		i |= 1
	}
	if s.Italic {
		i |= 2
	}
	return i
}

type face struct {
	outline *sfnt.Font
	shape   *gtfont.Font
}

// FontSet holds the regular, bold, italic and bold italic faces of one family.
// A FontSet is safe for concurrent use.
type FontSet struct {
	faces [4]face

	mu     sync.Mutex
	buf    sfnt.Buffer
	shaper shaping.HarfbuzzShaper
}

var (
	defaultOnce sync.Once
	defaultSet  *FontSet
	defaultErr  error
)

// Default returns the Go font family bundled with golang.org/x/image.
func Default() (*FontSet, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = Parse(goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF)
	})
	return defaultSet, defaultErr
}

// Parse builds a FontSet from TrueType or OpenType data.
// Missing bold or italic data falls back to regular.
func Parse(regular, bold, italic, boldItalic []byte) (*FontSet, error) {
	if len(regular) == 0 {
		return nil, ErrNoFont
	}
	data := [4][]byte{regular, bold, italic, boldItalic}
	fs := &FontSet{}
	for i, d := range data {
		if len(d) == 0 {
			d = regular
		}
		o, err := sfnt.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("typeset: parse outline font %d: %w", i, err)
		}
		f, err := gtfont.ParseTTF(bytes.NewReader(d))
		if err != nil {
			return nil, fmt.Errorf("typeset: parse shaping font %d: %w", i, err)
		}
		fs.faces[i] = face{outline: o, shape: f.Font}
	}
	return fs, nil
}

// Op is the kind of an outline segment.
type Op uint8

// Outline segment kinds.
const (
	MoveTo Op = iota
	LineTo
	QuadTo
	CubeTo
)

// Segment is one outline command. Only the first 1, 1, 2 or 3 points are
// used for MoveTo, LineTo, QuadTo and CubeTo respectively.
type Segment struct {
	Op  Op
	Pts [3]f64.Vec2
}

// Line describes one laid out line. Y is the baseline.
type Line struct {
	Width float64
	Y     float64
	RTL   bool
}

// Layout is the result of laying out a text. Coordinates have the origin at
// the top-left corner of the text box with y pointing down.
type Layout struct {
	Width, Height float64
	LineHeight    float64
	Ascent        float64
	Lines         []Line
	Outline       []Segment
}

// Layout lays out text at size pixels per em. An empty text yields a layout
// one line high and zero wide.
func (fs *FontSet) Layout(text string, size float64, style Style) (*Layout, error) {
	if size <= 0 {
		return nil, fmt.Errorf("typeset: invalid size %v", size)
	}
	f := fs.faces[style.index()]
	text = norm.NFC.String(text)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	ppem := fixed.Int26_6(size * 64)
	m, err := f.outline.Metrics(&fs.buf, ppem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("typeset: metrics: %w", err)
	}
	ascent := fixedToFloat(m.Ascent)
	lineHeight := fixedToFloat(m.Height)
	if lineHeight <= 0 {
		lineHeight = ascent + fixedToFloat(m.Descent)
	}

	out := &Layout{LineHeight: lineHeight, Ascent: ascent}
	for i, s := range strings.Split(text, "\n") {
		baseline := float64(i)*lineHeight + ascent
		line, err := fs.layoutLine(f, s, size, baseline, out)
		if err != nil {
			return nil, err
		}
		out.Lines = append(out.Lines, line)
		out.Width = max(out.Width, line.Width)
	}
	out.Height = float64(len(out.Lines)) * lineHeight
	return out, nil
}

// layoutLine shapes one line and appends its glyph outlines to out.
func (fs *FontSet) layoutLine(f face, s string, size, baseline float64, out *Layout) (Line, error) {
	line := Line{Y: baseline}
	if s == "" {
		return line, nil
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return line, fmt.Errorf("typeset: bidi: %w", err)
	}
	ordering, err := p.Order()
	if err != nil {
		return line, fmt.Errorf("typeset: bidi order: %w", err)
	}
	line.RTL = p.Direction() == bidi.RightToLeft

	shapeFace := gtfont.NewFace(f.shape)
	x := 0.0
	for i := range ordering.NumRuns() {
		run := ordering.Run(i)
		runes := []rune(run.String())
		dir := di.DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		output := fs.shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: dir,
			Face:      shapeFace,
			Size:      fixed.Int26_6(size * 64),
			Script:    detectScript(runes),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range output.Glyphs {
			gx := x + fixedToFloat(g.XOffset)
			gy := baseline - fixedToFloat(g.YOffset)
			if err := fs.appendGlyph(f.outline, sfnt.GlyphIndex(g.GlyphID), size, gx, gy, out); err != nil {
				return line, err
			}
			x += fixedToFloat(g.Advance)
		}
	}
	line.Width = x
	return line, nil
}

// appendGlyph appends the outline of glyph gid with its origin at (x, y).
func (fs *FontSet) appendGlyph(f *sfnt.Font, gid sfnt.GlyphIndex, size, x, y float64, out *Layout) error {
	segs, err := f.LoadGlyph(&fs.buf, gid, fixed.Int26_6(size*64), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("typeset: load glyph %d: %w", gid, err)
	}
	for _, s := range segs {
		seg := Segment{}
		n := 0
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op, n = MoveTo, 1
		case sfnt.SegmentOpLineTo:
			seg.Op, n = LineTo, 1
		case sfnt.SegmentOpQuadTo:
			seg.Op, n = QuadTo, 2
		case sfnt.SegmentOpCubeTo:
			seg.Op, n = CubeTo, 3
		}
		for j := range n {
			seg.Pts[j] = f64.Vec2{x + fixedToFloat(s.Args[j].X), y + fixedToFloat(s.Args[j].Y)}
		}
		out.Outline = append(out.Outline, seg)
	}
	return nil
}

// detectScript returns the script of the first letter in runes.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s != language.Common && s != language.Inherited {
			return s
		}
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
