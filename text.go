package annotate

import (
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/annotate/internal/typeset"
)

// Font selects the face and size of a label.
type Font struct {
	Size   float64 `toml:"size"`
	Bold   bool    `toml:"bold"`
	Italic bool    `toml:"italic"`
}

// DefaultFont is the font used when none is configured.
var DefaultFont = Font{Size: 16}

// FontSet is a font family with regular, bold, italic and bold italic faces.
type FontSet struct {
	fs *typeset.FontSet
}

// ParseFontSet builds a font family from TrueType or OpenType data.
// Missing bold or italic faces fall back to the regular one.
func ParseFontSet(regular, bold, italic, boldItalic []byte) (*FontSet, error) {
	fs, err := typeset.Parse(regular, bold, italic, boldItalic)
	if err != nil {
		return nil, err
	}
	return &FontSet{fs: fs}, nil
}

// GoFonts returns the Go font family bundled with golang.org/x/image.
func GoFonts() *FontSet {
	fs, err := typeset.Default()
	if err != nil {
		// The bundled fonts are known to parse.
		panic(err)
	}
	return &FontSet{fs: fs}
}

// TextValue is either TextString or TextNumber.
type TextValue interface {
	isTextValue()
	// String returns the text to draw.
	String() string
}

// TextString is free-form text.
type TextString string

// TextNumber is an auto-incrementing number label.
type TextNumber int

func (TextString) isTextValue() {}
func (TextNumber) isTextValue() {}

func (s TextString) String() string { return string(s) }
func (n TextNumber) String() string { return strconv.Itoa(int(n)) }

// Text draws a label. Free text is anchored at the top-left corner of the
// geometry bounds; numbers are centered in a circle.
type Text struct {
	Value TextValue
	Font  Font
	Color RGBA

	fonts   *FontSet
	outline *Path // glyph outlines in document coordinates
}

// NewText creates a text trait. Strings are normalized to NFC.
func NewText(v TextValue, color RGBA, font Font) *Text {
	if s, ok := v.(TextString); ok {
		v = TextString(norm.NFC.String(string(s)))
	}
	return &Text{Value: v, Font: font, Color: color}
}

// IsNumber reports whether the text is a number label.
func (t *Text) IsNumber() bool {
	_, ok := t.Value.(TextNumber)
	return ok
}

// Outline returns the derived glyph outlines.
func (t *Text) Outline() *Path { return t.outline }

func (t *Text) fontSet() *typeset.FontSet {
	if t.fonts != nil {
		return t.fonts.fs
	}
	return GoFonts().fs
}

// layout lays out the text. An unusable font size falls back to DefaultFont.
func (t *Text) layout() *typeset.Layout {
	if t.Value == nil {
		return &typeset.Layout{}
	}
	size := t.Font.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	l, err := t.fontSet().Layout(t.Value.String(), size, typeset.Style{Bold: t.Font.Bold, Italic: t.Font.Italic})
	if err != nil {
		Logger().Debug("text layout failed", "err", err)
		return &typeset.Layout{}
	}
	return l
}

// pathFromOutline converts laid out glyph segments, offset by origin.
func pathFromOutline(segs []typeset.Segment, origin Point) *Path {
	p := NewPath()
	for _, s := range segs {
		pt := func(i int) Point { return Pt(s.Pts[i][0]+origin.X, s.Pts[i][1]+origin.Y) }
		switch s.Op {
		case typeset.MoveTo:
			if !p.IsEmpty() {
				p.Close()
			}
			a := pt(0)
			p.MoveTo(a.X, a.Y)
		case typeset.LineTo:
			a := pt(0)
			p.LineTo(a.X, a.Y)
		case typeset.QuadTo:
			c, a := pt(0), pt(1)
			p.QuadraticTo(c.X, c.Y, a.X, a.Y)
		case typeset.CubeTo:
			c1, c2, a := pt(0), pt(1), pt(2)
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, a.X, a.Y)
		}
	}
	if !p.IsEmpty() {
		p.Close()
	}
	return p
}
