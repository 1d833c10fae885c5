package annotate

import (
	"fmt"
	"strings"
)

// ToolType selects what the pointer does on the canvas.
type ToolType int

// Tool types. Every type after SelectTool creates annotations.
const (
	NoTool ToolType = iota
	SelectTool
	FreehandTool
	HighlighterTool
	LineTool
	ArrowTool
	RectangleTool
	EllipseTool
	BlurTool
	PixelateTool
	TextTool
	NumberTool

	toolTypeCount
)

var toolNames = [toolTypeCount]string{
	NoTool:          "none",
	SelectTool:      "select",
	FreehandTool:    "freehand",
	HighlighterTool: "highlighter",
	LineTool:        "line",
	ArrowTool:       "arrow",
	RectangleTool:   "rectangle",
	EllipseTool:     "ellipse",
	BlurTool:        "blur",
	PixelateTool:    "pixelate",
	TextTool:        "text",
	NumberTool:      "number",
}

// String returns the lower-case tool name.
func (t ToolType) String() string {
	if t >= 0 && t < toolTypeCount {
		return toolNames[t]
	}
	return fmt.Sprintf("ToolType(%d)", int(t))
}

// ParseToolType returns the tool type with the given name.
func ParseToolType(name string) (ToolType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == name {
			return ToolType(i), nil
		}
	}
	return NoTool, fmt.Errorf("annotate: unknown tool %q", name)
}

// IsCreationTool reports whether t creates annotations.
func (t ToolType) IsCreationTool() bool { return t > SelectTool && t < toolTypeCount }

// IsMetaTool reports whether t manipulates existing annotations.
func (t ToolType) IsMetaTool() bool { return t == SelectTool }

// Options is the set of editable properties of a tool or selected item.
type Options uint8

// Editable properties.
const (
	StrokeOption Options = 1 << iota
	FillOption
	StrengthOption
	FontOption
	TextOption
	NumberOption
	ShadowOption

	NoOptions Options = 0
)

// Has reports whether every option of o2 is set in o.
func (o Options) Has(o2 Options) bool { return o&o2 == o2 }

// OptionsForType returns the editable properties of a tool type.
func OptionsForType(t ToolType) Options {
	switch t {
	case HighlighterTool:
		return StrokeOption
	case FreehandTool, LineTool, ArrowTool:
		return StrokeOption | ShadowOption
	case RectangleTool, EllipseTool:
		return StrokeOption | ShadowOption | FillOption
	case BlurTool, PixelateTool:
		return StrengthOption
	case TextTool:
		return FontOption | TextOption | ShadowOption
	case NumberTool:
		return FillOption | ShadowOption | FontOption | NumberOption
	}
	return NoOptions
}

// ToolSettings holds the remembered parameters of one tool type.
type ToolSettings struct {
	StrokeWidth float64 `toml:"stroke_width"`
	StrokeColor RGBA    `toml:"stroke_color"`
	FillColor   RGBA    `toml:"fill_color"`
	Strength    float64 `toml:"strength"`
	Font        Font    `toml:"font"`
	FontColor   RGBA    `toml:"font_color"`
	Shadow      bool    `toml:"shadow"`
}

// Tool is the active tool with per-type remembered settings and the next
// number label.
//
// The zero value is not usable; create tools with NewTool.
type Tool struct {
	typ      ToolType
	number   int
	settings [toolTypeCount]ToolSettings
}

// NewTool creates a tool from cfg with no active type and the number
// counter at 1.
func NewTool(cfg ToolConfig) *Tool {
	t := &Tool{number: 1}
	t.applyConfig(cfg)
	return t
}

// Type returns the active tool type.
func (t *Tool) Type() ToolType { return t.typ }

// SetType activates typ. It reports whether the type changed.
func (t *Tool) SetType(typ ToolType) bool {
	if typ < 0 || typ >= toolTypeCount || t.typ == typ {
		return false
	}
	t.typ = typ
	return true
}

// ResetType deactivates the tool.
func (t *Tool) ResetType() bool { return t.SetType(NoTool) }

// IsCreationTool reports whether the active type creates annotations.
func (t *Tool) IsCreationTool() bool { return t.typ.IsCreationTool() }

// IsMetaTool reports whether the active type is the select tool.
func (t *Tool) IsMetaTool() bool { return t.typ.IsMetaTool() }

// Options returns the editable properties of the active type.
func (t *Tool) Options() Options { return OptionsForType(t.typ) }

// Settings returns the remembered settings of typ.
func (t *Tool) Settings(typ ToolType) ToolSettings {
	if typ < 0 || typ >= toolTypeCount {
		return ToolSettings{}
	}
	return t.settings[typ]
}

func (t *Tool) current() *ToolSettings { return &t.settings[t.typ] }

// StrokeWidth returns the stroke width of the active type, or 0 if it has
// no stroke.
func (t *Tool) StrokeWidth() float64 {
	if !t.Options().Has(StrokeOption) {
		return 0
	}
	return t.current().StrokeWidth
}

// SetStrokeWidth sets the stroke width of the active type.
func (t *Tool) SetStrokeWidth(w float64) bool {
	if !t.Options().Has(StrokeOption) || w < 0 || t.current().StrokeWidth == w {
		return false
	}
	t.current().StrokeWidth = w
	return true
}

// StrokeColor returns the stroke color of the active type.
func (t *Tool) StrokeColor() RGBA {
	if !t.Options().Has(StrokeOption) {
		return Transparent
	}
	return t.current().StrokeColor
}

// SetStrokeColor sets the stroke color of the active type.
func (t *Tool) SetStrokeColor(c RGBA) bool {
	if !t.Options().Has(StrokeOption) || t.current().StrokeColor == c {
		return false
	}
	t.current().StrokeColor = c
	return true
}

// FillColor returns the fill color of the active type.
func (t *Tool) FillColor() RGBA {
	if !t.Options().Has(FillOption) {
		return Transparent
	}
	return t.current().FillColor
}

// SetFillColor sets the fill color of the active type.
func (t *Tool) SetFillColor(c RGBA) bool {
	if !t.Options().Has(FillOption) || t.current().FillColor == c {
		return false
	}
	t.current().FillColor = c
	return true
}

// Strength returns the effect strength of the active type in [0, 1].
func (t *Tool) Strength() float64 {
	if !t.Options().Has(StrengthOption) {
		return 0
	}
	return t.current().Strength
}

// SetStrength sets the effect strength of the active type. Values are
// clamped to [0, 1].
func (t *Tool) SetStrength(s float64) bool {
	s = min(max(s, 0), 1)
	if !t.Options().Has(StrengthOption) || t.current().Strength == s {
		return false
	}
	t.current().Strength = s
	return true
}

// Font returns the font of the active type.
func (t *Tool) Font() Font {
	if !t.Options().Has(FontOption) {
		return Font{}
	}
	return t.current().Font
}

// SetFont sets the font of the active type.
func (t *Tool) SetFont(f Font) bool {
	if !t.Options().Has(FontOption) || t.current().Font == f {
		return false
	}
	t.current().Font = f
	return true
}

// FontColor returns the font color of the active type.
func (t *Tool) FontColor() RGBA {
	if !t.Options().Has(FontOption) {
		return Transparent
	}
	return t.current().FontColor
}

// SetFontColor sets the font color of the active type.
func (t *Tool) SetFontColor(c RGBA) bool {
	if !t.Options().Has(FontOption) || t.current().FontColor == c {
		return false
	}
	t.current().FontColor = c
	return true
}

// HasShadow reports whether the active type draws a shadow.
func (t *Tool) HasShadow() bool {
	return t.Options().Has(ShadowOption) && t.current().Shadow
}

// SetShadow enables or disables the shadow of the active type.
func (t *Tool) SetShadow(on bool) bool {
	if !t.Options().Has(ShadowOption) || t.current().Shadow == on {
		return false
	}
	t.current().Shadow = on
	return true
}

// Number returns the next number label.
func (t *Tool) Number() int { return t.number }

// SetNumber sets the next number label.
func (t *Tool) SetNumber(n int) bool {
	if t.number == n {
		return false
	}
	t.number = n
	return true
}

// ResetNumber restarts numbering at 1.
func (t *Tool) ResetNumber() bool { return t.SetNumber(1) }
