package annotate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// ToolConfig holds the remembered settings of every creation tool. It is
// persisted as TOML with one table per tool:
//
//	[rectangle]
//	stroke_width = 4.0
//	stroke_color = "#ff0000ff"
//	fill_color = "#00000000"
//	shadow = true
type ToolConfig struct {
	Freehand    ToolSettings `toml:"freehand"`
	Highlighter ToolSettings `toml:"highlighter"`
	Line        ToolSettings `toml:"line"`
	Arrow       ToolSettings `toml:"arrow"`
	Rectangle   ToolSettings `toml:"rectangle"`
	Ellipse     ToolSettings `toml:"ellipse"`
	Blur        ToolSettings `toml:"blur"`
	Pixelate    ToolSettings `toml:"pixelate"`
	Text        ToolSettings `toml:"text"`
	Number      ToolSettings `toml:"number"`
}

// DefaultToolConfig returns the settings a fresh installation starts with.
func DefaultToolConfig() ToolConfig {
	shape := ToolSettings{StrokeWidth: 4, StrokeColor: Red, FillColor: Transparent, Shadow: true}
	return ToolConfig{
		Freehand:    ToolSettings{StrokeWidth: 4, StrokeColor: Red, Shadow: true},
		Highlighter: ToolSettings{StrokeWidth: 20, StrokeColor: Yellow},
		Line:        ToolSettings{StrokeWidth: 4, StrokeColor: Red, Shadow: true},
		Arrow:       ToolSettings{StrokeWidth: 4, StrokeColor: Red, Shadow: true},
		Rectangle:   shape,
		Ellipse:     shape,
		Blur:        ToolSettings{Strength: 0.5},
		Pixelate:    ToolSettings{Strength: 0.5},
		Text:        ToolSettings{Font: DefaultFont, FontColor: Black, Shadow: true},
		Number:      ToolSettings{FillColor: Red, Font: DefaultFont, FontColor: White, Shadow: true},
	}
}

func (c *ToolConfig) byType() [toolTypeCount]*ToolSettings {
	return [toolTypeCount]*ToolSettings{
		FreehandTool:    &c.Freehand,
		HighlighterTool: &c.Highlighter,
		LineTool:        &c.Line,
		ArrowTool:       &c.Arrow,
		RectangleTool:   &c.Rectangle,
		EllipseTool:     &c.Ellipse,
		BlurTool:        &c.Blur,
		PixelateTool:    &c.Pixelate,
		TextTool:        &c.Text,
		NumberTool:      &c.Number,
	}
}

// Validate checks that every setting is usable.
func (c ToolConfig) Validate() error {
	for typ, s := range c.byType() {
		if s == nil {
			continue
		}
		switch {
		case s.StrokeWidth < 0:
			return fmt.Errorf("%w: %s: negative stroke width %v", ErrInvalidConfig, ToolType(typ), s.StrokeWidth)
		case s.Strength < 0 || s.Strength > 1:
			return fmt.Errorf("%w: %s: strength %v outside [0, 1]", ErrInvalidConfig, ToolType(typ), s.Strength)
		case s.Font.Size < 0:
			return fmt.Errorf("%w: %s: negative font size %v", ErrInvalidConfig, ToolType(typ), s.Font.Size)
		}
	}
	return nil
}

// DecodeToolConfig reads a TOML tool configuration. Missing keys keep
// their defaults.
func DecodeToolConfig(r io.Reader) (ToolConfig, error) {
	cfg := DefaultToolConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return ToolConfig{}, fmt.Errorf("%w: %s", ErrInvalidConfig, perr.ErrorWithPosition())
		}
		return ToolConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		Logger().Debug("unknown tool config keys", "keys", keys)
	}
	if err := cfg.Validate(); err != nil {
		return ToolConfig{}, err
	}
	return cfg, nil
}

// LoadToolConfig reads a TOML tool configuration file.
func LoadToolConfig(path string) (ToolConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return ToolConfig{}, fmt.Errorf("annotate: load tool config: %w", err)
	}
	defer f.Close()
	return DecodeToolConfig(f)
}

// EncodeToolConfig writes cfg as TOML.
func EncodeToolConfig(w io.Writer, cfg ToolConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(cfg)
}

// SaveToolConfig writes cfg to a TOML file.
func SaveToolConfig(path string, cfg ToolConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("annotate: save tool config: %w", err)
	}
	if err := EncodeToolConfig(f, cfg); err != nil {
		f.Close()
		return fmt.Errorf("annotate: save tool config: %w", err)
	}
	return f.Close()
}

// Config returns the remembered settings of every tool type.
func (t *Tool) Config() ToolConfig {
	var cfg ToolConfig
	for typ, s := range cfg.byType() {
		if s != nil {
			*s = t.settings[typ]
		}
	}
	return cfg
}

func (t *Tool) applyConfig(cfg ToolConfig) {
	for typ, s := range cfg.byType() {
		if s != nil {
			t.settings[typ] = *s
		}
	}
}
