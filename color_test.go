package annotate

import (
	"image/color"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#f00", color.NRGBA{R: 255, A: 255}, false},
		{"f008", color.NRGBA{R: 255, A: 136}, false},
		{"#3498db", color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255}, false},
		{"#3498DB80", color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0x80}, false},
		{"", color.NRGBA{}, true},
		{"#12345", color.NRGBA{}, true},
		{"#gg0000", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Hex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Hex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && c.NRGBA() != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, c.NRGBA(), tt.want)
			}
		})
	}
}

func TestRGBA_Premultiplied(t *testing.T) {
	got := RGBA2(1, 0.5, 0, 0.5).Premultiplied()
	if got.A != 128 || got.R != 128 || got.G != 64 || got.B != 0 {
		t.Errorf("Premultiplied() = %v, want {128 64 0 128}", got)
	}
	if got := Transparent.Premultiplied(); got != (color.RGBA{}) {
		t.Errorf("transparent Premultiplied() = %v, want zero", got)
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.RGBA{R: 100, G: 50, B: 0, A: 200})
	if got, want := c.NRGBA(), (color.NRGBA{R: 127, G: 63, B: 0, A: 200}); got != want {
		t.Errorf("FromColor() = %v, want %v", got, want)
	}
}

func TestRGBA_Text(t *testing.T) {
	if got := Red.WithAlpha(0).String(); got != "#ff000000" {
		t.Errorf("String() = %q, want #ff000000", got)
	}

	var v struct {
		Color RGBA `toml:"color"`
	}
	if _, err := toml.Decode(`color = "#3498db"`, &v); err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if got, want := v.Color.String(), "#3498dbff"; got != want {
		t.Errorf("decoded color = %s, want %s", got, want)
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(v); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	if got := sb.String(); !strings.Contains(got, `color = "#3498dbff"`) {
		t.Errorf("encoded = %q", got)
	}

	if _, err := toml.Decode(`color = "blue"`, &v); err == nil {
		t.Error("decoding an invalid color succeeded")
	}
}
