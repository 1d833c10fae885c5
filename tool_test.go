package annotate

import "testing"

func TestParseToolType(t *testing.T) {
	for typ := NoTool; typ < toolTypeCount; typ++ {
		got, err := ParseToolType(" " + typ.String() + " ")
		if err != nil || got != typ {
			t.Errorf("ParseToolType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if got, err := ParseToolType("Rectangle"); err != nil || got != RectangleTool {
		t.Errorf("ParseToolType is case sensitive: %v, %v", got, err)
	}
	if _, err := ParseToolType("spray"); err == nil {
		t.Error("ParseToolType(spray) succeeded")
	}
	if got := ToolType(42).String(); got != "ToolType(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestToolKinds(t *testing.T) {
	tests := []struct {
		typ      ToolType
		creation bool
		meta     bool
	}{
		{NoTool, false, false},
		{SelectTool, false, true},
		{FreehandTool, true, false},
		{NumberTool, true, false},
	}
	for _, tt := range tests {
		if got := tt.typ.IsCreationTool(); got != tt.creation {
			t.Errorf("%v.IsCreationTool() = %v, want %v", tt.typ, got, tt.creation)
		}
		if got := tt.typ.IsMetaTool(); got != tt.meta {
			t.Errorf("%v.IsMetaTool() = %v, want %v", tt.typ, got, tt.meta)
		}
	}
}

func TestOptionsForType(t *testing.T) {
	tests := []struct {
		typ  ToolType
		has  Options
		lack Options
	}{
		{HighlighterTool, StrokeOption, ShadowOption | FillOption},
		{ArrowTool, StrokeOption | ShadowOption, FillOption},
		{EllipseTool, StrokeOption | FillOption | ShadowOption, StrengthOption},
		{PixelateTool, StrengthOption, StrokeOption},
		{TextTool, TextOption | FontOption | ShadowOption, NumberOption},
		{NumberTool, NumberOption | FillOption | FontOption, TextOption | StrokeOption},
		{SelectTool, NoOptions, StrokeOption},
	}
	for _, tt := range tests {
		o := OptionsForType(tt.typ)
		if !o.Has(tt.has) {
			t.Errorf("%v options %b lack %b", tt.typ, o, tt.has)
		}
		if o&tt.lack != 0 {
			t.Errorf("%v options %b include %b", tt.typ, o, o&tt.lack)
		}
	}
}

func TestToolSettingsPerType(t *testing.T) {
	tool := NewTool(DefaultToolConfig())
	if tool.Type() != NoTool || tool.Number() != 1 {
		t.Fatalf("new tool = %v #%d", tool.Type(), tool.Number())
	}

	tool.SetType(LineTool)
	if !tool.SetStrokeWidth(9) {
		t.Fatal("SetStrokeWidth() = false")
	}
	if tool.SetStrokeWidth(9) {
		t.Error("SetStrokeWidth() with the same value reported a change")
	}
	tool.SetType(ArrowTool)
	if got := tool.StrokeWidth(); got != 4 {
		t.Errorf("arrow width = %v, want its own default 4", got)
	}
	tool.SetType(LineTool)
	if got := tool.StrokeWidth(); got != 9 {
		t.Errorf("line width = %v, want remembered 9", got)
	}
	if got := tool.Settings(LineTool).StrokeWidth; got != 9 {
		t.Errorf("Settings(LineTool).StrokeWidth = %v, want 9", got)
	}
}

func TestToolGuardsUnsupportedOptions(t *testing.T) {
	tool := NewTool(DefaultToolConfig())
	tool.SetType(BlurTool)

	if tool.SetStrokeWidth(3) || tool.SetFillColor(Red) || tool.SetFont(Font{Size: 30}) || tool.SetShadow(true) {
		t.Error("blur accepted an option it does not have")
	}
	if tool.StrokeWidth() != 0 || tool.FillColor() != Transparent || tool.HasShadow() {
		t.Error("blur reports options it does not have")
	}

	if !tool.SetStrength(2) || tool.Strength() != 1 {
		t.Errorf("SetStrength(2) gave %v, want clamped 1", tool.Strength())
	}
	tool.SetStrength(-1)
	if tool.Strength() != 0 {
		t.Errorf("SetStrength(-1) gave %v, want 0", tool.Strength())
	}

	if tool.SetType(toolTypeCount) || tool.SetType(-1) {
		t.Error("SetType accepted an out of range type")
	}
}

func TestToolNumber(t *testing.T) {
	tool := NewTool(DefaultToolConfig())
	if !tool.SetNumber(5) || tool.Number() != 5 {
		t.Fatal("SetNumber(5) failed")
	}
	if tool.SetNumber(5) {
		t.Error("SetNumber() with the same value reported a change")
	}
	if !tool.ResetNumber() || tool.Number() != 1 {
		t.Errorf("ResetNumber() left %d", tool.Number())
	}
}
