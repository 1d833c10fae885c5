package annotate

import "testing"

func TestNewDocumentDefaults(t *testing.T) {
	doc := NewDocument()
	if doc.Tool() == nil {
		t.Fatal("Tool() = nil")
	}
	if got := doc.Tool().Settings(RectangleTool); got != DefaultToolConfig().Rectangle {
		t.Errorf("rectangle settings = %+v, want defaults", got)
	}
	if doc.blur != DefaultBlurBackend() {
		t.Errorf("blur backend = %v, want the registered default", doc.blur.Name())
	}
	if doc.SelectedItem() == nil || doc.SelectedItem().HasSelection() {
		t.Error("new document has a selection")
	}
	if doc.BaseImage() != nil || doc.AnnotationsImage() != nil {
		t.Error("new document has images")
	}
	if doc.ImageDPR() != 1 || !doc.Transform().IsIdentity() {
		t.Errorf("ImageDPR() = %v, Transform() = %v", doc.ImageDPR(), doc.Transform())
	}
}

func TestWithTool(t *testing.T) {
	tool := NewTool(DefaultToolConfig())
	tool.SetType(LineTool)
	doc := NewDocument(WithTool(tool))
	if doc.Tool() != tool {
		t.Error("WithTool was ignored")
	}
}

func TestWithBlurBackend(t *testing.T) {
	b := ParallelBlur(3)
	if doc := NewDocument(WithBlurBackend(b)); doc.blur != b {
		t.Errorf("blur backend = %s, want parallel", doc.blur.Name())
	}
	if doc := NewDocument(WithBlurBackend(nil)); doc.blur == nil {
		t.Error("WithBlurBackend(nil) cleared the backend")
	}
}

func TestWithFontSet(t *testing.T) {
	fs := GoFonts()
	doc := NewDocument(WithFontSet(fs), WithBlurBackend(SoftwareBlur()))
	doc.SetBaseImage(uniformImage(100, 50, gray), 1)
	rec := drag(doc, TextTool, 0, Pt(5, 5))
	if rec.Traits().Text.fonts != fs {
		t.Error("text does not use the configured font set")
	}
}

func TestMultipleOptionsLastWins(t *testing.T) {
	first, second := NewTool(DefaultToolConfig()), NewTool(DefaultToolConfig())
	doc := NewDocument(WithTool(first), WithTool(second))
	if doc.Tool() != second {
		t.Error("later option did not override the earlier one")
	}
}
