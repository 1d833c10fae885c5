package annotate

import (
	"runtime"
	"testing"
)

func TestRecordClone(t *testing.T) {
	parent := strokeRecord()
	rec := strokeRecord()
	SetItemRelations(parent, rec)

	c := rec.Clone()
	if c.ID == rec.ID {
		t.Error("clone kept the ID")
	}
	if c.Parent() != parent {
		t.Error("clone lost the parent")
	}
	if !c.Traits().Equal(rec.Traits()) {
		t.Error("clone traits differ")
	}
	c.Traits().Stroke.Pen.Width = 99
	c.Traits().Geometry.Path.SetElementPoint(0, Pt(5, 5))
	if rec.Traits().Stroke.Pen.Width == 99 || rec.Traits().Geometry.Path.ElementPoint(0) != Pt(0, 0) {
		t.Error("clone shares traits with the original")
	}
}

func TestRecordRelationsAreWeak(t *testing.T) {
	rec := strokeRecord()
	func() {
		parent := strokeRecord()
		SetItemRelations(parent, rec)
		if !rec.HasParent() {
			t.Fatal("HasParent() = false right after linking")
		}
	}()
	runtime.GC()
	runtime.GC()
	if rec.HasParent() {
		t.Error("dropped parent is still reachable")
	}
}

func TestRecordIsValid(t *testing.T) {
	build := func(t Traits) *Record {
		InitTraits(&t)
		return NewRecord(t)
	}
	point := func() *Path {
		p := NewPath()
		p.MoveTo(10, 10)
		return p
	}
	line := func() *Path {
		p := point()
		p.LineTo(20, 10)
		return p
	}
	rect := func(w, h float64) *Path {
		p := NewPath()
		p.Rectangle(0, 0, w, h)
		return p
	}

	tests := []struct {
		name string
		rec  *Record
		want bool
	}{
		{"nil", nil, false},
		{"stroked line", build(Traits{Geometry: &Geometry{Path: line()}, Stroke: &Stroke{Pen: DefaultPen()}}), true},
		{"single point stroke", build(Traits{Geometry: &Geometry{Path: point()}, Stroke: &Stroke{Pen: DefaultPen()}}), false},
		{"single point freehand", build(Traits{Geometry: &Geometry{Path: MinPath(point())}, Stroke: &Stroke{Pen: DefaultPen()}}), true},
		{"filled rect", build(Traits{Geometry: &Geometry{Path: rect(10, 10)}, Fill: Brush{Color: Red}}), true},
		{"flat fill", build(Traits{Geometry: &Geometry{Path: rect(10, 0)}, Fill: Blur{Strength: 1}}), false},
		{"empty text", build(Traits{Geometry: &Geometry{Path: point()}, Text: NewText(TextString(""), Black, DefaultFont)}), false},
		{"text", build(Traits{Geometry: &Geometry{Path: point()}, Text: NewText(TextString("a"), Black, DefaultFont)}), true},
		{"crop", NewRecord(Traits{Geometry: &Geometry{Path: rect(10, 10)}, Crop: &Crop{}}), false},
		{"no drawable trait", build(Traits{Geometry: &Geometry{Path: rect(10, 10)}}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
