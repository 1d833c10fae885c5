package annotate

import (
	"math"
	"testing"
)

func TestSelectItem(t *testing.T) {
	doc := newTestDocument(100, 80)
	rec := drag(doc, RectangleTool, 0, Pt(10, 10), Pt(40, 30))
	doc.DeselectItem()
	ev := countEvents(doc)

	doc.SelectItem(rec)
	sel := doc.SelectedItem()
	if sel.Record() != rec || sel.Traits() == rec.Traits() {
		t.Fatal("selection does not edit a copy of the record")
	}
	if got, want := sel.Options(), StrokeOption|FillOption|ShadowOption; got != want {
		t.Errorf("Options() = %b, want %b", got, want)
	}
	if ev.counts[SelectedItemChanged] != 1 || ev.counts[SelectionOptionsChanged] != 1 {
		t.Errorf("select notified %v", ev.counts)
	}

	ev.reset()
	doc.SelectItem(rec)
	if len(ev.counts) != 0 {
		t.Errorf("reselecting notified %v", ev.counts)
	}

	crop := NewRecord(Traits{Crop: &Crop{}})
	doc.SelectItem(crop)
	if sel.Record() != rec {
		t.Error("a meta record replaced the selection")
	}

	doc.DeselectItem()
	if sel.HasSelection() || sel.Options() != NoOptions || sel.Traits() != nil {
		t.Error("DeselectItem() left state behind")
	}
	if sel.Reset() {
		t.Error("Reset() without selection = true")
	}
}

func TestSelectionEditNotifications(t *testing.T) {
	doc := newTestDocument(100, 80)
	drag(doc, RectangleTool, 0, Pt(10, 10), Pt(40, 30))
	sel := doc.SelectedItem()
	doc.AnnotationsImage()
	ev := countEvents(doc)

	tests := []struct {
		name   string
		edit   func()
		kind   EventKind
		reinit bool
	}{
		{"width", func() { sel.SetStrokeWidth(6) }, SelectionStrokeWidthChanged, true},
		{"color", func() { sel.SetStrokeColor(Black) }, SelectionStrokeColorChanged, false},
		{"fill", func() { sel.SetFillColor(White) }, SelectionFillColorChanged, false},
		{"shadow", func() { sel.SetShadow(false) }, SelectionShadowChanged, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev.reset()
			tt.edit()
			if ev.counts[tt.kind] != 1 {
				t.Errorf("%v notified %d times", tt.kind, ev.counts[tt.kind])
			}
			if got := ev.counts[SelectionGeometryChanged]; (got == 1) != tt.reinit {
				t.Errorf("geometry notified %d times, reinit %v", got, tt.reinit)
			}
			ev.reset()
			tt.edit()
			if len(ev.counts) != 0 {
				t.Errorf("repeating the edit notified %v", ev.counts)
			}
		})
	}

	if sel.StrokeWidth() != 6 || sel.StrokeColor() != Black || sel.FillColor() != White || sel.HasShadow() {
		t.Error("edited values are not reported back")
	}

	ev.reset()
	sel.SetFont(Font{Size: 40})
	sel.SetText("nope")
	sel.SetStrength(1)
	sel.SetNumber(3)
	if len(ev.counts) != 0 {
		t.Errorf("options the rectangle lacks notified %v", ev.counts)
	}
}

func TestSelectionCommit(t *testing.T) {
	doc := newTestDocument(100, 80)
	rec := drag(doc, RectangleTool, 0, Pt(10, 10), Pt(40, 30))
	doc.DeselectItem()
	doc.SelectItem(rec)
	sel := doc.SelectedItem()

	if sel.CommitChanges() {
		t.Fatal("CommitChanges() without edits = true")
	}
	sel.SetStrokeWidth(10)
	if !sel.CommitChanges() {
		t.Fatal("CommitChanges() = false")
	}
	child := doc.CurrentItem()
	if child == rec || child.Parent() != rec || rec.Child() != child {
		t.Fatal("commit did not push a linked replacement")
	}
	if sel.Record() != child {
		t.Error("the replacement is not selected")
	}
	if child.Traits().Stroke.Pen.Width != 10 || rec.Traits().Stroke.Pen.Width != 4 {
		t.Error("commit changed the original or lost the edit")
	}
	if doc.History().ItemVisible(rec) {
		t.Error("replaced record still visible")
	}
	if doc.UndoDepth() != 2 {
		t.Errorf("UndoDepth() = %d, want 2", doc.UndoDepth())
	}
}

func TestSelectionApplyTransform(t *testing.T) {
	doc := newTestDocument(200, 200)
	drag(doc, RectangleTool, 0, Pt(10, 10), Pt(50, 30))
	sel := doc.SelectedItem()
	before := GeometryPathBounds(sel.Traits())
	ev := countEvents(doc)

	sel.ApplyTransform(Translate(20, 5))
	if got, want := GeometryPathBounds(sel.Traits()), before.Translate(Pt(20, 5)); got != want {
		t.Errorf("translated bounds = %v, want %v", got, want)
	}
	if sel.Transform() != Translate(20, 5) {
		t.Errorf("Transform() = %+v", sel.Transform())
	}
	for _, kind := range []EventKind{SelectionTransformChanged, SelectionGeometryChanged, SelectionMousePathChanged} {
		if ev.counts[kind] != 1 {
			t.Errorf("%v notified %d times", kind, ev.counts[kind])
		}
	}
	if !sel.MousePath().Contains(Pt(50, 25)) || sel.MousePath().Contains(Pt(20, 20)) {
		t.Error("hit-test path did not move")
	}

	center := GeometryPathBounds(sel.Traits()).Center()
	sel.ApplyTransform(Rotate(math.Pi / 2))
	got := GeometryPathBounds(sel.Traits())
	if got.Center().Distance(center) > 1e-9 {
		t.Errorf("rotation moved the center from %v to %v", center, got.Center())
	}
	if math.Abs(got.Width()-20) > 1e-9 || math.Abs(got.Height()-40) > 1e-9 {
		t.Errorf("rotated bounds = %v, want 20x40", got)
	}
	if !sel.CommitChanges() {
		t.Error("CommitChanges() of a transformed copy = false")
	}
}

func TestSelectionNumberAndText(t *testing.T) {
	doc := newTestDocument(100, 80)
	drag(doc, NumberTool, 0, Pt(40, 40))
	sel := doc.SelectedItem()
	if sel.Number() != 1 {
		t.Fatalf("Number() = %d, want 1", sel.Number())
	}
	sel.SetNumber(12)
	if got := sel.Traits().Text.Value; got != TextNumber(12) {
		t.Errorf("label = %v, want 12", got)
	}
	if sel.Text() != "" {
		t.Errorf("number record reports text %q", sel.Text())
	}

	drag(doc, TextTool, 0, Pt(10, 10))
	sel.SetText("café")
	if got := sel.Text(); got != "café" {
		t.Errorf("Text() = %q, want NFC form", got)
	}
	sel.SetFont(Font{Size: 30, Bold: true})
	small := GeometryPathBounds(sel.Traits())
	sel.SetFont(Font{Size: 60, Bold: true})
	if big := GeometryPathBounds(sel.Traits()); big.Height() <= small.Height() {
		t.Errorf("larger font box %v is not taller than %v", big, small)
	}
}

func TestSelectionEffectStrength(t *testing.T) {
	doc := newTestDocument(100, 80)
	drag(doc, BlurTool, 0, Pt(10, 10), Pt(40, 40))
	sel := doc.SelectedItem()
	if sel.Strength() != 0.5 {
		t.Fatalf("Strength() = %v, want 0.5", sel.Strength())
	}
	sel.SetStrength(3)
	if sel.Strength() != 1 {
		t.Errorf("Strength() = %v, want clamped 1", sel.Strength())
	}
	if _, ok := sel.Traits().Fill.(Blur); !ok {
		t.Errorf("fill changed kind to %T", sel.Traits().Fill)
	}
}

func TestSubscribeCancel(t *testing.T) {
	doc := newTestDocument(10, 10)
	var n int
	cancel := doc.Subscribe(func(Event) { n++ })
	doc.SetModified(true)
	cancel()
	doc.SetModified(false)
	if n != 1 {
		t.Errorf("received %d events, want 1", n)
	}
	cancel()
}

func TestEventKindString(t *testing.T) {
	if got := SelectionTextChanged.String(); got != "SelectionTextChanged" {
		t.Errorf("String() = %q", got)
	}
	if got := EventKind(55).String(); got != "EventKind(55)" {
		t.Errorf("String() = %q", got)
	}
}

func TestDragNotifiesSelectionEachStep(t *testing.T) {
	doc := newTestDocument(100, 80)
	doc.Tool().SetType(RectangleTool)
	doc.BeginItem(Pt(10, 10))
	ev := countEvents(doc)

	doc.ContinueItem(Pt(20, 20), 0)
	doc.ContinueItem(Pt(30, 30), 0)
	if got := ev.counts[SelectedItemChanged]; got != 2 {
		t.Errorf("two drag steps notified SelectedItemChanged %d times, want 2", got)
	}
	if got, want := GeometryPathBounds(doc.SelectedItem().Traits()), RectFromPoints(Pt(10, 10), Pt(30, 30)); got != want {
		t.Errorf("selected geometry = %v, want %v", got, want)
	}

	ev.reset()
	doc.FinishItem()
	if got := ev.counts[SelectedItemChanged]; got != 1 {
		t.Errorf("FinishItem notified SelectedItemChanged %d times, want 1", got)
	}
}
