package annotate

import (
	"weak"

	"golang.org/x/text/unicode/norm"
)

// SelectedItem edits a copy of the selected record. Changes become visible
// at once but enter history only through CommitChanges; Reset discards
// them.
//
// Without a selection every getter returns the zero value and every setter
// does nothing.
type SelectedItem struct {
	doc       *Document
	selected  *Record
	temp      *Record
	options   Options
	transform Matrix
}

// HasSelection reports whether a record is selected.
func (s *SelectedItem) HasSelection() bool { return s.selected != nil }

// Record returns the selected committed record, or nil.
func (s *SelectedItem) Record() *Record { return s.selected }

// Traits returns the traits of the edited copy, or nil.
func (s *SelectedItem) Traits() *Traits { return s.temp.Traits() }

// Options returns the editable properties of the selection.
func (s *SelectedItem) Options() Options { return s.options }

// Transform returns the transform applied since the selection started.
func (s *SelectedItem) Transform() Matrix { return s.transform }

// GeometryPath returns the geometry of the edited copy, or nil.
func (s *SelectedItem) GeometryPath() *Path { return GeometryPath(s.temp.Traits()) }

// MousePath returns the hit-test path of the edited copy, or nil.
func (s *SelectedItem) MousePath() *Path { return InteractivePath(s.temp.Traits()) }

// setSelectedItem selects item, or clears the selection for nil. It
// reports whether the selection changed.
func (s *SelectedItem) setSelectedItem(item *Record) bool {
	if s.selected == item {
		return false
	}
	if item == nil {
		return s.reset()
	}
	t := item.Traits()
	if !CanBeVisible(t) {
		return false
	}
	prevOptions := s.options
	s.selected = item
	s.temp = item.Clone()
	s.transform = Identity()
	s.options = optionsOf(t)
	if prevOptions != s.options {
		s.doc.obs.notify(SelectionOptionsChanged)
	}
	return true
}

// refresh restarts editing from the selected record after it was updated
// in place.
func (s *SelectedItem) refresh() {
	if s.selected == nil {
		return
	}
	s.temp = s.selected.Clone()
	s.transform = Identity()
	if o := optionsOf(s.selected.Traits()); o != s.options {
		s.options = o
		s.doc.obs.notify(SelectionOptionsChanged)
	}
}

func optionsOf(t *Traits) Options {
	var o Options
	if t.Stroke != nil {
		o |= StrokeOption
	}
	switch t.Fill.(type) {
	case Brush:
		o |= FillOption
	case Blur, Pixelate:
		o |= StrengthOption
	}
	if t.Text != nil {
		o |= FontOption
		if t.Text.IsNumber() {
			o |= NumberOption
		} else {
			o |= TextOption
		}
	}
	if t.Shadow != nil {
		o |= ShadowOption
	}
	return o
}

// reset clears the selection and repaints what it covered. It reports
// whether a record was selected.
func (s *SelectedItem) reset() bool {
	if s.selected == nil && s.options == NoOptions {
		return false
	}
	changed := s.selected != nil
	s.doc.setRepaintRegion(s.selected.RenderRect(), RepaintAnnotations)
	s.doc.setRepaintRegion(s.temp.RenderRect(), RepaintAnnotations)
	prevOptions := s.options
	s.selected, s.temp = nil, nil
	s.options = NoOptions
	s.transform = Identity()
	if prevOptions != NoOptions {
		s.doc.obs.notify(SelectionOptionsChanged)
	}
	return changed
}

// Reset discards uncommitted changes and clears the selection. It reports
// whether a record was selected.
func (s *SelectedItem) Reset() bool {
	changed := s.reset()
	if changed {
		s.doc.obs.notify(SelectedItemChanged)
	}
	return changed
}

// CommitChanges pushes the edited copy as a record replacing the selected
// one and selects it. It reports whether anything was committed: nothing
// is when the copy is invalid or unchanged.
func (s *SelectedItem) CommitChanges() bool {
	if s.selected == nil || s.temp == nil || !s.temp.IsValid() ||
		s.temp.Traits().Equal(s.selected.Traits()) {
		return false
	}
	d := s.doc
	temp := s.temp
	temp.child = weak.Pointer[Record]{}
	wasModified := d.history.IsModified()
	undoDepth, redoDepth := len(d.history.UndoList()), len(d.history.RedoList())
	if !s.selected.IsValid() && s.selected == d.history.CurrentItem() {
		// An invalid record still being created is replaced outright.
		d.history.Pop()
		temp.parent = weak.Pointer[Record]{}
	} else {
		SetItemRelations(s.selected, temp)
	}
	d.history.Push(temp)
	d.notifyLists(ListsChanged{
		Undo: len(d.history.UndoList()) != undoDepth,
		Redo: len(d.history.RedoList()) != redoDepth,
	}, wasModified)
	s.setSelectedItem(temp)
	d.obs.notify(SelectedItemChanged)
	return true
}

// ApplyTransform transforms the edited copy by m. Translations move the
// derived traits directly; other transforms are applied around the
// geometry center and re-derive everything.
func (s *SelectedItem) ApplyTransform(m Matrix) {
	if s.temp == nil || m.IsIdentity() {
		return
	}
	t := s.temp.Traits()
	s.doc.setRepaintRegion(s.temp.RenderRect(), RepaintAnnotations)
	if m.IsTranslation() {
		TransformTraits(m, t)
	} else {
		o := GeometryPathBounds(t).Center()
		applied := Translate(-o.X, -o.Y).Then(m).Then(Translate(o.X, o.Y))
		t.Geometry.Path = t.Geometry.Path.Transform(applied)
		ReInitTraits(t)
	}
	s.transform = s.transform.Then(m)
	s.doc.setRepaintRegion(s.temp.RenderRect(), RepaintAnnotations)
	s.doc.obs.notify(SelectionTransformChanged)
	s.doc.obs.notify(SelectionGeometryChanged)
	s.doc.obs.notify(SelectionMousePathChanged)
}

// edit repaints around a change to the edited copy. A reinit re-derives
// the traits and reports the geometry change.
func (s *SelectedItem) edit(kind EventKind, reinit bool, change func(t *Traits)) {
	t := s.temp.Traits()
	s.doc.setRepaintRegion(s.temp.RenderRect(), RepaintAnnotations)
	change(t)
	if reinit {
		ReInitTraits(t)
	}
	s.doc.setRepaintRegion(s.temp.RenderRect(), RepaintAnnotations)
	s.doc.obs.notify(kind)
	if reinit {
		s.doc.obs.notify(SelectionGeometryChanged)
		s.doc.obs.notify(SelectionMousePathChanged)
	}
}

// StrokeWidth returns the pen width of the edited copy.
func (s *SelectedItem) StrokeWidth() float64 {
	if !s.options.Has(StrokeOption) {
		return 0
	}
	return s.temp.traits.Stroke.Pen.Width
}

// SetStrokeWidth changes the pen width.
func (s *SelectedItem) SetStrokeWidth(w float64) {
	if !s.options.Has(StrokeOption) || w < 0 || s.StrokeWidth() == w {
		return
	}
	s.edit(SelectionStrokeWidthChanged, true, func(t *Traits) { t.Stroke.Pen.Width = w })
}

// StrokeColor returns the pen color of the edited copy.
func (s *SelectedItem) StrokeColor() RGBA {
	if !s.options.Has(StrokeOption) {
		return RGBA{}
	}
	return s.temp.traits.Stroke.Pen.Color
}

// SetStrokeColor changes the pen color.
func (s *SelectedItem) SetStrokeColor(c RGBA) {
	if !s.options.Has(StrokeOption) || s.StrokeColor() == c {
		return
	}
	s.edit(SelectionStrokeColorChanged, false, func(t *Traits) { t.Stroke.Pen.Color = c })
}

// FillColor returns the brush color of the edited copy.
func (s *SelectedItem) FillColor() RGBA {
	if !s.options.Has(FillOption) {
		return RGBA{}
	}
	return s.temp.traits.Fill.(Brush).Color
}

// SetFillColor changes the brush color.
func (s *SelectedItem) SetFillColor(c RGBA) {
	if !s.options.Has(FillOption) || s.FillColor() == c {
		return
	}
	s.edit(SelectionFillColorChanged, false, func(t *Traits) { t.Fill = Brush{Color: c} })
}

// Strength returns the effect strength of the edited copy.
func (s *SelectedItem) Strength() float64 {
	if !s.options.Has(StrengthOption) {
		return 0
	}
	switch f := s.temp.traits.Fill.(type) {
	case Blur:
		return f.Strength
	case Pixelate:
		return f.Strength
	}
	return 0
}

// SetStrength changes the effect strength, clamped to [0, 1].
func (s *SelectedItem) SetStrength(v float64) {
	v = min(max(v, 0), 1)
	if !s.options.Has(StrengthOption) || s.Strength() == v {
		return
	}
	s.edit(SelectionStrengthChanged, false, func(t *Traits) {
		switch t.Fill.(type) {
		case Blur:
			t.Fill = Blur{Strength: v}
		case Pixelate:
			t.Fill = Pixelate{Strength: v}
		}
	})
}

// Font returns the font of the edited copy.
func (s *SelectedItem) Font() Font {
	if !s.options.Has(FontOption) {
		return Font{}
	}
	return s.temp.traits.Text.Font
}

// SetFont changes the font.
func (s *SelectedItem) SetFont(f Font) {
	if !s.options.Has(FontOption) || s.Font() == f {
		return
	}
	s.edit(SelectionFontChanged, true, func(t *Traits) { t.Text.Font = f })
}

// FontColor returns the text color of the edited copy.
func (s *SelectedItem) FontColor() RGBA {
	if !s.options.Has(FontOption) {
		return RGBA{}
	}
	return s.temp.traits.Text.Color
}

// SetFontColor changes the text color.
func (s *SelectedItem) SetFontColor(c RGBA) {
	if !s.options.Has(FontOption) || s.FontColor() == c {
		return
	}
	s.edit(SelectionFontColorChanged, false, func(t *Traits) { t.Text.Color = c })
}

// Number returns the label of a number record.
func (s *SelectedItem) Number() int {
	if !s.options.Has(NumberOption) {
		return 0
	}
	return int(s.temp.traits.Text.Value.(TextNumber))
}

// SetNumber changes the label of a number record.
func (s *SelectedItem) SetNumber(n int) {
	if !s.options.Has(NumberOption) || s.Number() == n {
		return
	}
	s.edit(SelectionNumberChanged, true, func(t *Traits) { t.Text.Value = TextNumber(n) })
}

// Text returns the string of a text record.
func (s *SelectedItem) Text() string {
	if !s.options.Has(TextOption) {
		return ""
	}
	return s.temp.traits.Text.Value.String()
}

// SetText changes the string of a text record. It is normalized to NFC.
func (s *SelectedItem) SetText(text string) {
	text = norm.NFC.String(text)
	if !s.options.Has(TextOption) || s.Text() == text {
		return
	}
	s.edit(SelectionTextChanged, true, func(t *Traits) { t.Text.Value = TextString(text) })
}

// HasShadow reports whether the edited copy draws a shadow.
func (s *SelectedItem) HasShadow() bool {
	return s.options.Has(ShadowOption) && s.temp.traits.Shadow.Enabled
}

// SetShadow enables or disables the shadow.
func (s *SelectedItem) SetShadow(on bool) {
	if !s.options.Has(ShadowOption) || s.HasShadow() == on {
		return
	}
	s.edit(SelectionShadowChanged, true, func(t *Traits) { t.Shadow.Enabled = on })
}
