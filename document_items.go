package annotate

import "math"

// ContinueFlags modify how ContinueItem interprets the pointer.
type ContinueFlags uint8

// Continue flags.
const (
	// Snap constrains lines to 45 degree steps, rectangles and ellipses to
	// squares and circles, and freehand strokes to straight segments.
	Snap ContinueFlags = 1 << iota
	// CenterResize grows shapes around their center instead of the start
	// point.
	CenterResize
)

// snapRatio is the slope ratio beyond which a snapped line becomes
// horizontal or vertical instead of diagonal.
const snapRatio = 1.5

// CurrentItem returns the most recent record, or nil.
func (d *Document) CurrentItem() *Record { return d.history.CurrentItem() }

// IsCurrentItemValid reports whether the most recent record is worth
// keeping. Crop, transform and deletion records always are.
func (d *Document) IsCurrentItemValid() bool {
	cur := d.history.CurrentItem()
	return cur == nil || cur.Traits().IsMeta() || cur.IsValid()
}

// ItemAt returns the topmost visible record under rect, or nil.
//
// Records whose hit-test path contains the center of rect win. Failing
// that, a non-null rect also matches records touching the ellipse
// inscribed in it.
func (d *Document) ItemAt(rect Rect) *Record {
	all := d.history.All()
	center := rect.Center()
	for _, rec := range all.Backward() {
		if !d.history.ItemVisible(rec) {
			continue
		}
		if p := InteractivePath(rec.Traits()); p != nil && p.Contains(center) {
			return rec
		}
	}
	if rect.IsNull() {
		return nil
	}
	ellipse := NewPath()
	ellipse.AddEllipse(rect)
	for _, rec := range all.Backward() {
		if !d.history.ItemVisible(rec) {
			continue
		}
		if p := InteractivePath(rec.Traits()); p != nil && p.Intersects(ellipse) {
			return rec
		}
	}
	return nil
}

// SelectItem starts editing rec. A nil rec deselects. Records that cannot
// be visible are ignored.
func (d *Document) SelectItem(rec *Record) {
	if d.sel.setSelectedItem(rec) {
		d.obs.notify(SelectedItemChanged)
	}
}

// DeselectItem ends editing without committing.
func (d *Document) DeselectItem() {
	d.SelectItem(nil)
}

// DeleteSelectedItem hides the selected record by pushing a deletion
// record that replaces it.
func (d *Document) DeleteSelectedItem() {
	selected := d.sel.Record()
	if selected == nil {
		return
	}
	rec := NewRecord(Traits{Delete: &Delete{}})
	SetItemRelations(selected, rec)
	d.addItem(rec)
	d.DeselectItem()
	d.setRepaintRegion(selected.RenderRect(), RepaintAnnotations)
}

// PopCurrentItem discards the most recent record. It can be redone.
func (d *Document) PopCurrentItem() {
	cur := d.history.CurrentItem()
	if cur == nil {
		return
	}
	wasModified := d.history.IsModified()
	if d.sel.Record() == cur {
		d.DeselectItem()
	}
	changed := d.history.Pop()
	if changed.Undo {
		d.obs.notify(UndoDepthChanged)
	}
	d.setRepaintRegion(cur.RenderRect(), RepaintAnnotations)
	if changed.Redo {
		d.obs.notify(RedoDepthChanged)
	}
	if wasModified != d.history.IsModified() {
		d.obs.notify(ModifiedChanged)
	}
}

// BeginItem starts a new annotation at pt, in document coordinates, with
// the active creation tool. An invalid current record left from an
// abandoned attempt is discarded first. The new record is selected so
// that ContinueItem edits a copy.
func (d *Document) BeginItem(pt Point) {
	if !d.tool.IsCreationTool() {
		return
	}
	if !d.IsCurrentItemValid() {
		d.PopCurrentItem()
	}

	typ := d.tool.Type()
	opts := d.tool.Options()
	path := NewPath()
	path.MoveTo(pt.X, pt.Y)
	t := Traits{
		Geometry:    &Geometry{Path: path},
		Interactive: &Interactive{Path: path.Clone()},
		Visual:      &Visual{Rect: RectFromPoints(pt, pt)},
	}

	switch {
	case typ == BlurTool:
		t.Fill = Blur{Strength: d.tool.Strength()}
	case typ == PixelateTool:
		t.Fill = Pixelate{Strength: d.tool.Strength()}
	case opts.Has(FillOption):
		t.Fill = Brush{Color: d.tool.FillColor()}
	}
	if opts.Has(StrokeOption) {
		pen := DefaultPen()
		pen.Color = d.tool.StrokeColor()
		pen.Width = d.tool.StrokeWidth()
		t.Stroke = &Stroke{Pen: pen}
	}
	if opts.Has(ShadowOption) {
		t.Shadow = &Shadow{Enabled: d.tool.HasShadow()}
	}

	switch typ {
	case FreehandTool:
		t.Geometry.Path = MinPath(path)
	case HighlighterTool:
		t.Geometry.Path = MinPath(path)
		t.Highlight = &Highlight{}
	case ArrowTool:
		t.Arrow = &Arrow{}
	case NumberTool:
		t.Text = NewText(TextNumber(d.tool.Number()), d.tool.FontColor(), d.tool.Font())
		d.tool.SetNumber(d.tool.Number() + 1)
	case TextTool:
		t.Text = NewText(TextString(""), d.tool.FontColor(), d.tool.Font())
	}
	if t.Text != nil {
		t.Text.fonts = d.fonts
	}
	InitTraits(&t)

	rec := NewRecord(t)
	d.setRepaintRegion(rec.RenderRect(), RepaintAnnotations)
	d.addItem(rec)
	d.SelectItem(rec)
}

// editedItem returns the record being created and the traits to edit: the
// selection copy when the current record is selected.
func (d *Document) editedItem() (*Record, *Traits, bool) {
	cur := d.history.CurrentItem()
	if cur == nil || !d.tool.IsCreationTool() {
		return nil, nil, false
	}
	t := cur.Traits()
	selected := d.sel.Record() == cur && d.sel.temp != nil
	if selected {
		t = d.sel.temp.Traits()
	}
	if !CanBeVisible(t) {
		return nil, nil, false
	}
	return cur, t, selected
}

// ContinueItem extends the annotation being created towards pt.
func (d *Document) ContinueItem(pt Point, flags ContinueFlags) {
	cur, t, selected := d.editedItem()
	if cur == nil {
		return
	}
	d.setRepaintRegion(t.Visual.Rect, RepaintAnnotations)

	path := t.Geometry.Path
	n := path.Len()
	switch typ := d.tool.Type(); typ {
	case FreehandTool, HighlighterTool:
		if flags&Snap != 0 {
			if _, ok := path.ElementAt(n - 1).(LineTo); !ok {
				path.LineTo(pt.X, pt.Y)
			}
			path.SetElementPoint(path.Len()-1, pt)
		} else {
			last := path.CurrentPoint()
			mid := last.Add(pt).Div(2)
			path.QuadraticTo(last.X, last.Y, mid.X, mid.Y)
		}
		if typ == HighlighterTool && t.Stroke != nil {
			if flags&Snap != 0 && path.Len() == 2 {
				t.Stroke.Pen.Cap = CapFlat
			} else {
				t.Stroke.Pen.Cap = CapRound
			}
		}

	case LineTool, ArrowTool:
		if flags&Snap != 0 {
			prev := path.ElementPoint(n - 1)
			if n > 1 {
				prev = path.ElementPoint(n - 2)
			}
			pt = snapLine(prev, pt)
		}
		if _, isMove := path.ElementAt(n - 1).(MoveTo); n > 1 && !isMove {
			path.SetElementPoint(n-1, pt)
		} else {
			path.LineTo(pt.X, pt.Y)
		}

	case RectangleTool, EllipseTool, BlurTool, PixelateTool:
		start := path.CurrentPoint()
		size := pt.Sub(start)
		if flags&Snap != 0 {
			m := math.Max(math.Abs(size.X), math.Abs(size.Y))
			size = Pt(math.Copysign(m, size.X), math.Copysign(m, size.Y))
		}
		if flags&CenterResize != 0 {
			center := start
			if n > 1 {
				center = path.BoundingBox().Center()
			}
			start = center.Sub(size.Div(2))
		}
		rect := RectFromPoints(start, start.Add(size))
		path.Clear()
		if typ == EllipseTool {
			path.AddEllipse(rect)
		} else {
			path.AddRect(rect)
		}
		// The trailing MoveTo keeps the anchor corner for the next call.
		path.MoveTo(start.X, start.Y)

	case TextTool:
		b := path.BoundingBox()
		path.Translate(pt.Sub(Pt(b.Min.X, b.Center().Y)))

	case NumberTool:
		path.Translate(pt.Sub(path.BoundingBox().Center()))
	}

	ClearForInit(t)
	FastInitTraits(t)
	if selected {
		d.commitCreation(cur, t)
	}
	d.setRepaintRegion(cur.RenderRect(), RepaintAnnotations)
}

// snapLine moves pt so the segment from prev is horizontal, vertical or
// diagonal.
func snapLine(prev, pt Point) Point {
	diff := pt.Sub(prev)
	dx, dy := math.Abs(diff.X), math.Abs(diff.Y)
	switch {
	case dx/snapRatio > dy:
		return Pt(pt.X, prev.Y)
	case dx < dy/snapRatio:
		return Pt(prev.X, pt.Y)
	}
	m := math.Max(dx, dy)
	return prev.Add(Pt(math.Copysign(m, diff.X), math.Copysign(m, diff.Y)))
}

// commitCreation copies the edited traits into the record being created
// and restarts the selection on it. Listeners re-read the selection on
// every step of the drag.
func (d *Document) commitCreation(cur *Record, t *Traits) {
	cur.traits = t.Clone()
	d.sel.refresh()
	d.obs.notify(SelectedItemChanged)
}

// FinishItem completes the annotation being created with the full trait
// derivation.
func (d *Document) FinishItem() {
	cur, t, selected := d.editedItem()
	if cur == nil {
		return
	}
	InitTraits(t)
	if selected {
		d.commitCreation(cur, t)
	}
}
