package annotate

import "image"

// setRepaintRegion marks rect, in document coordinates, for repainting.
// The rect is grown by one unit up and left to cover antialiased edges and
// aligned to whole units.
func (d *Document) setRepaintRegion(rect Rect, types RepaintTypes) {
	if rect.IsNull() || !d.canvasRect.Intersects(d.transform.MapRect(rect)) {
		return
	}
	bigger := RectFromPoints(rect.Min, rect.Max).Adjusted(-1, -1, 0, 0).Aligned()
	if !d.canvasRect.Intersects(d.transform.MapRect(RectFromImage(bigger))) {
		return
	}
	notify := d.repaint.IsEmpty() || d.repaintTypes != types
	d.repaint.Union(bigger)
	d.repaintTypes = types
	if notify {
		d.obs.emit(Event{Kind: RepaintNeeded, Repaint: types})
	}
}

// setRepaintRegionAll marks the whole canvas for repainting.
// Like setRepaintRegion it notifies only when no repaint was pending or
// the repaint types change.
func (d *Document) setRepaintRegionAll(types RepaintTypes) {
	notify := d.repaint.IsEmpty() || d.repaintTypes != types
	d.repaint.Reset()
	d.repaint.Union(d.inverse.MapRect(d.canvasRect).Aligned())
	d.repaintTypes = types
	if notify {
		d.obs.emit(Event{Kind: RepaintNeeded, Repaint: types})
	}
}

// RepaintRegion returns the pending repaint area in document coordinates
// as disjoint rectangles. It is empty right after AnnotationsImage.
func (d *Document) RepaintRegion() []image.Rectangle {
	return d.repaint.Rects()
}

// RepaintTypes returns the layers of the last repaint request.
func (d *Document) RepaintTypes() RepaintTypes { return d.repaintTypes }
