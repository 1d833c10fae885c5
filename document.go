package annotate

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/annotate/internal/blend"
	"github.com/gogpu/annotate/internal/imageio"
	"github.com/gogpu/annotate/internal/region"
)

// Document is an annotated raster image: a base image, a canvas with a
// device pixel ratio and transform, and the history of annotations drawn
// on it.
//
// Document coordinates are the untransformed logical coordinates of the
// base image. The canvas rect lives in transformed coordinates; the render
// transform maps document coordinates onto the canvas with its top-left
// corner at the origin.
//
// A Document is not safe for concurrent use. Every method runs to
// completion on the calling goroutine.
type Document struct {
	tool    *Tool
	blur    BlurBackend
	fonts   *FontSet
	history *History
	sel     *SelectedItem
	obs     observers

	baseImage *image.RGBA

	canvasRect      Rect
	imageDPR        float64
	imageSize       image.Point
	transform       Matrix
	inverse         Matrix
	renderTransform Matrix
	inputTransform  Matrix

	canvasBase  *image.RGBA // base image cropped and transformed to the canvas
	annotations *image.RGBA

	repaint      region.Region // document coordinates
	repaintTypes RepaintTypes
}

// NewDocument creates an empty document.
func NewDocument(opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	tool := o.tool
	if tool == nil {
		tool = NewTool(DefaultToolConfig())
	}
	d := &Document{
		tool:            tool,
		blur:            o.blur,
		fonts:           o.fonts,
		history:         NewHistory(),
		imageDPR:        1,
		transform:       Identity(),
		inverse:         Identity(),
		renderTransform: Identity(),
		inputTransform:  Identity(),
	}
	d.sel = &SelectedItem{doc: d, transform: Identity()}
	return d
}

// Subscribe registers fn for change notifications and returns a function
// that removes it. Notifications are sent only when a value changed.
func (d *Document) Subscribe(fn func(Event)) (cancel func()) {
	return d.obs.subscribe(fn)
}

// Tool returns the tool used to create annotations.
func (d *Document) Tool() *Tool { return d.tool }

// History returns the annotation history. It must not be modified
// directly.
func (d *Document) History() *History { return d.history }

// SelectedItem returns the selection editor. It is never nil.
func (d *Document) SelectedItem() *SelectedItem { return d.sel }

// BaseImage returns the image being annotated, or nil.
func (d *Document) BaseImage() *image.RGBA { return d.baseImage }

// CanvasRect returns the visible area in transformed logical coordinates.
func (d *Document) CanvasRect() Rect { return d.canvasRect }

// ImageDPR returns the device pixel ratio of the base image.
func (d *Document) ImageDPR() float64 { return d.imageDPR }

// ImageSize returns the size in pixels of rendered output.
func (d *Document) ImageSize() image.Point { return d.imageSize }

// Transform returns the document transform.
func (d *Document) Transform() Matrix { return d.transform }

// RenderTransform maps document coordinates to canvas-local logical
// coordinates.
func (d *Document) RenderTransform() Matrix { return d.renderTransform }

// InputTransform maps canvas-local logical coordinates, such as pointer
// positions, to document coordinates.
func (d *Document) InputTransform() Matrix { return d.inputTransform }

// UndoDepth returns the number of undoable records.
func (d *Document) UndoDepth() int { return len(d.history.UndoList()) }

// RedoDepth returns the number of redoable records.
func (d *Document) RedoDepth() int { return len(d.history.RedoList()) }

// IsModified reports whether the document changed since it was last marked
// unmodified.
func (d *Document) IsModified() bool { return d.history.IsModified() }

// SetModified marks the current state as modified or saved.
func (d *Document) SetModified(modified bool) {
	if d.history.IsModified() == modified {
		return
	}
	if modified {
		d.history.SetModified()
	} else {
		d.history.SetUnmodified()
	}
	d.obs.notify(ModifiedChanged)
}

// deviceTransform maps document coordinates to output pixels.
func (d *Document) deviceTransform() Matrix {
	return d.renderTransform.Then(Scale(d.imageDPR, d.imageDPR))
}

// baseImageRect returns the untransformed logical bounds of the base image.
func (d *Document) baseImageRect() Rect {
	if d.baseImage == nil {
		return Rect{}
	}
	b := d.baseImage.Bounds()
	return RectXYWH(0, 0, float64(b.Dx())/d.imageDPR, float64(b.Dy())/d.imageDPR)
}

// SetBaseImage replaces the image being annotated. Its logical size is its
// pixel size divided by dpr. The canvas is reset to the whole image with
// the identity transform; annotations are kept. A nil image empties the
// canvas.
func (d *Document) SetBaseImage(img image.Image, dpr float64) {
	if img == nil {
		d.resetCanvas()
		return
	}
	if dpr <= 0 {
		Logger().Warn("invalid device pixel ratio", "dpr", dpr)
		return
	}
	d.baseImage = imageio.ToRGBA(img)
	b := d.baseImage.Bounds()
	d.setCanvas(RectXYWH(0, 0, float64(b.Dx())/dpr, float64(b.Dy())/dpr), dpr, Identity())
}

// resetCanvas drops the base image and every cached view.
func (d *Document) resetCanvas() {
	d.baseImage = nil
	d.canvasBase = nil
	d.annotations = nil
	d.repaint.Reset()
	if d.canvasRect != (Rect{}) {
		d.canvasRect = Rect{}
		d.obs.notify(CanvasRectChanged)
	}
	if d.imageSize != (image.Point{}) {
		d.imageSize = image.Point{}
		d.obs.notify(ImageSizeChanged)
	}
	d.setMatrices(Identity(), true)
}

// setCanvas moves the canvas and rebuilds the cached views.
func (d *Document) setCanvas(rect Rect, dpr float64, transform Matrix) {
	if rect.IsEmpty() || dpr <= 0 {
		Logger().Warn("invalid canvas", "rect", rect, "dpr", dpr)
		return
	}

	moved := d.canvasRect.Min != rect.Min
	if d.canvasRect != rect {
		d.canvasRect = rect
		d.obs.notify(CanvasRectChanged)
	}
	size := image.Pt(int(math.Round(rect.Width()*dpr)), int(math.Round(rect.Height()*dpr)))
	if d.imageSize != size {
		d.imageSize = size
		d.obs.notify(ImageSizeChanged)
	}
	if d.imageDPR != dpr {
		d.imageDPR = dpr
		d.obs.notify(ImageDPRChanged)
	}
	d.setMatrices(transform, moved)

	d.updateCanvasBase()
	d.annotations = image.NewRGBA(image.Rectangle{Max: size})
	d.setRepaintRegionAll(RepaintAll)
}

func (d *Document) setMatrices(transform Matrix, moved bool) {
	changed := d.transform != transform
	if changed {
		d.transform = transform
		d.inverse = transform.Invert()
		d.obs.notify(TransformChanged)
	}
	if changed || moved {
		d.renderTransform = d.transform.Then(Translate(-d.canvasRect.Min.X, -d.canvasRect.Min.Y))
		d.inputTransform = Translate(d.canvasRect.Min.X, d.canvasRect.Min.Y).Then(d.inverse)
	}
}

func (d *Document) updateCanvasBase() {
	if d.baseImage == nil {
		d.canvasBase = nil
		return
	}
	img := image.NewRGBA(image.Rectangle{Max: d.imageSize})
	p := painter{dst: img, m: d.deviceTransform(), tolerance: deviceTolerance}
	p.drawImage(d.baseImage, d.baseImage.Bounds(), Scale(1/d.imageDPR, 1/d.imageDPR), xdraw.CatmullRom, blend.Source)
	d.canvasBase = img
}

// setTransform changes the document transform, keeping the canvas over
// the same content.
func (d *Document) setTransform(transform Matrix) {
	diff := d.inverse.Then(transform)
	d.setCanvas(diff.MapRect(d.canvasRect), d.imageDPR, transform)
}

// CropCanvas shrinks the canvas to rect, given relative to the canvas
// top-left corner. The crop is recorded in history.
func (d *Document) CropCanvas(rect Rect) {
	if rect.IsEmpty() {
		return
	}
	next := rect.Translate(d.canvasRect.Min).Intersect(d.canvasRect)
	if next.IsEmpty() || next == d.canvasRect {
		return
	}
	path := NewPath()
	path.AddRect(next)
	rec := NewRecord(Traits{
		Geometry: &Geometry{Path: path},
		Crop:     &Crop{Transform: d.transform},
	})
	if prev := d.history.LastOf(len(d.history.UndoList()), isCrop); prev != nil {
		SetItemRelations(prev, rec)
	}
	d.setCanvas(next, d.imageDPR, d.transform)
	d.addItem(rec)
}

// ApplyTransform composes m after the document transform. The change is
// recorded in history.
func (d *Document) ApplyTransform(m Matrix) {
	if m.IsIdentity() {
		return
	}
	next := d.transform.Then(m)
	rec := NewRecord(Traits{Transform: &TransformMeta{Matrix: next}})
	if prev := d.history.LastOf(len(d.history.UndoList()), isTransform); prev != nil {
		SetItemRelations(prev, rec)
	}
	d.addItem(rec)
	d.setTransform(next)
}

func isCrop(r *Record) bool      { return r.Traits().Crop != nil }
func isTransform(r *Record) bool { return r.Traits().Transform != nil }

// cropCanvasRect returns the canvas rect recorded by a crop record,
// expressed under the current transform.
func (d *Document) cropCanvasRect(rec *Record) Rect {
	if rec == nil {
		return d.transform.MapRect(d.baseImageRect())
	}
	t := rec.Traits()
	return t.Crop.Transform.Invert().Then(d.transform).MapRect(GeometryPathBounds(t))
}

// Undo reverts the current record.
func (d *Document) Undo() {
	current := d.history.CurrentItem()
	if current == nil {
		Logger().Debug("undo with empty history")
		return
	}
	undo := d.history.UndoList()
	var prev *Record
	if len(undo) > 1 {
		prev = undo[len(undo)-2]
	}
	wasModified := d.history.IsModified()

	d.setRepaintRegion(current.RenderRect(), RepaintAnnotations)
	d.setRepaintRegion(prev.RenderRect(), RepaintAnnotations)

	t := current.Traits()
	if t.Text != nil && t.Text.IsNumber() {
		d.tool.SetNumber(int(t.Text.Value.(TextNumber)))
	}

	if d.sel.Record() == current {
		if prev != nil && prev == current.Parent() {
			d.SelectItem(prev)
		} else {
			d.DeselectItem()
		}
	}

	d.history.Undo()
	switch {
	case t.Transform != nil:
		m := Identity()
		if parent := current.Parent(); parent != nil {
			m = parent.Traits().Transform.Matrix
		}
		d.setTransform(m)
	case t.Crop != nil:
		d.setCanvas(d.cropCanvasRect(current.Parent()), d.imageDPR, d.transform)
	}
	d.obs.notify(UndoDepthChanged)
	d.obs.notify(RedoDepthChanged)
	if wasModified != d.history.IsModified() {
		d.obs.notify(ModifiedChanged)
	}
}

// Redo reapplies the last undone record.
func (d *Document) Redo() {
	next := d.history.NextItem()
	if next == nil {
		Logger().Debug("redo with empty history")
		return
	}
	current := d.history.CurrentItem()
	wasModified := d.history.IsModified()

	d.setRepaintRegion(next.RenderRect(), RepaintAnnotations)
	d.setRepaintRegion(current.RenderRect(), RepaintAnnotations)

	t := next.Traits()
	if t.Text != nil && t.Text.IsNumber() {
		d.tool.SetNumber(int(t.Text.Value.(TextNumber)) + 1)
	}

	if current != nil && d.sel.Record() == current {
		if next == current.Child() {
			d.SelectItem(next)
		} else {
			d.DeselectItem()
		}
	}

	d.history.Redo()
	switch {
	case t.Transform != nil:
		d.setTransform(t.Transform.Matrix)
	case t.Crop != nil:
		d.setCanvas(d.cropCanvasRect(next), d.imageDPR, d.transform)
	}
	d.obs.notify(UndoDepthChanged)
	d.obs.notify(RedoDepthChanged)
	if wasModified != d.history.IsModified() {
		d.obs.notify(ModifiedChanged)
	}
}

// ClearAnnotations removes every annotation, crop and transform, and
// restarts numbering.
func (d *Document) ClearAnnotations() {
	undoDepth, redoDepth := d.UndoDepth(), d.RedoDepth()
	wasModified := d.history.IsModified()

	if d.baseImage != nil {
		d.setCanvas(d.baseImageRect(), d.imageDPR, Identity())
	}
	d.history.ClearLists()
	d.tool.ResetType()
	d.tool.ResetNumber()
	d.DeselectItem()

	if undoDepth != 0 {
		d.obs.notify(UndoDepthChanged)
	}
	if redoDepth != 0 {
		d.obs.notify(RedoDepthChanged)
	}
	if wasModified != d.history.IsModified() {
		d.obs.notify(ModifiedChanged)
	}
	d.setRepaintRegionAll(RepaintAnnotations)
}

// Clear removes every annotation and the base image.
func (d *Document) Clear() {
	d.ClearAnnotations()
	d.SetBaseImage(nil, 0)
}

// addItem pushes rec and notifies the list changes.
func (d *Document) addItem(rec *Record) {
	wasModified := d.history.IsModified()
	d.notifyLists(d.history.Push(rec), wasModified)
}

func (d *Document) notifyLists(changed ListsChanged, wasModified bool) {
	if changed.Undo {
		d.obs.notify(UndoDepthChanged)
	}
	if changed.Redo {
		d.obs.notify(RedoDepthChanged)
	}
	if wasModified != d.history.IsModified() {
		d.obs.notify(ModifiedChanged)
	}
}
