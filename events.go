package annotate

import "fmt"

// EventKind identifies which observable property of a document changed.
type EventKind int

// Document properties.
const (
	UndoDepthChanged EventKind = iota
	RedoDepthChanged
	ModifiedChanged
	CanvasRectChanged
	ImageSizeChanged
	ImageDPRChanged
	TransformChanged
	SelectedItemChanged
	RepaintNeeded
)

// Selected item properties.
const (
	SelectionOptionsChanged EventKind = iota + 100
	SelectionStrokeWidthChanged
	SelectionStrokeColorChanged
	SelectionFillColorChanged
	SelectionStrengthChanged
	SelectionFontChanged
	SelectionFontColorChanged
	SelectionNumberChanged
	SelectionTextChanged
	SelectionShadowChanged
	SelectionTransformChanged
	SelectionGeometryChanged
	SelectionMousePathChanged
)

var eventNames = map[EventKind]string{
	UndoDepthChanged:            "UndoDepthChanged",
	RedoDepthChanged:            "RedoDepthChanged",
	ModifiedChanged:             "ModifiedChanged",
	CanvasRectChanged:           "CanvasRectChanged",
	ImageSizeChanged:            "ImageSizeChanged",
	ImageDPRChanged:             "ImageDPRChanged",
	TransformChanged:            "TransformChanged",
	SelectedItemChanged:         "SelectedItemChanged",
	RepaintNeeded:               "RepaintNeeded",
	SelectionOptionsChanged:     "SelectionOptionsChanged",
	SelectionStrokeWidthChanged: "SelectionStrokeWidthChanged",
	SelectionStrokeColorChanged: "SelectionStrokeColorChanged",
	SelectionFillColorChanged:   "SelectionFillColorChanged",
	SelectionStrengthChanged:    "SelectionStrengthChanged",
	SelectionFontChanged:        "SelectionFontChanged",
	SelectionFontColorChanged:   "SelectionFontColorChanged",
	SelectionNumberChanged:      "SelectionNumberChanged",
	SelectionTextChanged:        "SelectionTextChanged",
	SelectionShadowChanged:      "SelectionShadowChanged",
	SelectionTransformChanged:   "SelectionTransformChanged",
	SelectionGeometryChanged:    "SelectionGeometryChanged",
	SelectionMousePathChanged:   "SelectionMousePathChanged",
}

// String returns the name of the event kind.
func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// RepaintTypes says which layers of the output need repainting.
type RepaintTypes uint8

// Repaint layers.
const (
	RepaintBaseImage RepaintTypes = 1 << iota
	RepaintAnnotations

	RepaintNone RepaintTypes = 0
	RepaintAll               = RepaintBaseImage | RepaintAnnotations
)

// Event is a change notification. Repaint is set for RepaintNeeded.
type Event struct {
	Kind    EventKind
	Repaint RepaintTypes
}

// observers dispatches events to subscribers in subscription order.
type observers struct {
	next int
	subs []subscription
}

type subscription struct {
	id int
	fn func(Event)
}

// subscribe adds fn and returns a function that removes it.
func (o *observers) subscribe(fn func(Event)) (cancel func()) {
	o.next++
	id := o.next
	o.subs = append(o.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

func (o *observers) emit(e Event) {
	for _, s := range o.subs {
		s.fn(e)
	}
}

func (o *observers) notify(kind EventKind) {
	o.emit(Event{Kind: kind})
}
