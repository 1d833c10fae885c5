package annotate

import (
	"weak"

	"github.com/google/uuid"
)

// Record is one entry of the annotation history.
//
// Records are immutable once pushed; edits produce new records linked to
// the record they replace through the parent and child relations. The
// relations are weak: the History lists are the only owners, so a record
// that was dropped from history reads as having no parent.
type Record struct {
	ID uuid.UUID

	traits Traits
	parent weak.Pointer[Record]
	child  weak.Pointer[Record]
}

// NewRecord creates a record with a fresh identity.
func NewRecord(t Traits) *Record {
	return &Record{ID: uuid.New(), traits: t}
}

// Traits returns the record's traits. Callers must not modify the traits
// of a record that has been pushed to a History.
func (r *Record) Traits() *Traits {
	if r == nil {
		return nil
	}
	return &r.traits
}

// Parent returns the record this one replaces, or nil.
func (r *Record) Parent() *Record {
	if r == nil {
		return nil
	}
	return r.parent.Value()
}

// Child returns the record that replaced this one, or nil.
func (r *Record) Child() *Record {
	if r == nil {
		return nil
	}
	return r.child.Value()
}

// HasParent reports whether the record replaces a live record.
func (r *Record) HasParent() bool {
	return r.Parent() != nil
}

// SetItemRelations links child as the replacement of parent.
func SetItemRelations(parent, child *Record) {
	if parent == nil || child == nil {
		return
	}
	parent.child = weak.Make(child)
	child.parent = weak.Make(parent)
}

// Clone returns a copy with a new identity. Traits are copied deeply;
// the relations are kept.
func (r *Record) Clone() *Record {
	return &Record{
		ID:     uuid.New(),
		traits: r.traits.Clone(),
		parent: r.parent,
		child:  r.child,
	}
}

// IsValid reports whether the record is worth keeping: it can be visible,
// it covers a non-empty area, and text records carry some text. A fill
// without stroke or text must have both a width and a height.
func (r *Record) IsValid() bool {
	if r == nil {
		return false
	}
	t := &r.traits
	if !CanBeVisible(t) || t.Visual.Rect.IsEmpty() {
		return false
	}
	if t.Text != nil && (t.Text.Value == nil || t.Text.Value.String() == "") {
		return false
	}
	if t.Fill != nil && t.Stroke == nil && t.Text == nil {
		b := t.Geometry.Path.BoundingBox()
		return b.Width() > 0 && b.Height() > 0
	}
	return true
}

// RenderRect returns the area the record paints, or the zero Rect.
func (r *Record) RenderRect() Rect {
	if r == nil || r.traits.Visual == nil {
		return Rect{}
	}
	return r.traits.Visual.Rect
}
