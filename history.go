package annotate

import (
	"iter"

	"github.com/google/uuid"
)

// History is the linear undo/redo timeline of records.
//
// The undo list holds every applied record, oldest first; its last element
// is the current item. The redo list holds undone records; its last
// element is the next one to redo.
type History struct {
	undo []*Record
	redo []*Record

	applied    map[*Record]struct{}
	unmodified uuid.UUID
}

// ListsChanged reports which lists a History operation changed.
type ListsChanged struct {
	Undo bool
	Redo bool
}

// NewHistory creates an empty, unmodified history.
func NewHistory() *History {
	return &History{applied: make(map[*Record]struct{})}
}

// Push appends item and discards everything redoable.
func (h *History) Push(item *Record) ListsChanged {
	if item == nil {
		return ListsChanged{}
	}
	h.undo = append(h.undo, item)
	h.applied[item] = struct{}{}
	changed := ListsChanged{Undo: true, Redo: len(h.redo) > 0}
	clear(h.redo)
	h.redo = h.redo[:0]
	return changed
}

// Pop removes the current item and moves it to the redo list.
func (h *History) Pop() ListsChanged {
	if len(h.undo) == 0 {
		return ListsChanged{}
	}
	h.moveLast(&h.undo, &h.redo)
	return ListsChanged{Undo: true, Redo: true}
}

// Undo moves the current item to the redo list. It reports whether there
// was anything to undo.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	h.moveLast(&h.undo, &h.redo)
	return true
}

// Redo moves the next redoable item back to the undo list. It reports
// whether there was anything to redo.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	h.moveLast(&h.redo, &h.undo)
	return true
}

func (h *History) moveLast(from, to *[]*Record) {
	n := len(*from) - 1
	item := (*from)[n]
	(*from)[n] = nil
	*from = (*from)[:n]
	*to = append(*to, item)
	if to == &h.undo {
		h.applied[item] = struct{}{}
	} else {
		delete(h.applied, item)
	}
}

// ClearLists removes every record. The unmodified bookmark is kept.
func (h *History) ClearLists() ListsChanged {
	changed := ListsChanged{Undo: len(h.undo) > 0, Redo: len(h.redo) > 0}
	h.undo, h.redo = nil, nil
	clear(h.applied)
	return changed
}

// UndoList returns the applied records, oldest first. The slice must not be
// modified.
func (h *History) UndoList() []*Record { return h.undo }

// RedoList returns the undone records; the last is redone first. The slice
// must not be modified.
func (h *History) RedoList() []*Record { return h.redo }

// CurrentItem returns the most recently applied record, or nil.
func (h *History) CurrentItem() *Record {
	if len(h.undo) == 0 {
		return nil
	}
	return h.undo[len(h.undo)-1]
}

// NextItem returns the record Redo would apply, or nil.
func (h *History) NextItem() *Record {
	if len(h.redo) == 0 {
		return nil
	}
	return h.redo[len(h.redo)-1]
}

// Contains reports whether item is in the undo list.
func (h *History) Contains(item *Record) bool {
	_, ok := h.applied[item]
	return ok
}

// ItemVisible reports whether item is drawn: it can be visible and has not
// been replaced or deleted by an applied record.
func (h *History) ItemVisible(item *Record) bool {
	if item == nil || !CanBeVisible(item.Traits()) {
		return false
	}
	child := item.Child()
	return child == nil || !h.Contains(child)
}

// LastOf returns the latest applied record before index end that matches
// keep, or nil.
func (h *History) LastOf(end int, keep func(*Record) bool) *Record {
	end = min(end, len(h.undo))
	for i := end - 1; i >= 0; i-- {
		if keep(h.undo[i]) {
			return h.undo[i]
		}
	}
	return nil
}

// SetUnmodified marks the current state as saved.
func (h *History) SetUnmodified() {
	h.unmodified = h.currentID()
}

// SetModified forgets the saved state so the history reads as modified.
func (h *History) SetModified() {
	// No record carries a random fresh ID, so this never matches.
	h.unmodified = uuid.New()
}

// IsModified reports whether the current state differs from the saved one.
func (h *History) IsModified() bool {
	return h.currentID() != h.unmodified
}

func (h *History) currentID() uuid.UUID {
	if item := h.CurrentItem(); item != nil {
		return item.ID
	}
	return uuid.Nil
}

// SubRange is a view of the undo list between two indices.
type SubRange struct {
	h          *History
	begin, end int
}

// Range returns the view of undo list indices [begin, end), clamped to the
// list.
func (h *History) Range(begin, end int) SubRange {
	end = min(max(end, 0), len(h.undo))
	begin = min(max(begin, 0), end)
	return SubRange{h: h, begin: begin, end: end}
}

// All returns the full undo list view.
func (h *History) All() SubRange {
	return h.Range(0, len(h.undo))
}

// Len returns the number of records in the view.
func (r SubRange) Len() int { return r.end - r.begin }

// Begin returns the first index of the view.
func (r SubRange) Begin() int { return r.begin }

// End returns the index after the last record of the view.
func (r SubRange) End() int { return r.end }

// Items iterates the records of the view with their undo list index.
func (r SubRange) Items() iter.Seq2[int, *Record] {
	return func(yield func(int, *Record) bool) {
		if r.h == nil {
			return
		}
		for i := r.begin; i < r.end; i++ {
			if !yield(i, r.h.undo[i]) {
				return
			}
		}
	}
}

// Backward iterates the records of the view from the newest.
func (r SubRange) Backward() iter.Seq2[int, *Record] {
	return func(yield func(int, *Record) bool) {
		if r.h == nil {
			return
		}
		for i := r.end - 1; i >= r.begin; i-- {
			if !yield(i, r.h.undo[i]) {
				return
			}
		}
	}
}
