package annotate

// PressGroup shares the pressed state of several views showing the same
// document. Each view joins as a member and reports its own pointer
// state; the group tells every member whether any of them is pressed.
//
// A PressGroup is not safe for concurrent use.
type PressGroup struct {
	members    []*PressMember
	anyPressed bool
	notifying  bool
	dirty      bool
}

// PressMember is one view in a PressGroup.
type PressMember struct {
	group    *PressGroup
	pressed  bool
	onChange func(anyPressed bool)
}

// Join adds a member. onChange, which may be nil, is called with the new
// aggregate state whenever it changes.
func (g *PressGroup) Join(onChange func(anyPressed bool)) *PressMember {
	m := &PressMember{group: g, onChange: onChange}
	g.members = append(g.members, m)
	return m
}

// AnyPressed reports whether any member is pressed.
func (g *PressGroup) AnyPressed() bool { return g.anyPressed }

// Len returns the number of members.
func (g *PressGroup) Len() int { return len(g.members) }

// Pressed reports the member's own state.
func (m *PressMember) Pressed() bool { return m.pressed }

// SetPressed updates the member's state and the group aggregate.
func (m *PressMember) SetPressed(pressed bool) {
	if m.group == nil || m.pressed == pressed {
		return
	}
	m.pressed = pressed
	m.group.update()
}

// Leave removes the member from its group.
func (m *PressMember) Leave() {
	g := m.group
	if g == nil {
		return
	}
	for i, o := range g.members {
		if o == m {
			g.members = append(g.members[:i:i], g.members[i+1:]...)
			break
		}
	}
	m.group = nil
	g.update()
}

// update recomputes the aggregate and broadcasts a change. Changes made by
// members while the broadcast is running are folded into one more pass
// after it instead of recursing.
func (g *PressGroup) update() {
	if g.notifying {
		g.dirty = true
		return
	}
	for {
		g.dirty = false
		pressed := false
		for _, m := range g.members {
			if m.pressed {
				pressed = true
				break
			}
		}
		if pressed == g.anyPressed {
			return
		}
		g.anyPressed = pressed
		g.notifying = true
		for _, m := range g.members {
			if m.onChange != nil {
				m.onChange(pressed)
			}
		}
		g.notifying = false
		if !g.dirty {
			return
		}
	}
}
