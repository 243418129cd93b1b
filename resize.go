package compose

// Resize moves and/or resizes the surface to r.
//
// A size change (or parentResized) turns scrolling off, marks the
// surface dirty, destroys its backend resource and asks every child's
// owner to lay out again. A pure move only dirties the parent. Either
// way the union of the old and new areas is repainted. Resizing to the
// current bounds with parentResized false does nothing.
func (s *Surface) Resize(r Rect, parentResized bool) {
	old := s.bounds
	s.bounds = r
	if !parentResized && old == r {
		return
	}

	p := s.Parent()
	if parentResized || old.Size() != r.Size() {
		s.virtualSize = Size{}
		s.MarkDirty()
		s.destroyResource()
		s.updateChildren(true)
	} else if p != nil {
		p.MarkDirty()
	}

	if p != nil {
		p.RepaintRect(old.Unite(r))
	} else {
		s.Repaint()
	}
}

// MarkDirty flags s and its ancestors as needing a repaint. The walk
// stops at the first surface that is already dirty.
func (s *Surface) MarkDirty() {
	for n := s; n != nil && !n.dirty; n = n.Parent() {
		n.dirty = true
	}
}

// updateChildren sends a bounds update to the owner of every child.
// Children without a live owner are logged and skipped.
func (s *Surface) updateChildren(parentResized bool) {
	for c := s.FirstChild(); c != nil; c = c.NextSibling() {
		o := resolveOwner(c.owner)
		if o == nil {
			Logger().Error("compose: surface without owner", "surface", c.String())
			continue
		}
		o.SurfaceBoundsUpdate(parentResized)
	}
}
