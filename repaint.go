package compose

import "image"

// localMatrix maps the surface's content coordinates into its parent's
// coordinate space.
func (s *Surface) localMatrix() Matrix {
	return NewMatrix(s.bounds.X, s.bounds.Y, s.xScale, s.yScale)
}

// ToScreen maps a rectangle of the given size, anchored at the
// surface's content origin, to device pixels. Scroll offsets are not
// applied.
func (s *Surface) ToScreen(size Size) image.Rectangle {
	m := s.localMatrix()
	for p := s.Parent(); p != nil; p = p.Parent() {
		m = p.localMatrix().Multiply(m)
	}
	return m.ToScreen(RectFromSize(size))
}

// ScreenClip returns the matrix mapping the surface's content
// coordinates to device pixels (scroll included) and the device-space
// rectangle the surface is visible in, bounded by every ancestor.
func (s *Surface) ScreenClip() (Matrix, image.Rectangle) {
	return clipToScreen(s)
}

// clipToScreen walks from s to the root. The root clips to its own
// bounds; every other surface clips its bounds, as seen through the
// parent matrix, against the parent clip.
func clipToScreen(s *Surface) (Matrix, image.Rectangle) {
	p := s.Parent()
	if p == nil {
		return s.localMatrix(), s.bounds.Image()
	}
	pm, clip := clipToScreen(p)
	clip = clip.Intersect(pm.ToScreen(s.bounds))
	m := pm.Multiply(s.localMatrix())
	if !s.virtualSize.IsEmpty() {
		m = m.Translate(-s.scrollX, -s.scrollY)
	}
	return m, clip
}

// RepaintRect schedules r, in the surface's content coordinates, for
// repainting. Only the part visible through every ancestor reaches the
// view; nothing is scheduled when that part is empty.
func (s *Surface) RepaintRect(r Rect) {
	m, clip := clipToScreen(s)
	clip = clip.Intersect(m.ToScreen(r))
	if clip.Empty() {
		return
	}
	Logger().Debug("compose: schedule repaint", "rect", clip)
	s.view.ScheduleRepaint(clip)
}

// Repaint schedules the whole surface for repainting.
func (s *Surface) Repaint() {
	if p := s.Parent(); p != nil {
		p.RepaintRect(s.bounds)
		return
	}
	Logger().Debug("compose: schedule repaint", "rect", s.bounds.Image())
	s.view.ScheduleRepaint(s.bounds.Image())
}
