// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

import (
	"image"

	"github.com/gogpu/compose"
	"github.com/gogpu/gpucontext"
)

// maxDamageRects is the threshold after which the area switches to a
// full redraw. Past this many rectangles, repainting everything is
// cheaper than clipping to each one.
const maxDamageRects = 16

// Area hosts a surface tree in a window. It implements compose.View:
// repaint requests are collected as damage and the window is asked for a
// redraw when the first damage of a frame arrives.
//
// Area is NOT safe for concurrent use.
type Area struct {
	window gpucontext.WindowProvider
	root   *compose.Surface

	damage     []image.Rectangle
	fullRedraw bool
}

// New creates an area for window. The window's Size and ScaleFactor
// define the root surface bounds.
func New(window gpucontext.WindowProvider) *Area {
	return &Area{window: window}
}

// NewRoot creates an area for window together with the root surface of
// its tree.
func NewRoot(window gpucontext.WindowProvider, opts ...compose.Option) (*Area, *compose.Surface) {
	a := New(window)
	a.root = compose.NewRoot(a, opts...)
	return a, a.root
}

// Size returns the window size in logical pixels.
func (a *Area) Size() (width, height int) {
	return a.window.Size()
}

// ScaleFactor returns the window's device pixel density.
func (a *Area) ScaleFactor() float64 {
	return a.window.ScaleFactor()
}

// Root returns the root surface, or nil before NewRoot/Attach.
func (a *Area) Root() *compose.Surface {
	return a.root
}

// Attach makes root the tree shown in the area.
func (a *Area) Attach(root *compose.Surface) {
	a.root = root
}

// Resized resizes the root surface to the current window area in
// device pixels. Call it from the window's resize handler.
func (a *Area) Resized() {
	if a.root == nil {
		return
	}
	a.root.Resize(compose.DeviceRect(a), false)
}

// ScheduleRepaint records r as damaged. Rectangles already covered by
// earlier damage are dropped and damage swallowed by r is replaced.
func (a *Area) ScheduleRepaint(r image.Rectangle) {
	if r.Empty() {
		return
	}
	if !a.HasDamage() {
		a.window.RequestRedraw()
	}
	if a.fullRedraw {
		return
	}

	for _, d := range a.damage {
		if r.In(d) {
			return
		}
	}
	kept := a.damage[:0]
	for _, d := range a.damage {
		if !d.In(r) {
			kept = append(kept, d)
		}
	}
	a.damage = append(kept, r)

	if len(a.damage) > maxDamageRects {
		compose.Logger().Debug("view: damage limit reached, switching to full redraw",
			"rects", len(a.damage))
		a.InvalidateAll()
	}
}

// InvalidateAll forces a full redraw on the next frame.
func (a *Area) InvalidateAll() {
	if !a.HasDamage() {
		a.window.RequestRedraw()
	}
	a.fullRedraw = true
	a.damage = a.damage[:0]
}

// HasDamage reports whether anything needs repainting.
func (a *Area) HasDamage() bool {
	return a.fullRedraw || len(a.damage) > 0
}

// NeedsFullRedraw reports whether the whole area must be repainted.
func (a *Area) NeedsFullRedraw() bool {
	return a.fullRedraw
}

// TakeDamage returns the accumulated damage and resets it. A full
// redraw is reported as a single rectangle covering the area.
func (a *Area) TakeDamage() []image.Rectangle {
	if !a.HasDamage() {
		return nil
	}
	var out []image.Rectangle
	if a.fullRedraw {
		out = []image.Rectangle{compose.DeviceRect(a).Image()}
	} else {
		out = make([]image.Rectangle, len(a.damage))
		copy(out, a.damage)
	}
	a.damage = a.damage[:0]
	a.fullRedraw = false
	return out
}

// HandlePointer keeps the has-mouse flag of every surface in sync with
// the pointer. Event coordinates are logical pixels.
func (a *Area) HandlePointer(ev gpucontext.PointerEvent) {
	if a.root == nil {
		return
	}
	switch ev.Type {
	case gpucontext.PointerLeave, gpucontext.PointerCancel:
		a.root.Walk(func(s *compose.Surface) bool {
			s.SetHasMouse(false)
			return true
		})
		return
	}

	sf := a.ScaleFactor()
	if sf <= 0 {
		sf = 1
	}
	pt := image.Pt(int(ev.X*sf), int(ev.Y*sf))
	a.root.Walk(func(s *compose.Surface) bool {
		_, clip := s.ScreenClip()
		s.SetHasMouse(pt.In(clip))
		return true
	})
}

var _ compose.View = (*Area)(nil)
