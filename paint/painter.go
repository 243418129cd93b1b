// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package paint

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/backend"
	"github.com/gogpu/gpucontext"
)

// Painter composites a surface tree into a CPU frame buffer.
//
// Surfaces are painted in tree order, parents before children and
// earlier siblings below later ones. Each surface's backend resource is
// filled with its background colour when dirty and then scaled into the
// surface's device rectangle, clipped by its ancestors and the damage.
//
// Painter is NOT safe for concurrent use.
type Painter struct {
	target *image.RGBA
}

// New creates a painter drawing into target. Target coordinates are
// device pixels, matching the root surface bounds.
func New(target *image.RGBA) *Painter {
	return &Painter{target: target}
}

// Target returns the frame buffer.
func (p *Painter) Target() *image.RGBA {
	return p.target
}

// Paint repaints damage, or the whole target when damage is empty.
// A painted surface has its dirty flag cleared once none of its children
// is still dirty. A surface whose resource cannot be created is skipped;
// the errors are joined.
func (p *Painter) Paint(root *compose.Surface, damage []image.Rectangle) error {
	if len(damage) == 0 {
		damage = []image.Rectangle{p.target.Bounds()}
	}

	var errs []error
	paintTree(root, func(s *compose.Surface) (painted, descend bool) {
		_, clip := s.ScreenClip()
		clip = clip.Intersect(p.target.Bounds())
		if clip.Empty() {
			return false, false
		}
		if !intersectsAny(clip, damage) {
			return false, true
		}
		if err := p.paintSurface(s, clip, damage); err != nil {
			compose.Logger().Warn("paint: surface skipped", "surface", s, "err", err)
			errs = append(errs, fmt.Errorf("paint: %v: %w", s, err))
			return false, true
		}
		return true, true
	})
	return errors.Join(errs...)
}

// paintTree visits s and then its children in paint order. visit
// reports whether s is now up to date and whether its children are
// visited at all. The dirty flag of s is cleared only when s was painted
// and no child is left dirty, so a skipped dirty surface keeps its
// ancestors dirty.
func paintTree(s *compose.Surface, visit func(*compose.Surface) (painted, descend bool)) {
	painted, descend := visit(s)
	if descend {
		for c := s.FirstChild(); c != nil; c = c.NextSibling() {
			paintTree(c, visit)
		}
	}
	if !painted {
		return
	}
	for c := s.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Dirty() {
			return
		}
	}
	s.ClearDirty()
}

func (p *Painter) paintSurface(s *compose.Surface, clip image.Rectangle, damage []image.Rectangle) error {
	if s.BackgroundColor() == 0 && !s.HasResource() {
		// Nothing of its own to show.
		return nil
	}
	d, err := drawable(s)
	if err != nil || d == nil {
		return err
	}

	dst := ScreenRect(s)
	for _, r := range damage {
		area := r.Intersect(clip).Intersect(dst)
		if area.Empty() {
			continue
		}
		d.DrawTo(p.target.SubImage(area).(*image.RGBA), dst)
	}
	return nil
}

// drawable returns the CPU view of the surface resource, refreshing its
// background when the surface is dirty or the resource is new. It
// returns nil for resources without CPU pixels.
func drawable(s *compose.Surface) (backend.Drawable, error) {
	fresh := !s.HasResource()
	res, err := s.Resource()
	if err != nil {
		return nil, err
	}
	d, ok := res.(backend.Drawable)
	if !ok {
		return nil, nil
	}
	if fresh || s.Dirty() {
		d.Fill(s.BackgroundColor())
	}
	return d, nil
}

// ScreenRect returns the device rectangle the surface occupies,
// including ancestor scroll offsets but not clipped.
func ScreenRect(s *compose.Surface) image.Rectangle {
	parent := s.Parent()
	if parent == nil {
		return s.Bounds().Image()
	}
	pm, _ := parent.ScreenClip()
	return pm.ToScreen(s.Bounds())
}

// PaintTextures draws every visible surface backed by a GPU texture
// through dc, uploading resources whose background changed. Surfaces
// with other resources are left to Paint.
func PaintTextures(root *compose.Surface, dc gpucontext.TextureDrawer) error {
	var errs []error
	paintTree(root, func(s *compose.Surface) (painted, descend bool) {
		_, clip := s.ScreenClip()
		if clip.Empty() {
			return false, false
		}
		if s.BackgroundColor() == 0 && !s.HasResource() {
			return true, true
		}
		d, err := drawable(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("paint: %v: %w", s, err))
			return false, true
		}
		tex, ok := d.(*backend.Texture)
		if !ok {
			return false, true
		}
		at := ScreenRect(s).Min
		if err := tex.DrawTexture(dc, float32(at.X), float32(at.Y)); err != nil {
			errs = append(errs, fmt.Errorf("paint: %v: %w", s, err))
			return false, true
		}
		return true, true
	})
	return errors.Join(errs...)
}

func intersectsAny(r image.Rectangle, rects []image.Rectangle) bool {
	for _, d := range rects {
		if r.Overlaps(d) {
			return true
		}
	}
	return false
}
