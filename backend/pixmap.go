// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// NamePixmap is the registry name of the CPU pixmap backend.
const NamePixmap = "pixmap"

// Pixmap is a CPU-backed resource using *image.RGBA.
//
// Pixels are stored premultiplied. An opaque pixmap always keeps alpha
// at 255 and is composited with draw.Src; a translucent one uses
// draw.Over.
type Pixmap struct {
	img       *image.RGBA
	content   Content
	destroyed bool
}

// NewPixmap creates a pixmap resource.
func NewPixmap(opts Options) (*Pixmap, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	Logger().Debug("backend: pixmap created",
		"width", opts.Width, "height", opts.Height, "content", opts.Content)
	return &Pixmap{
		img:     image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		content: opts.Content,
	}, nil
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int {
	return p.img.Bounds().Dx()
}

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int {
	return p.img.Bounds().Dy()
}

// Content returns the opaque/translucent classification.
func (p *Pixmap) Content() Content {
	return p.content
}

// Format returns the pixel format for the content kind.
func (p *Pixmap) Format() gputypes.TextureFormat {
	return p.content.Format()
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the pixmap.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// Destroyed reports whether Destroy has been called.
func (p *Pixmap) Destroyed() bool {
	return p.destroyed
}

// Destroy drops the pixel buffer.
func (p *Pixmap) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.img = &image.RGBA{}
	Logger().Debug("backend: pixmap destroyed")
}

// Fill replaces every pixel with argb. Opaque pixmaps ignore the alpha
// channel.
func (p *Pixmap) Fill(argb uint32) {
	c := ARGB(argb)
	if p.content == ContentColor {
		c.A = 0xff
	}
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawTo scales the pixmap into dr of dst. Pixels falling outside
// dst's bounds are clipped, so a sub-image of dst acts as a clip rectangle.
func (p *Pixmap) DrawTo(dst draw.Image, dr image.Rectangle) {
	sr := p.img.Bounds()
	if p.destroyed || sr.Empty() || dr.Empty() {
		return
	}
	op := draw.Over
	if p.content == ContentColor {
		op = draw.Src
	}
	if dr.Size() == sr.Size() {
		xdraw.Copy(dst, dr.Min, p.img, sr, op, nil)
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, dr, p.img, sr, op, nil)
}

// ARGB converts a packed 0xAARRGGBB value to a non-premultiplied colour.
func ARGB(argb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}

var (
	_ Resource = (*Pixmap)(nil)
	_ Drawable = (*Pixmap)(nil)
)
