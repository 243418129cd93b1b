// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gputypes"
)

// Common backend errors.
var (
	// ErrNoBackendAvailable is returned when no backends are registered
	// or available on the current system.
	ErrNoBackendAvailable = errors.New("backend: no backend available")

	// ErrInvalidDimensions is returned when a resource is requested with a
	// negative width or height.
	ErrInvalidDimensions = errors.New("backend: invalid dimensions")

	// ErrDestroyed is returned when a destroyed resource is used.
	ErrDestroyed = errors.New("backend: resource destroyed")
)

// Content classifies what a backing resource stores.
//
// An opaque backing store and a translucent one are different resource
// kinds; switching a surface between them requires a new resource.
type Content uint8

const (
	// ContentColor is an opaque backing store; alpha is ignored.
	ContentColor Content = iota

	// ContentColorAlpha is a translucent backing store with premultiplied alpha.
	ContentColorAlpha
)

// ContentFor classifies an ARGB32 colour: fully opaque alpha yields
// ContentColor, anything less ContentColorAlpha.
func ContentFor(argb uint32) Content {
	if argb&0xff000000 < 0xff000000 {
		return ContentColorAlpha
	}
	return ContentColor
}

// String returns a human-readable name for the content kind.
func (c Content) String() string {
	switch c {
	case ContentColor:
		return "color"
	case ContentColorAlpha:
		return "color-alpha"
	default:
		return fmt.Sprintf("Content(%d)", c)
	}
}

// Format returns the texture format used for resources of this kind.
// Opaque stores use the swapchain-native BGRA layout; translucent stores
// use premultiplied RGBA.
func (c Content) Format() gputypes.TextureFormat {
	if c == ContentColor {
		return gputypes.TextureFormatBGRA8Unorm
	}
	return gputypes.TextureFormatRGBA8Unorm
}

// Options configures resource creation.
type Options struct {
	// Width is the resource width in device pixels.
	Width int

	// Height is the resource height in device pixels.
	Height int

	// Content selects an opaque or translucent backing store.
	Content Content
}

// Validate reports whether the options describe a creatable resource.
// Zero-sized resources are legal; negative sizes are not.
func (o Options) Validate() error {
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, o.Width, o.Height)
	}
	return nil
}

// Resource is an opaque paint target owned by exactly one surface.
//
// Resources are NOT thread-safe. A resource is created on demand and
// destroyed explicitly; after Destroy it must not be used.
type Resource interface {
	// Width returns the resource width in device pixels.
	Width() int

	// Height returns the resource height in device pixels.
	Height() int

	// Content returns the opaque/translucent classification.
	Content() Content

	// Format returns the pixel format of the backing store.
	Format() gputypes.TextureFormat

	// Destroy releases the resource. Destroy is idempotent.
	Destroy()
}

// Drawable is implemented by resources that keep CPU-accessible pixels.
// Painters use it to fill backgrounds and composite into a target image.
type Drawable interface {
	Resource

	// Fill replaces the whole backing store with an ARGB32 colour.
	Fill(argb uint32)

	// Image returns the backing pixels.
	Image() *image.RGBA

	// DrawTo scales the backing store into dr of dst.
	DrawTo(dst draw.Image, dr image.Rectangle)
}
