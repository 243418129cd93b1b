// Command surfacedemo builds a small player layout, resizes it and
// writes the composited frame to a PNG file.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/paint"
	"github.com/gogpu/compose/view"
	"github.com/gogpu/gpucontext"
)

// region is a stand-in for a layout node that owns a surface.
type region struct {
	name    string
	surface *compose.Surface
	layout  func(parent compose.Rect) compose.Rect
}

func (r *region) SurfaceBoundsUpdate(parentResized bool) {
	parent := r.surface.Parent().Bounds()
	r.surface.Resize(r.layout(compose.RectFromSize(parent.Size())), parentResized)
	slog.Debug("layout", "region", r.name, "bounds", r.surface.Bounds())
}

func main() {
	var (
		width   = flag.Int("width", 640, "window width")
		height  = flag.Int("height", 400, "window height")
		scale   = flag.Float64("scale", 1, "device scale factor")
		output  = flag.String("output", "surfaces.png", "output file")
		verbose = flag.Bool("v", false, "log tree operations")
	)
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		slog.SetDefault(slog.New(h))
		compose.SetLogger(slog.Default())
	}

	win := &gpucontext.NullWindowProvider{W: *width, H: *height, SF: *scale}
	area, root := view.NewRoot(win)
	root.SetBackgroundColor(0xFF202020)

	var regions []*region
	add := func(parent *compose.Surface, name string, argb uint32, layout func(compose.Rect) compose.Rect) *compose.Surface {
		r := &region{name: name, layout: layout}
		regions = append(regions, r)
		r.surface = parent.CreateSurface(compose.WeakOwner(r), layout(compose.RectFromSize(parent.Bounds().Size())))
		r.surface.SetBackgroundColor(argb)
		return r.surface
	}

	video := add(root, "video", 0xFF000000, func(p compose.Rect) compose.Rect {
		return compose.R(0, 0, p.Width, p.Height*0.8)
	})
	add(video, "subtitle", 0xA0101010, func(p compose.Rect) compose.Rect {
		return compose.R(p.Width*0.1, p.Height*0.8, p.Width*0.8, p.Height*0.12)
	})
	bar := add(root, "controls", 0xFF3A3A3A, func(p compose.Rect) compose.Rect {
		return compose.R(0, p.Height*0.8, p.Width, p.Height*0.2)
	})
	add(bar, "position", 0xFF1E90FF, func(p compose.Rect) compose.Rect {
		return compose.R(p.Width*0.05, p.Height*0.4, p.Width*0.6, p.Height*0.2)
	})

	// The window grows: the root resize relays out the whole tree.
	win.W, win.H = *width*5/4, *height*5/4
	area.Resized()

	frame := image.NewRGBA(compose.DeviceRect(area).Image())
	if err := paint.New(frame).Paint(root, area.TakeDamage()); err != nil {
		log.Fatalf("Failed to paint: %v", err)
	}

	if err := writePNG(*output, frame); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Frame saved to %s (%dx%d, %d surfaces)\n", *output, frame.Rect.Dx(), frame.Rect.Dy(), len(regions)+1)
}

// writePNG encodes img to path. A failed close is reported like a
// failed write since buffered data may be lost.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
