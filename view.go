package compose

import "image"

// View is the widget hosting the surface tree. Its Size and ScaleFactor
// have the shape of gpucontext.WindowProvider; ScheduleRepaint receives
// every repaint request that survives clipping, in device pixels.
type View interface {
	// Size returns the view size in logical pixels.
	Size() (width, height int)

	// ScaleFactor returns the device pixel density.
	ScaleFactor() float64

	// ScheduleRepaint queues r for repainting.
	ScheduleRepaint(r image.Rectangle)
}

// DeviceRect returns the view area in device pixels.
func DeviceRect(v View) Rect {
	w, h := v.Size()
	sf := v.ScaleFactor()
	if sf <= 0 {
		sf = 1
	}
	return Rect{Width: float64(w) * sf, Height: float64(h) * sf}
}
