// Package compose implements the surface tree of an embedded media view.
//
// # Overview
//
// A Surface is one rectangular rendering region. Surfaces form a strict
// tree: the root covers the hosting view in device pixels and every
// other surface is positioned in its parent's coordinate space. The tree
// tracks geometry, scale and scroll state, propagates dirty flags toward
// the root and turns local invalidations into clipped device-space
// repaint requests for the view.
//
// # Quick Start
//
//	root := compose.NewRoot(view)
//	video := root.CreateSurface(compose.WeakOwner(videoNode), compose.R(0, 0, 640, 360))
//	video.SetBackgroundColor(0xFF000000)
//
//	// Layout changed: move and resize.
//	video.Resize(compose.R(0, 40, 640, 320), false)
//
//	// Content changed: repaint part of the surface.
//	video.MarkDirty()
//	video.RepaintRect(compose.R(0, 0, 64, 64))
//
// # Coordinate System
//
//   - Origin (0,0) at top-left, X right, Y down
//   - A surface maps content coordinates to its parent with
//     x' = bounds.X + x*xscale (likewise for y)
//   - Scrollable surfaces (non-empty virtual size) shift their
//     descendants by the scroll offset
//
// # Invalidation
//
// Resize repaints the union of the vacated and occupied area. A size
// change also drops the surface's backend resource and scroll state and
// notifies every child's owner so the subtree lays out again. Repaint
// requests are clipped by every ancestor; fully clipped requests never
// reach the view.
//
// # Owners
//
// Surfaces reference the document node they render for through an
// OwnerRef. WeakOwner builds one that does not keep the node alive.
//
// # Thread Safety
//
// The tree is NOT thread-safe. All operations run synchronously on the
// UI thread. SetLogger and the backend registry are safe for concurrent use.
package compose
