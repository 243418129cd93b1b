// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package view hosts a compose surface tree in a gpucontext window.
//
// An Area implements compose.View on top of gpucontext.WindowProvider.
// Repaint requests from the tree are merged into a short damage list and
// the window is asked for one redraw per frame:
//
//	area, root := view.NewRoot(window)
//	video := root.CreateSurface(nil, compose.R(0, 0, 640, 360))
//	video.Repaint()
//
//	// In the frame callback:
//	for _, r := range area.TakeDamage() {
//		// repaint r
//	}
//
// Pointer events forwarded to HandlePointer keep each surface's
// has-mouse flag current.
package view
