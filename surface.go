package compose

import (
	"fmt"

	"github.com/gogpu/compose/backend"
	"github.com/gogpu/compose/internal/tree"
)

// Surface is one rectangular rendering region in the compositing tree.
//
// Bounds are expressed in the parent's coordinate space; the root's
// bounds are in device pixels. Each surface scales its own content by
// (XScale, YScale) before translating it to its bounds origin.
//
// Surfaces are NOT thread-safe. The whole tree belongs to the UI thread.
type Surface struct {
	node tree.Node[Surface]

	bounds      Rect
	virtualSize Size
	scrollX     float64
	scrollY     float64
	xScale      float64
	yScale      float64

	backgroundColor uint32
	dirty           bool
	hasMouse        bool

	resource backend.Resource
	owner    OwnerRef

	view    View
	factory backend.Factory
}

var surfaces = tree.New(func(s *Surface) *tree.Node[Surface] { return &s.node })

// NewRoot creates the root surface of a tree hosted by view. Its bounds
// cover the view area in device pixels.
func NewRoot(view View, opts ...Option) *Surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Surface{
		bounds:  DeviceRect(view),
		xScale:  1,
		yScale:  1,
		view:    view,
		factory: o.factory,
	}
}

// CreateSurface creates a child surface for owner with bounds r and
// appends it as the last child. Any rectangle is accepted, including
// empty ones for regions that are not laid out yet.
func (s *Surface) CreateSurface(owner OwnerRef, r Rect) *Surface {
	c := &Surface{
		bounds:  r,
		xScale:  1,
		yScale:  1,
		owner:   owner,
		view:    s.view,
		factory: s.factory,
	}
	s.AppendChild(c)
	return c
}

// AppendChild links c as the last child of s, detaching it from any
// previous parent.
func (s *Surface) AppendChild(c *Surface) {
	surfaces.Append(s, c)
}

// InsertBefore links c as a child of s immediately before b.
// b must be a child of s; a nil b appends.
func (s *Surface) InsertBefore(c, b *Surface) {
	surfaces.InsertBefore(s, c, b)
}

// RemoveChild unlinks c, which must be a child of s.
func (s *Surface) RemoveChild(c *Surface) {
	surfaces.Remove(s, c)
}

// Remove marks the parent dirty and unlinks s from it. The detached
// subtree keeps its resources; call Release when it will not be reused.
// Remove on a root is a no-op.
func (s *Surface) Remove() {
	p := s.Parent()
	if p == nil {
		return
	}
	p.MarkDirty()
	p.RemoveChild(s)
}

// Clear drops all children and resets the background colour to 0.
// The dropped subtrees have their backend resources destroyed.
// Clear does not mark s dirty.
func (s *Surface) Clear() {
	for c := surfaces.Clear(s); c != nil; {
		next := c.NextSibling()
		c.Release()
		c = next
	}
	s.backgroundColor = 0
}

// Release destroys the backend resources of s and all its descendants.
func (s *Surface) Release() {
	surfaces.Walk(s, func(n *Surface) bool {
		n.destroyResource()
		return true
	})
}

// Parent returns the parent surface, or nil for the root.
func (s *Surface) Parent() *Surface { return s.node.Parent() }

// FirstChild returns the first child, or nil.
func (s *Surface) FirstChild() *Surface { return s.node.FirstChild() }

// LastChild returns the last child, or nil.
func (s *Surface) LastChild() *Surface { return s.node.LastChild() }

// NextSibling returns the following sibling, or nil.
func (s *Surface) NextSibling() *Surface { return s.node.NextSibling() }

// PrevSibling returns the preceding sibling, or nil.
func (s *Surface) PrevSibling() *Surface { return s.node.PrevSibling() }

// ChildCount returns the number of direct children.
func (s *Surface) ChildCount() int { return s.node.ChildCount() }

// Walk calls fn for s and every descendant in pre-order. Returning false
// from fn skips that surface's children.
func (s *Surface) Walk(fn func(*Surface) bool) {
	surfaces.Walk(s, fn)
}

// Root returns the root of the tree containing s.
func (s *Surface) Root() *Surface {
	r := s
	for p := r.Parent(); p != nil; p = r.Parent() {
		r = p
	}
	return r
}

// View returns the view hosting the tree.
func (s *Surface) View() View { return s.view }

// Bounds returns the surface rectangle in parent coordinates.
func (s *Surface) Bounds() Rect { return s.bounds }

// Owner returns the owner reference the surface was created with.
func (s *Surface) Owner() OwnerRef { return s.owner }

// Dirty reports whether s or a descendant has pending visual changes.
func (s *Surface) Dirty() bool { return s.dirty }

// ClearDirty resets the dirty flag of s. Painters call it once s has
// been painted.
func (s *Surface) ClearDirty() { s.dirty = false }

// Scale returns the x and y scale factors.
func (s *Surface) Scale() (x, y float64) { return s.xScale, s.yScale }

// SetScale sets the scale applied to the surface content.
// The caller is responsible for repainting.
func (s *Surface) SetScale(x, y float64) {
	s.xScale = x
	s.yScale = y
}

// VirtualSize returns the scrollable content size; empty means the
// surface does not scroll.
func (s *Surface) VirtualSize() Size { return s.virtualSize }

// SetVirtualSize establishes scrollable content of size vs. An empty
// size turns scrolling off.
func (s *Surface) SetVirtualSize(vs Size) {
	s.virtualSize = vs
}

// Scroll returns the scroll offset. It is meaningful only while the
// virtual size is non-empty.
func (s *Surface) Scroll() (x, y float64) { return s.scrollX, s.scrollY }

// SetScroll sets the scroll offset.
func (s *Surface) SetScroll(x, y float64) {
	s.scrollX = x
	s.scrollY = y
}

// HasMouse reports whether the pointer is over the surface.
func (s *Surface) HasMouse() bool { return s.hasMouse }

// SetHasMouse sets the pointer occupancy flag.
func (s *Surface) SetHasMouse(v bool) { s.hasMouse = v }

// BackgroundColor returns the ARGB32 background colour.
func (s *Surface) BackgroundColor() uint32 { return s.backgroundColor }

// SetBackgroundColor sets the ARGB32 background colour. When the colour
// moves between opaque and translucent, a cached backend resource is
// destroyed since it has the wrong content kind.
func (s *Surface) SetBackgroundColor(argb uint32) {
	if s.resource != nil && backend.ContentFor(s.backgroundColor) != backend.ContentFor(argb) {
		s.destroyResource()
	}
	s.backgroundColor = argb
}

// HasResource reports whether a backend resource is cached.
func (s *Surface) HasResource() bool { return s.resource != nil }

// Resource returns the backend resource, creating it on first use. The
// resource covers the surface's screen size and its content kind follows
// the background colour.
func (s *Surface) Resource() (backend.Resource, error) {
	if s.resource != nil {
		return s.resource, nil
	}
	if s.factory == nil {
		return nil, fmt.Errorf("compose: create backend resource: %w", backend.ErrNoBackendAvailable)
	}
	scr := s.ToScreen(s.bounds.Size())
	opts := backend.Options{
		Width:   scr.Dx(),
		Height:  scr.Dy(),
		Content: backend.ContentFor(s.backgroundColor),
	}
	res, err := s.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("compose: create backend resource: %w", err)
	}
	s.resource = res
	Logger().Debug("compose: backend resource created",
		"width", opts.Width, "height", opts.Height, "content", opts.Content)
	return res, nil
}

// destroyResource releases the cached backend resource, if any.
func (s *Surface) destroyResource() {
	if s.resource == nil {
		return
	}
	s.resource.Destroy()
	s.resource = nil
	Logger().Debug("compose: backend resource destroyed")
}

// String returns a short description for diagnostics.
func (s *Surface) String() string {
	b := s.bounds
	return fmt.Sprintf("Surface(%g,%g %gx%g)", b.X, b.Y, b.Width, b.Height)
}
