package compose

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/compose/backend"
	"github.com/gogpu/gputypes"
)

// recordingView is a View that records every scheduled repaint.
type recordingView struct {
	w, h    int
	sf      float64
	repaint []image.Rectangle
}

func (v *recordingView) Size() (int, int)                  { return v.w, v.h }
func (v *recordingView) ScaleFactor() float64              { return v.sf }
func (v *recordingView) ScheduleRepaint(r image.Rectangle) { v.repaint = append(v.repaint, r) }

// recordingOwner counts bounds-update messages.
type recordingOwner struct {
	name    string
	updates []bool
}

func (o *recordingOwner) SurfaceBoundsUpdate(parentResized bool) {
	o.updates = append(o.updates, parentResized)
}

// strongRef is an OwnerRef that keeps its owner reachable, so tests do
// not depend on garbage collection timing.
type strongRef struct{ o Owner }

func (r strongRef) Resolve() Owner { return r.o }

// countingResource records Destroy calls.
type countingResource struct {
	content   backend.Content
	destroyed int
}

func (r *countingResource) Width() int                     { return 1 }
func (r *countingResource) Height() int                    { return 1 }
func (r *countingResource) Content() backend.Content       { return r.content }
func (r *countingResource) Format() gputypes.TextureFormat { return r.content.Format() }
func (r *countingResource) Destroy()                       { r.destroyed++ }

func newTestRoot(w, h int) (*Surface, *recordingView) {
	v := &recordingView{w: w, h: h, sf: 1}
	return NewRoot(v, WithBackendName(backend.NamePixmap)), v
}

func TestNewRootUsesDevicePixels(t *testing.T) {
	v := &recordingView{w: 200, h: 100, sf: 2}
	root := NewRoot(v)

	if got, want := root.Bounds(), R(0, 0, 400, 200); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if root.Parent() != nil {
		t.Error("root has a parent")
	}
	if x, y := root.Scale(); x != 1 || y != 1 {
		t.Errorf("Scale() = %v,%v, want 1,1", x, y)
	}
}

func TestCreateSurfaceAppends(t *testing.T) {
	root, _ := newTestRoot(100, 100)
	a := root.CreateSurface(nil, R(0, 0, 10, 10))
	b := root.CreateSurface(nil, R(0, 0, 0, 0))

	if root.FirstChild() != a || root.LastChild() != b {
		t.Error("children not appended in creation order")
	}
	if a.NextSibling() != b || b.PrevSibling() != a {
		t.Error("siblings not linked")
	}
	if b.Bounds() != (Rect{}) {
		t.Errorf("zero-size child bounds = %v, want empty", b.Bounds())
	}
	if a.View() != root.View() {
		t.Error("child does not share the root view")
	}
}

func TestInsertBeforeOrdersChildren(t *testing.T) {
	root, _ := newTestRoot(100, 100)
	a := root.CreateSurface(nil, R(0, 0, 1, 1))
	b := root.CreateSurface(nil, R(0, 0, 1, 1))
	c := &Surface{xScale: 1, yScale: 1}
	root.InsertBefore(c, b)

	got := []*Surface{}
	for s := root.FirstChild(); s != nil; s = s.NextSibling() {
		got = append(got, s)
	}
	if len(got) != 3 || got[0] != a || got[1] != c || got[2] != b {
		t.Errorf("children order wrong: %v", got)
	}
}

func TestMarkDirtyPropagatesToRoot(t *testing.T) {
	root, _ := newTestRoot(100, 100)
	child := root.CreateSurface(nil, R(10, 10, 50, 50))
	grandchild := child.CreateSurface(nil, R(5, 5, 20, 20))
	sibling := root.CreateSurface(nil, R(0, 0, 5, 5))

	grandchild.MarkDirty()

	for _, s := range []*Surface{grandchild, child, root} {
		if !s.Dirty() {
			t.Errorf("%v not dirty after descendant MarkDirty", s)
		}
	}
	if sibling.Dirty() {
		t.Error("sibling became dirty")
	}
}

func TestMarkDirtyStopsAtDirtySurface(t *testing.T) {
	root, _ := newTestRoot(100, 100)
	child := root.CreateSurface(nil, R(10, 10, 50, 50))
	grandchild := child.CreateSurface(nil, R(5, 5, 20, 20))

	grandchild.MarkDirty()
	// Break the closure on purpose: a second MarkDirty on an already
	// dirty surface must not walk far enough to repair it.
	root.dirty = false
	grandchild.MarkDirty()
	if root.Dirty() {
		t.Error("MarkDirty walked past an already dirty surface")
	}

	// From a clean surface the walk resumes and stops at child.
	root.dirty = false
	grandchild.dirty = false
	grandchild.MarkDirty()
	if !grandchild.Dirty() || root.Dirty() {
		t.Errorf("grandchild dirty = %v, root dirty = %v; want true, false",
			grandchild.Dirty(), root.Dirty())
	}
}

func TestRemove(t *testing.T) {
	root, _ := newTestRoot(100, 100)
	a := root.CreateSurface(nil, R(0, 0, 1, 1))
	b := root.CreateSurface(nil, R(0, 0, 1, 1))
	c := root.CreateSurface(nil, R(0, 0, 1, 1))

	b.Remove()

	if root.ChildCount() != 2 {
		t.Errorf("ChildCount() = %d, want 2", root.ChildCount())
	}
	if !root.Dirty() {
		t.Error("parent not dirty after Remove")
	}
	if a.NextSibling() != c || c.PrevSibling() != a {
		t.Error("former siblings not relinked")
	}
	if b.Parent() != nil {
		t.Error("removed surface keeps its parent")
	}

	// Removing a rootless surface is a no-op.
	b.Remove()
	if root.ChildCount() != 2 {
		t.Errorf("ChildCount() after second Remove = %d, want 2", root.ChildCount())
	}
}

func TestClear(t *testing.T) {
	root, _ := newTestRoot(100, 100)
	root.SetBackgroundColor(0xFF336699)
	child := root.CreateSurface(nil, R(0, 0, 10, 10))
	grandchild := child.CreateSurface(nil, R(0, 0, 5, 5))
	res := &countingResource{}
	grandchild.resource = res

	root.Clear()

	if root.ChildCount() != 0 || root.FirstChild() != nil {
		t.Error("children remain after Clear")
	}
	if root.BackgroundColor() != 0 {
		t.Errorf("BackgroundColor() = %#x, want 0", root.BackgroundColor())
	}
	if root.Dirty() {
		t.Error("Clear marked the surface dirty")
	}
	if res.destroyed != 1 || grandchild.HasResource() {
		t.Error("dropped subtree resource not destroyed")
	}
}

func TestSetBackgroundColorOpacityClass(t *testing.T) {
	tests := []struct {
		name        string
		from, to    uint32
		wantDestroy bool
	}{
		{"opaque to translucent", 0xFFFFFFFF, 0x00FFFFFF, true},
		{"translucent to opaque", 0x80000000, 0xFF000000, true},
		{"opaque to opaque", 0xFFFFFFFF, 0xFF000000, false},
		{"translucent to translucent", 0x00FFFFFF, 0xFEFFFFFF, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, _ := newTestRoot(10, 10)
			root.SetBackgroundColor(tt.from)
			res := &countingResource{content: backend.ContentFor(tt.from)}
			root.resource = res

			root.SetBackgroundColor(tt.to)

			if got := res.destroyed == 1; got != tt.wantDestroy {
				t.Errorf("destroyed = %v, want %v", got, tt.wantDestroy)
			}
			if root.HasResource() == tt.wantDestroy {
				t.Errorf("HasResource() = %v, want %v", root.HasResource(), !tt.wantDestroy)
			}
			if root.BackgroundColor() != tt.to {
				t.Errorf("BackgroundColor() = %#x, want %#x", root.BackgroundColor(), tt.to)
			}
		})
	}
}

func TestSetBackgroundColorWithoutResource(t *testing.T) {
	root, _ := newTestRoot(10, 10)
	root.SetBackgroundColor(0xFFFFFFFF)
	root.SetBackgroundColor(0x00FFFFFF)
	if root.HasResource() {
		t.Error("SetBackgroundColor created a resource")
	}
}

func TestResourceLazyCreation(t *testing.T) {
	root, _ := newTestRoot(100, 100)
	child := root.CreateSurface(nil, R(10, 10, 40, 20))
	child.SetScale(2, 1)
	child.SetBackgroundColor(0xFF000000)

	if child.HasResource() {
		t.Fatal("resource created eagerly")
	}
	res, err := child.Resource()
	if err != nil {
		t.Fatalf("Resource() error = %v", err)
	}
	if res.Width() != 80 || res.Height() != 20 {
		t.Errorf("resource size = %dx%d, want 80x20", res.Width(), res.Height())
	}
	if res.Content() != backend.ContentColor {
		t.Errorf("Content() = %v, want ContentColor", res.Content())
	}
	again, _ := child.Resource()
	if again != res {
		t.Error("Resource() recreated a cached resource")
	}
}

func TestResourceFactoryError(t *testing.T) {
	v := &recordingView{w: 10, h: 10, sf: 1}
	root := NewRoot(v, WithBackendName("does-not-exist"))

	_, err := root.Resource()
	var notFound *backend.BackendNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Resource() error = %v, want BackendNotFoundError", err)
	}
	if root.HasResource() {
		t.Error("failed creation left a resource behind")
	}
}

func TestReleaseDestroysSubtree(t *testing.T) {
	root, _ := newTestRoot(100, 100)
	child := root.CreateSurface(nil, R(0, 0, 10, 10))
	r1, r2 := &countingResource{}, &countingResource{}
	root.resource, child.resource = r1, r2

	root.Release()

	if r1.destroyed != 1 || r2.destroyed != 1 {
		t.Errorf("destroyed = %d,%d, want 1,1", r1.destroyed, r2.destroyed)
	}
}

func TestRootFindsTop(t *testing.T) {
	root, _ := newTestRoot(100, 100)
	gc := root.CreateSurface(nil, R(0, 0, 1, 1)).CreateSurface(nil, R(0, 0, 1, 1))
	if gc.Root() != root {
		t.Error("Root() did not return the tree root")
	}
	if root.Root() != root {
		t.Error("Root() of root is not itself")
	}
}
