package compose

import "weak"

// Owner is the document node a surface renders for. The tree only ever
// tells it that the surface geometry changed.
type Owner interface {
	// SurfaceBoundsUpdate is sent when the parent surface changed size.
	// parentResized is true when the whole subtree must lay out again.
	SurfaceBoundsUpdate(parentResized bool)
}

// OwnerRef is a non-owning reference to an Owner. Resolve returns nil
// once the owner is gone; a surface never keeps its owner alive.
type OwnerRef interface {
	Resolve() Owner
}

type weakOwner[T any, P interface {
	*T
	Owner
}] struct {
	ptr weak.Pointer[T]
}

func (w weakOwner[T, P]) Resolve() Owner {
	p := w.ptr.Value()
	if p == nil {
		return nil
	}
	return P(p)
}

// WeakOwner returns a reference to owner that does not keep it
// reachable. A nil owner yields a nil reference.
func WeakOwner[T any, P interface {
	*T
	Owner
}](owner P) OwnerRef {
	ptr := (*T)(owner)
	if ptr == nil {
		return nil
	}
	return weakOwner[T, P]{ptr: weak.Make(ptr)}
}

// resolveOwner returns the live owner behind ref, or nil.
func resolveOwner(ref OwnerRef) Owner {
	if ref == nil {
		return nil
	}
	return ref.Resolve()
}
