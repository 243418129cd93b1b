// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tree implements intrusive parent/child/sibling linkage for
// node types that embed a Node.
//
// A parent owns its children through the first-child/next-sibling chain;
// the parent and previous-sibling pointers are back references only.
// Preconditions (a reference child belongs to the parent, no cycles) are
// not checked.
package tree

// Node holds the links of one tree element. Embed it in the element type
// and hand an accessor for it to New.
type Node[T any] struct {
	parent     *T
	firstChild *T
	lastChild  *T
	prev       *T
	next       *T
	childCount int
}

// Parent returns the parent element, or nil for a root.
func (n *Node[T]) Parent() *T { return n.parent }

// FirstChild returns the first child, or nil.
func (n *Node[T]) FirstChild() *T { return n.firstChild }

// LastChild returns the last child, or nil.
func (n *Node[T]) LastChild() *T { return n.lastChild }

// NextSibling returns the following sibling, or nil.
func (n *Node[T]) NextSibling() *T { return n.next }

// PrevSibling returns the preceding sibling, or nil.
func (n *Node[T]) PrevSibling() *T { return n.prev }

// ChildCount returns the number of direct children.
func (n *Node[T]) ChildCount() int { return n.childCount }

// Links operates on elements of type T through their embedded Node.
type Links[T any] struct {
	node func(*T) *Node[T]
}

// New returns the linkage operations for T. node must return the Node
// embedded in its argument.
func New[T any](node func(*T) *Node[T]) Links[T] {
	return Links[T]{node: node}
}

// Append links c as the last child of parent. If c is attached
// elsewhere it is detached first.
func (l Links[T]) Append(parent, c *T) {
	l.InsertBefore(parent, c, nil)
}

// InsertBefore links c as a child of parent immediately before b.
// A nil b appends. b must be a child of parent.
func (l Links[T]) InsertBefore(parent, c, b *T) {
	cn := l.node(c)
	if cn.parent != nil {
		l.Remove(cn.parent, c)
	}
	pn := l.node(parent)
	cn.parent = parent
	if b == nil {
		cn.prev = pn.lastChild
		cn.next = nil
		if pn.lastChild != nil {
			l.node(pn.lastChild).next = c
		} else {
			pn.firstChild = c
		}
		pn.lastChild = c
	} else {
		bn := l.node(b)
		cn.prev = bn.prev
		cn.next = b
		if bn.prev != nil {
			l.node(bn.prev).next = c
		} else {
			pn.firstChild = c
		}
		bn.prev = c
	}
	pn.childCount++
}

// Remove unlinks c from parent. c must be a child of parent.
func (l Links[T]) Remove(parent, c *T) {
	pn := l.node(parent)
	cn := l.node(c)
	if cn.prev != nil {
		l.node(cn.prev).next = cn.next
	} else {
		pn.firstChild = cn.next
	}
	if cn.next != nil {
		l.node(cn.next).prev = cn.prev
	} else {
		pn.lastChild = cn.prev
	}
	cn.parent = nil
	cn.prev = nil
	cn.next = nil
	pn.childCount--
}

// Clear drops every child of parent and returns the former first child.
// The dropped children keep their sibling chain so the caller can walk
// and release them; their parent pointers are reset.
func (l Links[T]) Clear(parent *T) *T {
	pn := l.node(parent)
	first := pn.firstChild
	for c := first; c != nil; c = l.node(c).next {
		l.node(c).parent = nil
	}
	pn.firstChild = nil
	pn.lastChild = nil
	pn.childCount = 0
	return first
}

// Walk calls fn for root and every descendant in pre-order. Returning
// false from fn skips that element's children.
func (l Links[T]) Walk(root *T, fn func(*T) bool) {
	if !fn(root) {
		return
	}
	for c := l.node(root).firstChild; c != nil; c = l.node(c).next {
		l.Walk(c, fn)
	}
}
