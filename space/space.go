/*
Package space provides scratch space for curve evaluation.

Every evaluation of a curve needs a small buffer to blend control elements
in. A Space hands out such a buffer per call; the buffer is never retained
by the curve and never shared between concurrent calls.

Const uses a fixed capacity, validated when a curve is constructed, and
recycles its buffers. Dynamic allocates a fresh buffer on every call,
which costs one allocation but needs no coordination at all.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package space

import "sync"

// Space hands out workspace buffers of element type T.
type Space[T any] interface {
	// Len returns the length of the buffers handed out.
	Len() int
	// Workspace returns a zeroed buffer of length Len(). The caller owns it
	// until it calls Recycle.
	Workspace() []T
	// Recycle returns a buffer to the space. Implementations are free to
	// drop it.
	Recycle([]T)
}

// --- Const -----------------------------------------------------------------

// Const is a workspace of fixed capacity. Buffers are pooled and re-zeroed
// on every hand-out, so element storage is reused across evaluations.
// Create instances with NewConst; the zero value allocates on every call.
type Const[T any] struct {
	capacity int
	pool     *sync.Pool
}

// NewConst creates a fixed-capacity workspace.
func NewConst[T any](capacity int) Const[T] {
	if capacity < 0 {
		capacity = 0
	}
	return Const[T]{
		capacity: capacity,
		pool: &sync.Pool{
			New: func() any {
				buf := make([]T, capacity)
				return &buf
			},
		},
	}
}

// Len is part of interface Space.
func (c Const[T]) Len() int {
	return c.capacity
}

// Workspace is part of interface Space.
func (c Const[T]) Workspace() []T {
	if c.pool == nil {
		return make([]T, c.capacity)
	}
	buf := *(c.pool.Get().(*[]T))
	clear(buf)
	return buf
}

// Recycle is part of interface Space.
func (c Const[T]) Recycle(buf []T) {
	if c.pool == nil || cap(buf) < c.capacity {
		return
	}
	buf = buf[:c.capacity]
	c.pool.Put(&buf)
}

// --- Dynamic ---------------------------------------------------------------

// Dynamic allocates a new buffer for every call.
type Dynamic[T any] struct {
	length int
}

// NewDynamic creates a workspace handing out buffers of the given length.
func NewDynamic[T any](length int) Dynamic[T] {
	if length < 0 {
		length = 0
	}
	return Dynamic[T]{length: length}
}

// Len is part of interface Space.
func (d Dynamic[T]) Len() int {
	return d.length
}

// Workspace is part of interface Space.
func (d Dynamic[T]) Workspace() []T {
	return make([]T, d.length)
}

// Recycle is part of interface Space. Buffers are left to the garbage
// collector.
func (d Dynamic[T]) Recycle([]T) {}
