// Package dataarray provides an append-only growable array with explicit
// doubling growth, bounds-checked access and optional allocation tracking.
package dataarray

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is returned when an index falls outside [0, Len()).
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// Array is an append-only sequence of T. The backing storage doubles when an
// append would exceed the current capacity.
type Array[T any] struct {
	data    []T
	n       int
	tracker Tracker
	kind    string
	live    bool
}

// New returns an empty array with room for capacity elements.
func New[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{data: make([]T, capacity), live: true}
}

// NewTracked is like New but reports the array's lifetime to t under kind.
func NewTracked[T any](capacity int, t Tracker, kind string) *Array[T] {
	a := New[T](capacity)
	if t != nil {
		a.tracker = t
		a.kind = kind
		t.Acquire(kind)
	}
	return a
}

// Wrap uses buf as the initial backing storage. Appends write into buf until
// it is full, after which the array moves to its own, larger storage.
func Wrap[T any](buf []T) *Array[T] {
	return &Array[T]{data: buf[:len(buf):len(buf)], live: true}
}

// Append adds v and returns its index.
func (a *Array[T]) Append(v T) int {
	if a.n >= len(a.data) {
		a.grow()
	}
	a.data[a.n] = v
	a.n++
	return a.n - 1
}

func (a *Array[T]) grow() {
	newCap := len(a.data) * 2
	if newCap == 0 {
		newCap = 1
	}
	data := make([]T, newCap)
	copy(data, a.data[:a.n])
	a.data = data
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.n {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, i, a.n)
	}
	return a.data[i], nil
}

// Ptr returns a pointer to the element at index i so it can be updated in place.
func (a *Array[T]) Ptr(i int) (*T, error) {
	if i < 0 || i >= a.n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, i, a.n)
	}
	return &a.data[i], nil
}

// Last returns the most recently appended element.
func (a *Array[T]) Last() (T, error) {
	return a.At(a.n - 1)
}

// Len returns the number of elements appended.
func (a *Array[T]) Len() int {
	return a.n
}

// Cap returns the current backing capacity.
func (a *Array[T]) Cap() int {
	return len(a.data)
}

// Values returns the live elements. The slice aliases the backing storage
// and is only valid until the next Append.
func (a *Array[T]) Values() []T {
	return a.data[:a.n:a.n]
}

// Disposed reports whether Dispose has been called.
func (a *Array[T]) Disposed() bool {
	return !a.live
}

// Dispose releases the backing storage. Calling it more than once is a no-op.
func (a *Array[T]) Dispose() {
	if !a.live {
		return
	}
	a.live = false
	a.data = nil
	a.n = 0
	if a.tracker != nil {
		a.tracker.Release(a.kind)
	}
}
