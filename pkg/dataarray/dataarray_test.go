package dataarray

import (
	"errors"
	"math/rand"
	"testing"
)

func TestAppend_DoublesCapacity(t *testing.T) {
	a := New[int](2)

	a.Append(1)
	a.Append(2)
	if a.Cap() != 2 {
		t.Fatalf("expected capacity 2 before growth, got %d", a.Cap())
	}

	idx := a.Append(3)
	if idx != 2 {
		t.Errorf("expected index 2, got %d", idx)
	}
	if a.Cap() != 4 {
		t.Errorf("expected capacity 4 after growth, got %d", a.Cap())
	}

	a.Append(4)
	a.Append(5)
	if a.Cap() != 8 {
		t.Errorf("expected capacity 8, got %d", a.Cap())
	}
}

func TestAppend_ZeroCapacity(t *testing.T) {
	a := New[string](0)
	a.Append("a")
	if a.Cap() != 1 || a.Len() != 1 {
		t.Errorf("expected len 1 cap 1, got len %d cap %d", a.Len(), a.Cap())
	}
	a.Append("b")
	if a.Cap() != 2 {
		t.Errorf("expected cap 2, got %d", a.Cap())
	}
}

func TestAppend_PreservesValues(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 20; round++ {
		capacity := rng.Intn(5)
		count := rng.Intn(300)

		a := New[float64](capacity)
		want := make([]float64, 0, count)
		for i := 0; i < count; i++ {
			v := rng.Float64()
			a.Append(v)
			want = append(want, v)
		}

		if a.Len() != len(want) {
			t.Fatalf("round %d: expected len %d, got %d", round, len(want), a.Len())
		}
		for i, w := range want {
			got, err := a.At(i)
			if err != nil {
				t.Fatalf("round %d: At(%d): %v", round, i, err)
			}
			if got != w {
				t.Errorf("round %d: index %d: expected %v, got %v", round, i, w, got)
			}
		}
	}
}

func TestAt_OutOfBounds(t *testing.T) {
	a := New[int](4)
	a.Append(7)

	tests := []int{-1, 1, 4, 100}
	for _, i := range tests {
		if _, err := a.At(i); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("At(%d): expected ErrIndexOutOfBounds, got %v", i, err)
		}
		if _, err := a.Ptr(i); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("Ptr(%d): expected ErrIndexOutOfBounds, got %v", i, err)
		}
	}

	if _, err := New[int](1).Last(); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Last on empty array: expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestPtr_UpdatesInPlace(t *testing.T) {
	a := New[int](1)
	a.Append(1)

	p, err := a.Ptr(0)
	if err != nil {
		t.Fatalf("Ptr failed: %v", err)
	}
	*p = 9

	if v, _ := a.At(0); v != 9 {
		t.Errorf("expected 9, got %d", v)
	}
}

func TestWrap_UsesCallerBuffer(t *testing.T) {
	var buf [3]int
	a := Wrap(buf[:])

	a.Append(1)
	a.Append(2)
	if buf[0] != 1 || buf[1] != 2 {
		t.Errorf("expected writes into caller buffer, got %v", buf)
	}

	a.Append(3)
	a.Append(4)
	if a.Cap() != 6 {
		t.Errorf("expected capacity 6 after growing out of buffer, got %d", a.Cap())
	}

	want := []int{1, 2, 3, 4}
	got := a.Values()
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestDispose_Tracked(t *testing.T) {
	tr := NewCountingTracker()
	a := NewTracked[int](4, tr, "ints")
	a.Append(1)

	if tr.Acquired("ints") != 1 {
		t.Errorf("expected 1 acquire, got %d", tr.Acquired("ints"))
	}
	if tr.Live() != 1 {
		t.Errorf("expected 1 live allocation, got %d", tr.Live())
	}

	a.Dispose()
	a.Dispose()

	if tr.Released("ints") != 1 {
		t.Errorf("expected exactly 1 release, got %d", tr.Released("ints"))
	}
	if err := tr.Balanced(); err != nil {
		t.Error(err)
	}
	if !a.Disposed() || a.Len() != 0 {
		t.Error("expected disposed array to be empty")
	}
	if _, err := a.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds after dispose, got %v", err)
	}
}

func TestCountingTracker_Unbalanced(t *testing.T) {
	tr := NewCountingTracker()
	tr.Acquire("a")
	tr.Acquire("b")
	tr.Release("b")
	tr.Release("b")

	if err := tr.Balanced(); err == nil {
		t.Error("expected unbalanced error")
	}
}
