package dynarray

import "fmt"

// props holds the configuration of an array, set up by options.
type props struct {
	initial int // capacity requested at creation time
}

// full is true if adding one more element would exceed the capacity.
func (a *Array[T]) full() bool {
	return a.length+1 > len(a.store)
}

// grownCapacity is the capacity after the next growth step: the store doubles,
// starting from 1 for an empty store.
func (a *Array[T]) grownCapacity() int {
	if len(a.store) == 0 {
		return 1
	}
	return len(a.store) * 2
}

// resize replaces the backing store with one of capacity c, keeping all elements
// at their positions.
func (a *Array[T]) resize(c int) {
	assertThat(c >= a.length, "inconsistency: cannot resize to %d with length %d", c, a.length)
	tracer().Debugf("growing store from %d to %d slots, length=%d", len(a.store), c, a.length)
	store := make([]T, c)
	copy(store, a.store[:a.length])
	a.store = store
}

// resizeWithGap replaces the backing store with one of capacity c, leaving
// slot i free: elements [0, i) stay in place, elements [i, length) move
// one slot to the right.
func (a *Array[T]) resizeWithGap(c int, i int) {
	assertThat(c > a.length, "inconsistency: cannot open gap with capacity %d and length %d", c, a.length)
	assertThat(i >= 0 && i <= a.length, "inconsistency: gap at %d outside [0…%d]", i, a.length)
	tracer().Debugf("growing store from %d to %d slots, gap at %d, length=%d", len(a.store), c, i, a.length)
	store := make([]T, c)
	copy(store, a.store[:i])
	copy(store[i+1:], a.store[i:a.length])
	a.store = store
}

// checkIndex validates i against [0, length) for operation op.
func (a *Array[T]) checkIndex(op string, i int) error {
	if i < 0 || i >= a.length {
		tracer().Debugf("%s: index %d out of range [0…%d)", op, i, a.length)
		return &IndexError{Op: op, Index: i, Length: a.length}
	}
	return nil
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dynarray: "+msg, msgargs...)
		panic(msg)
	}
}
