package dynarray

import (
	"fmt"
	"strings"
)

// DefaultCapacity is the capacity of an array created without option InitialCapacity.
const DefaultCapacity = 10

// Array is a resizable array of comparable elements.
//
// Slots [0, Len()) of the backing store hold the elements, slots [Len(), Cap())
// hold the zero value of T. The backing store is never exposed to clients.
type Array[T comparable] struct {
	props
	length int
	store  []T
}

// New creates an empty array. Without options, its capacity is DefaultCapacity.
// An error wrapping ErrInvalidArgument is returned if an option is invalid.
func New[T comparable](opts ...Option) (*Array[T], error) {
	p := props{initial: DefaultCapacity}
	for _, option := range opts {
		p = option.config(p)
	}
	if p.initial < 0 {
		tracer().Debugf("rejecting negative capacity %d", p.initial)
		return nil, fmt.Errorf("dynarray: negative capacity %d: %w", p.initial, ErrInvalidArgument)
	}
	return &Array[T]{props: p, store: make([]T, p.initial)}, nil
}

// From creates an array holding elements, with a capacity of exactly len(elements).
func From[T comparable](elements ...T) *Array[T] {
	a := &Array[T]{
		props: props{initial: len(elements)},
		store: make([]T, len(elements)),
	}
	a.AddAll(elements...)
	return a
}

// Option is a type to help initializing arrays at creation time.
type Option struct {
	config func(props) props
}

// InitialCapacity is an option to set the capacity of the backing store of a new array.
// A negative capacity will make New fail.
//
// Use it like this:
//
//     a, err := dynarray.New[int](dynarray.InitialCapacity(64))
//
func InitialCapacity(n int) Option {
	conf := func(p props) props {
		p.initial = n
		return p
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	return a.length
}

// Cap returns the current capacity of the backing store.
func (a *Array[T]) Cap() int {
	return len(a.store)
}

// IsEmpty is true iff Len() is 0.
func (a *Array[T]) IsEmpty() bool {
	return a.length == 0
}

// Get returns the element at position i, which must be in [0, Len()).
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkIndex("get", i); err != nil {
		var zero T
		return zero, err
	}
	return a.store[i], nil
}

// Set overwrites the element at position i, which must be in [0, Len()).
func (a *Array[T]) Set(i int, element T) error {
	if err := a.checkIndex("set", i); err != nil {
		return err
	}
	a.store[i] = element
	return nil
}

// Add appends element at the end of the array, growing the backing store if necessary.
func (a *Array[T]) Add(element T) {
	if a.full() {
		a.resize(a.grownCapacity())
	}
	a.store[a.length] = element
	a.length++
}

// AddAll appends elements in order, as if calling Add for each of them.
func (a *Array[T]) AddAll(elements ...T) {
	for _, element := range elements {
		a.Add(element)
	}
}

// Insert puts element at position i and shifts the element currently at i, together
// with all subsequent ones, one position to the right. i must be in [0, Len()];
// inserting at Len() appends.
func (a *Array[T]) Insert(i int, element T) error {
	if i < 0 || i > a.length {
		tracer().Debugf("insert: index %d out of range [0…%d]", i, a.length)
		return &IndexError{Op: "insert", Index: i, Length: a.length}
	}
	if a.full() {
		a.resizeWithGap(a.grownCapacity(), i)
	} else {
		copy(a.store[i+1:a.length+1], a.store[i:a.length])
	}
	a.store[i] = element
	a.length++
	return nil
}

// IndexOf returns the position of the first element equal to element,
// or -1 if there is none.
func (a *Array[T]) IndexOf(element T) int {
	for i := 0; i < a.length; i++ {
		if a.store[i] == element {
			return i
		}
	}
	return -1
}

// Contains is true if element is present in the array.
func (a *Array[T]) Contains(element T) bool {
	return a.IndexOf(element) > -1
}

// Remove deletes the first occurrence of element. If element is not present,
// the array is left untouched and Remove returns false.
func (a *Array[T]) Remove(element T) bool {
	i := a.IndexOf(element)
	if i < 0 {
		return false
	}
	_, err := a.RemoveAt(i)
	assertThat(err == nil, "inconsistency: index %d from IndexOf rejected by RemoveAt", i)
	return true
}

// RemoveAt deletes the element at position i, which must be in [0, Len()), and
// returns it. Subsequent elements are shifted one position to the left.
// Capacity is not reduced.
func (a *Array[T]) RemoveAt(i int) (T, error) {
	if err := a.checkIndex("remove", i); err != nil {
		var zero T
		return zero, err
	}
	element := a.store[i]
	a.length--
	copy(a.store[i:a.length], a.store[i+1:a.length+1])
	var zero T
	a.store[a.length] = zero
	return element, nil
}

// Clear removes all elements. Capacity is not reduced.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.length; i++ {
		a.store[i] = zero
	}
	a.length = 0
}

// Values returns a copy of the elements, in order.
func (a *Array[T]) Values() []T {
	values := make([]T, a.length)
	copy(values, a.store[:a.length])
	return values
}

// String renders the elements as "[e0, e1, …]", or "[]" for an empty array.
func (a *Array[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i := 0; i < a.length; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v", a.store[i]))
	}
	b.WriteByte(']')
	return b.String()
}
