/*
Package dynarray implements a generic resizable array, similar in use to Go slices
but with an explicit, fixed growth policy.

An Array owns a backing store of fixed capacity. Whenever an insertion would
exceed that capacity, the store is replaced by one of twice the size (or of
size 1, if the array has been created with capacity 0) and the live elements
are copied over. Capacity never shrinks: removing elements leaves the store
as it is.

Elements have to be comparable, as searching (IndexOf, Contains, Remove)
uses Go's == operator.

Arrays are not safe for concurrent use. Clients sharing an array between
goroutines have to synchronize access themselves.

Bounds

Get, Set and RemoveAt accept indices in [0, Len()). Insert accepts [0, Len()],
where inserting at Len() is an append.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package dynarray

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.dynarray'.
func tracer() tracing.Trace {
	return tracing.Select("fp.dynarray")
}
