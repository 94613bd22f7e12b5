package pool

import (
	"fmt"
	"reflect"
	"sync"

	"lexdist/internal/lexerr"
)

var registry sync.Map // reflect.Type -> *Pool[T], boxed as any

// For returns the process-wide singleton Pool for T, creating it on
// first use. The Levenshtein engine is generic over its row element
// type (plain distances for the scalar kernel, edit.Trace for the trace
// kernel), so a single hand-written package-level var per type won't
// do; this keeps one pool per concrete instantiation instead.
func For[T any]() *Pool[T] {
	var zero T
	key := reflect.TypeOf(zero)
	if key == nil {
		// T has no concrete reflect.Type for its zero value (e.g. an
		// interface type) — pooling by type doesn't apply; hand back a
		// private pool instead of sharing one keyed on "nil".
		return New[T]()
	}
	if v, ok := registry.Load(key); ok {
		p, ok := v.(*Pool[T])
		if !ok {
			panic(fmt.Errorf("lexdist: pool registry entry for %v has unexpected type: %w", key, lexerr.ErrWrongType))
		}
		return p
	}
	p := New[T]()
	actual, _ := registry.LoadOrStore(key, p)
	typed, ok := actual.(*Pool[T])
	if !ok {
		panic(fmt.Errorf("lexdist: pool registry entry for %v has unexpected type: %w", key, lexerr.ErrWrongType))
	}
	return typed
}
