// Package pool provides short-lived, typed scratch regions for the
// Levenshtein engine's dynamic-programming rows.
//
// Small requests are served from a plain heap slice scoped to the call
// (the Go compiler has no notion of a caller-visible "stack region" the
// way a value type on the C# stack does, so the stack/pool split here is
// about avoiding sync.Pool's synchronization and type-assertion overhead
// for the common small-input case, not about literal stack placement).
// Larger requests rent from a process-wide sync.Pool keyed by element
// type. A rented buffer must be released exactly once; Release clears its
// own reference so a stray second call is a silent no-op rather than a
// double free of the pool slot.
package pool

import (
	"fmt"
	"sync"

	"lexdist/internal/lexerr"
)

// stackThreshold is the element count at or below which Get allocates directly
// instead of renting from the shared pool.
const stackThreshold = 256

// Buffer is a borrowed region of at least N elements. The zero value is
// not usable; obtain one from a Pool's Get.
type Buffer[T any] struct {
	data   []T
	rented *[]T
	pool   *Pool[T]
}

// Slice returns the borrowed region. Its length is exactly the size
// requested from Get; its contents are uninitialized (pool slots are
// zeroed on Release, not on Get, so callers must not assume a cleared
// buffer on rent for the stack-allocated path either).
func (b *Buffer[T]) Slice() []T {
	return b.data
}

// Release returns the buffer to its pool, if it was pool-rented. It is
// safe to call multiple times; only the first call has an effect.
func (b *Buffer[T]) Release() {
	if b.pool == nil || b.rented == nil {
		b.data = nil
		return
	}
	s := *b.rented
	var zero T
	for i := range s {
		s[i] = zero
	}
	b.pool.sp.Put(b.rented)
	b.rented = nil
	b.pool = nil
	b.data = nil
}

// Pool rents slices of T. Construct one per element type with New; the
// Levenshtein engine uses the process-wide per-type singleton from For.
type Pool[T any] struct {
	sp sync.Pool
}

// New creates an empty typed pool.
func New[T any]() *Pool[T] {
	p := &Pool[T]{}
	p.sp.New = func() any {
		s := make([]T, 0, stackThreshold*2)
		return &s
	}
	return p
}

// Get borrows a region of exactly n elements.
func (p *Pool[T]) Get(n int) *Buffer[T] {
	if n <= stackThreshold {
		return &Buffer[T]{data: make([]T, n)}
	}
	sp, ok := p.sp.Get().(*[]T)
	if !ok {
		panic(fmt.Errorf("lexdist: pool returned a value of unexpected type: %w", lexerr.ErrWrongType))
	}
	if cap(*sp) < n {
		*sp = make([]T, n)
	} else {
		*sp = (*sp)[:n]
	}
	return &Buffer[T]{data: *sp, rented: sp, pool: p}
}
