package lexerr_test

import (
	"errors"
	"testing"

	"lexdist/bktree"
	"lexdist/internal/lexerr"
	"lexdist/internal/pool"
	"lexdist/levenshtein"
	"lexdist/metric"
)

func expectPanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic, got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		if !errors.Is(err, target) {
			t.Errorf("panic = %v, want errors.Is(_, %v)", err, target)
		}
	}()
	fn()
}

func TestCollectionAtOutOfRange(t *testing.T) {
	coll := levenshtein.MatchesWithOptions("cat", "no cats here", levenshtein.DefaultOptions())
	expectPanicIs(t, lexerr.ErrOutOfRange, func() {
		coll.At(coll.Len())
	})
}

func TestCollectionRemoveReadOnly(t *testing.T) {
	coll := levenshtein.MatchesWithOptions("cat", "cat", levenshtein.DefaultOptions())
	if err := coll.Remove(0); !errors.Is(err, lexerr.ErrReadOnly) {
		t.Errorf("Remove() = %v, want errors.Is(_, ErrReadOnly)", err)
	}
}

func TestCollectionCopyToInsufficientDestination(t *testing.T) {
	coll := levenshtein.MatchesWithOptions("cat", "cat and cat", levenshtein.DefaultOptions())
	dst := make([]levenshtein.MatchResult[int], 0)
	if _, err := coll.CopyTo(dst); !errors.Is(err, lexerr.ErrInsufficientDestination) {
		t.Errorf("CopyTo() = %v, want errors.Is(_, ErrInsufficientDestination)", err)
	}
}

func TestCollectionCopyToSucceeds(t *testing.T) {
	coll := levenshtein.MatchesWithOptions("cat", "cat and cat", levenshtein.DefaultOptions())
	dst := make([]levenshtein.MatchResult[int], coll.Len())
	n, err := coll.CopyTo(dst)
	if err != nil {
		t.Fatalf("CopyTo() = %v, want no error", err)
	}
	if n != coll.Len() {
		t.Errorf("CopyTo() copied %d, want %d", n, coll.Len())
	}
}

func TestBKTreeNewNilMetric(t *testing.T) {
	expectPanicIs(t, lexerr.ErrNullArgument, func() {
		bktree.New[string, int](nil)
	})
}

func TestDistanceSeqNilComparer(t *testing.T) {
	expectPanicIs(t, lexerr.ErrNullArgument, func() {
		levenshtein.DistanceSeq([]rune("a"), []rune("b"), nil, metric.DefaultCosts[int]())
	})
}

func TestFullMatchSeqNilComparer(t *testing.T) {
	expectPanicIs(t, lexerr.ErrNullArgument, func() {
		levenshtein.FullMatchSeq([]rune("a"), []rune("b"), nil, metric.DefaultCosts[int]())
	})
}

func TestPoolForTypeCheckedGet(t *testing.T) {
	// For's own type-checked path always matches its own registry key,
	// so this exercises the safe comma-ok form rather than forcing a
	// real mismatch — the registry is keyed by reflect.Type precisely
	// so a mismatch can't occur through the public API.
	p := pool.For[int]()
	buf := p.Get(4)
	defer buf.Release()
	if len(buf.Slice()) != 4 {
		t.Errorf("Get(4) len = %d, want 4", len(buf.Slice()))
	}
}
