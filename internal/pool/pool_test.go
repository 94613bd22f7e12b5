package pool

import "testing"

func TestGetReleaseSmall(t *testing.T) {
	p := New[int]()
	b := p.Get(4)
	s := b.Slice()
	if len(s) != 4 {
		t.Fatalf("len(s) = %d, want 4", len(s))
	}
	b.Release()
}

func TestGetReleaseLarge(t *testing.T) {
	p := New[int]()
	b := p.Get(1000)
	s := b.Slice()
	if len(s) != 1000 {
		t.Fatalf("len(s) = %d, want 1000", len(s))
	}
	b.Release()
}

func TestDoubleReleaseIsNoOp(t *testing.T) {
	p := New[int]()
	b := p.Get(1000)
	b.Release()
	b.Release() // must not panic or corrupt the pool
}

func TestReleaseClearsSlice(t *testing.T) {
	p := New[int]()
	b := p.Get(1000)
	b.Release()
	if b.Slice() != nil {
		t.Error("Slice() after Release should be nil")
	}
}

func TestForReturnsSingleton(t *testing.T) {
	a := For[int]()
	b := For[int]()
	if a != b {
		t.Error("For[int]() should return the same pool instance across calls")
	}
}

func TestForDistinctTypes(t *testing.T) {
	ints := For[int]()
	floats := For[float64]()
	if ints == nil || floats == nil {
		t.Fatal("For should never return nil")
	}
}
