package metric

// MaxDistance maps a value to the radius a search against it is allowed
// to use — the spec's "MX<V,D>".
type MaxDistance[V any, D Numeric] interface {
	Max(v V) D
}

type funcMaxDistance[V any, D Numeric] struct {
	fn func(v V) D
}

func (m funcMaxDistance[V, D]) Max(v V) D { return m.fn(v) }

// FixedMaxDistance returns a MaxDistance that ignores its value and
// always returns d.
func FixedMaxDistance[V any, D Numeric](d D) MaxDistance[V, D] {
	return funcMaxDistance[V, D]{fn: func(V) D { return d }}
}

// FuncMaxDistance wraps fn as a MaxDistance.
func FuncMaxDistance[V any, D Numeric](fn func(v V) D) MaxDistance[V, D] {
	return funcMaxDistance[V, D]{fn: fn}
}

// textRatio implements the text built-in: len(source) * ratio.
type textRatio struct {
	ratio float64
}

func (t textRatio) Max(s string) int {
	n := len([]rune(s))
	d := int(float64(n) * t.ratio)
	return d
}

// TextRatioMaxDistance returns the text MaxDistance built-in:
// floor(len(source) * ratio). ratio is clamped to [0, 1].
func TextRatioMaxDistance(ratio float64) MaxDistance[string, int] {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return textRatio{ratio: ratio}
}
