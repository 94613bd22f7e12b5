// Package edit holds the edit-trace record the Levenshtein DP kernels
// produce: how many deletions, insertions, and substitutions a
// particular alignment used, plus whether that alignment succeeded at
// all.
package edit

import "lexdist/metric"

// Trace is the (deletions, insertions, substitutions, success) tuple a
// DP cell carries. The success flag rides in the sign of the packed
// substitution count rather than as a separate bool field, keeping the
// record three 32-bit words instead of four — a space trade documented
// here, not a correctness one; every observable field below is still
// exact.
type Trace struct {
	d       int32
	i       int32
	sPacked int32
}

// New builds a Trace from its observable fields.
func New(deletions, insertions, substitutions int, success bool) Trace {
	packed := int32(substitutions)
	if !success {
		packed = -int32(substitutions) - 1
	}
	return Trace{d: int32(deletions), i: int32(insertions), sPacked: packed}
}

// Zero is the all-zero, successful trace: no edits needed. It is also
// the Go zero value of Trace, which is why the DP kernels can use a
// freshly zeroed row as the subsequence-mode boundary for free.
var Zero = Trace{}

// Failed is the canonical unsuccessful trace with zero edit counts.
var Failed = Trace{sPacked: -1}

// Deletions returns the deletion count.
func (t Trace) Deletions() int { return int(t.d) }

// Insertions returns the insertion count.
func (t Trace) Insertions() int { return int(t.i) }

// Substitutions returns the substitution count.
func (t Trace) Substitutions() int {
	if t.sPacked >= 0 {
		return int(t.sPacked)
	}
	return int(-t.sPacked - 1)
}

// Success reports whether this trace represents a completed alignment.
func (t Trace) Success() bool {
	return t.sPacked >= 0
}

// TotalEdits is d+i+s, the quantity the match-extraction group-collapse
// rule (spec §4.5 step 2) ties-break on.
func (t Trace) TotalEdits() int {
	return t.Deletions() + t.Insertions() + t.Substitutions()
}

// Weighted projects the trace to a scalar distance under the given unit
// costs.
func Weighted[D metric.Numeric](t Trace, costs metric.Costs[D]) D {
	return D(t.Deletions())*costs.Deletion +
		D(t.Insertions())*costs.Insertion +
		D(t.Substitutions())*costs.Substitution
}

// WithDeletion returns a copy of t with one more deletion, inheriting
// success from t.
func (t Trace) WithDeletion() Trace {
	return New(t.Deletions()+1, t.Insertions(), t.Substitutions(), t.Success())
}

// WithInsertion returns a copy of t with one more insertion, inheriting
// success from t.
func (t Trace) WithInsertion() Trace {
	return New(t.Deletions(), t.Insertions()+1, t.Substitutions(), t.Success())
}

// WithSubstitution returns a copy of t with delta added to the
// substitution count (0 for a match, 1 for a real substitution),
// inheriting success from t.
func (t Trace) WithSubstitution(delta int) Trace {
	return New(t.Deletions(), t.Insertions(), t.Substitutions()+delta, t.Success())
}
