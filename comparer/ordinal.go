package comparer

// ordinal compares runes and strings for exact codepoint equality.
type ordinal struct{}

// Ordinal is the exact-codepoint TextComparer. It is a process-wide
// singleton: it carries no state and is safe to share without
// synchronization, per the library's shared-resource policy.
var Ordinal TextComparer = ordinal{}

func (ordinal) Equal(a, b rune) bool { return a == b }

func (ordinal) EqualString(a, b string) bool { return a == b }
