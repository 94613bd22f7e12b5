package levenshtein

import "lexdist/edit"

// Distance is DistanceWithOptions with DefaultOptions().
func Distance(a, b string) int {
	return DistanceWithOptions(a, b, DefaultOptions())
}

// SubsequenceDistance is SubsequenceDistanceWithOptions with
// DefaultOptions().
func SubsequenceDistance(pattern, text string) int {
	return SubsequenceDistanceWithOptions(pattern, text, DefaultOptions())
}

// Ratio is RatioWithOptions with DefaultOptions().
func Ratio(a, b string) float64 {
	return RatioWithOptions(a, b, DefaultOptions())
}

// SubsequenceRatio is SubsequenceRatioWithOptions with
// DefaultOptions().
func SubsequenceRatio(pattern, text string) float64 {
	return SubsequenceRatioWithOptions(pattern, text, DefaultOptions())
}

// FullMatch is FullMatchWithOptions with DefaultOptions().
func FullMatch(a, b string) edit.Trace {
	return FullMatchWithOptions(a, b, DefaultOptions())
}

// IsFullMatch reports whether the full-match distance between a and b
// is within maxDistance.
func IsFullMatch(a, b string, maxDistance int) bool {
	return IsFullMatchWithOptions(a, b, maxDistance, DefaultOptions())
}

// Match is MatchWithOptions with DefaultOptions() and no distance cap
// — the leftmost match with the lowest distance, short-circuited at an
// exact hit.
func Match(pattern, text string) (MatchResult[int], bool) {
	return MatchWithOptions(pattern, text, DefaultOptions())
}

// LastMatch is LastMatchWithOptions with DefaultOptions().
func LastMatch(pattern, text string) (MatchResult[int], bool) {
	return LastMatchWithOptions(pattern, text, DefaultOptions())
}

// Matches is MatchesWithOptions with DefaultOptions().
func Matches(pattern, text string) *Collection[int] {
	return MatchesWithOptions(pattern, text, DefaultOptions())
}

// EnumerateMatches is EnumerateMatchesWithOptions with
// DefaultOptions().
func EnumerateMatches(pattern, text string) *Iterator[int] {
	return EnumerateMatchesWithOptions(pattern, text, DefaultOptions())
}

// Count is CountWithOptions with DefaultOptions().
func Count(pattern, text string) int {
	return CountWithOptions(pattern, text, DefaultOptions())
}

// IsMatch reports whether pattern occurs in text within the default
// cap of floor(0.25 * len(pattern)) edits.
func IsMatch(pattern, text string) bool {
	maxDist := int(0.25 * float64(len([]rune(pattern))))
	return IsMatchWithMaxDistance(pattern, text, maxDist)
}

// IsMatchWithMaxDistance reports whether pattern occurs in text within
// maxDistance edits.
func IsMatchWithMaxDistance(pattern, text string, maxDistance int) bool {
	opts := DefaultOptions()
	opts.MaxDistance = &maxDistance
	return IsMatchWithOptions(pattern, text, opts)
}
