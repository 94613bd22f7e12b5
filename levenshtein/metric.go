package levenshtein

import "lexdist/metric"

// StringMetric returns a metric.Metric[string,int] backed by
// DistanceWithOptions, for use anywhere a generic metric space is
// needed over strings — bktree.Tree and spellcheck's vocabulary index
// both key off this.
func StringMetric(opts Options) metric.Metric[string, int] {
	opts = resolveOptions(opts)
	return metric.FromFunc(func(a, b string) int {
		return DistanceWithOptions(a, b, opts)
	})
}

// DefaultStringMetric is StringMetric(DefaultOptions()).
func DefaultStringMetric() metric.Metric[string, int] {
	return StringMetric(DefaultOptions())
}
