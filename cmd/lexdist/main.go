// lexdist - Approximate string matching: spelling correction and
// fuzzy full-text search.
//
// Usage:
//
//	lexdist --words wordlist.txt <word>          spelling suggestions
//	lexdist --docs corpus/ <query>                ranked document search
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"lexdist/internal/config"
	"lexdist/internal/metrics"
	"lexdist/internal/ui"
	"lexdist/levenshtein"
	"lexdist/metric"
	"lexdist/search"
	"lexdist/spellcheck"
)

func main() {
	cfg := config.Load().Defaults

	wordsFile := pflag.StringP("words", "w", "", "newline-delimited vocabulary file for spelling suggestions")
	docsDir := pflag.StringP("docs", "d", "", "directory of *.txt documents to search")
	distance := pflag.IntP("distance", "n", 0, "maximum edit distance (0 = ratio-based tolerance)")
	toleranceRatio := pflag.Float64("tolerance", cfg.SpellToleranceRatio, "edit distance as a fraction of word length, used when --distance is 0")
	limit := pflag.IntP("limit", "l", cfg.SearchLimit, "maximum results to show")
	last := pflag.Bool("last", false, "run the query through SearchLast (same results as the default search)")
	jsonOutput := pflag.BoolP("json", "j", false, "output as JSON")
	quiet := pflag.BoolP("quiet", "q", cfg.Quiet, "suppress progress output")
	verbose := pflag.BoolP("verbose", "v", cfg.Verbose, "verbose logging")
	writeMetrics := pflag.Bool("metrics", cfg.Metrics, "write a run-metrics report")
	metricsDir := pflag.String("metrics-dir", ".", "directory metrics reports are written under")

	pflag.Parse()

	if pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: lexdist [options] <word-or-query>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		pflag.PrintDefaults()
		os.Exit(1)
	}
	query := pflag.Arg(0)

	term := ui.New(*jsonOutput || *quiet, *verbose)
	if !*jsonOutput {
		term.Banner()
	}

	collector := metrics.NewCollector()
	collector.SetConfig("tolerance_ratio", *toleranceRatio)
	collector.SetConfig("limit", *limit)

	var tolerance metric.MaxDistance[string, int]
	if *distance > 0 {
		tolerance = metric.FixedMaxDistance[string](*distance)
	} else {
		tolerance = metric.TextRatioMaxDistance(*toleranceRatio)
	}

	switch {
	case *docsDir != "":
		runSearch(term, collector, *docsDir, query, *limit, *last, *jsonOutput, tolerance)
	case *wordsFile != "":
		runSpellcheck(term, collector, *wordsFile, query, *limit, *jsonOutput, tolerance)
	default:
		term.Error("one of --words or --docs is required")
		os.Exit(1)
	}

	if *writeMetrics {
		finalize(collector, term, *metricsDir, *jsonOutput)
	}
}

func runSpellcheck(term *ui.UI, collector *metrics.Collector, wordsFile, word string, limit int, jsonOutput bool, tolerance metric.MaxDistance[string, int]) {
	collector.StartStage("index")
	spinner := term.Spinner("loading vocabulary...")
	vocab := loadLines(wordsFile)
	if spinner != nil {
		spinner.Stop()
	}
	collector.IncrementCounter("vocabulary_size", int64(len(vocab)))

	checker := spellcheck.New(vocab, levenshtein.DefaultOptions(), tolerance)
	collector.EndStage("index")

	if !jsonOutput {
		term.Config(word, 0, checker.Size())
	}

	collector.StartStage("query")
	correct := checker.CheckSpelling(word)
	suggestions := checker.Suggestions(word, limit)
	collector.IncrementCounter("queries", 1)
	collector.IncrementCounter("suggestions_found", int64(len(suggestions)))
	collector.EndStage("query")

	if jsonOutput {
		words := make([]string, len(suggestions))
		distances := make([]int, len(suggestions))
		for i, s := range suggestions {
			words[i], distances[i] = s.Word, s.Distance
		}
		emitJSON(struct {
			Word        string   `json:"word"`
			Correct     bool     `json:"correct"`
			Suggestions []string `json:"suggestions"`
			Distances   []int    `json:"distances"`
		}{word, correct, words, distances})
		return
	}

	if correct {
		term.Success(fmt.Sprintf("%q is in the vocabulary", word))
	}
	words := make([]string, len(suggestions))
	distances := make([]int, len(suggestions))
	for i, s := range suggestions {
		words[i], distances[i] = s.Word, s.Distance
	}
	term.SpellSuggestions(word, words, distances)
}

func runSearch(term *ui.UI, collector *metrics.Collector, docsDir, query string, limit int, last, jsonOutput bool, tolerance metric.MaxDistance[string, int]) {
	collector.StartStage("index")
	spinner := term.Spinner("indexing documents...")
	docs := loadDocuments(docsDir)
	opts := search.DefaultOptions()
	opts.SpellTolerance = tolerance
	provider := search.Create(docs, opts)
	if spinner != nil {
		spinner.Stop()
	}
	collector.IncrementCounter("documents", int64(len(docs)))
	collector.IncrementCounter("vocabulary_size", int64(len(provider.Vocabulary())))
	collector.EndStage("index")

	if !jsonOutput {
		term.Config(query, 0, len(provider.Vocabulary()))
	}

	collector.StartStage("query")
	searchOpts := search.SearchOptions{MaxSuggestions: limit}
	var result search.Result
	if last {
		result = provider.SearchLast(query, searchOpts)
	} else {
		result = provider.Search(query, searchOpts)
	}
	collector.IncrementCounter("queries", 1)
	collector.IncrementCounter("matches_found", int64(len(result.Suggestions)))
	collector.EndStage("query")

	if jsonOutput {
		emitJSON(struct {
			Query  string        `json:"query"`
			Result search.Result `json:"result"`
		}{query, result})
		return
	}
	term.SearchResults(result)
}

func finalize(collector *metrics.Collector, term *ui.UI, metricsDir string, jsonOutput bool) {
	run := collector.Finalize(
		collector.Counter("index", "documents"),
		collector.Counter("query", "queries"),
	)
	reporter := metrics.NewReporter(metricsDir)
	previous, _ := reporter.GetLastRun()
	if err := reporter.Write(run); err != nil {
		if !jsonOutput {
			term.Warning(fmt.Sprintf("failed to write metrics: %v", err))
		}
		return
	}
	if !jsonOutput {
		term.Debug(fmt.Sprintf("metrics written: %s", run.RunID))
		if previous != nil {
			if cmp := metrics.CompareRuns(run, previous); cmp != nil {
				term.Info(metrics.FormatComparison(cmp))
			}
		}
	}
}

func emitJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// loadLines reads one vocabulary word per line, skipping blanks.
func loadLines(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		os.Exit(1)
	}
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			words = append(words, line)
		}
	}
	return words
}

// loadDocuments reads every *.txt file in dir as one Document, keyed
// by its base filename without extension.
func loadDocuments(dir string) []search.Document {
	var docs []search.Document
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", dir, err)
		os.Exit(1)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".txt")
		docs = append(docs, search.Document{ID: id, Text: string(data)})
	}
	return docs
}
