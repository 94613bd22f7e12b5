// Package ui provides terminal presentation for cmd/lexdist, built on
// pterm.
package ui

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"lexdist/search"
)

// UI wraps pterm components for the lexdist CLI.
type UI struct {
	quiet   bool
	verbose bool
}

// New creates a UI instance. A quiet UI disables all pterm output.
func New(quiet, verbose bool) *UI {
	if quiet {
		pterm.DisableOutput()
	}
	return &UI{quiet: quiet, verbose: verbose}
}

// Banner prints the application banner.
func (u *UI) Banner() {
	pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("lex", pterm.NewStyle(pterm.FgCyan)),
		pterm.NewLettersFromStringWithStyle("dist", pterm.NewStyle(pterm.FgLightBlue)),
	).Render()

	pterm.DefaultCenter.Println(
		pterm.FgGray.Sprint("Approximate String Matching Toolkit"),
	)
	fmt.Println()
}

// Spinner starts a spinner for a long-running operation such as index
// construction.
func (u *UI) Spinner(message string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.
		WithRemoveWhenDone(true).
		Start(message)
	return spinner
}

// Config prints a summary of the query configuration.
func (u *UI) Config(pattern string, maxDistance int, vocabSize int) {
	pterm.DefaultSection.Println("Query")

	data := [][]string{
		{"Pattern", pattern},
		{"Max distance", fmt.Sprintf("%d", maxDistance)},
		{"Vocabulary size", fmt.Sprintf("%d", vocabSize)},
	}
	pterm.DefaultTable.WithData(data).Render()
	fmt.Println()
}

// SpellSuggestions prints a table of ranked spelling suggestions.
func (u *UI) SpellSuggestions(word string, suggestions []string, distances []int) {
	if len(suggestions) == 0 {
		u.Info(fmt.Sprintf("no suggestions found for %q", word))
		return
	}
	data := pterm.TableData{{"Suggestion", "Distance"}}
	for i, s := range suggestions {
		data = append(data, []string{s, fmt.Sprintf("%d", distances[i])})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	fmt.Println()
}

// SearchResults prints the primary hit, if any, followed by a ranked
// table of suggestions.
func (u *UI) SearchResults(result search.Result) {
	if result.Success {
		u.Success(fmt.Sprintf("%q", result.Value.ID))
	} else {
		u.Info("no exact match")
	}
	if len(result.Suggestions) == 0 {
		return
	}
	data := pterm.TableData{{"Document", "Rank"}}
	for _, s := range result.Suggestions {
		data = append(data, []string{
			s.Item.ID,
			fmt.Sprintf("%.2f", s.Rank),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	fmt.Println()
}

// Done prints a final summary box.
func (u *UI) Done(resultCount int, duration time.Duration) {
	panel := pterm.DefaultBox.WithTitle("Summary").Sprint(
		fmt.Sprintf(
			"  Results:   %s\n"+
				"  Duration:  %s",
			pterm.FgGreen.Sprintf("%d", resultCount),
			pterm.FgYellow.Sprint(duration.Round(time.Millisecond)),
		),
	)
	fmt.Println(panel)
}

// Success prints a success message.
func (u *UI) Success(message string) { pterm.Success.Println(message) }

// Error prints an error message.
func (u *UI) Error(message string) { pterm.Error.Println(message) }

// Warning prints a warning message.
func (u *UI) Warning(message string) { pterm.Warning.Println(message) }

// Info prints an info message.
func (u *UI) Info(message string) { pterm.Info.Println(message) }

// Debug prints a debug message, only when verbose mode is on.
func (u *UI) Debug(message string) {
	if u.verbose {
		pterm.Debug.Println(message)
	}
}
