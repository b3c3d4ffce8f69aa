// Package appmode provides the run loops of grepzilla: a one-shot file search and a long-running search node
package appmode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lucascesar918/grepzilla/internal/matcher"
	"github.com/lucascesar918/grepzilla/internal/model"
	"github.com/lucascesar918/grepzilla/internal/reader"
)

const helpText = `Usage: grepzilla PATTERN [FILE] [OPTION]...
Search for PATTERN in FILE.
Example: grepzilla 'hello world' main.go --ignore_case

Pattern and selection:
    --ignore_case   ignore case distinction in pattern and data
    --invert_match  select non-matching lines

Miscellaneous:
    --help          display this help message and exit
`

// RunError wraps any failure of reading the source or writing the result.
type RunError struct {
	Err error
}

func (e *RunError) Error() string {
	return e.Err.Error()
}

func (e *RunError) Unwrap() error {
	return e.Err
}

func PrintHelp(w io.Writer) {
	_, _ = io.WriteString(w, helpText)
}

// RunSearch reads cfg.Source fully and prints every selected line to stdout.
func RunSearch(cfg model.SearchConfig, stdout io.Writer) error {
	if cfg.HelpRequested {
		PrintHelp(stdout)
		return nil
	}

	contents, err := reader.ReadText(cfg.Source)
	if err != nil {
		return &RunError{Err: err}
	}

	out := bufio.NewWriter(stdout)
	for _, line := range matcher.Search(cfg.Query, contents, cfg.InvertMatch, cfg.IgnoreCase) {
		if _, err := out.WriteString(line + "\n"); err != nil {
			return &RunError{Err: fmt.Errorf("failed to write result: %w", err)}
		}
	}
	if err := out.Flush(); err != nil {
		return &RunError{Err: fmt.Errorf("failed to write result: %w", err)}
	}

	return nil
}
