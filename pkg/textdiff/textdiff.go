// Package textdiff renders line-based unified diffs for user feedback.
package textdiff

import (
	"iter"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const contextLines = 3

// Unified yields the lines of a unified diff from oldText to newText,
// without line terminators. Nothing is yielded when the texts are equal.
// The diff is computed when iteration starts.
func Unified(fromFile, toFile, oldText, newText string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if oldText == newText {
			return
		}

		out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        splitLines(oldText),
			B:        splitLines(newText),
			FromFile: fromFile,
			ToFile:   toFile,
			Context:  contextLines,
		})
		if err != nil {
			// Writes go to an in-memory buffer and cannot fail.
			return
		}

		for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// splitLines splits text into newline-terminated lines. Unlike
// difflib.SplitLines it does not add an empty line after a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i := range lines {
		lines[i] += "\n"
	}
	return lines
}
