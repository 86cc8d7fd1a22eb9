// Package diff shows how a picker value was rewritten into canonical form,
// one key per line.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Keys renders a line diff between two comma-separated values. Kept keys are
// indented by two spaces, dropped keys start with "- " and new keys with "+ ".
// It returns an empty string when both values hold the same keys in the same
// order.
func Keys(before, after string) string {
	a, b := keyLines(before), keyLines(after)
	if a == b {
		return ""
	}

	dmp := diffmatchpatch.New()
	charsA, charsB, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), lines)

	var buf strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}
	return buf.String()
}

// keyLines puts each trimmed key of value on its own line.
func keyLines(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	var b strings.Builder
	for _, key := range strings.Split(value, ",") {
		b.WriteString(strings.TrimSpace(key))
		b.WriteByte('\n')
	}
	return b.String()
}
