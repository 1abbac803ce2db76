// Package report turns raw zswap entries into an aligned key/value listing.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/haukened/zswapstat/internal/zswap/domain"
)

// Labels of the derived rows.
const (
	LabelCompressed   = "compressed"
	LabelUncompressed = "uncompressed"
	LabelSavings      = "space_savings"
)

// Build lays out the report: every raw entry in order, a separator, then the
// derived compressed, uncompressed and space_savings rows.
func Build(entries []domain.Entry, d Derived, unit domain.Unit, base domain.Base) []Line {
	lines := make([]Line, 0, len(entries)+4)
	for _, e := range entries {
		lines = append(lines, Item{Label: e.Name, Value: e.Raw})
	}
	lines = append(lines,
		Separator{},
		Item{Label: LabelCompressed, Value: domain.FormatSize(d.Compressed, unit, base)},
		Item{Label: LabelUncompressed, Value: domain.FormatSize(d.Uncompressed, unit, base)},
		Item{Label: LabelSavings, Value: FormatRatio(d.Savings)},
	)
	return lines
}

// Render writes lines to w. Labels are padded to the widest label in the
// whole report and followed by two spaces and the value.
func Render(w io.Writer, lines []Line) error {
	width := 0
	for _, l := range lines {
		if item, ok := l.(Item); ok && len(item.Label) > width {
			width = len(item.Label)
		}
	}

	var b strings.Builder
	for _, l := range lines {
		switch l := l.(type) {
		case Item:
			fmt.Fprintf(&b, "%-*s  %s\n", width, l.Label, l.Value)
		case Separator:
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
