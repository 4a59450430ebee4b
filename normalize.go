package tsvnorm

import (
	"fmt"
	"io"
	"strings"
)

// writeNormalize expands each input row's colon-delimited cells into
// one tab-joined output line per value combination. The first non-blank
// row fixes the column count for the whole run.
func writeNormalize(w io.Writer, input string) error {
	expected := -1
	sc := lineScanner(input)
	for lineNum := 1; sc.Scan(); lineNum++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Keeps trailing empty columns, unlike the colon split below.
		cells := strings.Split(line, "\t")
		if len(cells) > MaxColumns {
			return fmt.Errorf("%w: line %d: %d columns (limit %d)", ErrTooManyColumns, lineNum, len(cells), MaxColumns)
		}
		if expected == -1 {
			expected = len(cells)
		} else if len(cells) != expected {
			return fmt.Errorf("%w: line %d: expected %d columns, got %d", ErrColumnCountMismatch, lineNum, expected, len(cells))
		}

		split := make([][]string, 0, len(cells))
		for i, cell := range cells {
			col := i + 1
			if len(cell) > MaxCellLength {
				return fmt.Errorf("%w: line %d, column %d: %d bytes (limit %d)", ErrCellTooLong, lineNum, col, len(cell), MaxCellLength)
			}
			values := splitValues(cell)
			if len(values) > MaxValuesPerCell {
				return fmt.Errorf("%w: line %d, column %d: %d values (limit %d)", ErrTooManyValues, lineNum, col, len(values), MaxValuesPerCell)
			}
			split = append(split, values)
		}

		for _, combo := range combinations(split) {
			if _, err := fmt.Fprintln(w, strings.Join(combo, "\t")); err != nil {
				return err
			}
		}
	}
	return sc.Err()
}

// splitValues splits a cell on ":" with the reference semantics:
// trailing empty values are dropped ("a:" yields ["a"], "a::" yields
// ["a"]) and the empty cell yields a single empty value. A cell of
// only delimiters yields no values at all, which suppresses every
// combination for its row.
func splitValues(cell string) []string {
	if cell == "" {
		return []string{""}
	}
	values := strings.Split(cell, ":")
	for len(values) > 0 && values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}
	return values
}
