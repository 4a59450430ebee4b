package tsvnorm

import (
	"bufio"
	"fmt"
	"strings"
)

// Structural limits enforced by the pipelines.
const (
	// MaxColumns is the most tab-separated columns a Normalize input
	// row may have.
	MaxColumns = 5
	// MaxValuesPerCell is the most colon-separated values a single
	// cell may expand to.
	MaxValuesPerCell = 10
	// MaxCellLength is the longest permitted cell, in bytes.
	MaxCellLength = 10000
	// MaxKeyLength and MaxValueLength bound Group input columns.
	MaxKeyLength   = 100
	MaxValueLength = 100
	// MaxGroupRows is the most input lines (blank included) a Group
	// run accepts.
	MaxGroupRows = 1000
	// MaxValuesPerKey is the most values that may accumulate under
	// one key during a Group run.
	MaxValuesPerKey = 10
)

// maxLineBytes bounds the line scanner. Valid lines top out well below
// this (MaxColumns cells of MaxCellLength bytes plus separators).
const maxLineBytes = 1 << 20

// lineScanner returns a Scanner over input with a buffer large enough
// for any line the limits permit.
func lineScanner(input string) *bufio.Scanner {
	sc := bufio.NewScanner(strings.NewReader(input))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return sc
}

// validateCharset scans every character of input and rejects anything
// other than tab or printable ASCII (0x20 through 0x7E inclusive).
// Line terminators are consumed by the scanner and never inspected.
func validateCharset(input string) error {
	sc := lineScanner(input)
	for lineNum := 1; sc.Scan(); lineNum++ {
		for _, ch := range sc.Text() {
			if ch == '\t' || (ch >= 0x20 && ch <= 0x7E) {
				continue
			}
			return fmt.Errorf("%w: line %d: %q (U+%04X)", ErrCharsetViolation, lineNum, ch, ch)
		}
	}
	return sc.Err()
}
