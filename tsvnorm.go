package tsvnorm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling. Every validation
// failure wraps one of these with line/column/key detail; callers
// match with errors.Is.
var (
	ErrUnsupportedMode = errors.New("unsupported mode")

	// Pre-validation.
	ErrCharsetViolation = errors.New("disallowed character")

	// Normalize pipeline.
	ErrTooManyColumns      = errors.New("too many columns")
	ErrColumnCountMismatch = errors.New("column count mismatch")
	ErrCellTooLong         = errors.New("cell too long")
	ErrTooManyValues       = errors.New("too many values in cell")

	// Group pipeline.
	ErrInvalidColumnCount  = errors.New("invalid column count")
	ErrKeyTooLong          = errors.New("key too long")
	ErrValueTooLong        = errors.New("value too long")
	ErrTooManyValuesForKey = errors.New("too many values for key")
	ErrTooManyRows         = errors.New("too many rows")
)

// Mode selects a transform pipeline.
type Mode string

const (
	// Normalize expands colon-delimited multi-valued cells into one
	// output row per value combination (Cartesian product).
	Normalize Mode = "normalize"
	// Group collapses 2-column key/value rows sharing a key into a
	// single row with colon-joined values.
	Group Mode = "group"
)

var modes = []Mode{Normalize, Group}

// String returns the mode name.
func (m Mode) String() string { return string(m) }

// Modes returns all supported modes.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ParseMode parses a mode string. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	for _, m := range modes {
		if string(m) == strings.ToLower(s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// Write transforms the text read from r and writes the result to w.
// The whole input is validated against the permitted character set
// before either pipeline runs. Output is buffered internally and
// reaches w only after the entire run succeeds, so a failed run never
// produces partial output.
func Write(w io.Writer, m Mode, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := Marshal(m, string(data))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// Marshal transforms input and returns the output bytes.
func Marshal(m Mode, input string) ([]byte, error) {
	if err := validateCharset(input); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	switch m {
	case Normalize:
		if err := writeNormalize(&buf, input); err != nil {
			return nil, err
		}
	case Group:
		if err := writeGroup(&buf, input); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, m)
	}
	return buf.Bytes(), nil
}
