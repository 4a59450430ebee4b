package tsvnorm

import (
	"fmt"
	"io"
	"strings"
)

// grouped aggregates values per key while preserving first-appearance
// key order, which must survive into the output. A plain map loses
// ordering, so entries live in a slice with a key→position index.
type grouped struct {
	entries []groupedEntry
	index   map[string]int
}

type groupedEntry struct {
	key    string
	values []string
}

func newGrouped() *grouped {
	return &grouped{index: make(map[string]int)}
}

// add appends value under key and returns how many values the key now
// holds.
func (g *grouped) add(key, value string) int {
	i, ok := g.index[key]
	if !ok {
		i = len(g.entries)
		g.index[key] = i
		g.entries = append(g.entries, groupedEntry{key: key})
	}
	g.entries[i].values = append(g.entries[i].values, value)
	return len(g.entries[i].values)
}

// writeGroup collapses 2-column key/value rows into one line per key,
// values colon-joined in encounter order. The row counter includes
// blank lines and is checked before they are skipped.
func writeGroup(w io.Writer, input string) error {
	data := newGrouped()
	sc := lineScanner(input)
	for lineNum := 1; sc.Scan(); lineNum++ {
		if lineNum > MaxGroupRows {
			return fmt.Errorf("%w: line %d (limit %d)", ErrTooManyRows, lineNum, MaxGroupRows)
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) != 2 {
			return fmt.Errorf("%w: line %d: got %d columns, want 2", ErrInvalidColumnCount, lineNum, len(cols))
		}
		key, value := cols[0], cols[1]
		if len(key) > MaxKeyLength {
			return fmt.Errorf("%w: line %d: %d bytes (limit %d)", ErrKeyTooLong, lineNum, len(key), MaxKeyLength)
		}
		if len(value) > MaxValueLength {
			return fmt.Errorf("%w: line %d: %d bytes (limit %d)", ErrValueTooLong, lineNum, len(value), MaxValueLength)
		}
		if n := data.add(key, value); n > MaxValuesPerKey {
			return fmt.Errorf("%w: key %q: %d values (limit %d)", ErrTooManyValuesForKey, key, n, MaxValuesPerKey)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	for _, e := range data.entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.key, strings.Join(e.values, ":")); err != nil {
			return err
		}
	}
	return nil
}
