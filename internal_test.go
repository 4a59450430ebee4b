package tsvnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitValues(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cell string
		want []string
	}{
		"single":                {cell: "a", want: []string{"a"}},
		"two":                   {cell: "a:b", want: []string{"a", "b"}},
		"trailing colon":        {cell: "a:", want: []string{"a"}},
		"double trailing colon": {cell: "a::", want: []string{"a"}},
		"leading colon kept":    {cell: ":a", want: []string{"", "a"}},
		"inner empty kept":      {cell: "a::b", want: []string{"a", "", "b"}},
		"empty cell":            {cell: "", want: []string{""}},
		"delimiters only":       {cell: "::", want: []string{}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitValues(tt.cell))
		})
	}
}

func TestCombinationsOrder(t *testing.T) {
	t.Parallel()
	got := combinations([][]string{{"a"}, {"x", "y"}})
	assert.Equal(t, [][]string{{"a", "x"}, {"a", "y"}}, got)
}

func TestCombinationsEarlierCellsVarySlowest(t *testing.T) {
	t.Parallel()
	got := combinations([][]string{{"a", "b"}, {"x", "y"}})
	assert.Equal(t, [][]string{
		{"a", "x"}, {"a", "y"},
		{"b", "x"}, {"b", "y"},
	}, got)
}

func TestCombinationsSingletons(t *testing.T) {
	t.Parallel()
	got := combinations([][]string{{"a"}, {"b"}, {"c"}})
	assert.Equal(t, [][]string{{"a", "b", "c"}}, got)
}

func TestCombinationsEmptyListZeroesRow(t *testing.T) {
	t.Parallel()
	got := combinations([][]string{{"a", "b"}, {}})
	assert.Empty(t, got)
}

func TestCombinationsNoCells(t *testing.T) {
	t.Parallel()
	got := combinations(nil)
	assert.Equal(t, [][]string{{}}, got)
}

func TestGroupedAddKeepsOrder(t *testing.T) {
	t.Parallel()
	g := newGrouped()
	assert.Equal(t, 1, g.add("b", "1"))
	assert.Equal(t, 1, g.add("a", "2"))
	assert.Equal(t, 2, g.add("b", "3"))
	assert.Equal(t, "b", g.entries[0].key)
	assert.Equal(t, []string{"1", "3"}, g.entries[0].values)
	assert.Equal(t, "a", g.entries[1].key)
	assert.Equal(t, []string{"2"}, g.entries[1].values)
}

func TestValidateCharsetBounds(t *testing.T) {
	t.Parallel()
	// 0x20 and 0x7E are the inclusive bounds; 0x1F and 0x7F are out.
	assert.NoError(t, validateCharset(" \t~\n"))
	assert.Error(t, validateCharset("\x1f\n"))
	assert.Error(t, validateCharset("\x7f\n"))
}
