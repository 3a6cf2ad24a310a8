package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// separatorColumns returns the rune offsets of every column separator in a
// rendered table line, normalising the four rule/row variants.
func separatorColumns(line string) []int {
	var offsets []int
	for i, r := range []rune(line) {
		switch r {
		case '│', '┌', '┬', '┐', '├', '┼', '┤', '└', '┴', '┘':
			offsets = append(offsets, i)
		}
	}
	return offsets
}

func TestTable(t *testing.T) {
	rendered := Table([]string{"a", "bb"}, [][]string{{"x", "yy"}})
	lines := strings.Split(rendered, "\n")
	// top rule, header, separator, body, bottom rule
	assert.Equal(t, 5, len(lines))

	total := len([]rune(lines[0]))
	reference := separatorColumns(lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, total, len([]rune(line)), line)
		assert.Equal(t, reference, separatorColumns(line), line)
	}
	assert.Contains(t, lines[1], "a")
	assert.Contains(t, lines[1], "bb")
	assert.Contains(t, lines[3], "yy")
}

func TestTable_SeparatorBetweenBodyRows(t *testing.T) {
	rendered := Table([]string{"h"}, [][]string{{"1"}, {"2"}, {"3"}})
	lines := strings.Split(rendered, "\n")
	// top + header + 3 bodies + 2 inner separators + header separator + bottom
	assert.Equal(t, 9, len(lines))
	assert.True(t, strings.HasPrefix(lines[4], "├"))
	assert.True(t, strings.HasPrefix(lines[8], "└"))
}

func TestTable_ColumnWidthTracksWidestCell(t *testing.T) {
	rendered := Table([]string{"name"}, [][]string{{"a-much-longer-value"}})
	lines := strings.Split(rendered, "\n")
	// column width = widest cell + padding, plus the two separators
	assert.Equal(t, len([]rune("a-much-longer-value"))+cellPadding+2, len([]rune(lines[0])))
}
