package intcode

import (
	"io"
	"strconv"
	"strings"
)

// ParseCells parses comma separated program text into memory cells.
func ParseCells(text string) (cells []int64, err error) {
	for n, token := range strings.Split(strings.TrimSpace(text), ",") {
		token = strings.TrimSpace(token)
		var value int64
		value, err = strconv.ParseInt(token, 10, 64)
		if err != nil {
			err = &ErrCell{Index: n, Err: ErrParseNumber(token)}
			cells = nil
			return
		}
		cells = append(cells, value)
	}

	return
}

// Parse creates a machine from comma separated program text.
func Parse(text string) (m *Machine, err error) {
	cells, err := ParseCells(text)
	if err != nil {
		return
	}

	m = NewMachine(cells)

	return
}

// Load creates a machine from program text read from input.
func Load(input io.Reader) (m *Machine, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return Parse(string(data))
}

// Format returns cells as comma separated program text.
func Format(cells []int64) string {
	words := make([]string, len(cells))
	for n, cell := range cells {
		words[n] = strconv.FormatInt(cell, 10)
	}
	return strings.Join(words, ",")
}
