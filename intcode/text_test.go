package intcode

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	m, err := Parse(" 1, 9,10,-3 ,2,3,11,0,99,30,40,50\n")
	assert.NoError(err)
	assert.Equal([]int64{1, 9, 10, -3, 2, 3, 11, 0, 99, 30, 40, 50}, m.Memory.Cells)
	assert.Equal(STATE_INITIAL, m.State)

	m, err = Load(strings.NewReader("104,1125899906842624,99\n"))
	assert.NoError(err)
	assert.Equal([]int64{104, 1125899906842624, 99}, m.Memory.Cells)
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		text  string
		index int
	}){
		{"empty", "", 0},
		{"word", "1,two,3", 1},
		{"trailing", "1,2,", 2},
		{"float", "1,2,3.5", 2},
		{"hex", "0x10", 0},
		{"overflow", "99,99999999999999999999", 1},
	}

	for _, entry := range table {
		m, err := Parse(entry.text)
		assert.Nil(m, entry.name)

		var cell *ErrCell
		if assert.True(errors.As(err, &cell), entry.name) {
			assert.Equal(entry.index, cell.Index, entry.name)
		}

		var number ErrParseNumber
		assert.True(errors.As(err, &number), entry.name)
	}
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	text := "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
	cells, err := ParseCells(text)
	assert.NoError(err)
	assert.Equal(text, Format(cells))
	assert.Equal("", Format(nil))
}
