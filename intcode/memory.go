package intcode

import (
	"slices"
)

const (
	MEMORY_LIMIT = 1 << 24 // Default maximum memory size, in cells.
)

// Memory is the growable cell store of a machine. Reads past the end of
// the cells yield 0, and writes past the end zero-extend the cells.
type Memory struct {
	Limit int     // Maximum number of cells. If 0, MEMORY_LIMIT applies.
	Cells []int64 // Cell contents.
}

// limit returns the effective cell limit.
func (mem *Memory) limit() int {
	if mem.Limit <= 0 {
		return MEMORY_LIMIT
	}
	return mem.Limit
}

// Len returns the number of backed cells.
func (mem *Memory) Len() int {
	return len(mem.Cells)
}

// EnsureLen zero-extends the memory to at least size cells.
func (mem *Memory) EnsureLen(size int) (err error) {
	if size <= len(mem.Cells) {
		return
	}

	if size > mem.limit() {
		err = ErrAddressLimit
		return
	}

	old := len(mem.Cells)
	mem.Cells = slices.Grow(mem.Cells, size-old)
	mem.Cells = mem.Cells[:size]
	clear(mem.Cells[old:])

	return
}

// Read returns the cell at addr.
func (mem *Memory) Read(addr int64) (value int64, err error) {
	if addr < 0 {
		err = ErrAddressNegative
		return
	}

	if addr < int64(len(mem.Cells)) {
		value = mem.Cells[addr]
	}

	return
}

// Write stores value at addr, growing memory as needed.
func (mem *Memory) Write(addr int64, value int64) (err error) {
	if addr < 0 {
		err = ErrAddressNegative
		return
	}

	if addr >= int64(mem.limit()) {
		err = ErrAddressLimit
		return
	}

	err = mem.EnsureLen(int(addr) + 1)
	if err != nil {
		return
	}

	mem.Cells[addr] = value

	return
}

// Clone returns an independent copy of the memory.
func (mem *Memory) Clone() Memory {
	return Memory{
		Limit: mem.Limit,
		Cells: slices.Clone(mem.Cells),
	}
}
