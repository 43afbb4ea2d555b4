package intcode

import (
	"iter"
)

// Opcode is a line of assembled code with its source location and
// generated cells.
type Opcode struct {
	LineNo int            // Source line number.
	Ip     int            // Address of the first cell.
	Words  []string       // Source words.
	Codes  []int64        // Generated cells.
	Links  map[int]string // Codes index to label, resolved at link time.
}

// Program is an assembled Intcode program.
type Program struct {
	Opcodes []Opcode
}

// Debug locates a single cell within a program listing.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode that generated the cell at ip.
func (prog *Program) Debug(ip int64) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= int64(op.Ip) && ip < int64(op.Ip+len(op.Codes)) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(ip - int64(op.Ip)),
			}
			break
		}
	}

	return
}

// Codes iterates over every cell of the program, by address.
func (prog *Program) Codes() iter.Seq2[int64, int64] {
	return func(yield func(ip int64, cell int64) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(int64(op.Ip+n), code) {
					return
				}
			}
		}
	}
}

// Cells returns the memory image of the program.
func (prog *Program) Cells() (cells []int64) {
	for _, code := range prog.Codes() {
		cells = append(cells, code)
	}

	return
}

// Text returns the program as comma separated program text.
func (prog *Program) Text() string {
	return Format(prog.Cells())
}

// Machine creates a machine loaded with the program.
func (prog *Program) Machine() *Machine {
	return NewMachine(prog.Cells())
}
