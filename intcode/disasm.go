package intcode

import (
	"iter"
)

// Disassemble walks cells linearly from address 0, yielding each decoded
// instruction. It stops at the end of cells, or at the first cell that is
// not a valid instruction, such as program data.
func Disassemble(cells []int64) iter.Seq2[int64, Instruction] {
	return func(yield func(ip int64, inst Instruction) bool) {
		mem := &Memory{Cells: cells}
		for ip := int64(0); ip < int64(len(cells)); {
			inst, err := Decode(mem, ip)
			if err != nil {
				return
			}
			if !yield(ip, inst) {
				return
			}
			ip += int64(inst.Length())
		}
	}
}
