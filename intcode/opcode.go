package intcode

import (
	"errors"
	"fmt"
	"strings"
)

// Op is an Intcode operation selector, the low two decimal digits of an
// opcode cell.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD         = Op(1)  // add
	OP_MUL         = Op(2)  // mul
	OP_INPUT       = Op(3)  // in
	OP_OUTPUT      = Op(4)  // out
	OP_JUMP_TRUE   = Op(5)  // jnz
	OP_JUMP_FALSE  = Op(6)  // jz
	OP_LESS_THAN   = Op(7)  // lt
	OP_EQUALS      = Op(8)  // eq
	OP_ADJUST_BASE = Op(9)  // arb
	OP_HALT        = Op(99) // hlt
)

// Ops lists every valid operation.
var Ops = [...]Op{
	OP_ADD, OP_MUL, OP_INPUT, OP_OUTPUT, OP_JUMP_TRUE,
	OP_JUMP_FALSE, OP_LESS_THAN, OP_EQUALS, OP_ADJUST_BASE, OP_HALT,
}

// Params returns the number of parameters taken by the operation.
func (op Op) Params() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LESS_THAN, OP_EQUALS:
		return 3
	case OP_JUMP_TRUE, OP_JUMP_FALSE:
		return 2
	case OP_INPUT, OP_OUTPUT, OP_ADJUST_BASE:
		return 1
	}
	return 0
}

// Target returns the parameter index written by the operation, or -1 if
// the operation does not write memory.
func (op Op) Target() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LESS_THAN, OP_EQUALS:
		return 2
	case OP_INPUT:
		return 0
	}
	return -1
}

// Valid returns true if op is a known operation.
func (op Op) Valid() bool {
	return (op >= OP_ADD && op <= OP_ADJUST_BASE) || op == OP_HALT
}

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // pos
	MODE_IMMEDIATE = Mode(1) // imm
	MODE_RELATIVE  = Mode(2) // rel
)

// modePrefix is the assembly language prefix of each mode.
var modePrefix = [...]string{
	MODE_POSITION:  "",
	MODE_IMMEDIATE: "#",
	MODE_RELATIVE:  "@",
}

// Param is a single decoded instruction parameter.
type Param struct {
	Mode  Mode
	Value int64
}

// String returns the assembly language representation of the parameter.
func (p Param) String() string {
	if p.Mode < 0 || int(p.Mode) >= len(modePrefix) {
		return fmt.Sprintf("%v:%d", p.Mode, p.Value)
	}
	return fmt.Sprintf("%s%d", modePrefix[p.Mode], p.Value)
}

// Instruction is a decoded instruction. It is a plain value rebuilt for
// every dispatch; only the first Op.Params() entries of Params are used.
type Instruction struct {
	Ip     int64    // Address the instruction was decoded from.
	Op     Op       // Operation.
	Params [3]Param // Parameters.
}

// Length returns the number of cells occupied by the instruction.
func (inst Instruction) Length() int {
	return 1 + inst.Op.Params()
}

// Decode decodes the instruction at ip.
func Decode(mem *Memory, ip int64) (inst Instruction, err error) {
	cell, err := mem.Read(ip)
	if err != nil {
		return
	}

	inst.Ip = ip
	inst.Op = Op(cell % 100)
	if cell < 0 || !inst.Op.Valid() {
		err = errors.Join(ErrOpcodeInvalid, ErrOpcode(cell))
		return
	}

	modes := cell / 100
	for n := range inst.Op.Params() {
		mode := Mode(modes % 10)
		modes /= 10
		if mode > MODE_RELATIVE {
			err = errors.Join(ErrModeInvalid, errParam[n])
			return
		}
		var value int64
		value, err = mem.Read(ip + 1 + int64(n))
		if err != nil {
			return
		}
		inst.Params[n] = Param{Mode: mode, Value: value}
	}

	return
}

// Encode returns the memory cells of the instruction.
func (inst Instruction) Encode() (cells []int64) {
	cell := int64(inst.Op)
	scale := int64(100)
	params := inst.Op.Params()
	for n := range params {
		cell += int64(inst.Params[n].Mode) * scale
		scale *= 10
	}

	cells = append(cells, cell)
	for n := range params {
		cells = append(cells, inst.Params[n].Value)
	}

	return
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() string {
	words := []string{inst.Op.String()}
	for n := range inst.Op.Params() {
		words = append(words, inst.Params[n].String())
	}
	return strings.Join(words, " ")
}
