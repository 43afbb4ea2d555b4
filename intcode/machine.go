package intcode

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

// State is the execution state of a machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_INITIAL = State(0) // initial
	STATE_RUNNING = State(1) // running
	STATE_WAITING = State(2) // waiting
	STATE_HALTED  = State(3) // halted
)

// Machine is the execution context of a single Intcode program.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Ip           int64   // Current instruction pointer.
	RelativeBase int64   // Base added to relative mode parameters.
	State        State   // Current execution state.
	Memory       Memory  // Program memory.
	Input        []int64 // Pending input, consumed from the front.
	Output       []int64 // Output produced by the current Run.

	Ticks int // Instructions executed since the last reset.

	image []int64 // Memory image restored by Reset.
}

// NewMachine creates a machine whose memory, and reset image, is cells.
func NewMachine(cells []int64) (m *Machine) {
	m = &Machine{
		image: slices.Clone(cells),
	}
	m.Memory.Cells = slices.Clone(cells)

	return
}

// Reset restores the machine to the state it was constructed in.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("intcode: reset")
	}

	m.Ip = 0
	m.RelativeBase = 0
	m.State = STATE_INITIAL
	m.Memory.Cells = slices.Clone(m.image)
	m.Input = nil
	m.Output = nil
	m.Ticks = 0
}

// Clone returns a fully independent copy of the machine.
func (m *Machine) Clone() (clone *Machine) {
	clone = &Machine{}
	*clone = *m
	clone.Memory = m.Memory.Clone()
	clone.Input = slices.Clone(m.Input)
	clone.Output = slices.Clone(m.Output)

	return
}

// IsHalted returns true once the machine has executed a halt.
func (m *Machine) IsHalted() bool {
	return m.State == STATE_HALTED
}

// Read returns the memory cell at addr.
func (m *Machine) Read(addr int64) (value int64, err error) {
	return m.Memory.Read(addr)
}

// Write stores value in the memory cell at addr.
func (m *Machine) Write(addr int64, value int64) (err error) {
	return m.Memory.Write(addr, value)
}

// Push appends values to the input queue without running the machine.
func (m *Machine) Push(values ...int64) {
	m.Input = append(m.Input, values...)
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("%6s: %v\n", "state", m.State)
	text += fmt.Sprintf("%6s: %d\n", "ip", m.Ip)
	text += fmt.Sprintf("%6s: %d\n", "base", m.RelativeBase)
	text += fmt.Sprintf("%6s: %d\n", "memory", m.Memory.Len())
	text += fmt.Sprintf("%6s: %v\n", "input", m.Input)
	text += fmt.Sprintf("%6s: %v\n", "output", m.Output)

	inst, err := Decode(&m.Memory, m.Ip)
	if err == nil {
		text += fmt.Sprintf("%6s: %v\n", "next", inst)
	}

	return
}

// Run appends inputs to the input queue and executes until the machine
// halts or waits for input. The output produced during this call is
// returned. Running a halted machine does nothing.
func (m *Machine) Run(inputs ...int64) (outputs []int64, err error) {
	m.Output = m.Output[:0]

	if m.State == STATE_HALTED {
		return
	}

	m.Push(inputs...)
	m.State = STATE_RUNNING

	for m.State == STATE_RUNNING {
		err = m.Step()
		if err != nil {
			break
		}
	}

	outputs = slices.Clone(m.Output)

	if m.Verbose {
		log.Printf("intcode: %v, %d outputs", m.State, len(outputs))
	}

	return
}

// Step decodes and executes the instruction at Ip.
func (m *Machine) Step() (err error) {
	if m.State == STATE_HALTED {
		return
	}

	m.State = STATE_RUNNING

	inst, err := Decode(&m.Memory, m.Ip)
	if err != nil {
		err = &ErrRuntime{Ip: m.Ip, Err: err}
		return
	}

	err = m.Execute(inst)
	if err != nil {
		err = &ErrRuntime{Ip: m.Ip, Err: err}
		return
	}

	return
}

// Execute executes a single decoded instruction.
func (m *Machine) Execute(inst Instruction) (err error) {
	if m.Verbose {
		log.Printf("intcode: %04d: %v", inst.Ip, inst)
	}

	next_ip := inst.Ip + int64(inst.Length())

	var args [3]int64
	target := inst.Op.Target()
	for n := range inst.Op.Params() {
		if n == target {
			args[n], err = m.address(inst.Params[n])
		} else {
			args[n], err = m.value(inst.Params[n])
		}
		if err != nil {
			err = errors.Join(errParam[n], err)
			return
		}
	}

	switch inst.Op {
	case OP_ADD:
		err = m.Memory.Write(args[2], args[0]+args[1])
	case OP_MUL:
		err = m.Memory.Write(args[2], args[0]*args[1])
	case OP_INPUT:
		if len(m.Input) == 0 {
			// Suspend, leaving Ip on this instruction.
			m.State = STATE_WAITING
			return
		}
		err = m.Memory.Write(args[0], m.Input[0])
		if err == nil {
			m.Input = m.Input[1:]
		}
	case OP_OUTPUT:
		m.Output = append(m.Output, args[0])
	case OP_JUMP_TRUE:
		if args[0] != 0 {
			next_ip = args[1]
		}
	case OP_JUMP_FALSE:
		if args[0] == 0 {
			next_ip = args[1]
		}
	case OP_LESS_THAN:
		err = m.Memory.Write(args[2], boolCell(args[0] < args[1]))
	case OP_EQUALS:
		err = m.Memory.Write(args[2], boolCell(args[0] == args[1]))
	case OP_ADJUST_BASE:
		m.RelativeBase += args[0]
	case OP_HALT:
		m.State = STATE_HALTED
		m.Ticks++
		return
	default:
		err = errors.Join(ErrOpcodeInvalid, ErrOpcode(inst.Op))
		return
	}

	if err != nil {
		err = errors.Join(errParam[target], err)
		return
	}

	if next_ip < 0 {
		err = errors.Join(ErrParam2, ErrAddressNegative)
		return
	}

	m.Ip = next_ip
	m.Ticks++

	return
}

// value resolves the value of a parameter.
func (m *Machine) value(p Param) (value int64, err error) {
	switch p.Mode {
	case MODE_POSITION:
		value, err = m.Memory.Read(p.Value)
	case MODE_IMMEDIATE:
		value = p.Value
	case MODE_RELATIVE:
		value, err = m.Memory.Read(p.Value + m.RelativeBase)
	default:
		err = ErrModeInvalid
	}

	return
}

// address resolves the memory address designated by a write parameter.
func (m *Machine) address(p Param) (addr int64, err error) {
	switch p.Mode {
	case MODE_POSITION:
		addr = p.Value
	case MODE_RELATIVE:
		addr = p.Value + m.RelativeBase
	case MODE_IMMEDIATE:
		err = ErrModeImmediateWrite
		return
	default:
		err = ErrModeInvalid
		return
	}

	if addr < 0 {
		err = ErrAddressNegative
	}

	return
}

// boolCell converts a comparison result to a cell value.
func boolCell(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
