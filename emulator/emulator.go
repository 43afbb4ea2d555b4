package emulator

import (
	"io"
	"log"

	"github.com/ezrec/intcode/intcode"
)

// Emulator runs an assembled program, tracking its source listing.
type Emulator struct {
	Verbose          bool             // If set, enables verbose logging.
	*intcode.Machine                  // Reference to the machine.
	Program          *intcode.Program // Reference to the running program listing.
}

// NewEmulator creates a new emulator for an assembled program.
func NewEmulator(prog *intcode.Program) (emu *Emulator) {
	emu = &Emulator{
		Machine: prog.Machine(),
		Program: prog,
	}

	return
}

// Assemble creates a new emulator from assembly source.
func Assemble(input io.Reader, verbose bool) (emu *Emulator, err error) {
	asm := &intcode.Assembler{Verbose: verbose}
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu = NewEmulator(prog)
	emu.Verbose = verbose

	return
}

// Reset the machine to the program image.
func (emu *Emulator) Reset() {
	emu.Machine = emu.Program.Machine()
}

// LineNo returns the source line number of the executing opcode, or 0 if
// the instruction pointer is outside of the program listing.
func (emu *Emulator) LineNo() int {
	debug := emu.Program.Debug(emu.Machine.Ip)
	if debug.Opcode == nil {
		return 0
	}

	return debug.LineNo
}

// Code returns the current instruction.
func (emu *Emulator) Code() (inst intcode.Instruction, err error) {
	return intcode.Decode(&emu.Machine.Memory, emu.Machine.Ip)
}

// Tick executes a single instruction. Done is set once the machine has
// halted or is waiting for input.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Machine.Step()
	if err != nil {
		return
	}

	switch emu.Machine.State {
	case intcode.STATE_HALTED, intcode.STATE_WAITING:
		done = true
	}

	return
}

// Run executes until halt or input wait, reporting the source line of any
// runtime error.
func (emu *Emulator) Run(inputs ...int64) (outputs []int64, err error) {
	emu.Machine.Verbose = emu.Verbose

	outputs, err = emu.Machine.Run(inputs...)
	if err != nil {
		err = &ErrRuntime{LineNo: emu.LineNo(), Err: err}
	}

	if emu.Verbose {
		log.Printf("emulator: line %d: %v", emu.LineNo(), emu.Machine.State)
	}

	return
}
