package intcode

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrAddressNegative    = errors.New(f("address negative"))
	ErrAddressLimit       = errors.New(f("address beyond memory limit"))
	ErrModeInvalid        = errors.New(f("parameter mode invalid"))
	ErrModeImmediateWrite = errors.New(f("immediate mode write target"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrSnapshotState      = errors.New(f("snapshot state invalid"))

	// Instruction parameter errors
	ErrParam1 = errors.New(f("param1"))
	ErrParam2 = errors.New(f("param2"))
	ErrParam3 = errors.New(f("param3"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrTargetImmediate    = errors.New(f("target is immediate"))
	ErrDataMode           = errors.New(f(".data values have no mode"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

var errParam = [3]error{ErrParam1, ErrParam2, ErrParam3}

// ErrOpcode is an opcode cell that could not be decoded.
type ErrOpcode int64

func (eo ErrOpcode) Error() string {
	return f("bad opcode %d", int64(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrRuntime indicates the instruction pointer of a runtime error.
type ErrRuntime struct {
	Ip  int64
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrCell indicates the cell index of a program text parse error.
type ErrCell struct {
	Index int
	Err   error
}

func (err *ErrCell) Error() string {
	return f("cell %d %v", err.Index, err.Err)
}

func (err *ErrCell) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or label", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
