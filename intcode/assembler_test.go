package intcode

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, program []string) *Program {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Empty(prog.Cells())

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal(fmt.Sprintf("%d", MEMORY_LIMIT), asm.Equate["MEMORY_LIMIT"])
}

func TestAssemblerOpcodes(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"add 9 #10 @3",
		"mul @-1 -2 4",
		"in @0",
		"out #'A'",
		"jnz #1 #0",
		"jz 5 @6",
		"lt #1 #2 3",
		"eq @1 2 @3",
		"arb #-19",
		"hlt",
	}

	prog := assemble(t, program)

	expected := []Opcode{
		{1, 0, []string{"add", "9", "#10", "@3"}, []int64{21001, 9, 10, 3}, nil},
		{2, 4, []string{"mul", "@-1", "-2", "4"}, []int64{202, -1, -2, 4}, nil},
		{3, 8, []string{"in", "@0"}, []int64{203, 0}, nil},
		{4, 10, []string{"out", "#65"}, []int64{104, 65}, nil},
		{5, 12, []string{"jnz", "#1", "#0"}, []int64{1105, 1, 0}, nil},
		{6, 15, []string{"jz", "5", "@6"}, []int64{2006, 5, 6}, nil},
		{7, 18, []string{"lt", "#1", "#2", "3"}, []int64{1107, 1, 2, 3}, nil},
		{8, 22, []string{"eq", "@1", "2", "@3"}, []int64{20208, 1, 2, 3}, nil},
		{9, 26, []string{"arb", "#-19"}, []int64{109, -19}, nil},
		{10, 28, []string{"hlt"}, []int64{99}, nil},
	}

	assert.Equal(expected, prog.Opcodes)

	// The assembly listing disassembles back to the source text.
	var text []string
	for _, inst := range Disassemble(prog.Cells()) {
		text = append(text, inst.String())
	}
	assert.Equal(strings.Join(program, "\n"), strings.ReplaceAll(strings.Join(text, "\n"), "#65", "#'A'"))
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"; Sum inputs until zero, then output the sum.",
		"start:",
		"    in value",
		"    jz value #done",
		"    add value sum sum",
		"    jmp #start",
		"done: out sum     ; result",
		"    halt",
		"value: .data 0",
		"sum:   .data 0",
	}

	prog := assemble(t, program)

	assert.Equal("3,15,1006,15,12,1,15,16,16,1105,1,0,4,16,99,0,0", prog.Text())

	out, err := prog.Machine().Run(1, 2, 3, 0)
	assert.NoError(err)
	assert.Equal([]int64{6}, out)

	dbg := prog.Debug(13)
	if assert.NotNil(dbg.Opcode) {
		assert.Equal(7, dbg.LineNo)
		assert.Equal(1, dbg.Index)
		assert.Equal(map[int]string{1: "sum"}, dbg.Links)
	}

	dbg = prog.Debug(17)
	assert.Nil(dbg.Opcode)
}

func TestAssemblerEquates(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("SEED", "0x10")

	program := []string{
		".equ N $(6*7)",
		".equ BASE 100",
		"out #N",
		"out #$(BASE*2+1)",
		"out #SEED",
		"here: out #$(LINENO)",
		".data $(-BASE) 'z' here $(here+1)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.Equal([]int64{104, 42, 104, 201, 104, 16, 104, 6, -100, 122, 6, 7}, prog.Cells())
}

func TestAssemblerMacro(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".macro inc X",
		"    add X #1 X",
		".endm",
		".macro loop3 X",
		"%top:",
		"    inc X",
		"    lt X #3 flag",
		"    jnz flag #%top",
		".endm",
		"    loop3 counter",
		"    out counter",
		"    hlt",
		"counter: .data 0",
		"flag: .data 0",
	}

	prog := assemble(t, program)

	assert.Equal("1001,14,1,14,1007,14,3,15,1005,15,0,4,14,99,0,0", prog.Text())

	out, err := prog.Machine().Run()
	assert.NoError(err)
	assert.Equal([]int64{3}, out)
}

func TestAssemblerMacroLocal(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".macro skip",
		"    jmp #%over",
		"%over:",
		".endm",
		"skip",
		"skip",
		"hlt",
	}

	prog := assemble(t, program)

	assert.Equal("1105,1,3,1105,1,6,99", prog.Text())
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		err     error
		lineno  int
	}){
		{"invalid", []string{"hlt", "nop"}, ErrInstructionInvalid, 2},
		{"missing", []string{"add 1 2"}, ErrOpcodeValueMissing, 1},
		{"extra", []string{"out 1 2"}, ErrOpcodeExtraArgs, 1},
		{"target", []string{"add 1 2 #3"}, ErrTargetImmediate, 1},
		{"target_param", []string{"in #3"}, ErrParam1, 1},
		{"value", []string{"out #1x"}, ErrParseValue("1x"), 1},
		{"mode_empty", []string{"out #"}, ErrOpcodeValueMissing, 1},
		{"label_missing", []string{"hlt", "jmp #nowhere"}, ErrLabelMissing("nowhere"), 2},
		{"label_duplicate", []string{"a: hlt", "a: hlt"}, ErrLabelDuplicate, 2},
		{"label_invalid", []string{"1a: hlt"}, ErrLabelInvalid, 1},
		{"equ_syntax", []string{".equ A"}, ErrEquateSyntax, 1},
		{"equ_duplicate", []string{".equ A 1", ".equ A 2"}, ErrEquateDuplicate, 2},
		{"data_mode", []string{".data #1"}, ErrDataMode, 1},
		{"endm", []string{".endm"}, ErrMacroLonelyEndm, 1},
		{"macro_lonely", []string{".macro m", "hlt"}, ErrMacroLonely, 2},
		{"macro_nesting", []string{".macro m", ".macro n"}, ErrMacroNesting, 2},
		{"macro_duplicate", []string{".macro m", ".endm", ".macro m"}, ErrMacroDuplicate, 3},
		{"macro_args", []string{".macro m A", ".endm", "m"}, ErrMacroSyntax, 3},
		{"macro_body", []string{".macro m", "bad", ".endm", "m"}, ErrInstructionInvalid, 4},
		{"expression", []string{`out #$("x")`}, ErrParseExpression(`"x"`), 1},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(strings.Join(entry.program, "\n")))
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.name, err)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Parse(strings.NewReader("a: .equ X 1\n"))
	assert.Error(err)

	prog, err := asm.Parse(strings.NewReader(".equ X 2\na: out #X\nhlt"))
	assert.NoError(err)
	assert.Equal("104,2,99", prog.Text())
	assert.Equal(map[string]int{"a": 0}, asm.Label)
}
