// Package intcode implements the Intcode virtual machine and its assembler.
//
// A Machine owns a growable memory image of signed 64-bit cells, an
// instruction pointer (Ip), a relative base, an input queue and an output
// buffer. Instructions are decoded one at a time from memory; each opcode
// cell selects the operation in its two low decimal digits and the mode of
// each parameter (position, immediate, relative) in the higher digits.
//
// Execution is cooperative. Run executes until the program halts or an
// input instruction finds the input queue empty, at which point the machine
// suspends in the waiting state with Ip left on the input instruction.
// Supplying more input and calling Run again resumes it. Machines are
// independent values: Clone forks a complete process image.
//
// The assembler provides a small macro assembly language for Intcode,
// supporting labels, equates, macros, and compile-time expression
// evaluation.
package intcode
